package geometry

import (
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// GrayscaleMethod selects the luminance formula for -grayscale.
type GrayscaleMethod string

const (
	Rec601Luma      GrayscaleMethod = "Rec601Luma"
	Rec601Luminance GrayscaleMethod = "Rec601Luminance"
	Rec709Luma      GrayscaleMethod = "Rec709Luma"
	Rec709Luminance GrayscaleMethod = "Rec709Luminance"
	Brightness      GrayscaleMethod = "Brightness"
	Lightness       GrayscaleMethod = "Lightness"
)

var grayscaleMethods = []GrayscaleMethod{
	Rec601Luma, Rec601Luminance, Rec709Luma, Rec709Luminance,
	Brightness, Lightness,
}

// ParseGrayscaleMethod matches a method name case-insensitively.
func ParseGrayscaleMethod(s string) (GrayscaleMethod, error) {
	for _, m := range grayscaleMethods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", magickerr.ArgParseErrf("unrecognized grayscale method %s", s)
}
