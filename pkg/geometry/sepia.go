package geometry

import (
	"strconv"
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// SepiaThreshold is a parsed -sepia-tone argument, normalized so that
// 100% becomes 1.0. Plain numbers are taken as-is, so `0.8` and `80%`
// are equivalent.
type SepiaThreshold float64

// ParseSepiaThreshold parses a float with an optional trailing `%`.
func ParseSepiaThreshold(s string) (SepiaThreshold, error) {
	if strings.HasSuffix(s, "%") && len(s) > 1 {
		v, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return 0, magickerr.ArgParseErrf("invalid sepia threshold format")
		}
		return SepiaThreshold(v / 100.0), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, magickerr.ArgParseErrf("invalid sepia threshold format")
	}
	return SepiaThreshold(v), nil
}
