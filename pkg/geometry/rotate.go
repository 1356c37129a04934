package geometry

import (
	"strconv"
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// RotateGeometry is a parsed -rotate argument: an angle in degrees
// plus optional direction qualifiers that make the rotation
// conditional on the image orientation.
type RotateGeometry struct {
	Degrees float64
	// Rotate only if width > height (`>` qualifier).
	OnlyIfWider bool
	// Rotate only if width < height (`<` qualifier).
	OnlyIfTaller bool
}

// ParseRotateGeometry parses `degrees` with trailing `<` or `>`
// qualifiers. The numeric part admits only digits and `-`, so `+45`
// and fractional angles are rejected, like the legacy tool. Each
// qualifier may appear at most once; anything else after the number is
// an error.
func ParseRotateGeometry(s string) (RotateGeometry, error) {
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '-' {
			end++
			continue
		}
		break
	}

	degrees, err := strconv.ParseFloat(strings.TrimSpace(s[:end]), 64)
	if err != nil {
		return RotateGeometry{}, magickerr.NewArgParseErr()
	}

	g := RotateGeometry{Degrees: degrees}
	for _, qualifier := range s[end:] {
		var flag *bool
		switch qualifier {
		case '>':
			flag = &g.OnlyIfWider
		case '<':
			flag = &g.OnlyIfTaller
		default:
			return RotateGeometry{}, magickerr.NewArgParseErr()
		}
		if *flag {
			return RotateGeometry{}, magickerr.NewArgParseErr()
		}
		*flag = true
	}

	return g, nil
}
