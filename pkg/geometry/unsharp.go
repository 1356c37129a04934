package geometry

import (
	"strconv"
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// UnsharpGeometry is a parsed -unsharp argument:
// radius[xsigma[+gain[+threshold]]]. Missing trailing parts take
// defaults; malformed present parts are errors.
type UnsharpGeometry struct {
	Radius    int
	Sigma     float64
	Gain      float64
	Threshold int
}

// DefaultUnsharpGeometry returns the defaults for omitted fields.
func DefaultUnsharpGeometry() UnsharpGeometry {
	return UnsharpGeometry{Radius: 0, Sigma: 1.0, Gain: 1.0, Threshold: 0}
}

// ParseUnsharpGeometry parses the unsharp grammar. The error message
// for empty input is carried over verbatim from the original, which
// reuses its blur wording here.
func ParseUnsharpGeometry(s string) (UnsharpGeometry, error) {
	if s == "" || !isASCII(s) {
		return UnsharpGeometry{}, magickerr.ArgParseErrf("blur geometry must be non-empty and ASCII only")
	}

	g := DefaultUnsharpGeometry()

	parts := strings.Split(s, "x")
	if len(parts) > 2 {
		return UnsharpGeometry{}, magickerr.NewArgParseErr()
	}

	radius, err := parseNonNegativeInt(parts[0])
	if err != nil {
		return UnsharpGeometry{}, magickerr.NewArgParseErr()
	}
	g.Radius = radius

	if len(parts) == 1 {
		return g, nil
	}

	tail := strings.Split(parts[1], "+")
	if len(tail) > 3 {
		return UnsharpGeometry{}, magickerr.NewArgParseErr()
	}

	sigma, err := strconv.ParseFloat(strings.TrimSpace(tail[0]), 64)
	if err != nil {
		return UnsharpGeometry{}, magickerr.NewArgParseErr()
	}
	g.Sigma = sigma

	if len(tail) >= 2 {
		gain, err := strconv.ParseFloat(strings.TrimSpace(tail[1]), 64)
		if err != nil {
			return UnsharpGeometry{}, magickerr.NewArgParseErr()
		}
		g.Gain = gain
	}
	if len(tail) == 3 {
		threshold, err := strconv.Atoi(strings.TrimSpace(tail[2]))
		if err != nil {
			return UnsharpGeometry{}, magickerr.NewArgParseErr()
		}
		g.Threshold = threshold
	}

	return g, nil
}
