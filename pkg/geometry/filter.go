package geometry

import (
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// Filter is one of the resampling filters the -filter option accepts.
// The list matches `convert -list filter`.
type Filter string

const (
	FilterBartlett      Filter = "Bartlett"
	FilterBlackman      Filter = "Blackman"
	FilterBohman        Filter = "Bohman"
	FilterBox           Filter = "Box"
	FilterCatrom        Filter = "Catrom"
	FilterCosine        Filter = "Cosine"
	FilterCubic         Filter = "Cubic"
	FilterGaussian      Filter = "Gaussian"
	FilterHamming       Filter = "Hamming"
	FilterHann          Filter = "Hann"
	FilterHermite       Filter = "Hermite"
	FilterJinc          Filter = "Jinc"
	FilterKaiser        Filter = "Kaiser"
	FilterLagrange      Filter = "Lagrange"
	FilterLanczos       Filter = "Lanczos"
	FilterLanczos2      Filter = "Lanczos2"
	FilterLanczos2Sharp Filter = "Lanczos2Sharp"
	FilterLanczosRadius Filter = "LanczosRadius"
	FilterLanczosSharp  Filter = "LanczosSharp"
	FilterMitchell      Filter = "Mitchell"
	FilterParzen        Filter = "Parzen"
	FilterPoint         Filter = "Point"
	FilterQuadratic     Filter = "Quadratic"
	FilterRobidoux      Filter = "Robidoux"
	FilterRobidouxSharp Filter = "RobidouxSharp"
	FilterSinc          Filter = "Sinc"
	FilterSincFast      Filter = "SincFast"
	FilterSpline        Filter = "Spline"
	FilterTriangle      Filter = "Triangle"
	FilterWelch         Filter = "Welch"
)

var filters = []Filter{
	FilterBartlett, FilterBlackman, FilterBohman, FilterBox,
	FilterCatrom, FilterCosine, FilterCubic, FilterGaussian,
	FilterHamming, FilterHann, FilterHermite, FilterJinc,
	FilterKaiser, FilterLagrange, FilterLanczos, FilterLanczos2,
	FilterLanczos2Sharp, FilterLanczosRadius, FilterLanczosSharp,
	FilterMitchell, FilterParzen, FilterPoint, FilterQuadratic,
	FilterRobidoux, FilterRobidouxSharp, FilterSinc, FilterSincFast,
	FilterSpline, FilterTriangle, FilterWelch,
}

// ParseFilter matches a filter name case-insensitively against the
// closed table.
func ParseFilter(s string) (Filter, error) {
	for _, f := range filters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", magickerr.ArgParseErrf("unrecognized filter %s", s)
}
