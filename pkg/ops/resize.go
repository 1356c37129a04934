package ops

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gomagick/gomagick/pkg/geometry"
)

// sinc helper
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x = math.Pi * x
	return math.Sin(x) / x
}

// lanczosKernel builds a Lanczos draw.Kernel with window a.
func lanczosKernel(a float64) *draw.Kernel {
	return &draw.Kernel{
		Support: a,
		At: func(t float64) float64 {
			t = math.Abs(t)
			if t >= a {
				return 0
			}
			return sinc(t) * sinc(t/a)
		},
	}
}

// cubicBC builds a Mitchell-Netravali cubic draw.Kernel from the B and
// C parameters. (1/3, 1/3) is Mitchell, (0, 1/2) is Catmull-Rom,
// (1, 0) is the B-spline.
func cubicBC(b, c float64) *draw.Kernel {
	return &draw.Kernel{
		Support: 2,
		At: func(t float64) float64 {
			t = math.Abs(t)
			switch {
			case t < 1:
				return ((12-9*b-6*c)*t*t*t + (-18+12*b+6*c)*t*t + (6 - 2*b)) / 6
			case t < 2:
				return ((-b-6*c)*t*t*t + (6*b+30*c)*t*t + (-12*b-48*c)*t + (8*b + 24*c)) / 6
			default:
				return 0
			}
		},
	}
}

// windowedSinc builds a sinc kernel damped by window over support a.
// window receives t normalized to [0,1].
func windowedSinc(a float64, window func(t float64) float64) *draw.Kernel {
	return &draw.Kernel{
		Support: a,
		At: func(t float64) float64 {
			t = math.Abs(t)
			if t >= a {
				return 0
			}
			return sinc(t) * window(t/a)
		},
	}
}

var (
	kernelLanczos  = lanczosKernel(3)
	kernelLanczos2 = lanczosKernel(2)
	kernelMitchell = cubicBC(1.0/3.0, 1.0/3.0)
	kernelSpline   = cubicBC(1, 0)
	kernelRobidoux = cubicBC(0.37821575509399866, 0.31089212245300067)
	kernelRobidouxSharp = cubicBC(0.2620145123990142, 0.3689927438004929)
	kernelHermite  = cubicBC(0, 0)
	kernelQuadratic = &draw.Kernel{
		Support: 1.5,
		At: func(t float64) float64 {
			t = math.Abs(t)
			switch {
			case t < 0.5:
				return 0.75 - t*t
			case t < 1.5:
				return 0.5 * (t - 1.5) * (t - 1.5)
			default:
				return 0
			}
		},
	}
	kernelGaussian = &draw.Kernel{
		Support: 2,
		At: func(t float64) float64 {
			return math.Exp(-2*t*t) * math.Sqrt(2/math.Pi)
		},
	}
	kernelBox = &draw.Kernel{
		Support: 0.5,
		At: func(t float64) float64 {
			if math.Abs(t) <= 0.5 {
				return 1
			}
			return 0
		},
	}
	kernelBlackman = windowedSinc(4, func(t float64) float64 {
		return 0.42 + 0.5*math.Cos(math.Pi*t) + 0.08*math.Cos(2*math.Pi*t)
	})
	kernelHamming = windowedSinc(4, func(t float64) float64 {
		return 0.54 + 0.46*math.Cos(math.Pi*t)
	})
	kernelHann = windowedSinc(4, func(t float64) float64 {
		return 0.5 + 0.5*math.Cos(math.Pi*t)
	})
	kernelBartlett = windowedSinc(4, func(t float64) float64 {
		return 1 - t
	})
	kernelBohman = windowedSinc(4, func(t float64) float64 {
		return (1-t)*math.Cos(math.Pi*t) + math.Sin(math.Pi*t)/math.Pi
	})
	kernelCosine = windowedSinc(4, func(t float64) float64 {
		return math.Cos(math.Pi * t / 2)
	})
	kernelParzen = windowedSinc(4, func(t float64) float64 {
		if t < 0.5 {
			return 1 - 6*t*t*(1-t)
		}
		return 2 * (1 - t) * (1 - t) * (1 - t)
	})
	kernelWelch = windowedSinc(4, func(t float64) float64 {
		return 1 - t*t
	})
	kernelSinc = windowedSinc(4, func(t float64) float64 {
		return 1
	})
)

// scalers maps each accepted -filter name onto a concrete resampling
// kernel. Filters without an exact analytic match here fall back to
// the closest member of the same family.
var scalers = map[geometry.Filter]draw.Scaler{
	geometry.FilterPoint:         draw.NearestNeighbor,
	geometry.FilterBox:           kernelBox,
	geometry.FilterTriangle:      draw.BiLinear,
	geometry.FilterHermite:       kernelHermite,
	geometry.FilterQuadratic:     kernelQuadratic,
	geometry.FilterCubic:         kernelSpline,
	geometry.FilterSpline:        kernelSpline,
	geometry.FilterCatrom:        draw.CatmullRom,
	geometry.FilterMitchell:      kernelMitchell,
	geometry.FilterRobidoux:      kernelRobidoux,
	geometry.FilterRobidouxSharp: kernelRobidouxSharp,
	geometry.FilterGaussian:      kernelGaussian,
	geometry.FilterLanczos:       kernelLanczos,
	geometry.FilterLanczos2:      kernelLanczos2,
	geometry.FilterLanczos2Sharp: kernelLanczos2,
	geometry.FilterLanczosSharp:  kernelLanczos,
	geometry.FilterLanczosRadius: kernelLanczos,
	geometry.FilterJinc:          kernelLanczos,
	geometry.FilterLagrange:      draw.CatmullRom,
	geometry.FilterBlackman:      kernelBlackman,
	geometry.FilterHamming:       kernelHamming,
	geometry.FilterHann:          kernelHann,
	geometry.FilterBartlett:      kernelBartlett,
	geometry.FilterBohman:        kernelBohman,
	geometry.FilterCosine:        kernelCosine,
	geometry.FilterParzen:        kernelParzen,
	geometry.FilterWelch:         kernelWelch,
	geometry.FilterSinc:          kernelSinc,
	geometry.FilterSincFast:      kernelSinc,
}

// scalerFor returns the kernel for filter, or the Lanczos default when
// filter is empty or unknown.
func scalerFor(filter geometry.Filter) draw.Scaler {
	if s, ok := scalers[filter]; ok {
		return s
	}
	return kernelLanczos
}

func scaleTo(src *image.NRGBA, w, h int, scaler draw.Scaler) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Resize resamples src to w x h using the kernel selected by filter.
func Resize(src *image.NRGBA, w, h int, filter geometry.Filter) *image.NRGBA {
	if src == nil {
		return nil
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	return scaleTo(src, w, h, scalerFor(filter))
}

// Sample resamples by pixel sampling without interpolation.
func Sample(src *image.NRGBA, w, h int) *image.NRGBA {
	if src == nil {
		return nil
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	return scaleTo(src, w, h, draw.NearestNeighbor)
}

// Scale resamples with the cheap bilinear approximation. Matches the
// quality/speed tradeoff of the original tool's -scale.
func Scale(src *image.NRGBA, w, h int) *image.NRGBA {
	if src == nil {
		return nil
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	return scaleTo(src, w, h, draw.ApproxBiLinear)
}

// Thumbnail resizes like Resize but front-loads a cheap nearest
// reduction when the source is more than 5x larger than the target on
// both axes, so the expensive kernel only runs near the final size.
func Thumbnail(src *image.NRGBA, w, h int, filter geometry.Filter) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() > 5*w && b.Dy() > 5*h {
		src = scaleTo(src, 5*w, 5*h, draw.NearestNeighbor)
	}
	return Resize(src, w, h, filter)
}
