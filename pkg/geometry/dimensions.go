package geometry

import (
	"math"

	"github.com/gomagick/gomagick/pkg/fraction"
)

// ResolveDimensions computes the final pixel dimensions for a resize
// of a srcWidth x srcHeight image (both >= 1). The result is always at
// least 1x1: a requested zero dimension is clamped up.
//
// Aspect-ratio decisions go through exact Fraction comparison so the
// binding axis never flips due to floating-point drift; floats are
// only used for the final scale multiplication, rounded half away
// from zero.
func (g ResizeGeometry) ResolveDimensions(srcWidth, srcHeight uint32) (uint32, uint32) {
	switch t := g.Target.(type) {
	case SizeTarget:
		return g.resolveSize(t, srcWidth, srcHeight)
	case PercentageTarget:
		return resolvePercentage(t, srcWidth, srcHeight)
	case AreaTarget:
		w, h := resolveArea(uint64(t), srcWidth, srcHeight)
		w = g.Constraint.apply(w, srcWidth)
		h = g.Constraint.apply(h, srcHeight)
		return clampDim(w), clampDim(h)
	case CoverTarget:
		return resolveCover(t, srcWidth, srcHeight)
	default:
		return srcWidth, srcHeight
	}
}

// apply clamps a computed dimension back toward the source size when
// the constraint forbids the direction of change.
func (c ResizeConstraint) apply(computed, src uint32) uint32 {
	switch c {
	case OnlyEnlarge:
		if computed < src {
			return src
		}
	case OnlyShrink:
		if computed > src {
			return src
		}
	}
	return computed
}

func clampDim(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return v
}

func (g ResizeGeometry) resolveSize(t SizeTarget, srcWidth, srcHeight uint32) (uint32, uint32) {
	if t.Width == nil && t.Height == nil {
		return srcWidth, srcHeight
	}

	if t.IgnoreAspectRatio {
		w, h := srcWidth, srcHeight
		if t.Width != nil {
			w = *t.Width
		}
		if t.Height != nil {
			h = *t.Height
		}
		w = g.Constraint.apply(w, srcWidth)
		h = g.Constraint.apply(h, srcHeight)
		return clampDim(w), clampDim(h)
	}

	// A missing dimension is treated as unbounded so the given one is
	// always the binding constraint.
	targetWidth := uint32(math.MaxUint32)
	targetHeight := uint32(math.MaxUint32)
	if t.Width != nil {
		targetWidth = *t.Width
	}
	if t.Height != nil {
		targetHeight = *t.Height
	}
	targetWidth = clampDim(targetWidth)
	targetHeight = clampDim(targetHeight)

	srcRatio := fraction.New(srcWidth, srcHeight)
	targetRatio := fraction.New(targetWidth, targetHeight)

	var w, h uint32
	if srcRatio.Cmp(targetRatio) >= 0 {
		// Source is at least as wide as the target box: width binds,
		// height follows the source aspect ratio.
		w = targetWidth
		h = scaleDim(targetWidth, fraction.New(srcHeight, srcWidth))
	} else {
		h = targetHeight
		w = scaleDim(targetHeight, fraction.New(srcWidth, srcHeight))
	}

	w = g.Constraint.apply(w, srcWidth)
	h = g.Constraint.apply(h, srcHeight)
	return clampDim(w), clampDim(h)
}

// scaleDim multiplies a dimension by an exact ratio, rounding half
// away from zero like the legacy tool.
func scaleDim(dim uint32, ratio fraction.Fraction) uint32 {
	return roundToUint32(float64(dim) * ratio.Float64())
}

func resolvePercentage(t PercentageTarget, srcWidth, srcHeight uint32) (uint32, uint32) {
	// Exact no-op short-circuit so 100% never drifts by a pixel.
	if t.Height == 100 && (t.Width == nil || *t.Width == 100) {
		return srcWidth, srcHeight
	}

	w := srcWidth
	if t.Width != nil {
		w = roundToUint32(float64(srcWidth) * *t.Width / 100.0)
	}
	h := roundToUint32(float64(srcHeight) * t.Height / 100.0)
	return clampDim(w), clampDim(h)
}

func resolveArea(targetArea uint64, srcWidth, srcHeight uint32) (uint32, uint32) {
	srcArea := uint64(srcWidth) * uint64(srcHeight)
	factor := math.Sqrt(float64(targetArea) / float64(srcArea))
	// Truncation, not rounding: the result must never exceed the
	// requested area.
	w := uint32(float64(srcWidth) * factor)
	h := uint32(float64(srcHeight) * factor)
	return w, h
}

func resolveCover(t CoverTarget, srcWidth, srcHeight uint32) (uint32, uint32) {
	targetWidth := clampDim(t.Width)
	targetHeight := clampDim(t.Height)

	srcRatio := fraction.New(srcWidth, srcHeight)
	targetRatio := fraction.New(targetWidth, targetHeight)

	// Binding axis selection is inverted relative to SizeTarget:
	// the relatively shorter axis is stretched to meet the target and
	// the other axis overflows.
	var w, h uint32
	if srcRatio.Cmp(targetRatio) >= 0 {
		h = targetHeight
		w = scaleDim(targetHeight, fraction.New(srcWidth, srcHeight))
	} else {
		w = targetWidth
		h = scaleDim(targetWidth, fraction.New(srcHeight, srcWidth))
	}
	return clampDim(w), clampDim(h)
}
