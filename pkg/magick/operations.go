package magick

import (
	"fmt"
	"io"

	"github.com/gomagick/gomagick/pkg/geometry"
	"github.com/gomagick/gomagick/pkg/ops"
)

// Operation is one step of a file's plan. The set of implementations
// is closed; each one maps the frames of a sequence through the pixel
// engine. Modifiers carry the shared -filter/-quality/-strip state so
// global operations see the values current at execution time.
type Operation interface {
	Execute(seq *Sequence, mods *Modifiers) error
}

// eachFrame applies a frame transform to every frame in place.
func eachFrame(seq *Sequence, f func(*Image) error) error {
	for _, frame := range seq.Frames {
		if err := f(frame); err != nil {
			return err
		}
	}
	return nil
}

// resolveTarget runs the dimension resolver against a frame.
func resolveTarget(frame *Image, g geometry.ResizeGeometry) (int, int) {
	b := frame.Pixels.Bounds()
	w, h := g.ResolveDimensions(uint32(b.Dx()), uint32(b.Dy()))
	return int(w), int(h)
}

// ResizeOp is -resize: a full resample through the selected filter.
type ResizeOp struct {
	Geometry geometry.ResizeGeometry
}

func (op ResizeOp) Execute(seq *Sequence, mods *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		w, h := resolveTarget(frame, op.Geometry)
		frame.Pixels = ops.Resize(frame.Pixels, w, h, mods.Filter)
		return nil
	})
}

// ThumbnailOp is -thumbnail: resize with a cheap pre-pass. Stripping
// all metadata but the color profile is handled by the plan builder,
// which flips the shared strip state when the option is parsed.
type ThumbnailOp struct {
	Geometry geometry.ResizeGeometry
}

func (op ThumbnailOp) Execute(seq *Sequence, mods *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		w, h := resolveTarget(frame, op.Geometry)
		frame.Pixels = ops.Thumbnail(frame.Pixels, w, h, mods.Filter)
		return nil
	})
}

// ScaleOp is -scale: fast resampling, no filter selection.
type ScaleOp struct {
	Geometry geometry.ResizeGeometry
}

func (op ScaleOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		w, h := resolveTarget(frame, op.Geometry)
		frame.Pixels = ops.Scale(frame.Pixels, w, h)
		return nil
	})
}

// SampleOp is -sample: pixel sampling without interpolation.
type SampleOp struct {
	Geometry geometry.ResizeGeometry
}

func (op SampleOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		w, h := resolveTarget(frame, op.Geometry)
		frame.Pixels = ops.Sample(frame.Pixels, w, h)
		return nil
	})
}

// CropOnLoadOp is the bracketed read-modifier crop, always first in a
// file's plan.
type CropOnLoadOp struct {
	Geometry geometry.LoadCropGeometry
}

func (op CropOnLoadOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		out, err := ops.CropLoad(frame.Pixels, op.Geometry)
		if err != nil {
			return err
		}
		frame.Pixels = out
		return nil
	})
}

// ResizeOnLoadOp is the bracketed read-modifier resize.
type ResizeOnLoadOp struct {
	Geometry geometry.ResizeGeometry
}

func (op ResizeOnLoadOp) Execute(seq *Sequence, mods *Modifiers) error {
	return ResizeOp(op).Execute(seq, mods)
}

// CropOp is -crop. In region mode every frame maps to its cropped
// region; in slice mode every frame is replaced by its grid of tiles.
type CropOp struct {
	Geometry geometry.CropGeometry
}

func (op CropOp) Execute(seq *Sequence, _ *Modifiers) error {
	if !op.Geometry.SliceIntoMany {
		return eachFrame(seq, func(frame *Image) error {
			out, err := ops.CropRegion(frame.Pixels, op.Geometry)
			if err != nil {
				return err
			}
			frame.Pixels = out
			return nil
		})
	}
	var out []*Image
	for _, frame := range seq.Frames {
		for _, tile := range ops.CropTiles(frame.Pixels, op.Geometry) {
			out = append(out, &Image{
				Pixels: tile,
				Meta:   frame.Meta,
				Format: frame.Format,
				Path:   frame.Path,
			})
		}
	}
	seq.Frames = out
	return nil
}

// BlurOp is -blur; GaussianBlurOp is -gaussian-blur. Both run the
// same separable gaussian.
type BlurOp struct {
	Geometry geometry.BlurGeometry
}

func (op BlurOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.GaussianBlur(frame.Pixels, op.Geometry)
		return nil
	})
}

type GaussianBlurOp struct {
	Geometry geometry.BlurGeometry
}

func (op GaussianBlurOp) Execute(seq *Sequence, mods *Modifiers) error {
	return BlurOp(op).Execute(seq, mods)
}

// UnsharpOp is -unsharp.
type UnsharpOp struct {
	Geometry geometry.UnsharpGeometry
}

func (op UnsharpOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Unsharp(frame.Pixels, op.Geometry)
		return nil
	})
}

// SepiaOp is -sepia-tone.
type SepiaOp struct {
	Threshold geometry.SepiaThreshold
}

func (op SepiaOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Sepia(frame.Pixels, op.Threshold)
		return nil
	})
}

// RotateOp is -rotate.
type RotateOp struct {
	Geometry geometry.RotateGeometry
}

func (op RotateOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Rotate(frame.Pixels, op.Geometry)
		return nil
	})
}

// GrayscaleOp is -grayscale with its method argument.
type GrayscaleOp struct {
	Method geometry.GrayscaleMethod
}

func (op GrayscaleOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Grayscale(frame.Pixels, op.Method)
		return nil
	})
}

// NegateOp is -negate; with OnlyGrays it is +negate, which inverts
// only the pixels whose channels are all equal.
type NegateOp struct {
	OnlyGrays bool
}

func (op NegateOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		if op.OnlyGrays {
			frame.Pixels = ops.NegateGrays(frame.Pixels)
		} else {
			frame.Pixels = ops.Negate(frame.Pixels)
		}
		return nil
	})
}

// FlipOp is -flip (vertical mirror); FlopOp is -flop (horizontal).
type FlipOp struct{}

func (FlipOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Flip(frame.Pixels)
		return nil
	})
}

type FlopOp struct{}

func (FlopOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Flop(frame.Pixels)
		return nil
	})
}

// AutoOrientOp bakes the EXIF orientation into the pixels and resets
// the stored orientation so a later encode does not rotate twice.
type AutoOrientOp struct{}

func (AutoOrientOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.AutoOrient(frame.Pixels, frame.Meta.Orientation)
		frame.Meta.Orientation = 1
		return nil
	})
}

// MonochromeOp is -monochrome.
type MonochromeOp struct{}

func (MonochromeOp) Execute(seq *Sequence, _ *Modifiers) error {
	return eachFrame(seq, func(frame *Image) error {
		frame.Pixels = ops.Monochrome(frame.Pixels)
		return nil
	})
}

// IdentifyOp is -identify: print a one-line description of each frame
// and leave the pixels alone.
type IdentifyOp struct {
	// Out defaults to standard output; injectable for tests.
	Out io.Writer
}

func (op IdentifyOp) Execute(seq *Sequence, mods *Modifiers) error {
	out := op.Out
	if out == nil {
		out = identifyOutput
	}
	return eachFrame(seq, func(frame *Image) error {
		b := frame.Pixels.Bounds()
		_, err := fmt.Fprintf(out, "%s %s %dx%d 8-bit sRGB\n",
			frame.Path, frame.Format, b.Dx(), b.Dy())
		return err
	})
}

// StripOp is -strip as an operation token. The actual discarding
// happens at encode time through the shared modifier state, which the
// plan builder flips when the option is parsed; executing the
// operation itself is a no-op kept for plan-order fidelity.
type StripOp struct{}

func (StripOp) Execute(*Sequence, *Modifiers) error { return nil }
