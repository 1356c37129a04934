package geometry

import (
	"math"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// CropArea is the integer rectangle a crop operates on. Fields are
// optional because the grammar allows any of them to be omitted.
type CropArea struct {
	Width   *uint32
	Height  *uint32
	XOffset *int32
	YOffset *int32
}

// CropGeometry is a parsed -crop argument.
type CropGeometry struct {
	Area CropArea
	// Without an x-offset the image is sliced into a grid of tiles
	// instead of producing a single region. A y-offset cannot be
	// expressed without an x-offset, so checking one is enough.
	SliceIntoMany  bool
	Repage         bool // `!` flag
	PercentageMode bool // `%` flag
}

// ParseCropGeometry parses an extended geometry string for -crop.
// The `@`, `^`, `<` and `>` flags are technically accepted by the
// original tool with behavior too erratic to be worth cloning; they
// are stripped and ignored here.
func ParseCropGeometry(s string) (CropGeometry, error) {
	if !isASCII(s) {
		return CropGeometry{}, magickerr.NewArgParseErr()
	}

	geom, flags, err := ParseExtended(s)
	if err != nil {
		return CropGeometry{}, err
	}

	area := CropArea{}
	if geom.Width != nil {
		w := roundToUint32(*geom.Width)
		area.Width = &w
	}
	if geom.Height != nil {
		h := roundToUint32(*geom.Height)
		area.Height = &h
	}
	if geom.XOffset != nil {
		x := int32(math.Round(*geom.XOffset))
		area.XOffset = &x
	}
	if geom.YOffset != nil {
		y := int32(math.Round(*geom.YOffset))
		area.YOffset = &y
	}

	return CropGeometry{
		Area:           area,
		SliceIntoMany:  geom.XOffset == nil,
		Repage:         flags.Exclamation,
		PercentageMode: flags.Percent,
	}, nil
}

// LoadCropGeometry is the crop form allowed inside a bracketed read
// modifier. Unlike -crop, all four fields are mandatory and must be
// non-negative.
type LoadCropGeometry struct {
	Width   uint32
	Height  uint32
	XOffset uint32
	YOffset uint32
}

// ParseLoadCropGeometry parses the strict `WxH+X+Y` form used by read
// modifiers. Real-valued input is rounded; a missing or negative field
// is an error.
func ParseLoadCropGeometry(s string) (LoadCropGeometry, error) {
	geom, err := Parse(s)
	if err != nil {
		return LoadCropGeometry{}, err
	}

	convert := func(field *float64) (uint32, error) {
		if field == nil {
			return 0, magickerr.ArgParseErrf("invalid crop geometry: %s", s)
		}
		if *field < 0 || math.Signbit(*field) {
			return 0, magickerr.ArgParseErrf("invalid crop geometry: %s", s)
		}
		return roundToUint32(*field), nil
	}

	var out LoadCropGeometry
	fields := []struct {
		dst *uint32
		src *float64
	}{
		{&out.Width, geom.Width},
		{&out.Height, geom.Height},
		{&out.XOffset, geom.XOffset},
		{&out.YOffset, geom.YOffset},
	}
	for _, f := range fields {
		v, err := convert(f.src)
		if err != nil {
			return LoadCropGeometry{}, err
		}
		*f.dst = v
	}
	return out, nil
}
