package ops

import (
	"image"
	"math"

	"github.com/gomagick/gomagick/pkg/geometry"
	"github.com/gomagick/gomagick/pkg/magickerr"
)

// CropRegion extracts the single rectangle described by g from src.
// Percentage mode interprets width and height as percentages of the
// source dimensions. The rectangle is clipped to the image; a region
// with no overlap at all is an error.
func CropRegion(src *image.NRGBA, g geometry.CropGeometry) (*image.NRGBA, error) {
	if src == nil {
		return nil, nil
	}
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	w, h := cropExtent(g, srcW, srcH)
	x, y := 0, 0
	if g.Area.XOffset != nil {
		x = int(*g.Area.XOffset)
	}
	if g.Area.YOffset != nil {
		y = int(*g.Area.YOffset)
	}

	region := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, srcW, srcH))
	if region.Empty() {
		return nil, magickerr.Errorf("geometry does not contain image")
	}
	return extract(src, region), nil
}

// CropTiles slices src into a grid of W x H tiles starting at the top
// left corner. Tiles on the right and bottom edges may be smaller.
func CropTiles(src *image.NRGBA, g geometry.CropGeometry) []*image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	w, h := cropExtent(g, srcW, srcH)

	var tiles []*image.NRGBA
	for y := 0; y < srcH; y += h {
		for x := 0; x < srcW; x += w {
			region := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, srcW, srcH))
			tiles = append(tiles, extract(src, region))
		}
	}
	return tiles
}

// cropExtent resolves the tile/region dimensions, applying percentage
// mode and defaulting missing fields to the full source extent.
func cropExtent(g geometry.CropGeometry, srcW, srcH int) (int, int) {
	w, h := srcW, srcH
	if g.Area.Width != nil {
		w = int(*g.Area.Width)
		if g.PercentageMode {
			w = int(math.Round(float64(srcW) * float64(*g.Area.Width) / 100.0))
		}
	}
	if g.Area.Height != nil {
		h = int(*g.Area.Height)
		if g.PercentageMode {
			h = int(math.Round(float64(srcH) * float64(*g.Area.Height) / 100.0))
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// CropLoad applies the strict read-modifier crop. The region is
// clipped to the image like -crop.
func CropLoad(src *image.NRGBA, g geometry.LoadCropGeometry) (*image.NRGBA, error) {
	if src == nil {
		return nil, nil
	}
	b := src.Bounds()
	region := image.Rect(
		int(g.XOffset), int(g.YOffset),
		int(g.XOffset)+int(g.Width), int(g.YOffset)+int(g.Height),
	).Intersect(image.Rect(0, 0, b.Dx(), b.Dy()))
	if region.Empty() {
		return nil, magickerr.Errorf("geometry does not contain image")
	}
	return extract(src, region), nil
}

// extract copies a sub-rectangle into a fresh zero-based image.
func extract(src *image.NRGBA, region image.Rectangle) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := 0; y < region.Dy(); y++ {
		srcIdx := src.PixOffset(region.Min.X, region.Min.Y+y)
		dstIdx := out.PixOffset(0, y)
		copy(out.Pix[dstIdx:dstIdx+4*region.Dx()], src.Pix[srcIdx:srcIdx+4*region.Dx()])
	}
	return out
}
