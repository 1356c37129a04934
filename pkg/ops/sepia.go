package ops

import (
	"image"

	"github.com/gomagick/gomagick/pkg/geometry"
)

// Sepia applies the classic sepia tone transform. The threshold is the
// normalized intensity pivot (0.8 is the conventional value): each
// pixel's luminance is remapped into a warm brown ramp whose red,
// green and blue channels shift by 0, threshold/6 and 7*threshold/6
// respectively.
func Sepia(src *image.NRGBA, threshold geometry.SepiaThreshold) *image.NRGBA {
	if src == nil {
		return nil
	}
	t := float64(threshold) * 255.0
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			intensity := rec601Luma(
				float64(src.Pix[i+0]),
				float64(src.Pix[i+1]),
				float64(src.Pix[i+2]),
			)

			red := 255.0
			if intensity <= t {
				red = intensity + 255.0 - t
			}
			green := 255.0
			if intensity <= 7.0*t/6.0 {
				green = intensity + 255.0 - 7.0*t/6.0
			}
			blue := 0.0
			if intensity >= t/6.0 {
				blue = intensity - t/6.0
			}

			out.Pix[i+0] = uint8(clampFloatToUint8(red))
			out.Pix[i+1] = uint8(clampFloatToUint8(green))
			out.Pix[i+2] = uint8(clampFloatToUint8(blue))
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}
