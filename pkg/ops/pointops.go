package ops

import (
	"image"
	"math"
	"sync"

	"github.com/gomagick/gomagick/pkg/geometry"
)

// Negate inverts every color channel. Alpha is untouched.
func Negate(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := Clone(src)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = 255 - out.Pix[i+0]
		out.Pix[i+1] = 255 - out.Pix[i+1]
		out.Pix[i+2] = 255 - out.Pix[i+2]
	}
	return out
}

// NegateGrays inverts only the pixels whose three channels are equal,
// the +negate behavior.
func NegateGrays(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := Clone(src)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] == out.Pix[i+1] && out.Pix[i+1] == out.Pix[i+2] {
			v := 255 - out.Pix[i]
			out.Pix[i+0] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
		}
	}
	return out
}

func rec601Luma(r, g, b float64) float64 {
	return 0.298839*r + 0.586811*g + 0.114350*b
}

func rec709Luma(r, g, b float64) float64 {
	return 0.212656*r + 0.715158*g + 0.072186*b
}

var (
	srgbLUTOnce     sync.Once
	srgbToLinearLUT [256]float64
)

func initSRGBLUT() {
	srgbLUTOnce.Do(func() {
		for i := 0; i < 256; i++ {
			v := float64(i) / 255.0
			if v <= 0.04045 {
				srgbToLinearLUT[i] = v / 12.92
			} else {
				srgbToLinearLUT[i] = math.Pow((v+0.055)/1.055, 2.4)
			}
		}
	})
}

func linearToSRGB8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	var s float64
	if v <= 0.0031308 {
		s = 12.92 * v
	} else {
		s = 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return uint8(clampFloatToUint8(s * 255.0))
}

// Grayscale converts src to gray using the given luminance formula.
// The Luma variants weigh the gamma-encoded channels directly; the
// Luminance variants weigh linear light and re-encode.
func Grayscale(src *image.NRGBA, method geometry.GrayscaleMethod) *image.NRGBA {
	if src == nil {
		return nil
	}
	initSRGBLUT()
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			r := src.Pix[i+0]
			g := src.Pix[i+1]
			bl := src.Pix[i+2]

			var v uint8
			switch method {
			case geometry.Rec601Luma:
				v = uint8(clampFloatToUint8(math.Round(rec601Luma(float64(r), float64(g), float64(bl)))))
			case geometry.Rec709Luma:
				v = uint8(clampFloatToUint8(math.Round(rec709Luma(float64(r), float64(g), float64(bl)))))
			case geometry.Rec601Luminance:
				lum := rec601Luma(srgbToLinearLUT[r], srgbToLinearLUT[g], srgbToLinearLUT[bl])
				v = linearToSRGB8(lum)
			case geometry.Rec709Luminance:
				lum := rec709Luma(srgbToLinearLUT[r], srgbToLinearLUT[g], srgbToLinearLUT[bl])
				v = linearToSRGB8(lum)
			case geometry.Brightness:
				v = maxByte(r, g, bl)
			case geometry.Lightness:
				v = uint8((int(maxByte(r, g, bl)) + int(minByte(r, g, bl))) / 2)
			default:
				v = uint8(clampFloatToUint8(math.Round(rec601Luma(float64(r), float64(g), float64(bl)))))
			}

			out.Pix[i+0] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// Monochrome reduces src to pure black and white at a 50% luminance
// threshold.
func Monochrome(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := Clone(src)
	for i := 0; i < len(out.Pix); i += 4 {
		lum := rec601Luma(float64(out.Pix[i]), float64(out.Pix[i+1]), float64(out.Pix[i+2]))
		v := uint8(0)
		if lum >= 127.5 {
			v = 255
		}
		out.Pix[i+0] = v
		out.Pix[i+1] = v
		out.Pix[i+2] = v
	}
	return out
}

// Flip mirrors src vertically.
func Flip(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcIdx := src.PixOffset(b.Min.X, b.Min.Y+y)
		dstIdx := out.PixOffset(0, h-1-y)
		copy(out.Pix[dstIdx:dstIdx+4*w], src.Pix[srcIdx:srcIdx+4*w])
	}
	return out
}

// Flop mirrors src horizontally.
func Flop(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dstIdx := out.PixOffset(w-1-x, y)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

func maxByte(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minByte(a, b, c uint8) uint8 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
