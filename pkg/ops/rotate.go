package ops

import (
	"image"
	"math"

	"github.com/gomagick/gomagick/pkg/geometry"
)

// Rotate rotates src clockwise by g.Degrees. The `>` and `<`
// qualifiers make the rotation conditional on the source orientation;
// when the condition fails the image is returned unchanged. Right
// angles use exact pixel shuffles; arbitrary angles use inverse
// mapping with bilinear sampling onto a white canvas sized to the
// rotated bounding box.
func Rotate(src *image.NRGBA, g geometry.RotateGeometry) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if g.OnlyIfWider && w <= h {
		return src
	}
	if g.OnlyIfTaller && w >= h {
		return src
	}

	deg := math.Mod(g.Degrees, 360)
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 0:
		return src
	case 90:
		return rotate90(src)
	case 180:
		return rotate180(src)
	case 270:
		return rotate270(src)
	}
	return rotateArbitrary(src, deg)
}

func rotate90(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dstIdx := out.PixOffset(h-1-y, x)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

func rotate180(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dstIdx := out.PixOffset(w-1-x, h-1-y)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

func rotate270(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dstIdx := out.PixOffset(y, w-1-x)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

func rotateArbitrary(src *image.NRGBA, deg float64) *image.NRGBA {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	dstW := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin)))
	dstH := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos)))
	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))

	cx, cy := w/2, h/2
	dcx, dcy := float64(dstW)/2, float64(dstH)/2

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			// inverse rotation of the destination pixel center
			dx := float64(x) + 0.5 - dcx
			dy := float64(y) + 0.5 - dcy
			sx := dx*cos + dy*sin + cx - 0.5
			sy := -dx*sin + dy*cos + cy - 0.5

			i := out.PixOffset(x, y)
			if sx < -0.5 || sy < -0.5 || sx > w-0.5 || sy > h-0.5 {
				// outside the source: background white
				out.Pix[i+0] = 255
				out.Pix[i+1] = 255
				out.Pix[i+2] = 255
				out.Pix[i+3] = 255
				continue
			}
			r, g, bl, a := sampleBilinear(src, sx, sy)
			out.Pix[i+0] = uint8(clampFloatToUint8(r))
			out.Pix[i+1] = uint8(clampFloatToUint8(g))
			out.Pix[i+2] = uint8(clampFloatToUint8(bl))
			out.Pix[i+3] = uint8(clampFloatToUint8(a))
		}
	}
	return out
}

// sampleBilinear samples src at floating coordinates using bilinear
// interpolation with edge clamping.
func sampleBilinear(src *image.NRGBA, x, y float64) (r, g, b, a float64) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1

	c00 := samplePixelClamped(src, x0, y0)
	c10 := samplePixelClamped(src, x1, y0)
	c01 := samplePixelClamped(src, x0, y1)
	c11 := samplePixelClamped(src, x1, y1)

	xFrac := x - float64(x0)
	yFrac := y - float64(y0)

	r0 := float64(c00.R)*(1-xFrac) + float64(c10.R)*xFrac
	r1 := float64(c01.R)*(1-xFrac) + float64(c11.R)*xFrac
	g0 := float64(c00.G)*(1-xFrac) + float64(c10.G)*xFrac
	g1 := float64(c01.G)*(1-xFrac) + float64(c11.G)*xFrac
	b0 := float64(c00.B)*(1-xFrac) + float64(c10.B)*xFrac
	b1 := float64(c01.B)*(1-xFrac) + float64(c11.B)*xFrac
	a0 := float64(c00.A)*(1-xFrac) + float64(c10.A)*xFrac
	a1 := float64(c01.A)*(1-xFrac) + float64(c11.A)*xFrac

	r = r0*(1-yFrac) + r1*yFrac
	g = g0*(1-yFrac) + g1*yFrac
	b = b0*(1-yFrac) + b1*yFrac
	a = a0*(1-yFrac) + a1*yFrac
	return
}
