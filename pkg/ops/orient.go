package ops

import "image"

// AutoOrient bakes an EXIF orientation (1..8) into the pixels.
// Orientation 1 and out-of-range values return the image unchanged.
func AutoOrient(src *image.NRGBA, orientation int) *image.NRGBA {
	if src == nil {
		return nil
	}
	switch orientation {
	case 2:
		return Flop(src)
	case 3:
		return rotate180(src)
	case 4:
		return Flip(src)
	case 5:
		// transpose
		return Flop(rotate90(src))
	case 6:
		return rotate90(src)
	case 7:
		// transverse
		return Flop(rotate270(src))
	case 8:
		return rotate270(src)
	default:
		return src
	}
}
