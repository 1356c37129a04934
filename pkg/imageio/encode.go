package imageio

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	chaiwebp "github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// DefaultQuality is used when no -quality was given. It matches the
// original tool rather than the Go encoders' own defaults.
const DefaultQuality = 92

// Encode writes img to w in the given format. The strip policy is
// applied to meta first; whatever survives is carried into containers
// that can hold it (JPEG). FormatNull discards the output entirely.
func Encode(w io.Writer, img image.Image, format Format, meta Metadata, quality int, strip StripPolicy) error {
	if quality <= 0 {
		quality = DefaultQuality
	}
	meta = meta.apply(strip)

	var err error
	switch format {
	case FormatNull:
		return nil
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = encodeJPEG(w, img, meta, quality)
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatWebP:
		err = chaiwebp.Encode(w, img, &chaiwebp.Options{Quality: float32(quality)})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return magickerr.Errorf("no encode delegate for %s", format)
	}
	if err != nil {
		return magickerr.Errorf("failed to encode %s image: %s", format, err)
	}
	return nil
}

// encodeJPEG compresses and then splices the surviving metadata
// segments back in front of the compressed stream.
func encodeJPEG(w io.Writer, img image.Image, meta Metadata, quality int) error {
	if meta.EXIF == nil && meta.ICC == nil {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return err
	}
	out, err := injectJPEGMetadata(buf.Bytes(), meta.EXIF, meta.ICC)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
