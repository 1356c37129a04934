package imageio

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// Frame is a decoded image plus everything needed to write it back
// out: its metadata and the container format it arrived in.
type Frame struct {
	Image  image.Image
	Meta   Metadata
	Format Format
}

// Decode reads one image from r. An explicit format (from a `fmt:`
// filename prefix) overrides signature sniffing; otherwise the
// container is detected from its magic bytes.
func Decode(r io.Reader, explicit *Format) (*Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, magickerr.Errorf("failed to read image: %s", err)
	}

	format, ok := sniffFormat(data)
	if explicit != nil {
		format = *explicit
		ok = true
	}
	if !ok {
		return nil, magickerr.Errorf("no decode delegate for this image format")
	}

	var img image.Image
	switch format {
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(data))
	case FormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case FormatGIF:
		img, err = gif.Decode(bytes.NewReader(data))
	case FormatWebP:
		img, err = webp.Decode(bytes.NewReader(data))
	case FormatBMP:
		img, err = bmp.Decode(bytes.NewReader(data))
	case FormatTIFF:
		img, err = tiff.Decode(bytes.NewReader(data))
	default:
		return nil, magickerr.Errorf("no decode delegate for %s", format)
	}
	if err != nil {
		return nil, magickerr.Errorf("failed to decode %s image: %s", format, err)
	}

	return &Frame{
		Image:  img,
		Meta:   extractMetadata(data, format),
		Format: format,
	}, nil
}

// sniffFormat detects the container from its leading magic bytes.
func sniffFormat(data []byte) (Format, bool) {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG, true
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}):
		return FormatJPEG, true
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return FormatGIF, true
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP, true
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return FormatBMP, true
	case len(data) >= 4 && (bytes.Equal(data[:4], []byte("II*\x00")) || bytes.Equal(data[:4], []byte("MM\x00*"))):
		return FormatTIFF, true
	default:
		return 0, false
	}
}
