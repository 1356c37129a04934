// Package imageio handles image decode and encode for the formats the
// tool supports, plus the metadata (EXIF, ICC) carried alongside the
// raster between operations.
package imageio

import "strings"

// Format identifies an image file format. FormatNull is the `null:`
// pseudo-format whose output is discarded.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatGIF
	FormatWebP
	FormatBMP
	FormatTIFF
	FormatNull
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatGIF:
		return "GIF"
	case FormatWebP:
		return "WEBP"
	case FormatBMP:
		return "BMP"
	case FormatTIFF:
		return "TIFF"
	case FormatNull:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// formatNames maps every accepted spelling (ASCII, case-insensitive)
// to its format. These are the names valid as a `name:` prefix on a
// filename argument.
var formatNames = map[string]Format{
	"png":  FormatPNG,
	"jpeg": FormatJPEG,
	"jpg":  FormatJPEG,
	"gif":  FormatGIF,
	"webp": FormatWebP,
	"bmp":  FormatBMP,
	"tiff": FormatTIFF,
	"tif":  FormatTIFF,
	"null": FormatNull,
}

// ParseFormatName matches a format name case-insensitively. Non-ASCII
// input never matches.
func ParseFormatName(name string) (Format, bool) {
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return 0, false
		}
	}
	f, ok := formatNames[strings.ToLower(name)]
	return f, ok
}

// FormatFromPath guesses a format from the path's extension.
func FormatFromPath(path string) (Format, bool) {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 || dot == len(path)-1 {
		return 0, false
	}
	f, ok := formatNames[strings.ToLower(path[dot+1:])]
	if ok && f == FormatNull {
		return 0, false
	}
	return f, ok
}
