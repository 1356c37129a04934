// Package magick turns a convert-style argument vector into an
// execution plan and runs it: per-file operation lists, the
// global-versus-seen operation scoping rule, and output-name
// derivation for multi-file runs.
package magick

import (
	"image"

	"github.com/gomagick/gomagick/pkg/imageio"
)

// Image is one in-flight frame: pixels plus the metadata carried from
// decode to encode.
type Image struct {
	Pixels *image.NRGBA
	Meta   imageio.Metadata
	// Format is the container the frame was decoded from, used as the
	// encoding fallback when the output specifies none.
	Format imageio.Format
	// Path is the display name for diagnostics and -identify.
	Path string
}

// Sequence is the list of frames a single input file produced.
// Most operations map frames one to one; a slicing crop multiplies
// them.
type Sequence struct {
	Frames []*Image
}
