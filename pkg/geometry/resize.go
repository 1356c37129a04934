package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// ResizeConstraint restricts a resize to one direction.
type ResizeConstraint int

const (
	Unconstrained ResizeConstraint = iota
	OnlyEnlarge                    // `<` flag
	OnlyShrink                     // `>` flag
)

func (c ResizeConstraint) String() string {
	switch c {
	case OnlyEnlarge:
		return "<"
	case OnlyShrink:
		return ">"
	default:
		return ""
	}
}

// ResizeTarget is a closed union: exactly one of SizeTarget,
// PercentageTarget, AreaTarget or CoverTarget.
type ResizeTarget interface {
	isResizeTarget()
	String() string
}

// SizeTarget is the plain `WxH` form, optionally with the `!` flag.
type SizeTarget struct {
	Width             *uint32
	Height            *uint32
	IgnoreAspectRatio bool // `!` flag
}

// PercentageTarget is the `%` form. Width may be absent: a
// height-only percentage leaves the image width untouched.
type PercentageTarget struct {
	Width  *float64
	Height float64
}

// AreaTarget is the `@` form: a total pixel budget.
type AreaTarget uint64

// CoverTarget is the `^` form: fill the target box, overflowing the
// non-binding axis.
type CoverTarget struct {
	Width  uint32
	Height uint32
}

func (SizeTarget) isResizeTarget()       {}
func (PercentageTarget) isResizeTarget() {}
func (AreaTarget) isResizeTarget()       {}
func (CoverTarget) isResizeTarget()      {}

func (t SizeTarget) String() string {
	var b strings.Builder
	if t.Width != nil {
		fmt.Fprintf(&b, "%d", *t.Width)
	}
	if t.Height != nil {
		fmt.Fprintf(&b, "x%d", *t.Height)
	}
	if t.IgnoreAspectRatio {
		b.WriteString("!")
	}
	return b.String()
}

func (t PercentageTarget) String() string {
	var b strings.Builder
	if t.Width != nil {
		b.WriteString(fmtFloat(*t.Width))
	}
	fmt.Fprintf(&b, "x%s%%", fmtFloat(t.Height))
	return b.String()
}

func (t AreaTarget) String() string {
	return fmt.Sprintf("@%d", uint64(t))
}

func (t CoverTarget) String() string {
	return fmt.Sprintf("^%dx%d", t.Width, t.Height)
}

// ResizeGeometry is one parsed resize-family argument: a target plus
// an optional direction constraint.
type ResizeGeometry struct {
	Target     ResizeTarget
	Constraint ResizeConstraint
}

// DefaultResizeGeometry is a no-op: an empty size with no constraint.
func DefaultResizeGeometry() ResizeGeometry {
	return ResizeGeometry{Target: SizeTarget{}}
}

func (g ResizeGeometry) String() string {
	return g.Target.String() + g.Constraint.String()
}

// ParseResizeGeometry parses an extended geometry string for the
// resize family. Mode precedence is Area over Percentage over
// FullyCover over Size: the first matching flag wins regardless of
// where it sits in the string. Offsets after the dimensions are
// accepted and discarded. Flag characters may appear anywhere,
// including between digits.
func ParseResizeGeometry(s string) (ResizeGeometry, error) {
	geom := DefaultResizeGeometry()
	if !isASCII(s) {
		return geom, magickerr.NewArgParseErr()
	}

	ignoreAspectRatio := strings.ContainsRune(s, '!')
	percentageMode := strings.ContainsRune(s, '%')
	areaMode := strings.ContainsRune(s, '@')
	coverMode := strings.ContainsRune(s, '^')
	onlyEnlarge := strings.ContainsRune(s, '<')
	onlyShrink := strings.ContainsRune(s, '>')

	if onlyEnlarge && onlyShrink {
		return geom, magickerr.ArgParseErrf("< and > cannot be specified together")
	}
	if onlyEnlarge {
		geom.Constraint = OnlyEnlarge
	} else if onlyShrink {
		geom.Constraint = OnlyShrink
	}

	// The numeric fields are located by scanning each x-separated
	// segment for its first digit run; flag characters interleaved
	// with the number are simply skipped over.
	segments := strings.SplitN(s, "x", 3)
	var width, height *float64
	if len(segments) >= 1 {
		w, err := findAndParseFloat(segments[0])
		if err != nil {
			return geom, err
		}
		width = w
	}
	if len(segments) >= 2 {
		h, err := findAndParseFloat(segments[1])
		if err != nil {
			return geom, err
		}
		height = h
	}

	switch {
	case areaMode:
		// Area beats percentage when both are specified. The height
		// field is ignored in area mode.
		if width == nil {
			return geom, magickerr.ArgParseErrf("please specify the area to resize to when using @ operator")
		}
		geom.Target = AreaTarget(uint64(math.Round(*width)))
	case percentageMode:
		switch {
		case width == nil && height == nil:
			// A bare % amounts to a no-op and is accepted.
		case width != nil && height == nil:
			// Width-only applies the same scaling to both axes.
			geom.Target = PercentageTarget{Width: width, Height: *width}
		case width == nil && height != nil:
			// Height-only scales height alone and ignores aspect
			// ratio; there is no equivalent width-only mode.
			geom.Target = PercentageTarget{Width: nil, Height: *height}
		default:
			geom.Target = PercentageTarget{Width: width, Height: *height}
		}
	case coverMode:
		// A bare ^ with no digits is a no-op, not an error.
		if width != nil || height != nil {
			var w, h uint32
			switch {
			case width != nil && height != nil:
				w, h = roundToUint32(*width), roundToUint32(*height)
			case width != nil:
				// A single dimension applies to both axes.
				w = roundToUint32(*width)
				h = w
			default:
				h = roundToUint32(*height)
				w = h
			}
			geom.Target = CoverTarget{Width: w, Height: h}
		}
	default:
		// Leave the default no-op target in place unless a dimension
		// was actually given.
		if width != nil || height != nil {
			t := SizeTarget{IgnoreAspectRatio: ignoreAspectRatio}
			if width != nil {
				// Floating-point dimensions are accepted and rounded
				// to nearest, matching the original tool.
				w := roundToUint32(*width)
				t.Width = &w
			}
			if height != nil {
				h := roundToUint32(*height)
				t.Height = &h
			}
			geom.Target = t
		}
	}

	// Offsets such as +500 or -200 after the resolution are accepted
	// by the grammar but ignored for resizing; they are never parsed.

	return geom, nil
}

func roundToUint32(f float64) uint32 {
	r := math.Round(f)
	if r < 0 {
		return 0
	}
	if r > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(r)
}

// findAndParseFloat extracts the first digit run (with optional
// decimal point) from the segment, skipping any non-digit prefix such
// as flag characters or a sign. An empty segment yields nil. A digit
// run that fails to parse as a float is an error.
func findAndParseFloat(segment string) (*float64, error) {
	start := 0
	for start < len(segment) && !(segment[start] >= '0' && segment[start] <= '9') {
		start++
	}
	end := start
	for end < len(segment) && (segment[end] >= '0' && segment[end] <= '9' || segment[end] == '.') {
		end++
	}
	if start == end {
		return nil, nil
	}
	f, err := strconv.ParseFloat(segment[start:end], 64)
	if err != nil {
		return nil, magickerr.NewArgParseErr()
	}
	return &f, nil
}
