// Package geometry implements the legacy image-geometry micro-grammar:
// the generic `WxH+X+Y` form, the extended form with its six modifier
// flags (`!%@^<>`), and the typed specializations built on top of them
// (resize targets, crop areas, blur/unsharp/sepia/rotate parameters).
//
// The grammar documentation published for the original tool does not
// match its observed behavior (offsets do not need to come in pairs,
// extended geometry is accepted outside resizing, flags may appear
// anywhere in the string). This package follows the observed behavior.
package geometry

import (
	"strconv"
	"strings"

	"github.com/gomagick/gomagick/pkg/magickerr"
)

// Geometry is the generic parsed form: four independently optional
// real-valued fields. Immutable once parsed.
type Geometry struct {
	Width   *float64
	Height  *float64
	XOffset *float64
	YOffset *float64
}

// Flags records which of the six extended-geometry modifier characters
// were present anywhere in the input.
type Flags struct {
	Exclamation bool // !
	Percent     bool // %
	At          bool // @
	Caret       bool // ^
	LessThan    bool // <
	GreaterThan bool // >
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Parse parses the plain geometry grammar
// [width][xheight][{+-}xoffset[{+-}yoffset]] with no flag handling.
// An empty string yields an empty geometry. Offsets equal to zero are
// dropped. Trailing text after the last parsed field is ignored, which
// is what the original tool does.
func Parse(s string) (Geometry, error) {
	invalid := func() error {
		return magickerr.ArgParseErrf("invalid geometry: %s", s)
	}

	var g Geometry
	if !isASCII(s) {
		return g, invalid()
	}
	if s == "" {
		return g, nil
	}

	rest := s
	if c := rest[0]; c != 'x' && c != 'X' && c != '+' && c != '-' {
		w, ok := readFloat(&rest, false)
		if !ok {
			return g, invalid()
		}
		g.Width = &w
	}
	if rest != "" && (rest[0] == 'x' || rest[0] == 'X') {
		rest = rest[1:]
		// the height runs from the x to the next sign character; an
		// offset sign directly after the x leaves the height unset
		if rest != "" && (rest[0] == '+' || rest[0] == '-') {
			// height omitted
		} else {
			h, ok := readFloat(&rest, false)
			if !ok {
				return g, invalid()
			}
			g.Height = &h
		}
	}
	for _, field := range []**float64{&g.XOffset, &g.YOffset} {
		if rest == "" || (rest[0] != '+' && rest[0] != '-') {
			break
		}
		off, ok := readFloat(&rest, true)
		if !ok {
			return g, invalid()
		}
		if off != 0 {
			v := off
			*field = &v
		}
	}

	return g, nil
}

// readFloat consumes a number from the front of *s: an optional sign
// when allowSign is set, digits, and an optional decimal point which
// may dangle with no digits after it (the original parser permits a
// trailing dot).
func readFloat(s *string, allowSign bool) (float64, bool) {
	in := *s
	n := 0
	if n < len(in) && (in[n] == '+' || in[n] == '-') {
		if !allowSign {
			return 0, false
		}
		n++
	}
	digits := 0
	for n < len(in) && in[n] >= '0' && in[n] <= '9' {
		n++
		digits++
	}
	if n < len(in) && in[n] == '.' {
		n++
		for n < len(in) && in[n] >= '0' && in[n] <= '9' {
			n++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	text := in[:n]
	// strconv accepts a trailing dot only when digits precede it, which
	// is exactly the set of strings admitted above.
	f, err := strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
	if err != nil {
		return 0, false
	}
	*s = in[n:]
	return f, true
}

// ParseExtended strips the six modifier flags from anywhere in the
// input, then parses what remains with the plain grammar. Stripping is
// position-independent: digit fragments on either side of an excised
// flag become contiguous, so `50!0!x+0!+0` parses like `500x+0+0`.
// A non-empty string consisting only of flags is a legal no-op.
func ParseExtended(s string) (Geometry, Flags, error) {
	var flags Flags
	if !isASCII(s) {
		return Geometry{}, flags, magickerr.ArgParseErrf("invalid geometry: %s", s)
	}

	var stripped []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '!':
			flags.Exclamation = true
		case '%':
			flags.Percent = true
		case '@':
			flags.At = true
		case '^':
			flags.Caret = true
		case '<':
			flags.LessThan = true
		case '>':
			flags.GreaterThan = true
		default:
			stripped = append(stripped, s[i])
		}
	}

	g, err := Parse(string(stripped))
	return g, flags, err
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fmtSigned(f float64) string {
	s := fmtFloat(f)
	if f >= 0 {
		return "+" + s
	}
	return s
}

// String renders the geometry in its canonical parseable form. A
// y-offset with no x-offset is printed as `+0` followed by the
// y-offset so the result re-parses to an equal structure.
func (g Geometry) String() string {
	var b strings.Builder
	if g.Width != nil {
		b.WriteString(fmtFloat(*g.Width))
	}
	if g.Height != nil {
		b.WriteString("x")
		b.WriteString(fmtFloat(*g.Height))
	}
	switch {
	case g.XOffset != nil && g.YOffset != nil:
		b.WriteString(fmtSigned(*g.XOffset))
		b.WriteString(fmtSigned(*g.YOffset))
	case g.XOffset != nil:
		b.WriteString(fmtSigned(*g.XOffset))
	case g.YOffset != nil:
		b.WriteString("+0")
		b.WriteString(fmtSigned(*g.YOffset))
	}
	return b.String()
}
