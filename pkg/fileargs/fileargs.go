// Package fileargs resolves raw command-line file tokens. A token may
// denote standard I/O (`-` or the empty string), a literal path, a
// path with an explicit `format:` prefix, a path with a bracketed read
// modifier (`file.jpg[50x50+10+10]`), or combinations of those. The
// ambiguity is resolved with filesystem probes in a fixed precedence
// order: the literal path always wins over any decorated reading.
package fileargs

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gomagick/gomagick/pkg/geometry"
	"github.com/gomagick/gomagick/pkg/imageio"
	"github.com/gomagick/gomagick/pkg/magickerr"
)

// Location is either a filesystem path or standard input/output.
type Location struct {
	Stdio bool
	Path  string
}

func (l Location) String() string {
	if l.Stdio {
		return "-"
	}
	return l.Path
}

// Stat probes a path. It must report whether the path is a directory
// without requiring read permission on it. Injected so resolution is
// testable without touching the real filesystem.
type Stat func(path string) (isDir bool, err error)

// OSStat is the production Stat backed by os.Stat.
func OSStat(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadModifier is the action attached to an input file via a bracketed
// suffix: one of a load-time resize, a load-time crop, or a frame
// selection.
type ReadModifier interface {
	isReadModifier()
}

// ResizeModifier resizes the image as it is loaded.
type ResizeModifier struct {
	Geometry geometry.ResizeGeometry
}

// CropModifier crops the image as it is loaded.
type CropModifier struct {
	Geometry geometry.LoadCropGeometry
}

// FrameModifier selects frames of a multi-frame input. Only stored
// here; which selections are actually supported is decided by the
// plan builder.
type FrameModifier struct {
	Spec string
}

func (ResizeModifier) isReadModifier() {}
func (CropModifier) isReadModifier()   {}
func (FrameModifier) isReadModifier()  {}

// InputFileArg is a fully resolved input token.
type InputFileArg struct {
	Location Location
	Format   *imageio.Format
	ReadMod  ReadModifier
}

// ParseInputFileArg resolves a raw input token. Candidates are tried
// strictly in order — verbatim path, bracket-stripped path, then
// format-prefixed path — and the first one whose probe reports an
// existing non-directory wins. A modifier-looking suffix that fails to
// parse as a modifier is not an error; it folds back into the path.
func ParseInputFileArg(token string, stat Stat) (InputFileArg, error) {
	if token == "" || token == "-" {
		return InputFileArg{Location: Location{Stdio: true}}, nil
	}
	if ready(stat, token) {
		return InputFileArg{Location: Location{Path: token}}, nil
	}

	candidate := token
	var readMod ReadModifier
	if prefix, inner, ok := splitBracketSuffix(token); ok {
		if mod, err := parseReadModifier(inner); err == nil {
			candidate = prefix
			readMod = mod
			if candidate == "" || candidate == "-" {
				return InputFileArg{Location: Location{Stdio: true}, ReadMod: readMod}, nil
			}
			if ready(stat, candidate) {
				return InputFileArg{Location: Location{Path: candidate}, ReadMod: readMod}, nil
			}
		}
	}

	var format *imageio.Format
	// The format prefix is split only after bracket stripping, so
	// modifier content shaped like `[x:y]` is never split on its colon.
	// On a drive-letter platform a single-letter prefix would have to
	// be excluded here; this port targets unix.
	if idx := strings.IndexByte(candidate, ':'); idx >= 0 {
		if f, ok := imageio.ParseFormatName(candidate[:idx]); ok {
			format = &f
			candidate = candidate[idx+1:]
			if candidate == "" || candidate == "-" {
				return InputFileArg{Location: Location{Stdio: true}, Format: format, ReadMod: readMod}, nil
			}
			if ready(stat, candidate) {
				return InputFileArg{Location: Location{Path: candidate}, Format: format, ReadMod: readMod}, nil
			}
		}
	}

	// No candidate was ready. One final probe of the fully reduced
	// path decides between "directory" and a real error.
	isDir, err := stat(candidate)
	if err != nil {
		// The reduced path is shown as the failing filename, never the
		// original token.
		return InputFileArg{}, magickerr.Errorf("unable to open image `%s': %s", candidate, statErrText(err))
	}
	if isDir {
		// A directory resolves to the raw token as-is; format and
		// modifier are suppressed.
		return InputFileArg{Location: Location{Path: token}}, nil
	}
	return InputFileArg{Location: Location{Path: candidate}, Format: format, ReadMod: readMod}, nil
}

func ready(stat Stat, path string) bool {
	isDir, err := stat(path)
	return err == nil && !isDir
}

func statErrText(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "No such file or directory"
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// splitBracketSuffix splits `prefix[inner]` where the suffix is
// delimited by the last `[` before a final `]`. Nested brackets are
// not resolved inward-out: `file[v1][v2]` splits into `file[v1]` and
// `v2`.
func splitBracketSuffix(token string) (prefix, inner string, ok bool) {
	if len(token) == 0 || token[len(token)-1] != ']' {
		return "", "", false
	}
	open := strings.LastIndexByte(token[:len(token)-1], '[')
	if open < 0 {
		return "", "", false
	}
	return token[:open], token[open+1 : len(token)-1], true
}

// parseReadModifier decides which of the three modifier grammars the
// bracket content belongs to, using the same counting heuristic as the
// original: a single `x` with no `+` is a resize, a single `x` with
// two `+` is a crop, and digit/comma/sign-only content is a frame
// selection.
func parseReadModifier(s string) (ReadModifier, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, magickerr.ArgParseErrf("invalid read modifier: %s", s)
		}
	}

	xCount := strings.Count(s, "x")
	plusCount := strings.Count(s, "+")

	switch {
	case xCount == 1 && plusCount == 0:
		g, err := geometry.ParseResizeGeometry(s)
		if err != nil {
			return nil, err
		}
		return ResizeModifier{Geometry: g}, nil
	case xCount == 1 && plusCount == 2:
		g, err := geometry.ParseLoadCropGeometry(s)
		if err != nil {
			return nil, err
		}
		return CropModifier{Geometry: g}, nil
	case isFrameSelect(s):
		return FrameModifier{Spec: s}, nil
	default:
		return nil, magickerr.ArgParseErrf("invalid read modifier: %s", s)
	}
}

func isFrameSelect(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c == ',' || c == '-' || c == '+' {
			continue
		}
		return false
	}
	return true
}

// OutputFileArg is the resolved final (output) token.
type OutputFileArg struct {
	Location Location
	Format   *imageio.Format
}

// ParseOutputFileArg resolves the output token. No filesystem probes
// are involved: the output does not exist yet, so only the stdio forms
// and the format prefix are recognized.
func ParseOutputFileArg(token string) OutputFileArg {
	if token == "" || token == "-" {
		return OutputFileArg{Location: Location{Stdio: true}}
	}
	if idx := strings.IndexByte(token, ':'); idx >= 0 {
		if f, ok := imageio.ParseFormatName(token[:idx]); ok {
			rest := token[idx+1:]
			if rest == "" || rest == "-" {
				return OutputFileArg{Location: Location{Stdio: true}, Format: &f}
			}
			return OutputFileArg{Location: Location{Path: rest}, Format: &f}
		}
	}
	return OutputFileArg{Location: Location{Path: token}}
}
