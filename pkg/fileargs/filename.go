package fileargs

import (
	"path/filepath"
	"strings"
)

// InsertSuffixBeforeExtension inserts suffix immediately before the
// final extension component of path, or appends it when there is no
// extension. Used to derive numbered output names when one output
// token must serve several input files: `archive.tar.gz` + `-1` gives
// `archive.tar-1.gz`.
func InsertSuffixBeforeExtension(path, suffix string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if base == "" || base == "." || base == string(filepath.Separator) || ext == "" {
		return path + suffix
	}
	stem := base[:len(base)-len(ext)]
	name := stem + suffix + ext

	dir := filepath.Dir(path)
	if dir == "." && !strings.HasPrefix(path, "."+string(filepath.Separator)) {
		return name
	}
	return filepath.Join(dir, name)
}
