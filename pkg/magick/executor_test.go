package magick

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomagick/gomagick/pkg/fileargs"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = 255
	}
	img.SetNRGBA(0, 0, color.NRGBA{200, 30, 30, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestExecuteResizeToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeTestPNG(t, in, 20, 10)

	plan, err := ParseArgs([]string{"-resize", "10x5", in, out}, fileargs.OSStat)
	require.NoError(t, err)
	require.NoError(t, plan.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 10, decoded.Bounds().Dx())
	assert.Equal(t, 5, decoded.Bounds().Dy())
}

func TestExecuteUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestPNG(t, in, 4, 4)

	out := filepath.Join(dir, "no-such-dir", "out.png")
	plan, err := ParseArgs([]string{in, out}, fileargs.OSStat)
	require.NoError(t, err)

	err = plan.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to open image")
}

func TestExecuteMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "gone.png")

	// the path resolves at parse time with an injected stat that
	// reports it present, then open fails at execution time
	plan, err := ParseArgs([]string{in, filepath.Join(dir, "out.png")}, statFiles(in))
	require.NoError(t, err)

	err = plan.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to open image")
}
