package magick

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomagick/gomagick/pkg/fileargs"
	"github.com/gomagick/gomagick/pkg/imageio"
)

// statNone reports every path as missing, so file tokens resolve to
// their literal reduced form.
func statNone(string) (bool, error) { return false, fs.ErrNotExist }

func statFiles(files ...string) fileargs.Stat {
	return func(path string) (bool, error) {
		for _, f := range files {
			if f == path {
				return false, nil
			}
		}
		return false, fs.ErrNotExist
	}
}

func TestParseArgsSingleResize(t *testing.T) {
	plan, err := ParseArgs([]string{"-resize", "5x5", "in.png", "out.png"}, statFiles("in.png"))
	require.NoError(t, err)
	require.Len(t, plan.InputFiles, 1)
	require.Len(t, plan.InputFiles[0].Ops, 1)
	assert.IsType(t, ResizeOp{}, plan.InputFiles[0].Ops[0])
	assert.Equal(t, "out.png", plan.Output.Location.Path)
}

func TestParseArgsOperationScoping(t *testing.T) {
	// -negate precedes all files and applies to both; -flip comes
	// after a.png and applies only to it.
	plan, err := ParseArgs(
		[]string{"-negate", "a.png", "-flip", "b.png", "out.png"},
		statFiles("a.png", "b.png"),
	)
	require.NoError(t, err)
	require.Len(t, plan.InputFiles, 2)

	a := plan.InputFiles[0]
	require.Len(t, a.Ops, 2)
	assert.IsType(t, NegateOp{}, a.Ops[0])
	assert.IsType(t, FlipOp{}, a.Ops[1])

	b := plan.InputFiles[1]
	require.Len(t, b.Ops, 1)
	assert.IsType(t, NegateOp{}, b.Ops[0])
}

func TestParseArgsReadModifierPrepends(t *testing.T) {
	plan, err := ParseArgs(
		[]string{"-negate", "a.png[50x60]", "out.png"},
		statFiles("a.png"),
	)
	require.NoError(t, err)
	require.Len(t, plan.InputFiles, 1)
	ops := plan.InputFiles[0].Ops
	require.Len(t, ops, 2)
	assert.IsType(t, ResizeOnLoadOp{}, ops[0])
	assert.IsType(t, NegateOp{}, ops[1])
}

func TestParseArgsFrameSelectZeroIsNoOp(t *testing.T) {
	plan, err := ParseArgs([]string{"anim.gif[0]", "out.png"}, statFiles("anim.gif"))
	require.NoError(t, err)
	assert.Empty(t, plan.InputFiles[0].Ops)
}

func TestParseArgsFrameSelectNonZeroFails(t *testing.T) {
	_, err := ParseArgs([]string{"anim.gif[3]", "out.png"}, statFiles("anim.gif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frames other than 0")
}

func TestParseArgsThumbnailStripsAllButICC(t *testing.T) {
	plan, err := ParseArgs([]string{"-thumbnail", "100x100", "in.png", "out.png"}, statFiles("in.png"))
	require.NoError(t, err)
	assert.True(t, plan.Modifiers.Strip.EXIF)
	assert.False(t, plan.Modifiers.Strip.ICC)
}

func TestParseArgsStripStripsEverything(t *testing.T) {
	plan, err := ParseArgs([]string{"-strip", "in.png", "out.png"}, statFiles("in.png"))
	require.NoError(t, err)
	assert.True(t, plan.Modifiers.Strip.EXIF)
	assert.True(t, plan.Modifiers.Strip.ICC)
}

func TestParseArgsPlusNegate(t *testing.T) {
	plan, err := ParseArgs([]string{"+negate", "in.png", "out.png"}, statFiles("in.png"))
	require.NoError(t, err)
	op, ok := plan.InputFiles[0].Ops[0].(NegateOp)
	require.True(t, ok)
	assert.True(t, op.OnlyGrays)
}

func TestParseArgsQuality(t *testing.T) {
	plan, err := ParseArgs([]string{"-quality", "85", "in.png", "out.jpg"}, statFiles("in.png"))
	require.NoError(t, err)
	assert.Equal(t, 85, plan.Modifiers.Quality)
	// a modifier adds no operation
	assert.Empty(t, plan.InputFiles[0].Ops)
}

func TestParseArgsBadQuality(t *testing.T) {
	_, err := ParseArgs([]string{"-quality", "banana", "in.png", "out.jpg"}, statFiles("in.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument for option `-quality': banana")
}

func TestParseArgsBadGeometryShowsOption(t *testing.T) {
	_, err := ParseArgs([]string{"-resize", "50x50<>", "in.png", "out.png"}, statFiles("in.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument for option `-resize'")
	assert.Contains(t, err.Error(), "< and > cannot be specified together")
}

func TestParseArgsUnrecognizedOption(t *testing.T) {
	_, err := ParseArgs([]string{"-sharpen-a-lot", "in.png", "out.png"}, statNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized option `sharpen-a-lot'")
}

func TestParseArgsMissingValue(t *testing.T) {
	// "out.png" is claimed as the output first, so -resize has no
	// value token left
	_, err := ParseArgs([]string{"-resize", "out.png"}, statNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument requires a value: resize")
}

func TestParseArgsOptionShapedOutputRejected(t *testing.T) {
	_, err := ParseArgs([]string{"in.png", "-resize"}, statFiles("in.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing an image filename")
}

func TestParseArgsNoImages(t *testing.T) {
	_, err := ParseArgs([]string{"out.png"}, statNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images defined")
}

func TestParseArgsStdioTokens(t *testing.T) {
	plan, err := ParseArgs([]string{"-", "png:-"}, statNone)
	require.NoError(t, err)
	require.Len(t, plan.InputFiles, 1)
	assert.True(t, plan.InputFiles[0].Location.Stdio)
	assert.True(t, plan.Output.Location.Stdio)
	require.NotNil(t, plan.Output.Format)
	assert.Equal(t, imageio.FormatPNG, *plan.Output.Format)
}

func TestParseArgsDoubleDashIsFilename(t *testing.T) {
	// --x is not option-shaped; it resolves as a (missing) file
	_, err := ParseArgs([]string{"--weird", "out.png"}, statNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to open image")
}

func TestHelpEntriesCoverTable(t *testing.T) {
	entries := HelpEntries()
	assert.Equal(t, len(argTable), len(entries))
	names := map[string]bool{}
	for _, e := range entries {
		names[e[0]] = true
		assert.NotEmpty(t, e[1])
	}
	for _, want := range []string{"resize", "thumbnail", "crop", "identify", "strip"} {
		assert.True(t, names[want], want)
	}
}
