package magick

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomagick/gomagick/pkg/fileargs"
	"github.com/gomagick/gomagick/pkg/geometry"
	"github.com/gomagick/gomagick/pkg/imageio"
)

func pathFile(path string) fileargs.InputFileArg {
	return fileargs.InputFileArg{Location: fileargs.Location{Path: path}}
}

func testFrame(w, h int) *Image {
	return &Image{
		Pixels: image.NewNRGBA(image.Rect(0, 0, w, h)),
		Format: imageio.FormatPNG,
		Path:   "frame.png",
	}
}

func TestGlobalOpsCopiedPerFile(t *testing.T) {
	var p ExecutionPlan
	p.AddOperation(FlipOp{})
	require.NoError(t, p.AddInputFile(pathFile("a.png")))
	require.NoError(t, p.AddInputFile(pathFile("b.png")))

	// appending to a seen file must not leak into the other's list
	p.AddOperation(FlopOp{})
	p.InputFiles[0].Ops = append(p.InputFiles[0].Ops, NegateOp{})

	assert.Len(t, p.InputFiles[0].Ops, 3)
	assert.Len(t, p.InputFiles[1].Ops, 2)
}

func TestOutputLocationsSingleVerbatim(t *testing.T) {
	var p ExecutionPlan
	p.Output = fileargs.ParseOutputFileArg("out.png")
	require.NoError(t, p.AddInputFile(pathFile("a.png")))

	outs := p.OutputLocations()
	require.Len(t, outs, 1)
	assert.Equal(t, "out.png", outs[0].Location.Path)
}

func TestOutputLocationsNumbered(t *testing.T) {
	var p ExecutionPlan
	p.Output = fileargs.ParseOutputFileArg("out.png")
	require.NoError(t, p.AddInputFile(pathFile("a.png")))
	require.NoError(t, p.AddInputFile(pathFile("b.png")))
	require.NoError(t, p.AddInputFile(pathFile("c.png")))

	outs := p.OutputLocations()
	require.Len(t, outs, 3)
	assert.Equal(t, "out-1.png", outs[0].Location.Path)
	assert.Equal(t, "out-2.png", outs[1].Location.Path)
	assert.Equal(t, "out-3.png", outs[2].Location.Path)
}

func TestOutputLocationsStdioReplicated(t *testing.T) {
	var p ExecutionPlan
	p.Output = fileargs.ParseOutputFileArg("-")
	require.NoError(t, p.AddInputFile(pathFile("a.png")))
	require.NoError(t, p.AddInputFile(pathFile("b.png")))

	outs := p.OutputLocations()
	require.Len(t, outs, 2)
	assert.True(t, outs[0].Location.Stdio)
	assert.True(t, outs[1].Location.Stdio)
}

func TestCropSliceModeFansOutFrames(t *testing.T) {
	seq := &Sequence{Frames: []*Image{testFrame(100, 80)}}
	g := geometry.CropGeometry{SliceIntoMany: true}
	g.Area.Width = u32ptr(40)
	g.Area.Height = u32ptr(40)

	var mods Modifiers
	require.NoError(t, CropOp{Geometry: g}.Execute(seq, &mods))
	// 3 columns x 2 rows
	require.Len(t, seq.Frames, 6)
	assert.Equal(t, 40, seq.Frames[0].Pixels.Bounds().Dx())
	// rightmost column is clipped to the image edge
	assert.Equal(t, 20, seq.Frames[2].Pixels.Bounds().Dx())
	for _, f := range seq.Frames {
		assert.Equal(t, imageio.FormatPNG, f.Format)
		assert.Equal(t, "frame.png", f.Path)
	}
}

func TestLateFilterModifierAffectsEarlierOp(t *testing.T) {
	// the operation reads the filter at execution time, so a -filter
	// given after -resize still applies
	seq := &Sequence{Frames: []*Image{testFrame(10, 10)}}
	g := geometry.ResizeGeometry{Target: geometry.SizeTarget{Width: u32ptr(5), Height: u32ptr(5)}}

	mods := Modifiers{Filter: geometry.FilterPoint}
	require.NoError(t, ResizeOp{Geometry: g}.Execute(seq, &mods))
	assert.Equal(t, 5, seq.Frames[0].Pixels.Bounds().Dx())
}

func TestAutoOrientResetsStoredOrientation(t *testing.T) {
	frame := testFrame(30, 20)
	frame.Meta.Orientation = 6
	seq := &Sequence{Frames: []*Image{frame}}

	var mods Modifiers
	require.NoError(t, AutoOrientOp{}.Execute(seq, &mods))
	assert.Equal(t, 20, frame.Pixels.Bounds().Dx())
	assert.Equal(t, 30, frame.Pixels.Bounds().Dy())
	assert.Equal(t, 1, frame.Meta.Orientation)
}

func TestIdentifyWritesOneLinePerFrame(t *testing.T) {
	var buf bytes.Buffer
	seq := &Sequence{Frames: []*Image{testFrame(64, 48)}}

	var mods Modifiers
	require.NoError(t, IdentifyOp{Out: &buf}.Execute(seq, &mods))
	assert.Equal(t, "frame.png PNG 64x48 8-bit sRGB\n", buf.String())
}

func u32ptr(v uint32) *uint32 { return &v }
