package magick

import (
	"strconv"

	"github.com/gomagick/gomagick/pkg/fileargs"
	"github.com/gomagick/gomagick/pkg/geometry"
	"github.com/gomagick/gomagick/pkg/imageio"
	"github.com/gomagick/gomagick/pkg/magickerr"
)

// Modifiers is the shared settings state options like -quality and
// -filter accumulate into. One instance lives on the plan; operations
// read it at execution time so a modifier given before any file
// affects global operations added earlier.
type Modifiers struct {
	// Quality for lossy encoders; 0 means the encoder default.
	Quality int
	Strip   imageio.StripPolicy
	Filter  geometry.Filter
}

// FilePlan is the resolved ordered work for one input file.
type FilePlan struct {
	Location fileargs.Location
	Format   *imageio.Format
	Ops      []Operation
}

// ExecutionPlan is the immutable result of argument parsing: every
// input file with its operation list, the output, and the shared
// modifier state.
type ExecutionPlan struct {
	// Operations seen before any file; applied to every file added
	// afterwards.
	globalOps  []Operation
	Output     fileargs.OutputFileArg
	Modifiers  Modifiers
	InputFiles []FilePlan
}

// AddOperation routes an operation by position: before the first file
// it joins the global list every later file inherits; after at least
// one file it is appended to each file already present and never to
// files added later.
func (p *ExecutionPlan) AddOperation(op Operation) {
	if len(p.InputFiles) == 0 {
		p.globalOps = append(p.globalOps, op)
		return
	}
	for i := range p.InputFiles {
		p.InputFiles[i].Ops = append(p.InputFiles[i].Ops, op)
	}
}

// AddInputFile appends a file whose operation list starts as a copy of
// the current global list. A read modifier becomes an operation at
// position 0; frame selection is accepted only for frame 0, where it
// is a no-op.
func (p *ExecutionPlan) AddInputFile(arg fileargs.InputFileArg) error {
	ops := make([]Operation, 0, len(p.globalOps)+1)

	switch mod := arg.ReadMod.(type) {
	case nil:
	case fileargs.ResizeModifier:
		ops = append(ops, ResizeOnLoadOp{Geometry: mod.Geometry})
	case fileargs.CropModifier:
		ops = append(ops, CropOnLoadOp{Geometry: mod.Geometry})
	case fileargs.FrameModifier:
		if mod.Spec != "0" {
			return magickerr.Errorf("selecting frames other than 0 is not supported: [%s]", mod.Spec)
		}
	default:
		return magickerr.Errorf("unsupported read modifier")
	}

	ops = append(ops, p.globalOps...)
	p.InputFiles = append(p.InputFiles, FilePlan{
		Location: arg.Location,
		Format:   arg.Format,
		Ops:      ops,
	})
	return nil
}

// OutputLocations derives one output per input file. A single input
// uses the output verbatim. With several inputs a path-shaped output
// gets `-{i}` (1-based) inserted before its final extension; stdio and
// format-only outputs are replicated unchanged.
func (p *ExecutionPlan) OutputLocations() []fileargs.OutputFileArg {
	if len(p.InputFiles) <= 1 {
		return []fileargs.OutputFileArg{p.Output}
	}
	outs := make([]fileargs.OutputFileArg, 0, len(p.InputFiles))
	for i := 1; i <= len(p.InputFiles); i++ {
		out := p.Output
		if !out.Location.Stdio {
			suffix := "-" + strconv.Itoa(i)
			out.Location.Path = fileargs.InsertSuffixBeforeExtension(out.Location.Path, suffix)
		}
		outs = append(outs, out)
	}
	return outs
}
