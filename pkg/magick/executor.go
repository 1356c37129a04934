package magick

import (
	"io"
	"os"
	"strconv"

	"github.com/gomagick/gomagick/pkg/fileargs"
	"github.com/gomagick/gomagick/pkg/imageio"
	"github.com/gomagick/gomagick/pkg/magickerr"
	"github.com/gomagick/gomagick/pkg/ops"
)

// identifyOutput is where -identify lines go; a variable so the CLI
// layer can redirect it when stdout carries encoded image bytes.
var identifyOutput io.Writer = os.Stdout

// Execute runs the plan: decode each input, apply its operation list
// in order, encode to the derived output. Files are processed
// sequentially and the first failure aborts the run.
func (p *ExecutionPlan) Execute() error {
	outputs := p.OutputLocations()
	for i, filePlan := range p.InputFiles {
		if err := p.executeFile(filePlan, outputs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *ExecutionPlan) executeFile(filePlan FilePlan, output fileargs.OutputFileArg) error {
	seq, err := decodeInput(filePlan)
	if err != nil {
		return err
	}

	for _, op := range filePlan.Ops {
		if err := op.Execute(seq, &p.Modifiers); err != nil {
			return err
		}
	}

	return p.encodeSequence(seq, output)
}

func decodeInput(filePlan FilePlan) (*Sequence, error) {
	var r io.Reader
	display := "-"
	if filePlan.Location.Stdio {
		r = os.Stdin
	} else {
		f, err := os.Open(filePlan.Location.Path)
		if err != nil {
			return nil, magickerr.Errorf("unable to open image `%s': %s", filePlan.Location.Path, err)
		}
		defer f.Close()
		r = f
		display = filePlan.Location.Path
	}

	frame, err := imageio.Decode(r, filePlan.Format)
	if err != nil {
		return nil, err
	}
	return &Sequence{Frames: []*Image{{
		Pixels: ops.ToNRGBA(frame.Image),
		Meta:   frame.Meta,
		Format: frame.Format,
		Path:   display,
	}}}, nil
}

func (p *ExecutionPlan) encodeSequence(seq *Sequence, output fileargs.OutputFileArg) error {
	for j, frame := range seq.Frames {
		out := output
		// a multi-frame sequence fans out over numbered output names
		if len(seq.Frames) > 1 && !out.Location.Stdio {
			out.Location.Path = fileargs.InsertSuffixBeforeExtension(out.Location.Path, "-"+strconv.Itoa(j))
		}
		if err := p.encodeFrame(frame, out); err != nil {
			return err
		}
	}
	return nil
}

func (p *ExecutionPlan) encodeFrame(frame *Image, output fileargs.OutputFileArg) error {
	format, err := chooseEncodingFormat(frame, output)
	if err != nil {
		return err
	}
	if format == imageio.FormatNull {
		return nil
	}

	if output.Location.Stdio {
		return imageio.Encode(os.Stdout, frame.Pixels, format, frame.Meta, p.Modifiers.Quality, p.Modifiers.Strip)
	}

	f, err := os.Create(output.Location.Path)
	if err != nil {
		return magickerr.Errorf("unable to open image `%s': %s", output.Location.Path, err)
	}
	if err := imageio.Encode(f, frame.Pixels, format, frame.Meta, p.Modifiers.Quality, p.Modifiers.Strip); err != nil {
		f.Close()
		return err
	}
	// Close flushes: its error is a write failure, not cleanup noise
	if err := f.Close(); err != nil {
		return magickerr.Errorf("unable to write image `%s': %s", output.Location.Path, err)
	}
	return nil
}

// chooseEncodingFormat picks the output container: the explicit
// `fmt:` prefix wins, then the output path's extension, then the input
// format.
func chooseEncodingFormat(frame *Image, output fileargs.OutputFileArg) (imageio.Format, error) {
	if output.Format != nil {
		return *output.Format, nil
	}
	if !output.Location.Stdio {
		if f, ok := imageio.FormatFromPath(output.Location.Path); ok {
			return f, nil
		}
	}
	return frame.Format, nil
}
