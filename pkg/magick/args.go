package magick

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gomagick/gomagick/pkg/fileargs"
	"github.com/gomagick/gomagick/pkg/geometry"
	"github.com/gomagick/gomagick/pkg/magickerr"
)

// The option table is closed: anything option-shaped that is not in it
// is a fatal `unrecognized option'. Options are single-dash; the sign
// is passed through because a few options (+negate) change meaning
// with it.
type argSpec struct {
	name       string
	needsValue bool
	help       string
	apply      func(p *ExecutionPlan, sign byte, value string) error
}

var argTable = []argSpec{
	{"resize", true, "resize the image", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseResizeGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(ResizeOp{Geometry: g})
		return nil
	}},
	{"thumbnail", true, "create a thumbnail of the image", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseResizeGeometry(v)
		if err != nil {
			return err
		}
		// -thumbnail implies stripping everything but the color profile
		p.Modifiers.Strip.EXIF = true
		p.AddOperation(ThumbnailOp{Geometry: g})
		return nil
	}},
	{"scale", true, "scale the image", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseResizeGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(ScaleOp{Geometry: g})
		return nil
	}},
	{"sample", true, "scale image with pixel sampling", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseResizeGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(SampleOp{Geometry: g})
		return nil
	}},
	{"crop", true, "cut out a rectangular region of the image", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseCropGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(CropOp{Geometry: g})
		return nil
	}},
	{"blur", true, "reduce image noise and reduce detail levels", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseBlurGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(BlurOp{Geometry: g})
		return nil
	}},
	{"gaussian-blur", true, "reduce image noise and reduce detail levels", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseBlurGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(GaussianBlurOp{Geometry: g})
		return nil
	}},
	{"unsharp", true, "sharpen the image", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseUnsharpGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(UnsharpOp{Geometry: g})
		return nil
	}},
	{"sepia-tone", true, "simulate a sepia-toned photo", func(p *ExecutionPlan, _ byte, v string) error {
		t, err := geometry.ParseSepiaThreshold(v)
		if err != nil {
			return err
		}
		p.AddOperation(SepiaOp{Threshold: t})
		return nil
	}},
	{"rotate", true, "apply rotation to the image", func(p *ExecutionPlan, _ byte, v string) error {
		g, err := geometry.ParseRotateGeometry(v)
		if err != nil {
			return err
		}
		p.AddOperation(RotateOp{Geometry: g})
		return nil
	}},
	{"grayscale", true, "convert image to grayscale", func(p *ExecutionPlan, _ byte, v string) error {
		m, err := geometry.ParseGrayscaleMethod(v)
		if err != nil {
			return err
		}
		p.AddOperation(GrayscaleOp{Method: m})
		return nil
	}},
	{"filter", true, "use this filter when resizing an image", func(p *ExecutionPlan, _ byte, v string) error {
		f, err := geometry.ParseFilter(v)
		if err != nil {
			return err
		}
		p.Modifiers.Filter = f
		return nil
	}},
	{"quality", true, "JPEG/PNG/WEBP compression level", func(p *ExecutionPlan, _ byte, v string) error {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || q < 0 || q > 100 {
			return magickerr.NewArgParseErr()
		}
		p.Modifiers.Quality = q
		return nil
	}},
	{"negate", false, "replace every pixel with its complementary color", func(p *ExecutionPlan, sign byte, _ string) error {
		p.AddOperation(NegateOp{OnlyGrays: sign == '+'})
		return nil
	}},
	{"flip", false, "flip image vertically", func(p *ExecutionPlan, _ byte, _ string) error {
		p.AddOperation(FlipOp{})
		return nil
	}},
	{"flop", false, "flop image horizontally", func(p *ExecutionPlan, _ byte, _ string) error {
		p.AddOperation(FlopOp{})
		return nil
	}},
	{"auto-orient", false, "automagically orient (rotate) image", func(p *ExecutionPlan, _ byte, _ string) error {
		p.AddOperation(AutoOrientOp{})
		return nil
	}},
	{"strip", false, "strip image of all profiles and comments", func(p *ExecutionPlan, _ byte, _ string) error {
		p.Modifiers.Strip.EXIF = true
		p.Modifiers.Strip.ICC = true
		p.AddOperation(StripOp{})
		return nil
	}},
	{"monochrome", false, "transform image to black and white", func(p *ExecutionPlan, _ byte, _ string) error {
		p.AddOperation(MonochromeOp{})
		return nil
	}},
	{"identify", false, "identify the format and characteristics of the image", func(p *ExecutionPlan, _ byte, _ string) error {
		p.AddOperation(IdentifyOp{})
		return nil
	}},
}

func lookupArg(name string) (argSpec, bool) {
	for _, spec := range argTable {
		if spec.name == name {
			return spec, true
		}
	}
	return argSpec{}, false
}

// startsWithSign reports whether a token begins with a single `-` or
// `+`. A `--` prefix demotes the token to a filename.
func startsWithSign(s string) bool {
	if len(s) == 0 || (s[0] != '-' && s[0] != '+') {
		return false
	}
	return !(len(s) > 1 && s[1] == '-')
}

// isOptionToken reports whether a token is option-shaped: a single `-`
// or `+` followed by an ASCII letter. A lone `-` is stdio, and a `--`
// prefix demotes the token to a filename.
func isOptionToken(s string) bool {
	if len(s) < 2 {
		return false
	}
	if s[0] != '-' && s[0] != '+' {
		return false
	}
	c := s[1]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// ParseArgs turns the argument vector (without argv[0]) into an
// execution plan. The last token is always the output; it is claimed
// before option parsing starts and may not be option-shaped.
func ParseArgs(args []string, stat fileargs.Stat) (*ExecutionPlan, error) {
	if len(args) == 0 {
		return nil, magickerr.Errorf("no command-line arguments provided")
	}

	output := args[len(args)-1]
	args = args[:len(args)-1]
	// an output that looks like an option was probably meant as one
	if output != "-" && startsWithSign(output) {
		return nil, magickerr.Errorf("missing an image filename `%s'", output)
	}

	plan := &ExecutionPlan{Output: fileargs.ParseOutputFileArg(output)}

	for i := 0; i < len(args); i++ {
		token := args[i]
		if !isOptionToken(token) {
			file, err := fileargs.ParseInputFileArg(token, stat)
			if err != nil {
				return nil, err
			}
			if err := plan.AddInputFile(file); err != nil {
				return nil, err
			}
			continue
		}

		sign := token[0]
		name := token[1:]
		spec, ok := lookupArg(name)
		if !ok {
			return nil, magickerr.Errorf("unrecognized option `%s'", name)
		}

		value := ""
		if spec.needsValue {
			if i+1 >= len(args) {
				return nil, magickerr.Errorf("argument requires a value: %s", name)
			}
			i++
			value = args[i]
		}

		if err := spec.apply(plan, sign, value); err != nil {
			var parseErr *magickerr.ArgParseErr
			if errors.As(err, &parseErr) {
				return nil, parseErr.Promote("-"+name, value)
			}
			return nil, err
		}
	}

	if len(plan.InputFiles) == 0 {
		return nil, magickerr.Errorf("no images defined")
	}
	return plan, nil
}

// HelpEntries exposes the option table for the usage printer.
func HelpEntries() [][2]string {
	entries := make([][2]string, 0, len(argTable))
	for _, spec := range argTable {
		entries = append(entries, [2]string{spec.name, spec.help})
	}
	return entries
}
