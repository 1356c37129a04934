package geometry

import (
	"math"
	"testing"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSepiaPercentages(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"80%", 0.8},
		{"5%", 0.05},
		{"05%", 0.05},
		{"99.9999%", 0.999999},
	}
	for _, c := range cases {
		got, err := ParseSepiaThreshold(c.input)
		if err != nil {
			t.Fatalf("parse %q failed: %v", c.input, err)
		}
		if !closeTo(float64(got), c.want) {
			t.Fatalf("%q: got %v, want %v", c.input, got, c.want)
		}
	}
}

func TestSepiaFloats(t *testing.T) {
	got, err := ParseSepiaThreshold("0.8")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !closeTo(float64(got), 0.8) {
		t.Fatalf("got %v", got)
	}

	got, err = ParseSepiaThreshold("100.8")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !closeTo(float64(got), 100.8) {
		t.Fatalf("got %v", got)
	}
}

func TestSepiaInvalid(t *testing.T) {
	for _, input := range []string{"0.8%%", "%", "abc%", ""} {
		if _, err := ParseSepiaThreshold(input); err == nil {
			t.Fatalf("expected %q to fail", input)
		}
	}
}

func TestRotateDegrees(t *testing.T) {
	g, err := ParseRotateGeometry("90")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if g.Degrees != 90 || g.OnlyIfWider || g.OnlyIfTaller {
		t.Fatalf("got %+v", g)
	}
}

func TestRotateNegativeFractionalDegrees(t *testing.T) {
	g, err := ParseRotateGeometry("-22.5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if g.Degrees != -22.5 {
		t.Fatalf("got %+v", g)
	}
}

func TestRotateQualifiers(t *testing.T) {
	g, err := ParseRotateGeometry("90>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !g.OnlyIfWider || g.OnlyIfTaller {
		t.Fatalf("got %+v", g)
	}

	g, err = ParseRotateGeometry("90<")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !g.OnlyIfTaller || g.OnlyIfWider {
		t.Fatalf("got %+v", g)
	}
}

func TestRotateInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "90>>", "90<>x", "90!"} {
		if _, err := ParseRotateGeometry(input); err == nil {
			t.Fatalf("expected %q to fail", input)
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	f, err := ParseFilter("lanczos")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if f != FilterLanczos {
		t.Fatalf("got %v", f)
	}
	if _, err := ParseFilter("foo"); err == nil {
		t.Fatalf("unknown filter should fail")
	}
}

func TestGrayscaleMethodCaseInsensitive(t *testing.T) {
	m, err := ParseGrayscaleMethod("rec709luminance")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if m != Rec709Luminance {
		t.Fatalf("got %v", m)
	}
	for _, input := range []string{"", "foo"} {
		if _, err := ParseGrayscaleMethod(input); err == nil {
			t.Fatalf("expected %q to fail", input)
		}
	}
}
