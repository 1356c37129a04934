package geometry

import "testing"

func f64(v float64) *float64 { return &v }

func geomEqual(a, b Geometry) bool {
	eq := func(x, y *float64) bool {
		if (x == nil) != (y == nil) {
			return false
		}
		return x == nil || *x == *y
	}
	return eq(a.Width, b.Width) && eq(a.Height, b.Height) &&
		eq(a.XOffset, b.XOffset) && eq(a.YOffset, b.YOffset)
}

func TestParseFullPositiveGeometry(t *testing.T) {
	want := Geometry{Width: f64(5), Height: f64(10), XOffset: f64(15), YOffset: f64(20)}
	got, err := Parse("5x10+15+20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !geomEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseMissingHeight(t *testing.T) {
	want := Geometry{Width: f64(5), XOffset: f64(15), YOffset: f64(20)}
	got, err := Parse("5+15+20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !geomEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseHeightOmittedBeforeOffsets(t *testing.T) {
	// the height runs from the x to the next sign; a sign directly
	// after the x leaves it unset
	got, err := Parse("500x+0+0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Geometry{Width: f64(500)}
	if !geomEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	got, err = Parse("500x-3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want = Geometry{Width: f64(500), XOffset: f64(-3)}
	if !geomEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseNegativeOffsets(t *testing.T) {
	got, err := Parse("5x10-15-20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := Geometry{Width: f64(5), Height: f64(10), XOffset: f64(-15), YOffset: f64(-20)}
	if !geomEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseZeroOffsetsDropped(t *testing.T) {
	got, err := Parse("5x10+0+0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.XOffset != nil || got.YOffset != nil {
		t.Fatalf("zero offsets should be dropped, got %+v", got)
	}
}

func TestParseEmptyString(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("empty string should parse: %v", err)
	}
	if !geomEqual(got, Geometry{}) {
		t.Fatalf("empty string should give empty geometry, got %+v", got)
	}
}

func TestParseTrailingDot(t *testing.T) {
	got, err := Parse("5.x10")
	if err != nil {
		t.Fatalf("trailing dot should be accepted: %v", err)
	}
	if got.Width == nil || *got.Width != 5 {
		t.Fatalf("got width %v, want 5", got.Width)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"abc", "x", "+", "5x", "5xq", "héllo"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("expected %q to fail", input)
		}
	}
}

func TestParseExtendedFlagStrippingPositionIndependent(t *testing.T) {
	// Interleaved flags are excised and the digit fragments around
	// them concatenate.
	a, aFlags, err := ParseExtended("50!0!x+0!+0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, bFlags, err := ParseExtended("500x+0+0!")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !geomEqual(a, b) {
		t.Fatalf("interleaved flags changed the geometry: %+v vs %+v", a, b)
	}
	if !aFlags.Exclamation || !bFlags.Exclamation {
		t.Fatalf("exclamation flag lost")
	}
}

func TestParseExtendedFlagsOnly(t *testing.T) {
	g, flags, err := ParseExtended("!%<")
	if err != nil {
		t.Fatalf("flag-only geometry should be legal: %v", err)
	}
	if !geomEqual(g, Geometry{}) {
		t.Fatalf("flag-only geometry should have no fields, got %+v", g)
	}
	if !flags.Exclamation || !flags.Percent || !flags.LessThan {
		t.Fatalf("flags not recorded: %+v", flags)
	}
	if flags.At || flags.Caret || flags.GreaterThan {
		t.Fatalf("unexpected flags set: %+v", flags)
	}
}

func TestParseExtendedRejectsNonASCII(t *testing.T) {
	if _, _, err := ParseExtended("50x50\xc3\xa9"); err == nil {
		t.Fatalf("non-ASCII input should fail")
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{"5x10+15+20", "5", "x10", "5x10", "5+15", "5x10-3-4", "x10+0-7"}
	for _, input := range inputs {
		orig, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q failed: %v", input, err)
		}
		again, err := Parse(orig.String())
		if err != nil {
			t.Fatalf("re-parse of %q (from %q) failed: %v", orig.String(), input, err)
		}
		if !geomEqual(orig, again) {
			t.Fatalf("round trip of %q: %+v != %+v", input, orig, again)
		}
	}
}
