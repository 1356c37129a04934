package geometry

import "testing"

func TestCropSliceModeWithoutXOffset(t *testing.T) {
	g, err := ParseCropGeometry("50x50")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !g.SliceIntoMany {
		t.Fatalf("no x-offset should select slice mode")
	}
	if *g.Area.Width != 50 || *g.Area.Height != 50 {
		t.Fatalf("got %+v", g.Area)
	}
}

func TestCropSingleRegionWithXOffset(t *testing.T) {
	g, err := ParseCropGeometry("50x50+10")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if g.SliceIntoMany {
		t.Fatalf("x-offset should select single-region mode")
	}
	if g.Area.XOffset == nil || *g.Area.XOffset != 10 {
		t.Fatalf("got %+v", g.Area)
	}
}

func TestCropSliceModeIndependentOfFlags(t *testing.T) {
	// Slice mode depends only on the x-offset, not on any flag.
	g, err := ParseCropGeometry("50%x50!")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !g.SliceIntoMany {
		t.Fatalf("flags must not affect slice-mode selection")
	}
	if !g.Repage || !g.PercentageMode {
		t.Fatalf("flags lost: %+v", g)
	}
}

func TestCropNegativeOffsets(t *testing.T) {
	g, err := ParseCropGeometry("50x50-10-20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if *g.Area.XOffset != -10 || *g.Area.YOffset != -20 {
		t.Fatalf("got %+v", g.Area)
	}
}

func TestLoadCropGeometry(t *testing.T) {
	got, err := ParseLoadCropGeometry("1x2+3+4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := LoadCropGeometry{Width: 1, Height: 2, XOffset: 3, YOffset: 4}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadCropGeometryRoundsReals(t *testing.T) {
	got, err := ParseLoadCropGeometry("1.6x2.4+3.5+4.1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := LoadCropGeometry{Width: 2, Height: 2, XOffset: 4, YOffset: 4}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadCropGeometryRequiresAllFields(t *testing.T) {
	for _, input := range []string{"", "1x2", "1x2+3", "1x2-3+4"} {
		if _, err := ParseLoadCropGeometry(input); err == nil {
			t.Fatalf("expected %q to fail", input)
		}
	}
}
