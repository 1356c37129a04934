package fraction

import (
	"sort"
	"testing"
)

func TestEquality(t *testing.T) {
	if !New(1, 2).Eq(New(2, 4)) {
		t.Fatalf("1/2 should equal 2/4")
	}
	if New(1, 2).Eq(New(3, 4)) {
		t.Fatalf("1/2 should not equal 3/4")
	}
}

func TestComparison(t *testing.T) {
	half := New(1, 2)
	twoThirds := New(2, 3)
	threeQuarters := New(3, 4)

	if !half.Less(threeQuarters) {
		t.Fatalf("1/2 < 3/4 expected")
	}
	if threeQuarters.Less(half) {
		t.Fatalf("3/4 > 1/2 expected")
	}
	if !half.Less(twoThirds) || !twoThirds.Less(threeQuarters) {
		t.Fatalf("expected 1/2 < 2/3 < 3/4")
	}
}

func TestNoOverflowAtExtremes(t *testing.T) {
	// Cross products of max u32 values must not wrap.
	big := New(^uint32(0), 1)
	small := New(1, ^uint32(0))
	if !small.Less(big) {
		t.Fatalf("tiny fraction should compare below huge fraction")
	}
	if big.Cmp(big) != 0 {
		t.Fatalf("fraction should equal itself")
	}
}

func TestReciprocal(t *testing.T) {
	f := New(3, 7)
	r := f.Reciprocal()
	if !r.Eq(New(7, 3)) {
		t.Fatalf("reciprocal of 3/7 should be 7/3")
	}
	if !f.Reciprocal().Reciprocal().Eq(f) {
		t.Fatalf("double reciprocal should round-trip")
	}
}

func TestSorting(t *testing.T) {
	fractions := []Fraction{New(3, 4), New(1, 2), New(2, 3)}
	sort.Slice(fractions, func(i, j int) bool { return fractions[i].Less(fractions[j]) })
	want := []Fraction{New(1, 2), New(2, 3), New(3, 4)}
	for i := range want {
		if !fractions[i].Eq(want[i]) {
			t.Fatalf("sorted[%d] = %v, want %v", i, fractions[i], want[i])
		}
	}
}

func TestFloat64(t *testing.T) {
	if got := New(1, 4).Float64(); got != 0.25 {
		t.Fatalf("1/4 as float = %v, want 0.25", got)
	}
}
