package particles

import (
	"errors"
	"testing"
)

func TestFromPropsLengthMismatch(t *testing.T) {
	_, err := FromProps("fluid", map[string][]float64{
		"x": {1, 2, 3},
		"y": {1, 2},
	})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	a, err := FromProps("fluid", map[string][]float64{
		"x": {0, 1, 2, 3, 4},
		"m": {10, 11, 12, 13, 14},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Remove([]int{1, 3}); err != nil {
		t.Fatal(err)
	}

	if a.Len() != 3 {
		t.Fatalf("expected 3 particles, got %d", a.Len())
	}

	wantX := []float64{0, 2, 4}
	wantM := []float64{10, 12, 14}
	for i := range wantX {
		if a.Prop("x")[i] != wantX[i] {
			t.Errorf("x[%d] = %f, want %f", i, a.Prop("x")[i], wantX[i])
		}
		if a.Prop("m")[i] != wantM[i] {
			t.Errorf("m[%d] = %f, want %f", i, a.Prop("m")[i], wantM[i])
		}
	}
}

func TestRemoveDuplicatesRemovedOnce(t *testing.T) {
	a, _ := FromProps("fluid", map[string][]float64{"x": {0, 1, 2}})

	if err := a.Remove([]int{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Fatalf("expected 2 particles, got %d", a.Len())
	}
}

func TestRemoveNeverGrows(t *testing.T) {
	a, _ := FromProps("fluid", map[string][]float64{"x": {0, 1, 2, 3}})

	cases := [][]int{nil, {}, {0}, {0, 1, 2}}
	prev := a.Len()
	for _, idx := range cases {
		if err := a.Remove(idx); err != nil {
			t.Fatal(err)
		}
		if a.Len() > prev {
			t.Fatalf("collection grew: %d -> %d", prev, a.Len())
		}
		prev = a.Len()
		if err := a.Validate(); err != nil {
			t.Fatalf("invariant broken after removal: %v", err)
		}
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	a, _ := FromProps("fluid", map[string][]float64{"x": {0, 1}})

	if err := a.Remove([]int{5}); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	// Failed removal must not alter the collection.
	if a.Len() != 2 {
		t.Fatalf("expected 2 particles after failed removal, got %d", a.Len())
	}
}

func TestAddPropZeroFilled(t *testing.T) {
	a, _ := FromProps("fluid", map[string][]float64{"x": {1, 2, 3}})

	p := a.AddProp("rho")
	if len(p) != 3 {
		t.Fatalf("expected length 3, got %d", len(p))
	}
	for i, v := range p {
		if v != 0 {
			t.Errorf("rho[%d] = %f, want 0", i, v)
		}
	}

	p[0] = 7.5
	if got := a.AddProp("rho"); got[0] != 7.5 {
		t.Error("AddProp on existing property should return the same slice")
	}
}
