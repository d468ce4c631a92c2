// File: grid/grid_test.go
package grid

import (
	"errors"
	"reflect"
	"testing"
)

// TestNew_AllWalls checks that a fresh grid has the requested shape and
// holds nothing but walls.
func TestNew_AllWalls(t *testing.T) {
	g, err := New(3, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Rows != 3 || g.Cols != 4 {
		t.Fatalf("dims = %dx%d; want 3x4", g.Rows, g.Cols)
	}
	if n := g.Count(Wall); n != 12 {
		t.Errorf("walls = %d; want 12", n)
	}
}

// TestNew_InvalidDimensions ensures non-positive sizes are rejected.
func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrDimensions) {
			t.Errorf("New(%d,%d): got %v; want ErrDimensions", dims[0], dims[1], err)
		}
	}
}

// TestBounds covers InBounds and OnBoundary on a 4×5 grid.
func TestBounds(t *testing.T) {
	g, _ := New(4, 5)
	cases := []struct {
		c        Coord
		in, edge bool
	}{
		{Coord{0, 0}, true, true},
		{Coord{3, 4}, true, true},
		{Coord{0, 2}, true, true},
		{Coord{2, 0}, true, true},
		{Coord{1, 2}, true, false},
		{Coord{-1, 0}, false, false},
		{Coord{4, 0}, false, false},
		{Coord{0, 5}, false, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.c); got != tc.in {
			t.Errorf("InBounds%v = %v; want %v", tc.c, got, tc.in)
		}
		if got := g.OnBoundary(tc.c); got != tc.edge {
			t.Errorf("OnBoundary%v = %v; want %v", tc.c, got, tc.edge)
		}
	}
}

// TestNeighbors_Order verifies the down, up, right, left order and
// bounds clipping at a corner.
func TestNeighbors_Order(t *testing.T) {
	g, _ := New(3, 3)

	got := g.Neighbors(Coord{1, 1})
	want := []Coord{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}

	got = g.Neighbors(Coord{0, 0})
	want = []Coord{{1, 0}, {0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestClone_Independent ensures a clone shares no storage with its source.
func TestClone_Independent(t *testing.T) {
	g, _ := New(2, 2)
	c := g.Clone()
	c.Set(Coord{0, 0}, PassageCell())

	if g.At(Coord{0, 0}).Kind != Wall {
		t.Error("mutating clone changed the original")
	}
	if g.Equal(c) {
		t.Error("Equal reported true for differing grids")
	}
	c.Set(Coord{0, 0}, WallCell())
	if !g.Equal(c) {
		t.Error("Equal reported false for identical grids")
	}
}

// TestAt_PanicsOutOfBounds documents the panic contract of At and Set.
func TestAt_PanicsOutOfBounds(t *testing.T) {
	g, _ := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("At(2,0) did not panic")
		}
	}()
	_ = g.At(Coord{2, 0})
}

// TestLabel_Negative documents that negative labels are rejected.
func TestLabel_Negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Label(-1) did not panic")
		}
	}()
	_ = Label(-1)
}

// TestCoord_Adjacent checks the 4-adjacency predicate.
func TestCoord_Adjacent(t *testing.T) {
	c := Coord{2, 2}
	for _, o := range []Coord{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if !c.Adjacent(o) {
			t.Errorf("%v should be adjacent to %v", o, c)
		}
	}
	for _, o := range []Coord{{2, 2}, {1, 1}, {0, 2}, {4, 4}} {
		if c.Adjacent(o) {
			t.Errorf("%v should not be adjacent to %v", o, c)
		}
	}
}
