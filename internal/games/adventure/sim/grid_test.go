package sim

import (
	"math"
	"testing"
)

func TestCellIndexAtBijection(t *testing.T) {
	p := DefaultParams()
	g := NewGrid(10, 10, p)

	seen := make(map[int]bool)
	for row := range g.Rows {
		for col := range g.Cols {
			x := (float64(row) + 0.5) * g.TileW
			z := (float64(col) + 0.5) * g.TileL

			idx := g.CellIndexAt(x, z)
			if idx != col*g.Rows+row {
				t.Fatalf("CellIndexAt(%v, %v) = %d, expected %d", x, z, idx, col*g.Rows+row)
			}
			if seen[idx] {
				t.Fatalf("index %d produced twice", idx)
			}
			seen[idx] = true

			r, c := g.RowCol(idx)
			if r != row || c != col {
				t.Fatalf("RowCol(%d) = (%d, %d), expected (%d, %d)", idx, r, c, row, col)
			}

			// Lower corner belongs to the same cell
			if got := g.CellIndexAt(float64(row)*g.TileW, float64(col)*g.TileL); got != idx {
				t.Fatalf("corner of cell %d mapped to %d", idx, got)
			}
		}
	}
	if len(seen) != g.Len() {
		t.Errorf("mapped %d cells, expected %d", len(seen), g.Len())
	}
}

func TestCellIndexAtOffGrid(t *testing.T) {
	g := NewGrid(10, 10, DefaultParams())

	tests := []struct {
		name     string
		x, z     float64
		expected int
	}{
		{"origin", 0, 0, 0},
		{"far corner inside", 49.99, 49.99, 99},
		{"negative x", -0.1, 1, OffGrid},
		{"negative z", 1, -0.01, OffGrid},
		{"x at extent", 50, 1, OffGrid},
		{"z at extent", 1, 50, OffGrid},
		{"far away", 1000, -1000, OffGrid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.CellIndexAt(tc.x, tc.z); got != tc.expected {
				t.Errorf("CellIndexAt(%v, %v) = %d, expected %d", tc.x, tc.z, got, tc.expected)
			}
		})
	}

	if g.Cell(OffGrid) != nil {
		t.Error("Cell(OffGrid) should be nil")
	}
}

func TestCellIndexNonSquare(t *testing.T) {
	g := NewGrid(3, 2, DefaultParams())

	if got := g.Index(2, 1); got != 5 {
		t.Errorf("Index(2, 1) = %d, expected 5", got)
	}
	if got := g.Index(3, 0); got != OffGrid {
		t.Errorf("Index(3, 0) = %d, expected OffGrid", got)
	}
	if got := g.CellIndexAt(12, 7); got != g.Index(2, 1) {
		t.Errorf("CellIndexAt(12, 7) = %d, expected %d", got, g.Index(2, 1))
	}
}

func TestSlideOscillatesPerCell(t *testing.T) {
	g := NewGrid(2, 1, DefaultParams())
	g.SetSliding(0, 0, 1)
	g.SetSliding(1, 0, -1)

	expectedA := []float64{0.5, 1, 1.5, 2, 2.5, 3, 3, 2.5, 2}
	expectedB := []float64{-0.5, -1, -1.5, -2, -2.5, -3, -3, -2.5, -2}

	for i := range expectedA {
		g.Slide()
		if got := g.Cells[0].Offset; got != expectedA[i] {
			t.Fatalf("slide %d: cell 0 offset = %v, expected %v", i+1, got, expectedA[i])
		}
		if got := g.Cells[1].Offset; got != expectedB[i] {
			t.Fatalf("slide %d: cell 1 offset = %v, expected %v", i+1, got, expectedB[i])
		}
	}
}

func TestSlideSkipsStaticCells(t *testing.T) {
	g := NewGrid(2, 2, DefaultParams())
	g.SetSliding(3, 1, 1)

	for range 20 {
		g.Slide()
	}
	for i := range 3 {
		if g.Cells[i].Offset != 0 {
			t.Errorf("static cell %d moved to %v", i, g.Cells[i].Offset)
		}
	}
	if off := g.Cells[3].Offset; off < -3 || off > 3 {
		t.Errorf("slider left its bounds: %v", off)
	}
}

func TestTileBoxAndSurface(t *testing.T) {
	g := NewGrid(4, 4, DefaultParams())
	idx := g.Index(1, 2)
	g.SetSliding(idx, 1.5, 1)

	box := g.TileBox(idx)
	want := [3]float64{7.5, 1.5, 12.5}
	for i := range want {
		if math.Abs(box.Center[i]-want[i]) > 1e-12 {
			t.Fatalf("TileBox center = %v, expected %v", box.Center, want)
		}
	}
	if box.Width() != 5 || box.Length() != 5 || box.Height() != 5 {
		t.Errorf("TileBox extents = %v", box.Size())
	}
	if got := g.Surface(idx); got != 4 {
		t.Errorf("Surface = %v, expected 4", got)
	}
	if got := g.GroundLevel(); got != 2.5 {
		t.Errorf("GroundLevel = %v, expected 2.5", got)
	}
}

func TestSetEmpty(t *testing.T) {
	g := NewGrid(2, 2, DefaultParams())
	g.SetEmpty(2, true)

	c := g.Cell(2)
	if !c.Empty || c.Visible || c.Solid() {
		t.Errorf("empty cell = %+v", *c)
	}

	g.SetEmpty(OffGrid, true) // no-op
	g.SetEmpty(2, false)
	if !g.Cell(2).Solid() {
		t.Error("cell should be solid again")
	}
}
