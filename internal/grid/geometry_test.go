package grid

import (
	"errors"
	"image"
	"slices"
	"testing"
)

// =============================================================================
// Compute Tests
// =============================================================================

func TestCompute_Valid(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		xSplit, ySplit int
		wantTW, wantTH int
	}{
		{"single tile", 37, 11, 1, 1, 37, 11},
		{"5x3", 500, 300, 5, 3, 100, 100},
		{"10x10", 640, 480, 10, 10, 64, 48},
		{"non-square tiles", 256, 64, 4, 2, 64, 32},
		{"one pixel tiles", 8, 8, 8, 8, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Compute(tt.width, tt.height, tt.xSplit, tt.ySplit)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if g.TileWidth != tt.wantTW || g.TileHeight != tt.wantTH {
				t.Errorf("tile size = %dx%d, want %dx%d", g.TileWidth, g.TileHeight, tt.wantTW, tt.wantTH)
			}
			if g.TileWidth*g.XSplit != tt.width {
				t.Errorf("TileWidth*XSplit = %d, want %d", g.TileWidth*g.XSplit, tt.width)
			}
			if g.TileHeight*g.YSplit != tt.height {
				t.Errorf("TileHeight*YSplit = %d, want %d", g.TileHeight*g.YSplit, tt.height)
			}
			if g.Total() != tt.xSplit*tt.ySplit {
				t.Errorf("Total() = %d, want %d", g.Total(), tt.xSplit*tt.ySplit)
			}
		})
	}
}

func TestCompute_DimensionMismatch(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		xSplit, ySplit int
	}{
		{"width remainder", 101, 100, 10, 10},
		{"height remainder", 100, 99, 10, 10},
		{"both remainders", 7, 5, 2, 2},
		{"split larger than image", 3, 3, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.width, tt.height, tt.xSplit, tt.ySplit)

			var dm *DimensionMismatchError
			if !errors.As(err, &dm) {
				t.Fatalf("Compute() error = %v, want *DimensionMismatchError", err)
			}
			want := DimensionMismatchError{Width: tt.width, Height: tt.height, XSplit: tt.xSplit, YSplit: tt.ySplit}
			if *dm != want {
				t.Errorf("error = %+v, want %+v", *dm, want)
			}
		})
	}
}

func TestCompute_InvalidSplit(t *testing.T) {
	for _, splits := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := Compute(10, 10, splits[0], splits[1])

		var is *InvalidSplitError
		if !errors.As(err, &is) {
			t.Errorf("Compute(10, 10, %d, %d) error = %v, want *InvalidSplitError", splits[0], splits[1], err)
		}
	}
}

func TestDimensionMismatchError_Message(t *testing.T) {
	err := &DimensionMismatchError{Width: 101, Height: 50, XSplit: 4, YSplit: 5}
	want := "grid: image dimensions (101, 50) are not divisible by (4, 5)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// =============================================================================
// Index Mapping Tests
// =============================================================================

func TestGeometry_CellAndRect(t *testing.T) {
	g, err := Compute(300, 200, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		index    int
		col, row int
		rect     image.Rectangle
	}{
		{0, 0, 0, image.Rect(0, 0, 100, 100)},
		{2, 2, 0, image.Rect(200, 0, 300, 100)},
		{3, 0, 1, image.Rect(0, 100, 100, 200)},
		{5, 2, 1, image.Rect(200, 100, 300, 200)},
	}

	for _, tt := range tests {
		col, row := g.Cell(tt.index)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%d) = (%d, %d), want (%d, %d)", tt.index, col, row, tt.col, tt.row)
		}
		if got := g.Index(col, row); got != tt.index {
			t.Errorf("Index(%d, %d) = %d, want %d", col, row, got, tt.index)
		}
		if got := g.Rect(tt.index); got != tt.rect {
			t.Errorf("Rect(%d) = %v, want %v", tt.index, got, tt.rect)
		}
	}
}

func TestGeometry_RectsTileTheImage(t *testing.T) {
	g, err := Compute(60, 45, 5, 3)
	if err != nil {
		t.Fatal(err)
	}

	area := 0
	for i := range g.Total() {
		r := g.Rect(i)
		if !r.In(g.Bounds()) {
			t.Errorf("Rect(%d) = %v not inside %v", i, r, g.Bounds())
		}
		for j := range i {
			if r.Overlaps(g.Rect(j)) {
				t.Errorf("Rect(%d) overlaps Rect(%d)", i, j)
			}
		}
		area += r.Dx() * r.Dy()
	}
	if area != g.Width*g.Height {
		t.Errorf("covered area = %d, want %d", area, g.Width*g.Height)
	}
}

// =============================================================================
// Divisors Tests
// =============================================================================

func TestDivisors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{-4, nil},
		{1, []int{1}},
		{12, []int{1, 2, 3, 4, 6, 12}},
		{16, []int{1, 2, 4, 8, 16}},
		{13, []int{1, 13}},
	}

	for _, tt := range tests {
		if got := Divisors(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("Divisors(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
