package grid

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	g, err := New(2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Rows() != 2 || g.Cols() != 3 || g.Len() != 6 {
		t.Fatalf("shape = %dx%d (len %d), want 2x3 (len 6)", g.Rows(), g.Cols(), g.Len())
	}

	for i, v := range g.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewInvalidShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -1}} {
		_, err := New(shape[0], shape[1])
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("New(%d, %d): expected ErrInvalidShape, got %v", shape[0], shape[1], err)
		}
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.At(0, 0) != 1 || g.At(1, 2) != 6 {
		t.Fatalf("unexpected contents: %#v", g.Data())
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5},
	})
	if !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("expected ErrRaggedRows, got %v", err)
	}
}

func TestFromRowsEmpty(t *testing.T) {
	_, err := FromRows(nil)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}

	_, err = FromRows([][]float64{{}})
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	g, err := FromSlice(2, 2, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// FromSlice wraps without copying.
	g.Set(0, 1, 9)
	if data[1] != 9 {
		t.Fatalf("expected mutation through grid, data = %#v", data)
	}
}

func TestFromSliceSizeMismatch(t *testing.T) {
	_, err := FromSlice(2, 2, []float64{1, 2, 3})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestAtSetRoundTrip(t *testing.T) {
	g, _ := New(3, 4)
	g.Set(2, 3, 7.5)

	if got := g.At(2, 3); got != 7.5 {
		t.Fatalf("At(2,3) = %v, want 7.5", got)
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	g, _ := New(2, 2)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) did not panic", idx[0], idx[1])
				}
			}()
			g.At(idx[0], idx[1])
		}()
	}
}

func TestRowView(t *testing.T) {
	g, _ := FromRows([][]float64{
		{1, 2},
		{3, 4},
	})

	row := g.Row(1)
	if row[0] != 3 || row[1] != 4 {
		t.Fatalf("Row(1) = %#v, want [3 4]", row)
	}

	// Row is a view into the backing buffer.
	row[0] = 8
	if g.At(1, 0) != 8 {
		t.Fatal("expected mutation through row view")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	c := g.Clone()

	c.Set(0, 0, 99)
	if g.At(0, 0) != 1 {
		t.Fatal("clone mutation leaked into original")
	}
}

func TestToRows(t *testing.T) {
	g, _ := FromRows([][]float64{{1, 2}, {3, 4}})

	rows := g.ToRows()
	if len(rows) != 2 || rows[1][1] != 4 {
		t.Fatalf("ToRows() = %#v", rows)
	}

	// ToRows copies.
	rows[0][0] = 99
	if g.At(0, 0) != 1 {
		t.Fatal("ToRows mutation leaked into original")
	}
}

func TestFillZero(t *testing.T) {
	g, _ := New(2, 2)
	g.Fill(3)

	for _, v := range g.Data() {
		if v != 3 {
			t.Fatalf("Fill: unexpected value %v", v)
		}
	}

	g.Zero()
	for _, v := range g.Data() {
		if v != 0 {
			t.Fatalf("Zero: unexpected value %v", v)
		}
	}
}
