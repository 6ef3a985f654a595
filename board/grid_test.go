package board

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := New(7, 6)
	if g.Width() != 7 {
		t.Errorf("Width = %d, want 7", g.Width())
	}
	if g.Height() != 6 {
		t.Errorf("Height = %d, want 6", g.Height())
	}
	for c := 0; c < 7; c++ {
		for r := 0; r < 6; r++ {
			if p, ok := g.OwnerAt(c, r); ok || p != None {
				t.Fatalf("cell (%d,%d) = %v, want empty", c, r, p)
			}
		}
	}
	if g.IsFull() {
		t.Error("new grid should not be full")
	}
}

func TestNewGridPanicsOnDegenerateSize(t *testing.T) {
	for _, size := range [][2]int{{0, 6}, {7, 0}, {-1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) did not panic", size[0], size[1])
				}
			}()
			New(size[0], size[1])
		}()
	}
}

func TestDropStacksFromBottom(t *testing.T) {
	g := New(7, 6)
	want := []struct {
		player Player
		row    int
	}{
		{First, 0},
		{Second, 1},
		{First, 2},
	}
	for i, w := range want {
		row, err := g.Drop(3, w.player)
		if err != nil {
			t.Fatalf("drop %d: %v", i, err)
		}
		if row != w.row {
			t.Errorf("drop %d landed on row %d, want %d", i, row, w.row)
		}
		if p, ok := g.OwnerAt(3, row); !ok || p != w.player {
			t.Errorf("OwnerAt(3, %d) = %v, want %v", row, p, w.player)
		}
	}
	if h := g.ColumnHeight(3); h != 3 {
		t.Errorf("ColumnHeight(3) = %d, want 3", h)
	}
}

func TestDropChangesExactlyOneCell(t *testing.T) {
	g := New(5, 4)
	g.Drop(0, First)
	g.Drop(2, Second)
	before := g.Snapshot()

	row, err := g.Drop(2, First)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	after := g.Snapshot()

	changed := 0
	for c := range before {
		for r := range before[c] {
			if before[c][r] != after[c][r] {
				changed++
				if c != 2 || r != row {
					t.Errorf("unexpected change at (%d,%d)", c, r)
				}
			}
		}
	}
	if changed != 1 {
		t.Errorf("%d cells changed, want 1", changed)
	}
}

func TestDropInvalidColumn(t *testing.T) {
	g := New(7, 6)
	for _, col := range []int{-1, 7, 100} {
		row, err := g.Drop(col, First)
		if !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("Drop(%d) error = %v, want ErrInvalidColumn", col, err)
		}
		if row != -1 {
			t.Errorf("Drop(%d) row = %d, want -1", col, row)
		}
	}
}

func TestDropFullColumn(t *testing.T) {
	g := New(3, 2)
	g.Drop(1, First)
	g.Drop(1, Second)
	before := g.Snapshot()

	_, err := g.Drop(1, First)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("error = %v, want ErrColumnFull", err)
	}
	after := g.Snapshot()
	for c := range before {
		for r := range before[c] {
			if before[c][r] != after[c][r] {
				t.Errorf("cell (%d,%d) changed on failed drop", c, r)
			}
		}
	}
}

func TestDropRejectsNone(t *testing.T) {
	g := New(3, 3)
	if _, err := g.Drop(0, None); err == nil {
		t.Fatal("expected error dropping for None")
	}
	if g.ColumnHeight(0) != 0 {
		t.Error("column should still be empty")
	}
}

func TestOwnerAtOutOfRange(t *testing.T) {
	g := New(4, 4)
	for c := 0; c < 4; c++ {
		for i := 0; i < 4; i++ {
			g.Drop(c, First)
		}
	}
	probes := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-5, -5}, {10, 10}}
	for _, p := range probes {
		if owner, ok := g.OwnerAt(p[0], p[1]); ok || owner != None {
			t.Errorf("OwnerAt(%d, %d) = (%v, %v), want (None, false)", p[0], p[1], owner, ok)
		}
	}
}

func TestIsFull(t *testing.T) {
	g := New(2, 2)
	moves := []int{0, 0, 1}
	for _, col := range moves {
		g.Drop(col, First)
		if g.IsFull() {
			t.Fatal("grid reported full too early")
		}
	}
	g.Drop(1, Second)
	if !g.IsFull() {
		t.Error("grid should be full")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New(3, 3)
	g.Drop(0, First)
	snap := g.Snapshot()
	snap[0][0] = Second
	if p, _ := g.OwnerAt(0, 0); p != First {
		t.Errorf("grid mutated through snapshot: got %v", p)
	}
}

func TestPlayerOther(t *testing.T) {
	if First.Other() != Second || Second.Other() != First {
		t.Error("Other should swap First and Second")
	}
	if None.Other() != None {
		t.Error("None.Other() should be None")
	}
}
