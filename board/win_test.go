package board

import (
	"reflect"
	"testing"
)

// place sets cells directly so runs can be laid out without gravity getting in the way.
func place(g *Grid, p Player, coords ...Coord) {
	for _, c := range coords {
		g.cells[c.Column][c.Row] = p
	}
}

func TestDirectionRunIncludesAnchor(t *testing.T) {
	anchor := Coord{Column: 2, Row: 3}
	tests := []struct {
		dir  Direction
		want [RunLength]Coord
	}{
		{Vertical, [RunLength]Coord{{2, 3}, {2, 4}, {2, 5}, {2, 6}}},
		{Horizontal, [RunLength]Coord{{2, 3}, {3, 3}, {4, 3}, {5, 3}}},
		{DiagonalUpRight, [RunLength]Coord{{2, 3}, {3, 4}, {4, 5}, {5, 6}}},
		{DiagonalDownRight, [RunLength]Coord{{2, 3}, {3, 2}, {4, 1}, {5, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Run(anchor); got != tt.want {
				t.Errorf("Run = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectHorizontalFromDrops(t *testing.T) {
	g := New(7, 6)
	var res WinResult
	for col := 0; col < 4; col++ {
		row, err := g.Drop(col, First)
		if err != nil {
			t.Fatalf("Drop(%d): %v", col, err)
		}
		res = Detect(g, Coord{Column: col, Row: row})
		if col < 3 && res.Outcome != NoWin {
			t.Fatalf("move %d: outcome %v, want no win", col, res.Outcome)
		}
	}
	want := WinResult{
		Outcome:   Win,
		Player:    First,
		Direction: Horizontal,
		Cells:     []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("Detect = %+v, want %+v", res, want)
	}
}

func TestDetectVertical(t *testing.T) {
	g := New(7, 6)
	place(g, Second, Coord{4, 1}, Coord{4, 2}, Coord{4, 3}, Coord{4, 4})
	res := Detect(g, Coord{4, 1})
	if res.Outcome != Win || res.Player != Second || res.Direction != Vertical {
		t.Fatalf("Detect = %+v, want vertical win for Second", res)
	}
	want := []Coord{{4, 1}, {4, 2}, {4, 3}, {4, 4}}
	if !reflect.DeepEqual(res.Cells, want) {
		t.Errorf("Cells = %v, want %v", res.Cells, want)
	}
}

func TestDetectDiagonalSymmetry(t *testing.T) {
	down := New(7, 6)
	place(down, First, Coord{2, 3}, Coord{3, 2}, Coord{4, 1}, Coord{5, 0})
	downRes := Detect(down, Coord{2, 3})

	up := New(7, 6)
	place(up, First, Coord{2, 0}, Coord{3, 1}, Coord{4, 2}, Coord{5, 3})
	upRes := Detect(up, Coord{2, 0})

	if downRes.Outcome != Win || downRes.Direction != DiagonalDownRight {
		t.Errorf("down-right: %+v", downRes)
	}
	if upRes.Outcome != Win || upRes.Direction != DiagonalUpRight {
		t.Errorf("up-right: %+v", upRes)
	}
	if downRes.Player != upRes.Player {
		t.Errorf("players differ: %v vs %v", downRes.Player, upRes.Player)
	}
	if !reflect.DeepEqual(downRes.Cells, []Coord{{2, 3}, {3, 2}, {4, 1}, {5, 0}}) {
		t.Errorf("down-right cells = %v", downRes.Cells)
	}
	if !reflect.DeepEqual(upRes.Cells, []Coord{{2, 0}, {3, 1}, {4, 2}, {5, 3}}) {
		t.Errorf("up-right cells = %v", upRes.Cells)
	}
}

func TestDetectMixedOwnersIsNoWin(t *testing.T) {
	g := New(7, 6)
	place(g, First, Coord{0, 0}, Coord{1, 0}, Coord{3, 0})
	place(g, Second, Coord{2, 0})
	if res := Detect(g, Coord{0, 0}); res.Outcome != NoWin {
		t.Errorf("Detect = %+v, want no win", res)
	}
}

func TestDetectRunLeavingGridIsNoWin(t *testing.T) {
	g := New(4, 4)
	place(g, First, Coord{2, 0}, Coord{3, 0})
	if res := Detect(g, Coord{2, 0}); res.Outcome != NoWin {
		t.Errorf("Detect = %+v, want no win", res)
	}
}

func TestDetectEmptyAnchor(t *testing.T) {
	g := New(4, 4)
	if res := Detect(g, Coord{0, 0}); res.Outcome != NoWin {
		t.Errorf("Detect on empty anchor = %+v, want no win", res)
	}
	if res := Detect(g, Coord{-1, 9}); res.Outcome != NoWin {
		t.Errorf("Detect off grid = %+v, want no win", res)
	}
}

func TestDetectFirstDirectionWins(t *testing.T) {
	g := New(7, 6)
	// Vertical and horizontal runs share the anchor (0,0).
	place(g, First,
		Coord{0, 0}, Coord{0, 1}, Coord{0, 2}, Coord{0, 3},
		Coord{1, 0}, Coord{2, 0}, Coord{3, 0})
	res := Detect(g, Coord{0, 0})
	if res.Direction != Vertical {
		t.Errorf("Direction = %v, want vertical", res.Direction)
	}
}

func TestDetectDraw(t *testing.T) {
	// 2x2 can never hold a run of four.
	g := New(2, 2)
	place(g, First, Coord{0, 0}, Coord{1, 1})
	place(g, Second, Coord{1, 0}, Coord{0, 1})
	if res := Detect(g, Coord{0, 1}); res.Outcome != Draw {
		t.Errorf("Detect = %+v, want draw", res)
	}
}

func TestDetectWinOnFullGridIsWin(t *testing.T) {
	g := New(4, 1)
	place(g, Second, Coord{0, 0}, Coord{1, 0}, Coord{2, 0}, Coord{3, 0})
	res := Detect(g, Coord{0, 0})
	if res.Outcome != Win || res.Player != Second {
		t.Errorf("Detect = %+v, want win for Second", res)
	}
}
