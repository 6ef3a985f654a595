// Package board implements the grid occupancy model, the drop rule and win detection.
package board

import (
	"fmt"

	"github.com/pkg/errors"
)

// Player identifies the owner of a token. The zero value None means no owner.
type Player int8

const (
	None   Player = 0
	First  Player = 1
	Second Player = 2
)

// Other returns the opponent of p. None has no opponent and is returned unchanged.
func (p Player) Other() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	return None
}

// Valid reports whether p is one of the two players.
func (p Player) Valid() bool {
	return p == First || p == Second
}

func (p Player) String() string {
	switch p {
	case First:
		return "Player 1"
	case Second:
		return "Player 2"
	}
	return "None"
}

// Coord is a (column, row) pair. Row 0 is the bottom row.
type Coord struct {
	Column int
	Row    int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrGameOver      = errors.New("game is over")
)

// Grid is a fixed-size board. Cells are indexed cells[column][row].
type Grid struct {
	width  int
	height int
	cells  [][]Player
}

// New allocates an empty width x height grid. It panics on non-positive dimensions.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid grid size %dx%d", width, height))
	}
	cells := make([][]Player, width)
	for i := range cells {
		cells[i] = make([]Player, height)
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (column, row) lies on the grid.
func (g *Grid) InBounds(column, row int) bool {
	return column >= 0 && column < g.width && row >= 0 && row < g.height
}

// Drop places a token for player in the lowest empty row of column and
// returns that row. The grid is left untouched on error.
func (g *Grid) Drop(column int, player Player) (int, error) {
	if column < 0 || column >= g.width {
		return -1, errors.Wrapf(ErrInvalidColumn, "column %d outside [0, %d)", column, g.width)
	}
	if !player.Valid() {
		return -1, errors.Errorf("board: cannot drop for %v", player)
	}
	for row := 0; row < g.height; row++ {
		if g.cells[column][row] == None {
			g.cells[column][row] = player
			return row, nil
		}
	}
	return -1, errors.Wrapf(ErrColumnFull, "column %d", column)
}

// OwnerAt returns the owner of (column, row). Empty and out-of-range cells
// report (None, false).
func (g *Grid) OwnerAt(column, row int) (Player, bool) {
	if !g.InBounds(column, row) {
		return None, false
	}
	p := g.cells[column][row]
	return p, p != None
}

// ColumnHeight returns the number of tokens stacked in column, or 0 for an
// out-of-range column.
func (g *Grid) ColumnHeight(column int) int {
	if column < 0 || column >= g.width {
		return 0
	}
	n := 0
	for n < g.height && g.cells[column][n] != None {
		n++
	}
	return n
}

// IsFull reports whether every cell is occupied.
func (g *Grid) IsFull() bool {
	// Tokens stack from the bottom, so a column is full iff its top cell is.
	for column := 0; column < g.width; column++ {
		if g.cells[column][g.height-1] == None {
			return false
		}
	}
	return true
}

// Snapshot returns a deep copy of the cells, indexed [column][row].
func (g *Grid) Snapshot() [][]Player {
	out := make([][]Player, g.width)
	for i := range g.cells {
		out[i] = make([]Player, g.height)
		copy(out[i], g.cells[i])
	}
	return out
}
