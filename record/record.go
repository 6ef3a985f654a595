// Package record keeps the in-memory move list of a game and its text notation.
package record

import (
	"fmt"
	"strings"

	"termfour/board"
)

// Move is one accepted drop.
type Move struct {
	Column int
	Row    int
	Player board.Player
}

// String renders the move as "Player 1 d1".
func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Player, Square(board.Coord{Column: m.Column, Row: m.Row}))
}

// GameRecord tracks a game in progress.
type GameRecord struct {
	Width  int
	Height int
	Result string
	moves  []Move
}

// NewGameRecord creates an empty record for a width x height board.
func NewGameRecord(width, height int) *GameRecord {
	return &GameRecord{
		Width:  width,
		Height: height,
		Result: "*",
	}
}

// AddMove appends a move to the record.
func (r *GameRecord) AddMove(column, row int, player board.Player) {
	r.moves = append(r.moves, Move{Column: column, Row: row, Player: player})
}

// SetResult records the final outcome.
func (r *GameRecord) SetResult(res board.WinResult) {
	r.Result = FormatResult(res)
}

// Len returns the number of moves played.
func (r *GameRecord) Len() int {
	return len(r.moves)
}

// Moves returns a copy of the move list.
func (r *GameRecord) Moves() []Move {
	out := make([]Move, len(r.moves))
	copy(out, r.moves)
	return out
}

// Columns returns the played columns in order, suitable for replaying.
func (r *GameRecord) Columns() []int {
	cols := make([]int, len(r.moves))
	for i, m := range r.moves {
		cols[i] = m.Column
	}
	return cols
}

// Copy returns an independent copy of the record.
func (r *GameRecord) Copy() *GameRecord {
	c := *r
	c.moves = r.Moves()
	return &c
}

// String renders the record as "7x6 ddce *".
func (r *GameRecord) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%dx%d", r.Width, r.Height))
	if len(r.moves) > 0 {
		b.WriteString(" ")
		b.WriteString(FormatMoves(r.Columns()))
	}
	b.WriteString(" ")
	b.WriteString(r.Result)
	return b.String()
}
