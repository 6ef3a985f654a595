// Package types contains shared data structures for termfour.
package types

import "termfour/board"

// Game phases.
const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is a read-only snapshot of a game handed to the presentation layer.
// Cells is indexed as Cells[column][row], row 0 being the bottom row.
type BoardState struct {
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	MoveNumber   int              `json:"move_number"`
	PlayerToMove board.Player     `json:"player_to_move"`
	Phase        string           `json:"phase"` // "playing", "finished"
	Cells        [][]board.Player `json:"cells"`
	Outcome      string           `json:"outcome"`
	LastMove     board.Coord      `json:"last_move"`
	Winning      []board.Coord    `json:"winning,omitempty"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// OwnerAt returns the owner of (column, row), None when empty or off the board.
func (b *BoardState) OwnerAt(column, row int) board.Player {
	if column < 0 || column >= len(b.Cells) {
		return board.None
	}
	if row < 0 || row >= len(b.Cells[column]) {
		return board.None
	}
	return b.Cells[column][row]
}

// IsWinning reports whether (column, row) is part of the winning run.
func (b *BoardState) IsWinning(column, row int) bool {
	for _, c := range b.Winning {
		if c.Column == column && c.Row == row {
			return true
		}
	}
	return false
}

// HasLastMove reports whether a move has been played yet.
func (b *BoardState) HasLastMove() bool {
	return b.LastMove.Column >= 0 && b.LastMove.Row >= 0
}

// NewBoardState creates an empty snapshot of the given size.
func NewBoardState(width, height int) *BoardState {
	cells := make([][]board.Player, width)
	for i := range cells {
		cells[i] = make([]board.Player, height)
	}
	return &BoardState{
		Width:        width,
		Height:       height,
		PlayerToMove: board.First,
		Phase:        PhasePlaying,
		Cells:        cells,
		LastMove:     board.Coord{Column: -1, Row: -1},
	}
}
