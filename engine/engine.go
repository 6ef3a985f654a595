// Package engine defines the interface between the game core and the presentation layer.
package engine

import (
	"termfour/board"
	"termfour/types"
)

// MoveOutcome describes one accepted move.
type MoveOutcome struct {
	Column int
	Row    int
	Player board.Player
	Result board.WinResult
}

// GameEngine is what the UI drives. All calls happen on the UI goroutine.
type GameEngine interface {
	// PlayMove drops a token for the current player into column.
	// A rejected move leaves the game unchanged.
	PlayMove(column int) (MoveOutcome, error)

	// GetBoardState returns a snapshot of the current position.
	GetBoardState() *types.BoardState

	// CurrentPlayer returns the player whose move is next.
	CurrentPlayer() board.Player

	// IsGameOver returns true once a win or draw has been reached.
	IsGameOver() bool

	// OnMove registers a callback run after every accepted move.
	OnMove(func(outcome MoveOutcome, state *types.BoardState))

	// OnGameEnd registers a callback run once when the game ends.
	OnGameEnd(func(result board.WinResult))

	// Close releases the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Width  int // number of columns
	Height int // number of rows
}

// DefaultConfig returns the classic 7x6 board.
func DefaultConfig() GameConfig {
	return GameConfig{
		Width:  7,
		Height: 6,
	}
}
