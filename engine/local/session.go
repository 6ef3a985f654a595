// Package local provides the in-process game engine: a two-player session on one board.
package local

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"termfour/board"
	"termfour/engine"
	"termfour/record"
	"termfour/types"
)

var debugLog = log.New(io.Discard, "", 0)

// SetLogger directs session debug output to l. A nil logger silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	debugLog = l
}

// Session owns the grid and turn state of one game.
type Session struct {
	config  engine.GameConfig
	grid    *board.Grid
	turn    board.Player
	result  board.WinResult
	last    board.Coord
	history *record.GameRecord

	moveCallback func(outcome engine.MoveOutcome, state *types.BoardState)
	endCallback  func(result board.WinResult)
}

var _ engine.GameEngine = (*Session)(nil)

// NewSession starts a game on an empty width x height board with the first
// player to move. It panics on non-positive dimensions.
func NewSession(width, height int) *Session {
	return NewSessionWithConfig(engine.GameConfig{Width: width, Height: height})
}

// NewSessionWithConfig starts a game from cfg.
func NewSessionWithConfig(cfg engine.GameConfig) *Session {
	return &Session{
		config:  cfg,
		grid:    board.New(cfg.Width, cfg.Height),
		turn:    board.First,
		last:    board.Coord{Column: -1, Row: -1},
		history: record.NewGameRecord(cfg.Width, cfg.Height),
	}
}

// Config returns the configuration the session was created with.
func (s *Session) Config() engine.GameConfig {
	return s.config
}

// ApplyMove drops a token for the current player into column, checks for a
// win anchored at the new token and passes the turn unless the game ended.
// On error nothing changes.
func (s *Session) ApplyMove(column int) (engine.MoveOutcome, error) {
	if s.IsGameOver() {
		debugLog.Printf("ApplyMove: column %d rejected, game over", column)
		return engine.MoveOutcome{}, errors.Wrapf(board.ErrGameOver, "move %d", s.history.Len()+1)
	}

	player := s.turn
	row, err := s.grid.Drop(column, player)
	if err != nil {
		debugLog.Printf("ApplyMove: %s column %d rejected: %v", player, column, err)
		return engine.MoveOutcome{}, err
	}

	s.last = board.Coord{Column: column, Row: row}
	s.history.AddMove(column, row, player)
	res := board.Detect(s.grid, s.last)
	s.result = res
	debugLog.Printf("ApplyMove: %s -> %s (%s)", player, record.Square(s.last), res.Outcome)

	if res.Ended() {
		s.history.SetResult(res)
		debugLog.Printf("ApplyMove: game ended %s after %d moves", record.FormatResult(res), s.history.Len())
	} else {
		s.turn = player.Other()
	}

	outcome := engine.MoveOutcome{Column: column, Row: row, Player: player, Result: res}
	if s.moveCallback != nil {
		s.moveCallback(outcome, s.GetBoardState())
	}
	if res.Ended() && s.endCallback != nil {
		s.endCallback(res)
	}
	return outcome, nil
}

// PlayMove implements engine.GameEngine.
func (s *Session) PlayMove(column int) (engine.MoveOutcome, error) {
	return s.ApplyMove(column)
}

// OwnerAt returns the owner of (column, row); (None, false) when empty or off the board.
func (s *Session) OwnerAt(column, row int) (board.Player, bool) {
	return s.grid.OwnerAt(column, row)
}

// CurrentPlayer returns the player whose move is next. After the game ended
// it stays on the player who made the final move.
func (s *Session) CurrentPlayer() board.Player {
	return s.turn
}

// IsGameOver returns true once a win or draw has been reached.
func (s *Session) IsGameOver() bool {
	return s.result.Ended()
}

// Result returns the result of the last move.
func (s *Session) Result() board.WinResult {
	return s.result
}

// Width returns the number of columns.
func (s *Session) Width() int {
	return s.grid.Width()
}

// Height returns the number of rows.
func (s *Session) Height() int {
	return s.grid.Height()
}

// Record returns a copy of the moves played so far.
func (s *Session) Record() *record.GameRecord {
	return s.history.Copy()
}

// GetBoardState returns a snapshot of the current position.
func (s *Session) GetBoardState() *types.BoardState {
	state := types.NewBoardState(s.grid.Width(), s.grid.Height())
	state.Cells = s.grid.Snapshot()
	state.MoveNumber = s.history.Len()
	state.PlayerToMove = s.turn
	state.LastMove = s.last
	if s.IsGameOver() {
		state.Phase = types.PhaseFinished
		state.Outcome = record.DescribeResult(s.result)
		state.Winning = append([]board.Coord(nil), s.result.Cells...)
	}
	return state
}

// OnMove registers a callback run after every accepted move.
func (s *Session) OnMove(f func(outcome engine.MoveOutcome, state *types.BoardState)) {
	s.moveCallback = f
}

// OnGameEnd registers a callback run when the game ends.
func (s *Session) OnGameEnd(f func(result board.WinResult)) {
	s.endCallback = f
}

// Close drops the registered callbacks. The session holds no other resources.
func (s *Session) Close() {
	s.moveCallback = nil
	s.endCallback = nil
}

// Replay creates a session from cfg and plays columns in order. The error
// names the 1-based index of the move that was rejected.
func Replay(cfg engine.GameConfig, columns []int) (*Session, error) {
	s := NewSessionWithConfig(cfg)
	for i, col := range columns {
		if _, err := s.ApplyMove(col); err != nil {
			return nil, errors.Wrapf(err, "replay move %d (%s)", i+1, record.ColumnName(col))
		}
	}
	return s, nil
}
