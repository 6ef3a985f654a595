// Package ui specifies custom controls for tview to play termfour in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"

	"termfour/board"
	"termfour/config"
	"termfour/engine"
	"termfour/record"
	"termfour/types"
)

// Indexes into FourBoardUI.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleFirst
	styleSecond
	styleLine
	styleCursorFG
	styleCursorBG
	styleLastPlayed
	styleWinning
)

type FourBoardUI struct {
	Box         *tview.Box
	BoardState  *types.BoardState
	hint        *tview.TextView
	cfg         *config.Config
	finished    bool
	selCol      int
	message     string
	eng         engine.GameEngine
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	focusMode   bool
	moveHistory []record.Move
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *FourBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *FourBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *FourBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// SelectedColumn returns the column the cursor is on.
func (g *FourBoardUI) SelectedColumn() int {
	return g.selCol
}

// MoveSelection shifts the column cursor by dx, clamped to the board.
func (g *FourBoardUI) MoveSelection(dx int) {
	g.SelectColumn(g.selCol + dx)
}

// SelectColumn puts the cursor on column if it exists.
func (g *FourBoardUI) SelectColumn(column int) {
	if g.BoardState == nil || column < 0 || column >= g.BoardState.Width {
		return
	}
	g.selCol = column
}

func NewFourBoard(c *config.Config, hint *tview.TextView) *FourBoardUI {
	fourBoard := &FourBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
	}
	fourBoard.SetConfig(c)
	fourBoard.Box.SetDrawFunc(fourBoard.draw)
	return fourBoard
}

func (g *FourBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Width == 0 {
		return x, y, 1, 1
	}
	theme := g.cfg.Theme
	// Row 0 of the screen holds the drop marker, row labels take 4 columns.
	left, top := x+4, y+1

	if !state.Finished() {
		markerStyle := tcell.StyleDefault.Foreground(g.playerColor(state.PlayerToMove))
		screen.SetContent(left+g.selCol*2, y, theme.Symbols.DropMarker, nil, markerStyle)
	}

	for row := 0; row < state.Height; row++ {
		// Board rows count up from the bottom, the screen counts down.
		screenY := top + state.Height - 1 - row
		for col := 0; col < state.Width; col++ {
			bg := g.styles[styleBoard]
			if (col+row)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}
			fg := g.styles[styleLine]
			drawRune := theme.Symbols.EmptySlot

			owner := state.OwnerAt(col, row)
			switch owner {
			case board.First:
				drawRune = theme.Symbols.FirstToken
				fg = g.styles[styleFirst]
			case board.Second:
				drawRune = theme.Symbols.SecondToken
				fg = g.styles[styleSecond]
			}

			switch {
			case state.IsWinning(col, row):
				if theme.DrawWinningBackground {
					bg = g.styles[styleWinning]
				}
			case col == g.selCol && !state.Finished():
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				}
				if owner == board.None {
					drawRune = theme.Symbols.Cursor
					fg = g.styles[styleCursorFG]
				}
			case col == state.LastMove.Column && row == state.LastMove.Row:
				if theme.DrawLastPlayedBackground {
					bg = g.styles[styleLastPlayed]
				}
			}

			drawTokenCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, col, screenY, left)
		}
	}
	drawCoordinates(screen, x, top, g)
	return x, y, state.Width*2 + 4, state.Height + 2
}

// ConnectEngine connects the board to a game engine.
func (g *FourBoardUI) ConnectEngine(e engine.GameEngine) {
	g.finished = false
	g.message = ""
	g.moveHistory = nil
	g.eng = e

	e.OnMove(func(outcome engine.MoveOutcome, boardState *types.BoardState) {
		g.moveHistory = append(g.moveHistory, record.Move{
			Column: outcome.Column,
			Row:    outcome.Row,
			Player: outcome.Player,
		})
		g.BoardState = boardState
		g.refreshHint()
	})

	e.OnGameEnd(func(result board.WinResult) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.refreshHint()
	})

	// Replayed sessions already carry moves.
	if r, ok := e.(interface{ Record() *record.GameRecord }); ok {
		g.moveHistory = r.Record().Moves()
	}

	g.BoardState = e.GetBoardState()
	g.finished = g.BoardState.Finished()
	g.selCol = g.BoardState.Width / 2
	g.refreshHint()
}

// Drop plays the selected column for the player to move.
func (g *FourBoardUI) Drop() {
	if g.finished || g.eng == nil {
		return
	}
	if _, err := g.eng.PlayMove(g.selCol); err != nil {
		g.message = moveErrorText(err, g.selCol)
		g.refreshHint()
		return
	}
	if g.message != "" {
		g.message = ""
		g.refreshHint()
	}
}

// Close disconnects the engine.
func (g *FourBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *FourBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		styleBoard:      tcell.PaletteColor(c.Theme.Colors.BoardColor),
		styleBoardAlt:   tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),
		styleFirst:      tcell.PaletteColor(c.Theme.Colors.FirstColor),
		styleSecond:     tcell.PaletteColor(c.Theme.Colors.SecondColor),
		styleLine:       tcell.PaletteColor(c.Theme.Colors.LineColor),
		styleCursorFG:   tcell.PaletteColor(c.Theme.Colors.CursorColorFG),
		styleCursorBG:   tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		styleLastPlayed: tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG),
		styleWinning:    tcell.PaletteColor(c.Theme.Colors.WinningColorBG),
	}
	g.cfg = c
	if g.infoPanel != nil {
		g.infoPanel.SetColors(g.styles[styleFirst], g.styles[styleSecond])
	}
}

func (g *FourBoardUI) playerColor(p board.Player) tcell.Color {
	if p == board.Second {
		return g.styles[styleSecond]
	}
	return g.styles[styleFirst]
}

func (g *FourBoardUI) playerTag(p board.Player) string {
	return fmt.Sprintf("[#%06x]%c[-]", g.playerColor(p).Hex(), g.tokenRune(p))
}

func (g *FourBoardUI) tokenRune(p board.Player) rune {
	if p == board.Second {
		return g.cfg.Theme.Symbols.SecondToken
	}
	return g.cfg.Theme.Symbols.FirstToken
}

func (g *FourBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else {
		if g.message != "" {
			statusLine = fmt.Sprintf("  [red]%s[-]\n\n", g.message)
		}
		if p := g.BoardState.PlayerToMove; p.Valid() {
			turnLine = fmt.Sprintf("  %s %s to move\n", g.playerTag(p), p)
		}
		controlsLine = `
  h/l ←→ column   ⏎/space/j drop   1-9 pick
  f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *FourBoardUI) IsFinished() bool {
	return g.finished
}

// Moves returns the moves played since the engine was connected.
func (g *FourBoardUI) Moves() []record.Move {
	return g.moveHistory
}

func moveErrorText(err error, column int) string {
	switch {
	case errors.Is(err, board.ErrColumnFull):
		return fmt.Sprintf("Column %s is full", record.ColumnName(column))
	case errors.Is(err, board.ErrInvalidColumn):
		return "No such column"
	case errors.Is(err, board.ErrGameOver):
		return "The game is over"
	}
	return err.Error()
}

// drawTokenCell draws a board cell (2 characters wide)
func drawTokenCell(s tcell.Screen, c tcell.Style, r rune, x, y, l int) {
	s.SetContent(l+x*2, y, r, nil, c)
	s.SetContent(l+x*2+1, y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, top int, ui *FourBoardUI) {
	hCoord := int('a')
	w, h := ui.BoardState.Width, ui.BoardState.Height
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayed])
	finished := ui.BoardState.Finished()

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selCol && !finished {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.Column {
			_style = lpHighlight
		}
		s.SetContent(x+4+(ix*2), top+h, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, top+h, ' ', nil, _style)
	}

	for row := 0; row < h; row++ {
		_style := style
		if row == ui.BoardState.LastMove.Row {
			_style = lpHighlight
		}
		displayNum := row + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		screenY := top + h - 1 - row
		s.SetContent(x+1, screenY, tensRune, nil, _style)
		s.SetContent(x+2, screenY, rune('0'+(displayNum%10)), nil, _style)
	}
}
