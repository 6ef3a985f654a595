package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfour/board"
	"termfour/record"
	"termfour/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	boardState  *types.BoardState
	moveHistory *[]record.Move
	firstColor  tcell.Color
	secondColor tcell.Color
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:         tview.NewTextView(),
		firstColor:  tcell.ColorRed,
		secondColor: tcell.ColorYellow,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetMoveHistory sets a pointer to the move history slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]record.Move) {
	p.moveHistory = history
}

// SetColors sets the token colors used for each player.
func (p *GameInfoPanel) SetColors(first, second tcell.Color) {
	p.firstColor = first
	p.secondColor = second
	p.refresh()
}

func (p *GameInfoPanel) playerLabel(player board.Player) string {
	color := p.firstColor
	short := "1"
	if player == board.Second {
		color = p.secondColor
		short = "2"
	}
	return fmt.Sprintf("[#%06x]●[-]%s", color.Hex(), short)
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil || p.boardState.Width == 0 {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", p.boardState.Width, p.boardState.Height)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.boardState.MoveNumber)
	if p.boardState.Finished() {
		text += "[white]Status:[-:-:-] finished\n"
	} else if p.boardState.PlayerToMove.Valid() {
		text += fmt.Sprintf("[white]To move:[-:-:-] %s\n", p.playerLabel(p.boardState.PlayerToMove))
	}

	if p.moveHistory == nil || len(*p.moveHistory) == 0 {
		p.box.SetText(text)
		return
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	moves := *p.moveHistory
	// Show last N moves that fit, with scroll
	maxVisible := 12
	start := 0
	if len(moves) > maxVisible {
		start = len(moves) - maxVisible
	}

	for i := start; i < len(moves); i++ {
		m := moves[i]
		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}
		coord := record.Square(board.Coord{Column: m.Column, Row: m.Row})
		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, p.playerLabel(m.Player), coord)
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *FourBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *FourBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&board.moveHistory)
	infoPanel.SetColors(board.styles[styleFirst], board.styles[styleSecond])

	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 6, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *FourBoardUI) {
	gameFrame.Clear()

	boardWidth := 7*2 + 4
	boardHeight := 6 + 2
	if board.BoardState != nil && board.BoardState.Width > 0 {
		boardWidth = board.BoardState.Width*2 + 4  // 2 chars per cell + row labels
		boardHeight = board.BoardState.Height + 2 // + drop marker and column labels
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
