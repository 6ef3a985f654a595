package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfour/board"
	"termfour/config"
)

// ColorConfigUI provides a token color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func(error)

	selectedFirst  int
	selectedSecond int
	editingSecond  bool // true = editing the second player's color
}

// Token colors to choose from.
var tokenColors = []struct {
	code int
	name string
}{
	{196, "Red"},
	{160, "Dark Red"},
	{202, "Orange"},
	{208, "Dark Orange"},
	{226, "Yellow"},
	{220, "Gold"},
	{46, "Green"},
	{34, "Forest Green"},
	{51, "Cyan"},
	{33, "Blue"},
	{21, "Deep Blue"},
	{129, "Purple"},
	{201, "Magenta"},
	{255, "White"},
	{244, "Gray"},
	{16, "Black"},
}

// previewTokens is a short game shown in the preview board, (column, row) -> owner.
var previewTokens = map[[2]int]board.Player{
	{1, 0}: board.First,
	{2, 0}: board.Second,
	{2, 1}: board.First,
	{3, 0}: board.First,
	{3, 1}: board.Second,
	{3, 2}: board.First,
	{4, 0}: board.Second,
}

// NewColorConfig creates a new color configuration screen. onDone receives
// the error from saving the config, if any.
func NewColorConfig(cfg *config.Config, onDone func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:            cfg,
		onDone:         onDone,
		selectedFirst:  cfg.Theme.Colors.FirstColor,
		selectedSecond: cfg.Theme.Colors.SecondColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.highlight(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.highlight(index)
		if !cc.editingSecond {
			// Move on to the second player's color
			cc.editingSecond = true
			cc.populateColorList()
			return
		}
		cc.Apply()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) highlight(index int) {
	if index < 0 || index >= len(tokenColors) {
		return
	}
	if cc.editingSecond {
		cc.selectedSecond = tokenColors[index].code
	} else {
		cc.selectedFirst = tokenColors[index].code
	}
}

// Apply stores the selected colors in the config and saves it.
func (cc *ColorConfigUI) Apply() {
	cc.cfg.Theme.Colors.FirstColor = cc.selectedFirst
	cc.cfg.Theme.Colors.SecondColor = cc.selectedSecond
	err := cc.cfg.Save()
	cc.editingSecond = false
	cc.populateColorList()
	if cc.onDone != nil {
		cc.onDone(err)
	}
}

// Selected returns the colors currently picked for each player.
func (cc *ColorConfigUI) Selected() (first, second int) {
	return cc.selectedFirst, cc.selectedSecond
}

// populateColorList fills the list for the player being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedFirst
	if cc.editingSecond {
		cc.colorList.SetTitle(" Player 2 Color (Tab: player 1) ")
		current = cc.selectedSecond
	} else {
		cc.colorList.SetTitle(" Player 1 Color (Tab: player 2) ")
	}
	for i, c := range tokenColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]●●[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range tokenColors {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const cols, rows = 7, 4
	if width < cols*2+4 || height < rows+4 {
		return x, y, width, height
	}

	colors := cc.cfg.Theme.Colors
	symbols := cc.cfg.Theme.Symbols
	startX := x + 2
	startY := y + 1

	for row := 0; row < rows; row++ {
		screenY := startY + rows - 1 - row
		for col := 0; col < cols; col++ {
			bg := tcell.PaletteColor(colors.BoardColor)
			if (col+row)%2 == 1 {
				bg = tcell.PaletteColor(colors.BoardColorAlt)
			}
			style := tcell.StyleDefault.Background(bg).Foreground(tcell.PaletteColor(colors.LineColor))
			char := symbols.EmptySlot
			switch previewTokens[[2]int{col, row}] {
			case board.First:
				char = symbols.FirstToken
				style = style.Foreground(tcell.PaletteColor(cc.selectedFirst))
			case board.Second:
				char = symbols.SecondToken
				style = style.Foreground(tcell.PaletteColor(cc.selectedSecond))
			}
			screen.SetContent(startX+col*2, screenY, char, nil, style)
			screen.SetContent(startX+col*2+1, screenY, ' ', nil, style)
		}
	}

	info := fmt.Sprintf("Player 1: %d  Player 2: %d", cc.selectedFirst, cc.selectedSecond)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+rows+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between editing player 1 and player 2.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingSecond = !cc.editingSecond
	cc.populateColorList()
}
