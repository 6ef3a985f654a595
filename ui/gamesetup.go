package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfour/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	width  int
	height int
}

func digitsOnly(text string, lastChar rune) bool {
	return lastChar >= '0' && lastChar <= '9' && len(text) <= 2
}

// sizeValue reads a size field. Anything unparsable, including an empty
// field, is 0 so that size validation rejects it.
func sizeValue(text string) int {
	val, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return val
}

// NewGameSetup creates a new game setup form prefilled with width x height.
func NewGameSetup(width, height int, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		width:    width,
		height:   height,
	}

	form := tview.NewForm()

	form.AddInputField("Columns", strconv.Itoa(width), 4, digitsOnly, func(text string) {
		setup.width = sizeValue(text)
	})

	form.AddInputField("Rows", strconv.Itoa(height), 4, digitsOnly, func(text string) {
		setup.height = sizeValue(text)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Token Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitle(" New Game ")
	form.SetTitleColor(MenuColors.Title)
	form.SetTitleAlign(tview.AlignCenter)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the board size currently entered in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{Width: s.width, Height: s.height}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
