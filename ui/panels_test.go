package ui

import (
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rivo/tview"

	"termfour/board"
	"termfour/config"
	"termfour/engine"
	"termfour/record"
	"termfour/types"
)

func TestGameInfoPanelEmpty(t *testing.T) {
	p := NewGameInfoPanel()
	p.SetBoardState(&types.BoardState{})
	if got := p.Box().GetText(true); got != "" {
		t.Errorf("empty state text = %q, want empty", got)
	}
}

func TestGameInfoPanelMoves(t *testing.T) {
	p := NewGameInfoPanel()
	moves := []record.Move{
		{Column: 3, Row: 0, Player: board.First},
		{Column: 3, Row: 1, Player: board.Second},
	}
	p.SetMoveHistory(&moves)
	state := types.NewBoardState(7, 6)
	state.MoveNumber = 2
	p.SetBoardState(state)

	got := p.Box().GetText(true)
	for _, want := range []string{"Board: 7x6", "Move: 2", "To move:", "d1", "d2"} {
		if !strings.Contains(got, want) {
			t.Errorf("panel text missing %q:\n%s", want, got)
		}
	}
}

func TestGameInfoPanelTruncatesHistory(t *testing.T) {
	p := NewGameInfoPanel()
	var moves []record.Move
	for i := 0; i < 20; i++ {
		moves = append(moves, record.Move{Column: i % 7, Row: i / 7, Player: board.First})
	}
	p.SetMoveHistory(&moves)
	p.SetBoardState(types.NewBoardState(7, 6))

	got := p.Box().GetText(true)
	if !strings.Contains(got, "8 earlier") {
		t.Errorf("panel text missing truncation note:\n%s", got)
	}
}

func TestRebuildNormalLayoutWiresPanel(t *testing.T) {
	b, hint, _ := newTestBoard(t, 7, 6)
	frame := CreateGameLayout(b, hint)
	if b.infoPanel == nil {
		t.Fatal("info panel not attached to board")
	}
	b.Drop()
	if !strings.Contains(b.infoPanel.Box().GetText(true), "d1") {
		t.Errorf("panel did not pick up the move: %q", b.infoPanel.Box().GetText(true))
	}
	BuildFocusLayout(frame, b)
	if frame.GetItemCount() != 3 {
		t.Errorf("focus layout items = %d, want 3", frame.GetItemCount())
	}
}

func TestGameSetupConfig(t *testing.T) {
	s := NewGameSetup(8, 7, func(engine.GameConfig) {}, func() {}, nil)
	got := s.Config()
	if got.Width != 8 || got.Height != 7 {
		t.Errorf("Config = %dx%d, want 8x7", got.Width, got.Height)
	}
}

func TestGameSetupClearedFieldIsInvalid(t *testing.T) {
	s := NewGameSetup(7, 6, func(engine.GameConfig) {}, func() {}, nil)
	s.form.GetFormItemByLabel("Columns").(*tview.InputField).SetText("")
	s.form.GetFormItemByLabel("Rows").(*tview.InputField).SetText("9")

	got := s.Config()
	if got.Width != 0 || got.Height != 9 {
		t.Errorf("Config = %dx%d, want 0x9", got.Width, got.Height)
	}
	if err := config.ValidateSize(got.Width, got.Height); err == nil {
		t.Error("ValidateSize accepted a cleared width")
	}
}

func TestSizeValue(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"7", 7},
		{" 12 ", 12},
		{"", 0},
		{"  ", 0},
	}
	for _, tt := range tests {
		if got := sizeValue(tt.text); got != tt.want {
			t.Errorf("sizeValue(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		text string
		last rune
		want bool
	}{
		{"7", '7', true},
		{"12", '2', true},
		{"123", '3', false},
		{"1a", 'a', false},
		{"-", '-', false},
	}
	for _, tt := range tests {
		if got := digitsOnly(tt.text, tt.last); got != tt.want {
			t.Errorf("digitsOnly(%q, %q) = %v, want %v", tt.text, tt.last, got, tt.want)
		}
	}
}

func TestColorConfigApplySaves(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	defer xdg.Reload()

	c := config.DefaultConfig
	var saveErr error
	done := false
	cc := NewColorConfig(&c, func(err error) {
		done = true
		saveErr = err
	})

	cc.highlight(len(tokenColors) - 1)
	cc.ToggleMode()
	cc.highlight(0)
	first, second := cc.Selected()
	if first != tokenColors[len(tokenColors)-1].code || second != tokenColors[0].code {
		t.Fatalf("Selected = %d, %d", first, second)
	}

	cc.Apply()
	if !done {
		t.Fatal("onDone not called")
	}
	if saveErr != nil {
		t.Fatalf("save: %v", saveErr)
	}
	if c.Theme.Colors.FirstColor != first || c.Theme.Colors.SecondColor != second {
		t.Errorf("config colors = %d, %d, want %d, %d",
			c.Theme.Colors.FirstColor, c.Theme.Colors.SecondColor, first, second)
	}
}
