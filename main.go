// termfour is a terminal application to play four in a row with two players at one keyboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rivo/tview"

	"termfour/config"
	"termfour/engine"
	"termfour/engine/local"
	"termfour/record"
	"termfour/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagWidth      = flag.Int("width", 0, "Board width in columns (1-26)")
	flagHeight     = flag.Int("height", 0, "Board height in rows (1-26)")
	flagMoves      = flag.String("moves", "", "Moves to replay before play starts, e.g. \"ddce\" or \"4 4 3 5\"")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagDebug      = flag.Bool("debug", false, "Write a debug log to the state directory")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.FourBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termfour %s\n", Version)
		return
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagDebug {
		closeLog, err := openDebugLog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	quickStart := *flagQuickStart || *flagWidth > 0 || *flagHeight > 0 || *flagMoves != "" || *flagFocus

	var quickSession *local.Session
	if quickStart {
		quickSession, err = buildQuickStartSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● termfour ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewFourBoard(cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(handleGameKey)

	setupUI := ui.NewGameSetup(
		cfg.Game.DefaultWidth,
		cfg.Game.DefaultHeight,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg, nil)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
		if err != nil {
			showError(fmt.Sprintf("Failed to save colors:\n%s", err))
		}
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 44), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickSession != nil {
		showSession(quickSession)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

func handleGameKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		gameBoard.MoveSelection(-1)
		return nil
	case tcell.KeyRight:
		gameBoard.MoveSelection(1)
		return nil
	case tcell.KeyEnter, tcell.KeyDown:
		gameBoard.Drop()
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		switch r {
		case 'q':
			gameBoard.Close()
			rootPage.SwitchToPage("setup")
		case 'h':
			gameBoard.MoveSelection(-1)
		case 'l':
			gameBoard.MoveSelection(1)
		case 'j', ' ':
			gameBoard.Drop()
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		default:
			if r >= '1' && r <= '9' {
				gameBoard.SelectColumn(int(r - '1'))
			}
		}
		return nil
	}
	return event
}

// startGame starts a game with the given configuration, replaying columns first.
func startGame(gameCfg engine.GameConfig, columns []int) {
	if err := config.ValidateSize(gameCfg.Width, gameCfg.Height); err != nil {
		showError(fmt.Sprintf("Failed to start game:\n%s", err))
		return
	}

	session, err := newSession(gameCfg, columns)
	if err != nil {
		showError(fmt.Sprintf("Failed to start game:\n%s", err))
		return
	}
	showSession(session)
}

// showSession connects session to the board and switches to the game view.
func showSession(session *local.Session) {
	gameBoard.Close()
	gameBoard.ConnectEngine(session)
	if gameBoard.IsFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameBoard)
	} else {
		ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
	}
	rootPage.SwitchToPage("gameview")
}

func showError(text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}

func newSession(gameCfg engine.GameConfig, columns []int) (*local.Session, error) {
	if len(columns) > 0 {
		return local.Replay(gameCfg, columns)
	}
	return local.NewSessionWithConfig(gameCfg), nil
}

// buildQuickStartSession validates the size and move flags and builds the
// session to start with, before any screen is set up.
func buildQuickStartSession() (*local.Session, error) {
	gameCfg := buildGameConfigFromFlags()
	if err := config.ValidateSize(gameCfg.Width, gameCfg.Height); err != nil {
		return nil, errors.Wrap(err, "-width/-height")
	}
	var columns []int
	if *flagMoves != "" {
		var err error
		columns, err = record.ParseMoves(*flagMoves, gameCfg.Width)
		if err != nil {
			return nil, errors.Wrap(err, "-moves")
		}
	}
	session, err := newSession(gameCfg, columns)
	if err != nil {
		return nil, errors.Wrap(err, "-moves")
	}
	return session, nil
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := engine.GameConfig{
		Width:  cfg.Game.DefaultWidth,
		Height: cfg.Game.DefaultHeight,
	}
	if *flagWidth > 0 {
		gameCfg.Width = *flagWidth
	}
	if *flagHeight > 0 {
		gameCfg.Height = *flagHeight
	}
	return gameCfg
}

// openDebugLog points the session logger at the xdg state log file.
func openDebugLog() (func(), error) {
	path, err := config.DebugLogPath()
	if err != nil {
		return nil, errors.Wrap(err, "resolve log path")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	local.SetLogger(log.New(f, "termfour ", log.LstdFlags|log.Lmicroseconds))
	return func() {
		local.SetLogger(nil)
		f.Close()
	}, nil
}
