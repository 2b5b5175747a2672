// termchess is a terminal chess board for two players at one keyboard. A game
// ends when a king is captured.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"termchess/cli"
	"termchess/config"
	"termchess/session"
	"termchess/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagOrientation = flag.String("orientation", "", "Side at the bottom of the board (white or black)")
	flagHints       = flag.String("hints", "", "Highlight legal moves (on or off)")
	flagPlain       = flag.Bool("plain", false, "Use the line-mode interface instead of the full screen board")
	flagQuickStart  = flag.Bool("play", false, "Start game immediately, skipping the setup screen")
	flagFocus       = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.ChessBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termchess %s\n", Version)
		return
	}
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exit.
func run() int {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cfg.Override(*flagOrientation, *flagHints); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, logCloser, err := config.OpenLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %s\n", err)
	}
	defer logCloser.Close()

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	logger.Info().Str("version", Version).Bool("tty", stdinTTY && stdoutTTY).Msg("starting")

	sess := session.New(logger)

	if *flagPlain || !stdinTTY || !stdoutTTY {
		err = runLineMode(sess, logger, stdinTTY, stdoutTTY)
	} else {
		err = runBoard(sess)
	}
	if err != nil {
		logger.Error().Err(err).Msg("exiting")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runLineMode plays through the prompt. Interactive terminals get line editing
// and history; pipes are read line by line.
func runLineMode(sess *session.Session, logger zerolog.Logger, stdinTTY, stdoutTTY bool) error {
	opts := cli.RenderOptions{
		Flipped:        cfg.Game.Orientation == "black",
		ShowLegalMoves: cfg.Game.ShowLegalMoves,
		Plain:          !stdoutTTY,
		Symbols:        cfg.Theme.Symbols,
	}

	if !stdinTTY {
		return cli.Run(cli.NewRegistry(sess, os.Stdout, opts), cli.NewPlainReader(os.Stdin))
	}

	history, err := config.HistoryFile()
	if err != nil {
		logger.Warn().Err(err).Msg("no input history")
		history = ""
	}
	rl, err := cli.NewReadline(history)
	if err != nil {
		return fmt.Errorf("start line editor: %w", err)
	}
	defer rl.Close()

	return cli.Run(cli.NewRegistry(sess, rl.Stdout(), opts), rl)
}

func runBoard(sess *session.Session) error {
	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ♞ termchess ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewChessBoard(cfg, gameHint, sess)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			clickCursor()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				clickCursor()
			case 'n':
				gameBoard.NewGame()
			case 'x':
				gameBoard.Flip()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		ui.GameOptions{
			Flipped:        cfg.Game.Orientation == "black",
			ShowLegalMoves: cfg.Game.ShowLegalMoves,
		},
		startGame,
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)
	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return event
	})

	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		gameBoard.SetConfig(cfg)
		if err != nil {
			showError(fmt.Sprintf("Failed to save colours:\n%s", err))
			return
		}
		rootPage.SwitchToPage("setup")
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

	quickStart := *flagQuickStart || *flagFocus

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI, 52), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(setupUI.Options())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	return app.SetRoot(rootPage, true).Run()
}

// startGame starts a fresh game with the options chosen on the setup screen.
func startGame(opts ui.GameOptions) {
	gameBoard.SetFlipped(opts.Flipped)
	gameBoard.SetShowLegalMoves(opts.ShowLegalMoves)
	gameBoard.NewGame()
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}

func clickCursor() {
	tile := gameBoard.SelectedTile()
	if tile == nil {
		gameBoard.MoveSelection(0, 0)
		return
	}
	gameBoard.PlayMove(tile.X, tile.Y)
}

func showError(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
			rootPage.SwitchToPage("setup")
		})
	rootPage.AddPage("error", modal, true, true)
}
