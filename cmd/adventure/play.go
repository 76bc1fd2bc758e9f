package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/adventure-land/internal/core"
	"github.com/vovakirdan/adventure-land/internal/games/adventure"
	"github.com/vovakirdan/adventure-land/internal/games/adventure/levels"
	"github.com/vovakirdan/adventure-land/internal/platform/tui"
	"github.com/vovakirdan/adventure-land/internal/storage"
)

var (
	flagLevel  string
	flagFPS    int
	flagBrowse bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start a session. Without --level a level picker is shown.

Controls:
  Arrows/WASD - Start or stop moving in a direction
  X           - Stop
  Space       - Jump
  Q/E         - Rotate aim
  F           - Fire
  +/-         - Change speed
  P           - Pause
  R           - Restart (after the session ends)
  ?           - Toggle help
  Esc/Ctrl+C  - Quit

Difficulty options:
  easy   - 5 lives, slower hostiles
  normal - config as written
  hard   - 1 life, faster hostiles
  fixed  - config as written

Examples:
  adventure play
  adventure play --level meadow --difficulty easy
  adventure play --level ./my-level.yaml --log-file adventure.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID or path to a level YAML file")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate of the terminal loop")
	playCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the session journal after playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var lvl levels.Level
	if flagLevel != "" {
		lvl, err = resolveLevel(flagLevel)
		if err != nil {
			return err
		}
	} else {
		all, err := levelLoader().LoadAll()
		if err != nil {
			return err
		}
		var chosen bool
		lvl, chosen, err = tui.RunLevelMenu(all, width, height)
		if err != nil {
			return err
		}
		if !chosen {
			return nil
		}
	}

	// The terminal belongs to the UI, logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	journal, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open session journal: %v\n", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	game, err := adventure.New(adventure.Options{
		Config:  cfg,
		Level:   lvl,
		Logger:  logger,
		Journal: journal,
	})
	if err != nil {
		return err
	}

	state, err := tui.Run(game, core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
	})
	game.End()
	if err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case state.Won:
		fmt.Fprintf(out, "Goal reached with %d bonuses!\n", state.Score)
	case state.Lost:
		fmt.Fprintf(out, "Game over. Score: %d\n", state.Score)
	default:
		fmt.Fprintf(out, "Session ended. Score: %d\n", state.Score)
	}

	if game.Journal() == nil {
		return nil
	}
	if flagBrowse {
		return tui.RunSummary(game.Journal(), width, height)
	}
	runs, err := game.Journal().Runs()
	if err != nil {
		return err
	}
	fmt.Fprint(out, tui.SummaryTable(runs))
	return nil
}
