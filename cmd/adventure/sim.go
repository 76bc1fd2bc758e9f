package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/adventure-land/internal/core"
	"github.com/vovakirdan/adventure-land/internal/games/adventure"
	"github.com/vovakirdan/adventure-land/internal/platform/tui"
	"github.com/vovakirdan/adventure-land/internal/storage"
)

var (
	flagSimLevel string
	flagTicks    int
	flagScript   string
	flagShowHash bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted headless session",
	Long: `Runs a session without a terminal UI, one tick per script step,
and prints the journal summary.

A script is a comma separated list of steps: a command letter and an
optional tick count (default 1).
  U/D/L/R - toggle moving forward/back/left/right
  X       - stop
  J       - jump
  F       - fire
  Q/E     - rotate aim left/right
  +/-     - change speed
  P       - toggle pause
  W       - wait

Examples:
  adventure sim --level meadow --script "D10,J,R8,F,W40"
  adventure sim --level causeway --script "R200" --ticks 150 --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLevel, "level", "meadow", "Level ID or path to a level YAML file")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = run the whole script)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script, e.g. \"R20,J,F\"")
	simCmd.Flags().BoolVar(&flagShowHash, "hash", false, "Print the final world hash")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}
	steps, err := adventure.ParseScript(flagScript)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	lvl, err := resolveLevel(flagSimLevel)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	journal, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("open session journal: %w", err)
	}
	defer journal.Close()

	game, err := adventure.New(adventure.Options{
		Config:  cfg,
		Level:   lvl,
		Logger:  logger,
		Journal: journal,
	})
	if err != nil {
		return err
	}
	game.Reset(core.DefaultConfig())

	n := adventure.Play(game, steps, flagTicks)
	game.End()

	out := cmd.OutOrStdout()
	st := game.State()
	fmt.Fprintf(out, "%s: %d ticks, score %d, lives %d", lvl.Name, n, st.Score, max(st.Lives, 0))
	switch {
	case st.Won:
		fmt.Fprint(out, ", goal reached")
	case st.Lost:
		fmt.Fprint(out, ", lost")
	}
	fmt.Fprintln(out)
	if flagShowHash {
		fmt.Fprintf(out, "hash: %016x\n", game.Snapshot().Hash())
	}

	runs, err := journal.Runs()
	if err != nil {
		return err
	}
	fmt.Fprint(out, tui.SummaryTable(runs))
	return nil
}
