// adventure is a terminal 3D tile platformer.
//
// Usage:
//
//	adventure play [--level id]   - Play a level (picker when no level is given)
//	adventure sim --script ...    - Run a scripted headless session
//	adventure levels              - List available levels
//	adventure config [--init]     - Show or write the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--levels-dir <dir>    - Load levels from a directory instead of the builtin set
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/adventure-land/internal/config"
	"github.com/vovakirdan/adventure-land/internal/games/adventure/levels"
)

var (
	// Global flags
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Adventure Land - a 3D tile platformer in your terminal",
	Long: `Adventure Land is a platformer played on a grid of floating tiles.
Collect the bonuses, avoid or shoot the hostiles and reach the goal
without falling into the water.

Available commands:
  play     - Play a level
  sim      - Run a scripted headless session
  levels   - List available levels
  config   - Show or initialise the configuration

Examples:
  adventure play
  adventure play --level causeway --difficulty hard
  adventure sim --level meadow --script "D10,J,R8,F" --ticks 500
  adventure config --init`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level YAML files (default: builtin levels)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.AdventureConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AdventureConfig{}, "", err
	}
	cfg, src, err := config.LoadAdventureFrom(flagConfig)
	if err != nil {
		return config.AdventureConfig{}, "", err
	}
	config.ApplyAdventurePreset(&cfg, preset)
	return cfg, src, nil
}

// levelLoader returns the loader selected by --levels-dir.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewLoader(flagLevelsDir)
	}
	return levels.Builtin()
}

// resolveLevel loads a level by ID, or by path when ref names a YAML file.
func resolveLevel(ref string) (levels.Level, error) {
	ext := strings.ToLower(filepath.Ext(ref))
	if ext == ".yaml" || ext == ".yml" {
		return levels.NewLoader(filepath.Dir(ref)).LoadFile(filepath.Base(ref))
	}
	return levelLoader().LoadByID(ref)
}

// newLogger creates the application logger. It writes to --log-file when
// set and to fallback otherwise. The returned close func releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "adventure",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
