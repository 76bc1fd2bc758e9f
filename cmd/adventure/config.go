package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/adventure-land/internal/config"
)

var (
	flagInit  bool
	flagForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the configuration",
	Long: `Prints the effective configuration (after --config and --difficulty)
and where it was loaded from.

With --init, writes the default configuration to
~/.adventure/configs/adventure.yaml, or to --config when given.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default config file")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file with --init")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagInit {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if path == "" {
			return errors.New("cannot locate home directory, pass --config")
		}
		if err := config.WriteDefault(path, flagForce); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote default config to %s\n", path)
		return nil
	}

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", src)
	if flagDifficulty != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", flagDifficulty)
	}
	_, err = out.Write(data)
	return err
}
