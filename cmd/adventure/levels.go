package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long:  `Shows the builtin levels, or the levels found under --levels-dir.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	all, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Fprintf(out, "  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range all {
		fmt.Fprintf(out, "  %-*s  %-20s  %dx%d, %d hostiles, %d bonuses\n",
			maxIDLen, l.ID, l.Name, l.Rows, l.Cols, len(l.Hostiles), len(l.Bonuses))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'adventure play --level <id>' to play a level.")
	return nil
}
