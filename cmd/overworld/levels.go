package main

import (
	"fmt"
	"os"

	"github.com/automoto/overworld/shared/leveldata"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in --levels",
	Long:  `Loads every .tmx file in the levels directory and prints its size and spawns.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagLevelsDir == "" {
		fmt.Fprintf(out, "No --levels directory given; %q is built in.\n", meadowName)
		return nil
	}

	levels, names, err := leveldata.LoadAllLevels(os.DirFS(flagLevelsDir), ".", flagScale)
	if err != nil {
		return err
	}

	// Calculate column widths
	maxNameLen := len("Level")
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Fprintf(out, "  %-*s  %10s  %9s  %7s\n", maxNameLen, "Level", "Size", "Obstacles", "Enemies")
	for _, name := range names {
		l := levels[name]
		size := fmt.Sprintf("%.0fx%.0f", l.MapWidth, l.MapHeight)
		fmt.Fprintf(out, "  %-*s  %10s  %9d  %7d\n", maxNameLen, name, size, len(l.Obstacles), len(l.EnemySpawns))
	}
	return nil
}
