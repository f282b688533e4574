// overworld runs a tile-based action-adventure simulation.
//
// Usage:
//
//	overworld play       - Open the debug viewer on a level
//	overworld headless   - Step a level without a window and print a summary
//	overworld levels     - List the levels in a directory
//
// Global flags:
//
//	--config <path>     - YAML file overriding the built-in tuning
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--seed <value>      - RNG seed for reproducible runs
//	--levels <dir>      - Directory of .tmx levels (default: built-in meadow)
//	--level <name>      - Level to load from --levels
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/sim"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const meadowName = "meadow"

var (
	// Global flags
	flagConfig    string
	flagLogLevel  string
	flagSeed      int64
	flagLevelsDir string
	flagLevel     string
	flagScale     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "overworld",
	Short: "Overworld - a top-down action-adventure simulation",
	Long: `Overworld steps a tile-based world of a sword-wielding player,
patrolling enemies and flying projectiles.

Available commands:
  play      - Open the debug viewer
  headless  - Run a level without a window
  levels    - List levels in a directory

Examples:
  overworld play
  overworld play --levels ./levels --level cave
  overworld headless --ticks 3600 --seed 42
  overworld levels --levels ./levels`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "RNG seed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of .tmx levels (empty = built-in meadow)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level name inside --levels (empty = first)")
	rootCmd.PersistentFlags().Float64Var(&flagScale, "scale", 3, "Map pixels to world units multiplier for .tmx levels")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "overworld",
		Level:           level,
	}), nil
}

// newSimulation loads the configuration and the selected level.
func newSimulation(logger *log.Logger) (*sim.Simulation, *leveldata.CollisionData, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	level, err := loadLevel(cfg)
	if err != nil {
		return nil, nil, err
	}
	s, err := sim.New(level,
		sim.WithConfig(cfg),
		sim.WithLogger(logger),
		sim.WithSeed(flagSeed))
	if err != nil {
		return nil, nil, err
	}
	return s, level, nil
}

// loadLevel returns the level chosen by the flags, or the built-in meadow
// when no levels directory is given.
func loadLevel(cfg *config.Config) (*leveldata.CollisionData, error) {
	if flagLevelsDir == "" {
		return leveldata.ParseASCII(meadowName, leveldata.Meadow, cfg.World.TileSize)
	}

	fsys := os.DirFS(flagLevelsDir)
	if flagLevel != "" {
		return leveldata.LoadCollisionData(fsys, flagLevel+".tmx", flagScale)
	}
	levels, names, err := leveldata.LoadAllLevels(fsys, ".", flagScale)
	if err != nil {
		return nil, err
	}
	return levels[names[0]], nil
}
