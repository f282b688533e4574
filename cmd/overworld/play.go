package main

import (
	"os"

	"github.com/automoto/overworld/save"
	"github.com/automoto/overworld/sim"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/viewer"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "overworld"

var (
	flagFresh  bool
	flagWidth  int
	flagHeight int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the debug viewer",
	Long: `Opens a window on the level and hands the player to the keyboard or a
gamepad. Progress on the level is saved whenever an enemy falls and when
the window closes.

Controls:
  Arrows/WASD   - Move
  Shift         - Run (needs boots)
  Z/J           - Sword; hold and release to spin
  X/Space       - Use equipped item
  Tab/Q         - Next item
  F3            - Toggle hitboxes
  Esc           - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore and clear saved progress")
	playCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width")
	playCmd.Flags().IntVar(&flagHeight, "height", 720, "Window height")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	s, level, err := newSimulation(logger)
	if err != nil {
		return err
	}

	tracker := newTracker(s, level.Name, logger)
	game := viewer.New(s, viewer.Options{
		Width:    flagWidth,
		Height:   flagHeight,
		Title:    "overworld - " + level.Name,
		Logger:   logger,
		OnEvents: tracker.observe,
	})
	if err := game.Run(); err != nil {
		return err
	}
	tracker.save()
	return nil
}

// tracker counts defeated enemies and writes progress as the run goes.
// Without a store it only counts.
type tracker struct {
	store    *save.Store
	sim      *sim.Simulation
	level    string
	defeated int
	dead     bool
	logger   *log.Logger
}

func newTracker(s *sim.Simulation, level string, logger *log.Logger) *tracker {
	t := &tracker{sim: s, level: level, logger: logger}

	store, err := save.Open(appName, logger)
	if err != nil {
		logger.Warn("progress will not be saved", "err", err)
		return t
	}
	t.store = store

	if flagFresh {
		if err := store.Clear(); err != nil {
			logger.Warn("could not clear progress", "err", err)
		}
		return t
	}

	p, err := store.Load()
	if err != nil {
		logger.Warn("ignoring saved progress", "err", err)
		return t
	}
	if p != nil && p.Level == level {
		save.Restore(s, p)
		t.defeated = p.Defeated
		logger.Info("progress restored", "level", level, "defeated", p.Defeated)
	}
	return t
}

func (t *tracker) observe(events []systems.Event) {
	for _, e := range events {
		switch e.Kind {
		case systems.EventEnemyDied:
			t.defeated++
			t.save()
		case systems.EventPlayerDied:
			t.dead = true
			if t.store != nil {
				if err := t.store.Clear(); err != nil {
					t.logger.Warn("could not clear progress", "err", err)
				}
			}
		}
	}
}

func (t *tracker) save() {
	if t.store == nil || t.dead {
		return
	}
	if err := t.store.Save(save.Capture(t.sim, t.level, t.defeated)); err != nil {
		t.logger.Warn("could not save progress", "err", err)
	}
}
