package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/automoto/overworld/sim"
	"github.com/automoto/overworld/systems"
	"github.com/spf13/cobra"
)

var (
	flagTicks    int
	flagAutoplay bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a level without a window",
	Long: `Steps the level a fixed number of ticks as fast as possible and prints
how many of each event happened.

With --autoplay the player walks a square and swings the sword once a
second; otherwise the player stands still.`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	headlessCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Drive the player with a scripted walk")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	s, level, err := newSimulation(logger)
	if err != nil {
		return err
	}

	tickRate := s.Config().World.TickRate
	var input sim.IntentSource
	if flagAutoplay {
		input = autoplay(tickRate)
	}
	events := sim.Advance(s, flagTicks, tickRate, input)

	logger.Info("run finished", "level", level.Name, "ticks", flagTicks, "now", s.Now())
	printSummary(cmd, s, events)
	return nil
}

// autoplay walks the player a square, one side per second, and swings on
// the first tick of each side.
func autoplay(tickRate int) sim.IntentSource {
	dirs := [4][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	tick := 0
	return sim.IntentFunc(func() sim.PlayerIntent {
		side := (tick / tickRate) % len(dirs)
		intent := sim.PlayerIntent{
			MoveX:  dirs[side][0],
			MoveY:  dirs[side][1],
			Attack: tick%tickRate == 0,
		}
		tick++
		return intent
	})
}

func printSummary(cmd *cobra.Command, s *sim.Simulation, events []systems.Event) {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Kind.String()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	out := cmd.OutOrStdout()
	p := s.Player()
	fmt.Fprintf(out, "player: hp %d/%d  mp %d/%d  dead %t\n", p.Health, p.MaxHealth, p.Magic, p.MaxMagic, p.Dead)
	fmt.Fprintf(out, "enemies left: %d\n", len(s.Enemies()))
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-20s %d\n", k, counts[k])
	}
}
