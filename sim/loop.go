package sim

import (
	"time"

	"github.com/automoto/overworld/systems"
)

// IntentSource supplies the player intent for the next tick.
type IntentSource interface {
	Intent() PlayerIntent
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func() PlayerIntent

func (f IntentFunc) Intent() PlayerIntent { return f() }

// GameLoop steps a simulation on a wall-clock ticker. It owns the only
// goroutine that touches the simulation while running.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	input    IntentSource
	onTick   func([]systems.Event)
	stopChan chan struct{}
	done     chan struct{}
}

func NewGameLoop(s *Simulation, tickRate int, input IntentSource, onTick func([]systems.Event)) *GameLoop {
	return &GameLoop{
		sim:      s,
		tickRate: tickRate,
		input:    input,
		onTick:   onTick,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	defer close(g.done)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.sim.logger.Info("game loop started", "tick_rate", g.tickRate)

	base := g.sim.Now()
	start := time.Now()
	last := start
	for {
		select {
		case <-g.stopChan:
			g.sim.logger.Info("game loop stopped", "now", g.sim.Now())
			return
		case t := <-ticker.C:
			g.tick(t.Sub(last).Seconds(), base+t.Sub(start).Milliseconds())
			last = t
		}
	}
}

// Stop ends Run and waits for the last tick to finish.
func (g *GameLoop) Stop() {
	close(g.stopChan)
	<-g.done
}

func (g *GameLoop) tick(dt float64, now int64) {
	var intent PlayerIntent
	if g.input != nil {
		intent = g.input.Intent()
	}
	events := g.sim.Step(dt, now, intent)
	if g.onTick != nil {
		g.onTick(events)
	}
}

// Advance runs ticks fixed steps of 1/tickRate seconds starting after the
// simulation's current clock, without waiting on real time.
func Advance(s *Simulation, ticks, tickRate int, input IntentSource) []systems.Event {
	var all []systems.Event
	start := s.Now()
	dt := 1 / float64(tickRate)
	for i := 1; i <= ticks; i++ {
		var intent PlayerIntent
		if input != nil {
			intent = input.Intent()
		}
		// Derived from the tick index so the clock never drifts from dt.
		now := start + int64(i)*1000/int64(tickRate)
		all = append(all, s.Step(dt, now, intent)...)
	}
	return all
}
