package components

import (
	"github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState config.StateID
	Since        int64 // when CurrentState was entered
}

// Set switches state and records when it happened. Re-entering the current
// state keeps the original time.
func (s *StateData) Set(next config.StateID, now int64) {
	if s.CurrentState == next {
		return
	}
	s.CurrentState = next
	s.Since = now
}

var State = donburi.NewComponentType[StateData]()
