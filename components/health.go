package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// Add changes health by delta and clamps it to [0, Max].
func (h *HealthData) Add(delta int) {
	h.Current = gamemath.ClampInt(h.Current+delta, 0, h.Max)
}

// Depleted reports whether the entity has no health left.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

type MagicData struct {
	Current int
	Max     int
}

// Add changes magic by delta and clamps it to [0, Max].
func (m *MagicData) Add(delta int) {
	m.Current = gamemath.ClampInt(m.Current+delta, 0, m.Max)
}

var Health = donburi.NewComponentType[HealthData]()
var Magic = donburi.NewComponentType[MagicData]()
