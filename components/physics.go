package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

// KnockbackData is a per-tick displacement that decays geometrically and is
// added to the entity's regular motion.
type KnockbackData struct {
	Velocity gamemath.Vec
}

var Knockback = donburi.NewComponentType[KnockbackData]()
