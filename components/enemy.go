package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName  string // "soldier_green", "octorok" etc...
	Behavior  cfg.Behavior
	CanShoot  bool
	Damage    int
	BaseSpeed float64
	Speed     float64 // Current speed; charge and electric behaviours change it

	Alerted bool
	Intent  gamemath.Vec

	// Timers, all absolute milliseconds. The Next* fields hold the time a
	// cooldown elapses.
	NextAction   int64
	NextAttack   int64
	NextShot     int64
	StunStart    int64
	StunDuration int64

	// AttackReady is set on the tick the melee cooldown elapses in the
	// attack state. Damage itself comes from hitbox overlap.
	AttackReady bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
