package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind     cfg.ProjectileKind
	Side     cfg.Side
	Damage   int
	Position gamemath.Vec // centre
	Velocity gamemath.Vec
	Spawned  int64
	Lifetime int64
	Retired  bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
