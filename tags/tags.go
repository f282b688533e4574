package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Projectile = donburi.NewTag().SetName("Projectile")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Drop       = donburi.NewTag().SetName("Drop")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvHitbox     = "Hitbox"
	ResolvProjectile = "Projectile"
	ResolvDrop       = "Drop"
)
