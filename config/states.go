package config

// StateID is the core state of an enemy's behaviour machine.
type StateID int

const (
	StatePatrol StateID = iota
	StateChase
	StateAttack
	StateStunned
	StateDying
)

func (s StateID) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateStunned:
		return "stunned"
	case StateDying:
		return "dying"
	}
	return "unknown"
}

// Enemy archetype names.
const (
	SoldierGreen = "soldier_green"
	SoldierBlue  = "soldier_blue"
	Octorok      = "octorok"
	Moblin       = "moblin"
	Keese        = "keese"
	Stalfos      = "stalfos"
	Rope         = "rope"
	Tektite      = "tektite"
	Armos        = "armos"
	Buzzblob     = "buzzblob"
)

// Behavior selects the intent generator an enemy runs each tick.
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorChase
	BehaviorShoot
	BehaviorFly
	BehaviorCharge
	BehaviorJump
	BehaviorWander
	BehaviorAwaken
	BehaviorElectric
)

var behaviorNames = [...]string{
	BehaviorPatrol:   "patrol",
	BehaviorChase:    "chase",
	BehaviorShoot:    "shoot",
	BehaviorFly:      "fly",
	BehaviorCharge:   "charge",
	BehaviorJump:     "jump",
	BehaviorWander:   "wander",
	BehaviorAwaken:   "awaken",
	BehaviorElectric: "electric",
}

func (b Behavior) String() string {
	if int(b) < len(behaviorNames) {
		return behaviorNames[b]
	}
	return "unknown"
}

// ParseBehavior maps a behaviour name to its kind. Unknown names yield
// BehaviorPatrol and ok=false.
func ParseBehavior(name string) (b Behavior, ok bool) {
	if name == "throw" {
		return BehaviorShoot, true
	}
	for i, n := range behaviorNames {
		if n == name {
			return Behavior(i), true
		}
	}
	return BehaviorPatrol, false
}

// ProjectileKind identifies a projectile archetype.
type ProjectileKind int

const (
	ProjectileGeneric ProjectileKind = iota
	ProjectileArrow
	ProjectileBomb
	ProjectileBoomerang
	ProjectileHookshot
	ProjectileFire
	ProjectileIce
	ProjectileRock
)

var projectileNames = [...]string{
	ProjectileGeneric:   "generic",
	ProjectileArrow:     "arrow",
	ProjectileBomb:      "bomb",
	ProjectileBoomerang: "boomerang",
	ProjectileHookshot:  "hookshot",
	ProjectileFire:      "fire",
	ProjectileIce:       "ice",
	ProjectileRock:      "rock",
}

func (k ProjectileKind) String() string {
	if int(k) < len(projectileNames) {
		return projectileNames[k]
	}
	return "generic"
}

// ParseProjectileKind maps a name to its kind, falling back to generic.
func ParseProjectileKind(name string) (ProjectileKind, bool) {
	for i, n := range projectileNames {
		if n == name {
			return ProjectileKind(i), true
		}
	}
	return ProjectileGeneric, false
}

// HitBehavior is what a projectile does when it strikes something.
type HitBehavior int

const (
	HitDestroy HitBehavior = iota
	HitExplode
	HitPassThrough
)

// OnHit returns the collision behaviour for k.
func (k ProjectileKind) OnHit() HitBehavior {
	switch k {
	case ProjectileBomb:
		return HitExplode
	case ProjectileBoomerang:
		return HitPassThrough
	default:
		return HitDestroy
	}
}

// Side tells which team owns a projectile.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Terrain tags an obstacle. Every terrain blocks movement.
type Terrain int

const (
	TerrainSolid Terrain = iota
	TerrainWater
	TerrainPit
)

func (t Terrain) String() string {
	switch t {
	case TerrainWater:
		return "water"
	case TerrainPit:
		return "pit"
	default:
		return "solid"
	}
}

// ParseTerrain maps a terrain name, treating anything unknown as solid.
func ParseTerrain(name string) Terrain {
	switch name {
	case "water":
		return TerrainWater
	case "pit":
		return TerrainPit
	default:
		return TerrainSolid
	}
}

// Item is an equippable inventory slot.
type Item int

const (
	ItemNone Item = iota
	ItemBombs
	ItemBow
	ItemBoomerang
	ItemHookshot
	ItemFireRod
	ItemIceRod
	ItemBoots
)

var itemNames = [...]string{
	ItemNone:      "none",
	ItemBombs:     "bombs",
	ItemBow:       "bow",
	ItemBoomerang: "boomerang",
	ItemHookshot:  "hookshot",
	ItemFireRod:   "fire_rod",
	ItemIceRod:    "ice_rod",
	ItemBoots:     "boots",
}

func (i Item) String() string {
	if int(i) < len(itemNames) {
		return itemNames[i]
	}
	return "none"
}

// ParseItem maps an item name, returning ItemNone for unknown names.
func ParseItem(name string) Item {
	for i, n := range itemNames {
		if n == name {
			return Item(i)
		}
	}
	return ItemNone
}

// Projectile returns the projectile an item launches, if any.
func (i Item) Projectile() (ProjectileKind, bool) {
	switch i {
	case ItemBombs:
		return ProjectileBomb, true
	case ItemBow:
		return ProjectileArrow, true
	case ItemBoomerang:
		return ProjectileBoomerang, true
	case ItemHookshot:
		return ProjectileHookshot, true
	case ItemFireRod:
		return ProjectileFire, true
	case ItemIceRod:
		return ProjectileIce, true
	}
	return ProjectileGeneric, false
}

// DropEffect is what collecting a drop does to the player.
type DropEffect int

const (
	DropHealth DropEffect = iota
	DropMagic
	DropBombs
	DropArrows
)

var dropEffectNames = [...]string{
	DropHealth: "health",
	DropMagic:  "magic",
	DropBombs:  "bombs",
	DropArrows: "arrows",
}

func (d DropEffect) String() string {
	if int(d) < len(dropEffectNames) {
		return dropEffectNames[d]
	}
	return "unknown"
}

// ParseDropEffect maps an effect name from configuration.
func ParseDropEffect(name string) (DropEffect, bool) {
	for i, n := range dropEffectNames {
		if n == name {
			return DropEffect(i), true
		}
	}
	return DropHealth, false
}
