package config

// Lengths are world units unless the field name ends in Tiles, durations are
// milliseconds and speeds are world units per second.

// WorldConfig holds grid and stepping values shared by every system.
type WorldConfig struct {
	TileSize    float64 `yaml:"tile_size"`
	WidthTiles  int     `yaml:"width_tiles"`
	HeightTiles int     `yaml:"height_tiles"`
	SpaceCell   int     `yaml:"space_cell"`

	// MaxStep is the longest displacement resolved in one collision pass.
	// Longer moves are split so nothing tunnels through a tile.
	MaxStep  float64 `yaml:"max_step"`
	TickRate int     `yaml:"tick_rate"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed            float64 `yaml:"speed"`
	RunMultiplier    float64 `yaml:"run_multiplier"`
	RunRequiresBoots bool    `yaml:"run_requires_boots"`

	// Vitals
	Health    int `yaml:"health"`
	MaxHealth int `yaml:"max_health"`
	Magic     int `yaml:"magic"`
	MaxMagic  int `yaml:"max_magic"`

	// Timers
	AttackCooldown        int64 `yaml:"attack_cooldown"`
	AttackDuration        int64 `yaml:"attack_duration"`
	SpinChargeTime        int64 `yaml:"spin_charge_time"`
	ItemCooldown          int64 `yaml:"item_cooldown"`
	InvincibilityDuration int64 `yaml:"invincibility_duration"`

	Knockback float64 `yaml:"knockback"`

	// Dimensions
	SpriteSize  float64 `yaml:"sprite_size"`
	HitboxInset float64 `yaml:"hitbox_inset"`

	// Inventory
	StartingItems    []string `yaml:"starting_items"`
	StartingEquipped string   `yaml:"starting_equipped"`
	StartingBombs    int      `yaml:"starting_bombs"`
	StartingArrows   int      `yaml:"starting_arrows"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     string  `yaml:"name"`
	Health   int     `yaml:"health"`
	Damage   int     `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Behavior string  `yaml:"behavior"`
	CanShoot bool    `yaml:"can_shoot"`

	SpriteSize  float64 `yaml:"sprite_size"`
	HitboxInset float64 `yaml:"hitbox_inset"`
}

// EnemyConfig contains the archetype table and the tuning shared by every
// behaviour.
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`

	// Ranges
	SightTiles          float64 `yaml:"sight_tiles"`
	LoseInterestTiles   float64 `yaml:"lose_interest_tiles"`
	AttackRangeTiles    float64 `yaml:"attack_range_tiles"`
	AttackLeash         float64 `yaml:"attack_leash"`
	ShootRangeTiles     float64 `yaml:"shoot_range_tiles"`
	ChargeRangeTiles    float64 `yaml:"charge_range_tiles"`
	ChargeCorridorTiles float64 `yaml:"charge_corridor_tiles"`
	AwakenTiles         float64 `yaml:"awaken_tiles"`
	JumpRangeTiles      float64 `yaml:"jump_range_tiles"`

	// Timers
	StunDuration   int64 `yaml:"stun_duration"`
	AttackCooldown int64 `yaml:"attack_cooldown"`
	ShootCooldown  int64 `yaml:"shoot_cooldown"`
	PatrolMin      int64 `yaml:"patrol_min"`
	PatrolMax      int64 `yaml:"patrol_max"`
	JumpMin        int64 `yaml:"jump_min"`
	JumpMax        int64 `yaml:"jump_max"`

	// Behaviour shaping
	ChargeSpeed   float64 `yaml:"charge_speed"`
	ElectricSpeed float64 `yaml:"electric_speed"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	JumpScatter   float64 `yaml:"jump_scatter"`
	JumpDecay     float64 `yaml:"jump_decay"`
	FlyJitter     float64 `yaml:"fly_jitter"`

	Knockback float64 `yaml:"knockback"`
}

// CombatConfig contains combat-related configuration
type CombatConfig struct {
	SwordDamage     int     `yaml:"sword_damage"`
	SpinDamage      int     `yaml:"spin_damage"`
	SwordReachTiles float64 `yaml:"sword_reach_tiles"`
	SwordWidthTiles float64 `yaml:"sword_width_tiles"`
	SpinSizeTiles   float64 `yaml:"spin_size_tiles"`

	KnockbackResistance float64 `yaml:"knockback_resistance"`
	KnockbackThreshold  float64 `yaml:"knockback_threshold"`

	// RehitWhileActive lets one sword swing damage the same enemy on every
	// tick it overlaps. Off, each swing hits an enemy at most once.
	RehitWhileActive bool `yaml:"rehit_while_active"`

	BombAreaDamage  bool    `yaml:"bomb_area_damage"`
	BombRadiusTiles float64 `yaml:"bomb_radius_tiles"`
}

// ProjectileTypeConfig describes one projectile kind.
type ProjectileTypeConfig struct {
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Lifetime int64   `yaml:"lifetime"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// ProjectileConfig holds the per-kind table and boomerang tuning.
type ProjectileConfig struct {
	Types map[string]ProjectileTypeConfig `yaml:"types"`

	BoomerangReturnSpeed float64 `yaml:"boomerang_return_speed"`
	BoomerangCatchRadius float64 `yaml:"boomerang_catch_radius"`
}

// ItemConfig holds magic costs per item.
type ItemConfig struct {
	MagicCost map[string]int `yaml:"magic_cost"`
}

// DropTypeConfig is one row of the enemy drop table.
type DropTypeConfig struct {
	Name   string  `yaml:"name"`
	Effect string  `yaml:"effect"` // health, magic, bombs or arrows
	Value  int     `yaml:"value"`
	Chance float64 `yaml:"chance"`
}

// DropConfig controls what a dying enemy leaves behind. Table rows are
// rolled in order against one uniform draw; the leftover chance drops
// nothing.
type DropConfig struct {
	Table    []DropTypeConfig `yaml:"table"`
	Lifetime int64            `yaml:"lifetime"`
	Size     float64          `yaml:"size"`
}

// Config is the full set of tuning values for one simulation.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Combat     CombatConfig     `yaml:"combat"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Items      ItemConfig       `yaml:"items"`
	Drops      DropConfig       `yaml:"drops"`
}

// Tiles converts a length in tiles to world units.
func (c *Config) Tiles(n float64) float64 {
	return n * c.World.TileSize
}

// EnemyType returns the archetype entry for name, falling back to the
// default archetype. ok is false when the fallback was used.
func (c *Config) EnemyType(name string) (t EnemyTypeConfig, resolved string, ok bool) {
	if t, found := c.Enemy.Types[name]; found {
		return t, name, true
	}
	return c.Enemy.Types[c.Enemy.DefaultType], c.Enemy.DefaultType, false
}

// ProjectileType returns the entry for kind, falling back to the generic one.
func (c *Config) ProjectileType(kind ProjectileKind) ProjectileTypeConfig {
	if t, ok := c.Projectile.Types[kind.String()]; ok {
		return t
	}
	return c.Projectile.Types[ProjectileGeneric.String()]
}

// C is the process-wide configuration used when a caller supplies none.
var C *Config

func init() {
	C = Default()
}

// Default returns a fresh configuration with the built-in tuning.
func Default() *Config {
	const (
		scale = 3.0
		tile  = 16 * scale
		fps   = 60.0
	)
	// perFrame converts the classic per-frame speeds to units per second.
	perFrame := func(s float64) float64 { return s * scale * fps }

	enemy := func(name string, health, damage int, speed float64, behavior string, canShoot bool) EnemyTypeConfig {
		return EnemyTypeConfig{
			Name:        name,
			Health:      health,
			Damage:      damage,
			Speed:       perFrame(speed),
			Behavior:    behavior,
			CanShoot:    canShoot,
			SpriteSize:  tile,
			HitboxInset: 4,
		}
	}

	return &Config{
		World: WorldConfig{
			TileSize:    tile,
			WidthTiles:  64,
			HeightTiles: 64,
			SpaceCell:   int(tile),
			MaxStep:     tile / 4,
			TickRate:    60,
		},
		Player: PlayerConfig{
			Speed:                 perFrame(3),
			RunMultiplier:         2,
			RunRequiresBoots:      true,
			Health:                6,
			MaxHealth:             20,
			Magic:                 32,
			MaxMagic:              128,
			AttackCooldown:        300,
			AttackDuration:        200,
			SpinChargeTime:        1000,
			ItemCooldown:          300,
			InvincibilityDuration: 1000,
			Knockback:             20,
			SpriteSize:            tile,
			HitboxInset:           8,
			StartingItems:         []string{"bombs", "bow", "boomerang"},
			StartingEquipped:      "boomerang",
			StartingBombs:         10,
			StartingArrows:        30,
		},
		Enemy: EnemyConfig{
			Types: map[string]EnemyTypeConfig{
				SoldierGreen: enemy(SoldierGreen, 4, 2, 1, "patrol", false),
				SoldierBlue:  enemy(SoldierBlue, 6, 2, 1.5, "chase", false),
				Octorok:      enemy(Octorok, 2, 2, 1, "shoot", true),
				Moblin:       enemy(Moblin, 6, 4, 1, "shoot", true),
				Keese:        enemy(Keese, 1, 1, 2, "fly", false),
				Stalfos:      enemy(Stalfos, 4, 2, 1, "wander", false),
				Rope:         enemy(Rope, 2, 2, 3, "charge", false),
				Tektite:      enemy(Tektite, 2, 2, 1, "jump", false),
				Armos:        enemy(Armos, 6, 2, 0.5, "awaken", false),
				Buzzblob:     enemy(Buzzblob, 2, 2, 0.5, "electric", false),
			},
			DefaultType: SoldierGreen,

			SightTiles:          8,
			LoseInterestTiles:   12,
			AttackRangeTiles:    1.5,
			AttackLeash:         1.5,
			ShootRangeTiles:     6,
			ChargeRangeTiles:    6,
			ChargeCorridorTiles: 1,
			AwakenTiles:         2,
			JumpRangeTiles:      6,

			StunDuration:   500,
			AttackCooldown: 1000,
			ShootCooldown:  2000,
			PatrolMin:      1000,
			PatrolMax:      3000,
			JumpMin:        800,
			JumpMax:        1500,

			ChargeSpeed:   perFrame(3) * 1.5,
			ElectricSpeed: scale * 0.5 * fps,
			JumpImpulse:   3,
			JumpScatter:   2,
			JumpDecay:     0.95,
			FlyJitter:     0.3,

			Knockback: 10,
		},
		Combat: CombatConfig{
			SwordDamage:     2,
			SpinDamage:      4,
			SwordReachTiles: 1,
			SwordWidthTiles: 2,
			SpinSizeTiles:   2.5,

			KnockbackResistance: 0.9,
			KnockbackThreshold:  0.5,

			BombRadiusTiles: 2,
		},
		Projectile: ProjectileConfig{
			Types: map[string]ProjectileTypeConfig{
				ProjectileArrow.String():     {Speed: 8 * fps, Damage: 4, Lifetime: 2000, Width: 8 * scale, Height: 4 * scale},
				ProjectileBomb.String():      {Speed: 0, Damage: 8, Lifetime: 3000, Width: 12 * scale, Height: 12 * scale},
				ProjectileBoomerang.String(): {Speed: 6 * fps, Damage: 0, Lifetime: 1500, Width: 8 * scale, Height: 8 * scale},
				ProjectileHookshot.String():  {Speed: 10 * fps, Damage: 2, Lifetime: 500, Width: 8 * scale, Height: 8 * scale},
				ProjectileFire.String():      {Speed: 7 * fps, Damage: 8, Lifetime: 800, Width: 8 * scale, Height: 8 * scale},
				ProjectileIce.String():       {Speed: 7 * fps, Damage: 8, Lifetime: 800, Width: 8 * scale, Height: 8 * scale},
				ProjectileRock.String():      {Speed: 5 * fps, Damage: 2, Lifetime: 1500, Width: 8 * scale, Height: 8 * scale},
				ProjectileGeneric.String():   {Speed: 5 * fps, Damage: 2, Lifetime: 1000, Width: 8 * scale, Height: 8 * scale},
			},
			BoomerangReturnSpeed: 6 * fps,
			BoomerangCatchRadius: tile / 2,
		},
		Items: ItemConfig{
			MagicCost: map[string]int{
				ItemFireRod.String(): 4,
				ItemIceRod.String():  4,
			},
		},
		Drops: DropConfig{
			Table: []DropTypeConfig{
				{Name: "heart", Effect: "health", Value: 2, Chance: 0.25},
				{Name: "magic_jar", Effect: "magic", Value: 8, Chance: 0.05},
				{Name: "bomb", Effect: "bombs", Value: 1, Chance: 0.02},
				{Name: "arrow", Effect: "arrows", Value: 1, Chance: 0.02},
				{Name: "fairy", Effect: "health", Value: 8, Chance: 0.01},
			},
			Lifetime: 8000,
			Size:     tile * 0.8,
		},
	}
}
