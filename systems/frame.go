package systems

import (
	"math/rand"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// Frame is everything a system reads or produces during one step. Systems
// never call back into the orchestrator: they append commands and events,
// and the orchestrator drains them.
type Frame struct {
	Dt     float64 // seconds, drives spatial integration
	Now    int64   // milliseconds, drives every timer
	Config *config.Config
	Rand   *rand.Rand
	Broad  *Broadphase
	Logger *log.Logger

	Commands []Command
	Events   []Event
}

func (f *Frame) Push(c Command) { f.Commands = append(f.Commands, c) }
func (f *Frame) Emit(e Event) { f.Events = append(f.Events, e) }

// TakeCommands returns the pending commands and clears the queue.
func (f *Frame) TakeCommands() []Command {
	cmds := f.Commands
	f.Commands = nil
	return cmds
}

type CommandKind int

const (
	CommandSpawnAttack CommandKind = iota
	CommandSpawnProjectile
	CommandExplode
	CommandSpawnDrop
)

// Command is a request from an entity update for the orchestrator to act on.
type Command struct {
	Kind       CommandKind
	Owner      donburi.Entity
	Position   gamemath.Vec
	Direction  gamemath.Vec
	Projectile config.ProjectileKind
	Side       config.Side
	Spin       bool
	Damage     int
	Exclude    donburi.Entity // entity already struck directly by an exploding bomb
	Drop       config.DropTypeConfig
}

type EventKind int

const (
	EventAttackStarted EventKind = iota
	EventProjectileSpawned
	EventProjectileRetired
	EventBoomerangCaught
	EventExploded
	EventEnemySpawned
	EventEnemyDamaged
	EventEnemyDied
	EventEnemyAlerted
	EventEnemyAttackReady
	EventPlayerDamaged
	EventPlayerDied
	EventDropSpawned
	EventDropCollected
)

var eventNames = [...]string{
	EventAttackStarted:     "attack_started",
	EventProjectileSpawned: "projectile_spawned",
	EventProjectileRetired: "projectile_retired",
	EventBoomerangCaught:   "boomerang_caught",
	EventExploded:          "exploded",
	EventEnemySpawned:      "enemy_spawned",
	EventEnemyDamaged:      "enemy_damaged",
	EventEnemyDied:         "enemy_died",
	EventEnemyAlerted:      "enemy_alerted",
	EventEnemyAttackReady:  "enemy_attack_ready",
	EventPlayerDamaged:     "player_damaged",
	EventPlayerDied:        "player_died",
	EventDropSpawned:       "drop_spawned",
	EventDropCollected:     "drop_collected",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event reports something that happened during a step, for presentation
// collaborators.
type Event struct {
	Kind     EventKind
	Entity   donburi.Entity
	Position gamemath.Vec
	Amount   int
	Name     string
}
