package sim

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// PlayerIntent is one tick of already-decoded player input.
type PlayerIntent struct {
	MoveX, MoveY float64 // each in [-1, 1]

	Attack     bool // sword pressed this tick
	AttackHeld bool // sword held down; release after the charge time spins
	UseItem    bool
	Run        bool
	Equip      config.Item // ItemNone keeps the current item
}

type phase struct {
	name string
	run  func(donburi.World, *systems.Frame)
}

// stepOrder is the fixed per-frame order. Enemies move before any combat
// check, and the attack hitbox is repositioned right before it is tested.
var stepOrder = []phase{
	{"player", systems.UpdatePlayer},
	{"player movement", systems.UpdatePlayerMovement},
	{"enemies", systems.UpdateEnemies},
	{"enemy movement", systems.UpdateEnemyMovement},
	{"projectiles", systems.UpdateProjectiles},
	{"attacks", systems.UpdateCombatHitboxes},
	{"contact damage", systems.UpdateContactDamage},
	{"drops", systems.UpdateDrops},
	{"expired attacks", systems.RetireExpiredHitboxes},
	{"deaths", systems.UpdateDeaths},
}

// Step advances the world by one frame. dt in seconds drives movement and
// nowMs drives every timer. The returned events describe what happened.
func (s *Simulation) Step(dt float64, nowMs int64, intent PlayerIntent) []systems.Event {
	s.now = nowMs
	f := &systems.Frame{
		Dt:     dt,
		Now:    nowMs,
		Config: s.config,
		Rand:   s.rng,
		Broad:  s.broad,
		Logger: s.logger,
		Events: s.pending,
	}
	s.pending = nil

	s.applyIntent(intent)
	for _, p := range stepOrder {
		p.run(s.world, f)
		s.drain(f)
	}

	s.logEvents(f.Events)
	return f.Events
}

func (s *Simulation) applyIntent(intent PlayerIntent) {
	e, ok := s.playerEntry()
	if !ok {
		return
	}
	components.Input.SetValue(e, components.InputData{
		MoveX:      intent.MoveX,
		MoveY:      intent.MoveY,
		Attack:     intent.Attack,
		AttackHeld: intent.AttackHeld,
		UseItem:    intent.UseItem,
		Run:        intent.Run,
		Equip:      intent.Equip,
	})
}

// drain applies the commands queued by the phase that just ran, including
// any that applying them queues in turn.
func (s *Simulation) drain(f *systems.Frame) {
	for len(f.Commands) > 0 {
		for _, cmd := range f.TakeCommands() {
			s.apply(f, cmd)
		}
	}
}

func (s *Simulation) apply(f *systems.Frame, cmd systems.Command) {
	switch cmd.Kind {
	case systems.CommandSpawnAttack:
		s.spawnAttack(f, cmd)
	case systems.CommandSpawnProjectile:
		e := s.launch(cmd.Position, cmd.Direction, cmd.Projectile, cmd.Side, cmd.Owner)
		f.Emit(systems.Event{
			Kind:     systems.EventProjectileSpawned,
			Entity:   e.Entity(),
			Position: cmd.Position,
			Name:     cmd.Projectile.String(),
		})
	case systems.CommandExplode:
		systems.Explode(s.world, f, cmd.Position, cmd.Damage, cmd.Exclude)
	case systems.CommandSpawnDrop:
		e := factory.CreateDrop(s.world, s.config, cmd.Position, cmd.Drop, f.Now)
		f.Emit(systems.Event{
			Kind:     systems.EventDropSpawned,
			Entity:   e.Entity(),
			Position: cmd.Position,
			Amount:   cmd.Drop.Value,
			Name:     cmd.Drop.Name,
		})
	}
}

func (s *Simulation) spawnAttack(f *systems.Frame, cmd systems.Command) {
	if !s.world.Valid(cmd.Owner) {
		return
	}
	owner := s.world.Entry(cmd.Owner)
	r := systems.AttackRect(f, owner, cmd.Spin)
	hb := factory.CreateHitbox(s.world, cmd.Owner, r, cmd.Damage, cmd.Spin, f.Now, s.config.Player.AttackDuration)
	components.Player.Get(owner).ActiveAttack = hb.Entity()

	name := "sword"
	if cmd.Spin {
		name = "spin"
	}
	f.Emit(systems.Event{Kind: systems.EventAttackStarted, Entity: hb.Entity(), Position: r.Center(), Amount: cmd.Damage, Name: name})
}

func (s *Simulation) logEvents(events []systems.Event) {
	for _, ev := range events {
		var level log.Level
		switch ev.Kind {
		case systems.EventEnemyDied, systems.EventExploded:
			level = log.InfoLevel
		case systems.EventPlayerDied:
			level = log.WarnLevel
		default:
			level = log.DebugLevel
		}
		s.logger.Log(level, ev.Kind.String(), "entity", ev.Entity, "name", ev.Name, "amount", ev.Amount, "now", s.now)
	}
}
