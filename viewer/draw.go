package viewer

import (
	"fmt"
	"image/color"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fx"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorGrass      = color.RGBA{72, 140, 64, 255}
	colorSolid      = color.RGBA{100, 100, 100, 255}
	colorWater      = color.RGBA{48, 96, 200, 255}
	colorPit        = color.RGBA{24, 16, 16, 255}
	colorPlayer     = color.RGBA{0, 0, 255, 255}
	colorEnemy      = color.RGBA{255, 0, 0, 255}
	colorAlerted    = color.RGBA{255, 140, 0, 255}
	colorStunned    = color.RGBA{255, 255, 255, 255}
	colorAttack     = color.RGBA{255, 255, 0, 128}
	colorProjectile = color.RGBA{0, 255, 0, 255}
	colorHostile    = color.RGBA{180, 90, 30, 255}
	colorHealthBg   = color.RGBA{255, 0, 0, 255}
	colorHealthFg   = color.RGBA{0, 255, 0, 255}
	colorHitbox     = color.RGBA{0, 255, 255, 255}
	colorHeart      = color.RGBA{230, 40, 90, 255}
	colorMagicJar   = color.RGBA{40, 200, 120, 255}
	colorAmmo       = color.RGBA{200, 180, 140, 255}
)

// Drops flicker over their last two seconds.
const dropBlinkMs = 2000

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorGrass)
	off := gamemath.Vec{X: float64(g.width)/2 - g.camera.X, Y: float64(g.height)/2 - g.camera.Y}

	for _, o := range g.sim.Obstacles() {
		fillRect(screen, o.Rect.Translate(off), terrainColor(o.Terrain))
	}

	for _, e := range g.sim.Enemies() {
		c := colorEnemy
		switch {
		case e.State == config.StateStunned:
			c = colorStunned
		case e.Alerted:
			c = colorAlerted
		}
		sprite := e.Sprite.Translate(off)
		fillRect(screen, sprite, c)
		drawHealthBar(screen, sprite, e.Health, e.MaxHealth)
		if g.debug {
			strokeRect(screen, e.Hitbox.Translate(off), colorHitbox)
		}
	}

	for _, d := range g.sim.Drops() {
		left := d.Expires - g.sim.Now()
		if left < dropBlinkMs && (left/100)%2 == 0 {
			continue
		}
		fillRect(screen, d.Hitbox.Translate(off), dropColor(d.Effect))
	}

	for _, p := range g.sim.Projectiles() {
		c := colorProjectile
		if p.Side == config.SideEnemy {
			c = colorHostile
		}
		fillRect(screen, p.Hitbox.Translate(off), c)
	}

	for _, gh := range g.effects.Ghosts() {
		drawGhost(screen, gh, off, g.sim.Config().World.TileSize)
	}

	player := g.sim.Player()
	if !player.Dead {
		c := colorPlayer
		c.A = uint8(255 * g.effects.PlayerAlpha())
		fillRect(screen, player.Sprite.Translate(off), c)
		if g.debug {
			strokeRect(screen, player.Hitbox.Translate(off), colorHitbox)
		}
	}
	if attack, ok := g.sim.Attack(); ok {
		fillRect(screen, attack.Hitbox.Translate(off), colorAttack)
	}

	ebitenutil.DebugPrint(screen, hudLine(player))
}

func hudLine(p sim.PlayerView) string {
	if p.Dead {
		return "You died. Esc to quit."
	}
	return fmt.Sprintf("HP %d/%d  MP %d/%d  %s  bombs %d  arrows %d",
		p.Health, p.MaxHealth, p.Magic, p.MaxMagic, p.Equipped, p.Bombs, p.Arrows)
}

func terrainColor(t config.Terrain) color.RGBA {
	switch t {
	case config.TerrainWater:
		return colorWater
	case config.TerrainPit:
		return colorPit
	default:
		return colorSolid
	}
}

func dropColor(e config.DropEffect) color.RGBA {
	switch e {
	case config.DropHealth:
		return colorHeart
	case config.DropMagic:
		return colorMagicJar
	default:
		return colorAmmo
	}
}

func drawGhost(screen *ebiten.Image, gh fx.Ghost, off gamemath.Vec, tile float64) {
	size := tile * gh.Scale
	c := colorEnemy
	if gh.Kind == fx.GhostExplosion {
		c = color.RGBA{255, 200, 0, 255}
		size = tile * 4 * gh.Scale
	}
	c.A = uint8(255 * gh.Alpha)
	fillRect(screen, gamemath.RectFromCenter(gh.Position.Add(off), size, size), c)
}

func drawHealthBar(screen *ebiten.Image, sprite gamemath.Rect, health, maxHealth int) {
	if maxHealth <= 0 || health >= maxHealth {
		return
	}
	bar := gamemath.Rect{X: sprite.X, Y: sprite.Y - 6, W: sprite.W, H: 4}
	fillRect(screen, bar, colorHealthBg)
	bar.W *= float64(health) / float64(maxHealth)
	fillRect(screen, bar, colorHealthFg)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), 1, c, false)         // Top
	vector.FillRect(screen, float32(r.X), float32(r.Bottom()-1), float32(r.W), 1, c, false) // Bottom
	vector.FillRect(screen, float32(r.X), float32(r.Y), 1, float32(r.H), c, false)         // Left
	vector.FillRect(screen, float32(r.Right()-1), float32(r.Y), 1, float32(r.H), c, false) // Right
}
