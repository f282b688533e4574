package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
)

// Axis selects the component of a displacement being resolved.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ResolveAxis moves box by d along axis, then snaps its leading edge flush
// against every obstacle it overlaps, in the order given. Each snap moves the
// box back toward where it started, so repeating the pass until nothing
// changes always ends with no overlap as long as the box started clear.
func ResolveAxis(box gamemath.Rect, d float64, axis Axis, obstacles []gamemath.Rect) (gamemath.Rect, bool) {
	if d == 0 {
		return box, false
	}
	if axis == AxisX {
		box.X += d
	} else {
		box.Y += d
	}

	blocked := false
	for pass := 0; pass <= len(obstacles); pass++ {
		changed := false
		for _, o := range obstacles {
			if !box.Overlaps(o) {
				continue
			}
			switch {
			case axis == AxisX && d > 0:
				box.X = o.Left() - box.W
			case axis == AxisX:
				box.X = o.Right()
			case d > 0:
				box.Y = o.Top() - box.H
			default:
				box.Y = o.Bottom()
			}
			blocked, changed = true, true
		}
		if !changed {
			break
		}
	}
	return box, blocked
}

// ResolveMove applies delta with axis separation: horizontal first, then
// vertical against the horizontally corrected box.
func ResolveMove(box gamemath.Rect, delta gamemath.Vec, obstacles []gamemath.Rect) (out gamemath.Rect, blockedX, blockedY bool) {
	out, blockedX = ResolveAxis(box, delta.X, AxisX, obstacles)
	out, blockedY = ResolveAxis(out, delta.Y, AxisY, obstacles)
	return out, blockedX, blockedY
}

// moveObject pushes an entity's hitbox through the obstacle field. Long
// displacements are split into steps no longer than MaxStep; once an axis is
// blocked the remaining steps drop that axis.
func moveObject(f *Frame, obj *components.ObjectData, delta gamemath.Vec) (blockedX, blockedY bool) {
	if delta.IsZero() {
		return false, false
	}

	steps := int(math.Ceil(delta.Len() / f.Config.World.MaxStep))
	if steps < 1 {
		steps = 1
	}
	step := delta.Scale(1 / float64(steps))

	box := obj.Rect()
	for i := 0; i < steps && !step.IsZero(); i++ {
		obstacles := f.Broad.Obstacles(box.Union(box.Translate(step)))
		var bx, by bool
		box, bx, by = ResolveMove(box, step, obstacles)
		if bx {
			blockedX = true
			step.X = 0
		}
		if by {
			blockedY = true
			step.Y = 0
		}
	}
	obj.MoveTo(box)
	return blockedX, blockedY
}

// MovePlayer is the player variant: blocked axes are clamped and nothing else
// changes.
func MovePlayer(f *Frame, obj *components.ObjectData, delta gamemath.Vec) {
	moveObject(f, obj, delta)
}

// MoveEnemy is the enemy variant: a blocked axis also reverses the enemy's
// intent on that axis so patrollers bounce off walls.
func MoveEnemy(f *Frame, obj *components.ObjectData, enemy *components.EnemyData, delta gamemath.Vec) {
	bx, by := moveObject(f, obj, delta)
	if bx {
		enemy.Intent.X = -enemy.Intent.X
	}
	if by {
		enemy.Intent.Y = -enemy.Intent.Y
	}
}
