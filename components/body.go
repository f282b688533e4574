package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData holds presentation geometry. The sprite rect is the hitbox grown
// by Inset on each axis; it never takes part in collision.
type BodyData struct {
	Facing gamemath.Direction
	InsetW float64
	InsetH float64
}

// SpriteRect returns the sprite bounds around a hitbox.
func (b *BodyData) SpriteRect(hitbox gamemath.Rect) gamemath.Rect {
	return hitbox.Inflate(b.InsetW, b.InsetH)
}

var Body = donburi.NewComponentType[BodyData]()
