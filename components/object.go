package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object that is the authoritative hitbox of an
// entity.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the hitbox as a plain rect.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the hitbox centre.
func (o *ObjectData) Center() gamemath.Vec {
	return o.Rect().Center()
}

// MoveTo places the hitbox at r's origin and re-registers it with its space.
func (o *ObjectData) MoveTo(r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
