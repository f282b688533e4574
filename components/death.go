package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has entered its terminal dying state. It is
// already out of every collision query and is swept at the end of the step.
type DeathData struct {
	At int64
}

var Death = donburi.NewComponentType[DeathData]()
