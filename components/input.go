package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

// InputData is the decoded player intent for one tick.
type InputData struct {
	MoveX, MoveY float64

	Attack     bool // sword pressed this tick
	AttackHeld bool // sword held; releasing after the charge time spins
	UseItem    bool
	Run        bool
	Equip      cfg.Item // ItemNone leaves the slot unchanged
}

var Input = donburi.NewComponentType[InputData]()
