package components

import (
	"image/color"

	"github.com/automoto/motion/anim"
	"github.com/yohamta/donburi"
)

// PuckData is the momentum puck: a decay animation coasts it across the
// stage after a fling, with no target.
type PuckData struct {
	Anim  *anim.DecayAnimation[float64]
	Color color.RGBA
}

func (p *PuckData) X() float64 { return p.Anim.Value()[0] }
func (p *PuckData) Y() float64 { return p.Anim.Value()[1] }

var Puck = donburi.NewComponentType[PuckData]()
