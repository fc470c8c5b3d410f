package components

import (
	"image/color"

	"github.com/automoto/motion/anim"
	"github.com/yohamta/donburi"
)

// FollowerData is a dot whose screen position is driven by a two-lane
// spring animation. Each follower owns its animation; the swarm shares
// tuning through UpdateTuning.
type FollowerData struct {
	Anim  *anim.SpringAnimation[float64]
	Color color.RGBA
	// ResponseScale fans the shared response out per follower so the
	// swarm trails instead of moving in lockstep.
	ResponseScale float64
}

func (f *FollowerData) X() float64 { return f.Anim.Value()[0] }
func (f *FollowerData) Y() float64 { return f.Anim.Value()[1] }

var Follower = donburi.NewComponentType[FollowerData]()
