package components

import (
	"github.com/automoto/motion/anim"
	"github.com/yohamta/donburi"
)

// StageData holds per-scene shared state: the animator every animation
// registers with and the latest click target.
type StageData struct {
	Animator *anim.Animator[float64]

	TargetX   float64
	TargetY   float64
	HasTarget bool
}

var Stage = donburi.NewComponentType[StageData]()

// TuningData mirrors the panel's live spring parameters. Dirty marks a
// change that still has to be pushed to the followers and saved.
type TuningData struct {
	Response      float64
	DampingRatio  float64
	ClampToStage  bool
	Dirty         bool
}

var Tuning = donburi.NewComponentType[TuningData]()
