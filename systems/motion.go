package systems

import (
	"github.com/automoto/motion/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion drives the shared animator once per tick. Ebiten's tick
// cadence is fixed, so the elapsed time is simply one tick's worth of
// seconds; the solver is exact for any dt, so a changed TPS setting
// changes smoothness, never trajectories.
func UpdateMotion(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	dt := 1.0 / float64(ebiten.TPS())
	stage.Animator.Tick(dt)
}
