package systems

import (
	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var trailFrame int

// UpdateTrails samples follower positions every few frames while their
// springs are in flight.
func UpdateTrails(e *ecs.ECS) {
	trailFrame++
	if trailFrame%cfg.Trail.SampleStep != 0 {
		return
	}

	components.Follower.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Trail) {
			return
		}
		f := components.Follower.Get(entry)
		if !f.Anim.Running() {
			return
		}
		trail := components.Trail.Get(entry)
		trail.Push(f.X(), f.Y())
	})
}
