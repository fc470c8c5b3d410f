package systems

import (
	"github.com/automoto/motion/anim"
	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/automoto/motion/vec"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnToast raises a banner that tweens in from above the stage. Any
// banner already on screen is replaced.
func SpawnToast(e *ecs.ECS, text string) {
	components.Toast.Each(e.World, func(entry *donburi.Entry) {
		// Halt the old slide so the animator compacts it out instead of
		// ticking an orphaned tween to the end.
		components.Toast.Get(entry).Slide.Stop()
		e.World.Remove(entry.Entity())
	})

	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	slide := anim.NewTweenAnimation(
		vec.Of(cfg.Toast.SlideFromY),
		vec.Of(cfg.Toast.SlideToY),
		cfg.Toast.SlideSeconds,
		ease.OutQuad,
	)
	slide.Start()
	stage.Animator.Add(slide)

	entry := e.World.Entry(e.World.Create(components.Toast))
	components.Toast.SetValue(entry, components.ToastData{
		Slide:      slide,
		Text:       text,
		HoldFrames: cfg.Toast.HoldFrames,
	})
}

// UpdateToasts counts down settled banners and despawns them.
func UpdateToasts(e *ecs.ECS) {
	components.Toast.Each(e.World, func(entry *donburi.Entry) {
		toast := components.Toast.Get(entry)
		if toast.Slide.Running() {
			return
		}
		toast.HoldFrames--
		if toast.HoldFrames <= 0 {
			e.World.Remove(entry.Entity())
		}
	})
}
