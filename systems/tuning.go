package systems

import (
	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/automoto/motion/vec"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning pushes pending parameter changes from the panel or preset
// keys onto every follower spring and persists them. Reconfiguring
// mid-flight is safe: the solver resumes from the current state.
func UpdateTuning(e *ecs.ECS) {
	tuningEntry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(tuningEntry)
	if !tuning.Dirty {
		return
	}
	tuning.Dirty = false

	components.Follower.Each(e.World, func(entry *donburi.Entry) {
		f := components.Follower.Get(entry)
		f.Anim.Configure(tuning.Response*f.ResponseScale, tuning.DampingRatio)
		applyClamp(f, tuning.ClampToStage)
	})

	SaveCurrentTuning(tuning)
}

// applyClamp bounds a follower to the visible stage (excluding the panel
// strip) or removes the bounds.
func applyClamp(f *components.FollowerData, enabled bool) {
	if !enabled {
		f.Anim.ClearClampingRange()
		return
	}
	r := cfg.Follower.Radius
	f.Anim.SetClampingRange(
		vec.Of(r, r),
		vec.Of(float64(cfg.C.Width-cfg.Panel.Width)-r, float64(cfg.C.Height)-r),
	)
}

// ApplyPreset loads one of the named presets and raises a toast banner.
func ApplyPreset(e *ecs.ECS, index int) {
	if index < 0 || index >= len(cfg.Presets) {
		return
	}
	preset := cfg.Presets[index]

	tuningEntry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(tuningEntry)
	tuning.Response = preset.Response
	tuning.DampingRatio = preset.DampingRatio
	tuning.Dirty = true

	SpawnToast(e, preset.Name)
}
