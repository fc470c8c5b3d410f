package systems

import (
	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/automoto/motion/vec"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var presetKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// UpdateInput polls the mouse and keyboard and translates them into
// animation commands. Must run before UpdateMotion in the system order.
func UpdateInput(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// clicks that land on the panel strip belong to the panel
		if x < cfg.C.Width-cfg.Panel.Width {
			retargetFollowers(e, stage, float64(x), float64(y))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if x < cfg.C.Width-cfg.Panel.Width {
			flingPuck(e, stage, float64(x), float64(y))
		}
	}

	for i, key := range presetKeys {
		if inpututil.IsKeyJustPressed(key) {
			ApplyPreset(e, i)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		toggleClamp(e)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		stopAll(e, false)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		stopAll(e, true)
	}
}

// retargetFollowers redirects every follower spring at the click point.
// Springs still in flight simply bend toward the new target; resolved
// ones restart from rest where they sit.
func retargetFollowers(e *ecs.ECS, stage *components.StageData, x, y float64) {
	stage.TargetX = x
	stage.TargetY = y
	stage.HasTarget = true

	target := vec.Of(x, y)
	components.Follower.Each(e.World, func(entry *donburi.Entry) {
		f := components.Follower.Get(entry)
		f.Anim.SetToValue(target)
		if !f.Anim.Running() {
			f.Anim.Start()
			stage.Animator.Add(f.Anim)
		}
	})
}

// flingPuck launches the momentum puck toward the click point with a
// velocity proportional to the distance, then lets the decay coast it.
func flingPuck(e *ecs.ECS, stage *components.StageData, x, y float64) {
	puckEntry, ok := components.Puck.First(e.World)
	if !ok {
		return
	}
	puck := components.Puck.Get(puckEntry)

	vx := (x - puck.X()) * cfg.Puck.FlingScale
	vy := (y - puck.Y()) * cfg.Puck.FlingScale
	puck.Anim.SetVelocity(vec.Of(vx, vy))
	if !puck.Anim.Running() {
		puck.Anim.Start()
		stage.Animator.Add(puck.Anim)
	}
}

func toggleClamp(e *ecs.ECS) {
	tuningEntry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(tuningEntry)
	tuning.ClampToStage = !tuning.ClampToStage
	tuning.Dirty = true
}

// stopAll halts every follower; with skipToEnd they snap to their targets
// first, the immediate-skip mode of the spring contract.
func stopAll(e *ecs.ECS, skipToEnd bool) {
	components.Follower.Each(e.World, func(entry *donburi.Entry) {
		f := components.Follower.Get(entry)
		f.Anim.Stop(skipToEnd, skipToEnd)
	})
	components.Puck.Each(e.World, func(entry *donburi.Entry) {
		components.Puck.Get(entry).Anim.Stop(false)
	})
}
