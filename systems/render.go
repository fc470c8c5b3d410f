package systems

import (
	"image/color"

	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayground renders the stage: clamp bounds, click target, trails,
// followers, and the momentum puck.
func DrawPlayground(e *ecs.ECS, screen *ebiten.Image) {
	drawClampBounds(e, screen)
	drawTarget(e, screen)
	drawTrails(e, screen)
	drawFollowers(e, screen)
	drawPuck(e, screen)
}

func drawClampBounds(e *ecs.ECS, screen *ebiten.Image) {
	tuningEntry, ok := components.Tuning.First(e.World)
	if !ok || !components.Tuning.Get(tuningEntry).ClampToStage {
		return
	}
	r := float32(cfg.Follower.Radius)
	vector.StrokeRect(screen,
		r, r,
		float32(cfg.C.Width-cfg.Panel.Width)-2*r, float32(cfg.C.Height)-2*r,
		1, cfg.ClampEdge, false)
}

func drawTarget(e *ecs.ECS, screen *ebiten.Image) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)
	if !stage.HasTarget {
		return
	}

	x := float32(stage.TargetX)
	y := float32(stage.TargetY)
	const arm = 6
	vector.StrokeLine(screen, x-arm, y, x+arm, y, 1, cfg.TargetRed, false)
	vector.StrokeLine(screen, x, y-arm, x, y+arm, 1, cfg.TargetRed, false)
}

func drawTrails(e *ecs.ECS, screen *ebiten.Image) {
	components.Trail.Each(e.World, func(entry *donburi.Entry) {
		trail := components.Trail.Get(entry)
		var tint color.RGBA
		if entry.HasComponent(components.Follower) {
			tint = components.Follower.Get(entry).Color
		} else {
			tint = cfg.DimGray
		}

		for i, p := range trail.Points {
			// fade the oldest samples out
			alpha := float64(i+1) / float64(len(trail.Points))
			faded := color.RGBA{
				R: uint8(float64(tint.R) * alpha * 0.5),
				G: uint8(float64(tint.G) * alpha * 0.5),
				B: uint8(float64(tint.B) * alpha * 0.5),
				A: uint8(255 * alpha * 0.5),
			}
			vector.DrawFilledCircle(screen,
				float32(p.X), float32(p.Y),
				float32(cfg.Trail.DotRadius), faded, false)
		}
	})
}

func drawFollowers(e *ecs.ECS, screen *ebiten.Image) {
	components.Follower.Each(e.World, func(entry *donburi.Entry) {
		f := components.Follower.Get(entry)
		vector.DrawFilledCircle(screen,
			float32(f.X()), float32(f.Y()),
			float32(cfg.Follower.Radius), f.Color, true)

		if cfg.Debug.DrawVelocities {
			v := f.Anim.Velocity()
			vector.StrokeLine(screen,
				float32(f.X()), float32(f.Y()),
				float32(f.X()+v[0]*0.1), float32(f.Y()+v[1]*0.1),
				1, cfg.White, false)
		}
	})
}

func drawPuck(e *ecs.ECS, screen *ebiten.Image) {
	components.Puck.Each(e.World, func(entry *donburi.Entry) {
		p := components.Puck.Get(entry)
		vector.DrawFilledCircle(screen,
			float32(p.X()), float32(p.Y()),
			float32(cfg.Puck.Radius), p.Color, true)
		vector.StrokeCircle(screen,
			float32(p.X()), float32(p.Y()),
			float32(cfg.Puck.Radius)+2, 1, cfg.DimGray, true)
	})
}
