package scenes

import (
	"math"
	"sync"

	"github.com/automoto/motion/anim"
	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/automoto/motion/systems"
	"github.com/automoto/motion/ui"
	"github.com/automoto/motion/vec"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlaygroundScene is the interactive spring stage: a swarm of followers
// chasing clicks, a momentum puck, and the tuning panel.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	panel        *ui.TuningPanel
	once         sync.Once
}

// NewPlaygroundScene creates the playground scene
func NewPlaygroundScene(sc SceneChanger) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	ps.panel.Update()
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.panel.UI.Draw(screen)
}

func (ps *PlaygroundScene) configure() {
	world := donburi.NewWorld()
	ps.ecs = ecs.NewECS(world)

	ps.spawnStage(world)
	ps.spawnFollowers(world)
	ps.spawnPuck(world)

	ps.panel = ui.NewTuningPanel(ps.ecs, func(index int) {
		systems.ApplyPreset(ps.ecs, index)
	})

	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateTuning)
	ps.ecs.AddSystem(systems.UpdateMotion)
	ps.ecs.AddSystem(systems.UpdateTrails)
	ps.ecs.AddSystem(systems.UpdateToasts)

	ps.ecs.AddRenderer(ecs.LayerDefault, systems.DrawPlayground)
	ps.ecs.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
}

func (ps *PlaygroundScene) spawnStage(world donburi.World) {
	entry := world.Entry(world.Create(components.Stage, components.Tuning))
	components.Stage.SetValue(entry, components.StageData{
		Animator: &anim.Animator[float64]{},
	})

	tuning := components.TuningData{
		Response:     anim.DefaultResponse,
		DampingRatio: anim.DefaultDampingRatio,
		Dirty:        true, // applied to the swarm on the first tick
	}
	// Restore the last session's tuning when there is one.
	if saved, err := systems.LoadTuning(); err == nil && saved != nil {
		tuning.Response = saved.Response
		tuning.DampingRatio = saved.DampingRatio
		tuning.ClampToStage = saved.ClampToStage
	}
	components.Tuning.SetValue(entry, tuning)
}

func (ps *PlaygroundScene) spawnFollowers(world donburi.World) {
	centerX := float64(cfg.C.Width-cfg.Panel.Width) / 2
	centerY := float64(cfg.C.Height) / 2

	for i := 0; i < cfg.Follower.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(cfg.Follower.Count)
		x := centerX + cfg.Follower.RingRadius*math.Cos(angle)
		y := centerY + cfg.Follower.RingRadius*math.Sin(angle)

		// spread the responses across the swarm: first follower the
		// quickest, last the laziest
		spread := cfg.Follower.ResponseSpread
		scale := 1 - spread/2 + spread*float64(i)/float64(cfg.Follower.Count-1)

		entry := world.Entry(world.Create(components.Follower, components.Trail))
		components.Follower.SetValue(entry, components.FollowerData{
			Anim:          anim.NewSpringAnimation(vec.Of(x, y)),
			Color:         cfg.Follower.Colors[i%len(cfg.Follower.Colors)],
			ResponseScale: scale,
		})
		components.Trail.SetValue(entry, components.TrailData{
			Points: make([]components.TrailPoint, 0, cfg.Trail.Length),
			Max:    cfg.Trail.Length,
		})
	}
}

func (ps *PlaygroundScene) spawnPuck(world donburi.World) {
	entry := world.Entry(world.Create(components.Puck))
	components.Puck.SetValue(entry, components.PuckData{
		Anim: anim.NewDecayAnimation(vec.Of(
			float64(cfg.C.Width-cfg.Panel.Width)/2,
			float64(cfg.C.Height)*0.8,
		)),
		Color: cfg.Puck.Color,
	})
}
