package systems

import (
	"fmt"

	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/automoto/motion/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const helpText = "click: retarget   right-click: fling puck   1-4: presets   C: clamp   Space: stop   Enter: skip to end"

// DrawHUD renders the parameter readout, the help line, and any active
// toast banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	margin := int(cfg.HUD.Margin)

	if tuningEntry, ok := components.Tuning.First(e.World); ok {
		tuning := components.Tuning.Get(tuningEntry)
		readout := fmt.Sprintf("response %.2fs   damping ratio %.2f   (%s)",
			tuning.Response, tuning.DampingRatio, regimeName(tuning.DampingRatio))
		text.Draw(screen, readout, fonts.Regular.Get(), margin, margin+14, cfg.HUD.TextColor)
	}

	text.Draw(screen, helpText, fonts.Small.Get(), margin, cfg.C.Height-margin, cfg.HUD.DimColor)

	drawToasts(e, screen)
}

func regimeName(ratio float64) string {
	switch {
	case ratio < 1:
		return "underdamped"
	case ratio > 1:
		return "overdamped"
	default:
		return "critically damped"
	}
}

func drawToasts(e *ecs.ECS, screen *ebiten.Image) {
	components.Toast.Each(e.World, func(entry *donburi.Entry) {
		toast := components.Toast.Get(entry)
		y := int(toast.Slide.Value()[0])
		x := (cfg.C.Width - cfg.Panel.Width) / 2
		text.Draw(screen, toast.Text, fonts.Title.Get(), x-40, y+24, cfg.Toast.Color)
	})
}
