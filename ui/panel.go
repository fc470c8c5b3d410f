package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/motion/components"
	cfg "github.com/automoto/motion/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningPanel holds the ebitenui side panel that edits the live spring
// parameters. Slider changes mark the tuning component dirty; preset key
// changes flow the other way and are mirrored back onto the sliders.
type TuningPanel struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Callbacks
	OnPreset func(index int)

	// Widget references for updates
	responseSlider *widget.Slider
	ratioSlider    *widget.Slider
	responseLabel  *widget.Label
	ratioLabel     *widget.Label
	clampButton    *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face

	// Suppresses ChangedHandler feedback while mirroring external edits
	// onto the sliders.
	syncing bool
}

// NewTuningPanel creates the side panel bound to the scene's ECS world.
func NewTuningPanel(e *ecs.ECS, onPreset func(index int)) *TuningPanel {
	p := &TuningPanel{
		ecs:      e,
		OnPreset: onPreset,
	}

	p.loadFonts()
	p.buildUI()

	return p
}

func (p *TuningPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
	p.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (p *TuningPanel) buildUI() {
	// Root container with AnchorLayout; the panel itself hugs the right
	// edge and stretches vertically.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}
	panelContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.Width, cfg.C.Height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("SPRING TUNING", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	panelContainer.AddChild(title)

	p.responseLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panelContainer.AddChild(p.responseLabel)
	p.responseSlider = p.buildSlider(func(current int) {
		p.setTuning(func(t *components.TuningData) {
			t.Response = sliderToValue(current, cfg.Panel.ResponseMin, cfg.Panel.ResponseMax)
		})
	})
	panelContainer.AddChild(p.responseSlider)

	p.ratioLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panelContainer.AddChild(p.ratioLabel)
	p.ratioSlider = p.buildSlider(func(current int) {
		p.setTuning(func(t *components.TuningData) {
			t.DampingRatio = sliderToValue(current, cfg.Panel.DampingRatioMin, cfg.Panel.DampingRatioMax)
		})
	})
	panelContainer.AddChild(p.ratioSlider)

	presetsTitle := widget.NewLabel(
		widget.LabelOpts.Text("PRESETS", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	panelContainer.AddChild(presetsTitle)

	for i, preset := range cfg.Presets {
		idx := i // capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.Panel.Width-20, 22),
			),
			widget.ButtonOpts.Image(p.buttonImage()),
			widget.ButtonOpts.Text(preset.Name, &p.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if p.OnPreset != nil {
					p.OnPreset(idx)
				}
			}),
		)
		panelContainer.AddChild(button)
	}

	p.clampButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.Width-20, 22),
		),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("Clamp: off", &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.setTuning(func(t *components.TuningData) {
				t.ClampToStage = !t.ClampToStage
			})
		}),
	)
	panelContainer.AddChild(p.clampButton)

	rootContainer.AddChild(panelContainer)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *TuningPanel) buildSlider(onChanged func(current int)) *widget.Slider {
	track := &widget.SliderTrackImage{
		Idle:  image.NewNineSliceColor(cfg.Panel.RowBackground),
		Hover: image.NewNineSliceColor(color.RGBA{50, 52, 66, 255}),
	}
	handle := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{150, 160, 200, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{180, 190, 230, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{120, 130, 170, 255}),
	}

	return widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, cfg.Panel.SliderResolution),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.Width-20, 14),
		),
		widget.SliderOpts.Images(track, handle),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int {
			return cfg.Panel.SliderResolution / 20
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if p.syncing {
				return
			}
			onChanged(args.Current)
		}),
	)
}

func (p *TuningPanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// setTuning mutates the tuning component and marks it dirty for
// UpdateTuning to apply.
func (p *TuningPanel) setTuning(mutate func(t *components.TuningData)) {
	tuningEntry, ok := components.Tuning.First(p.ecs.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(tuningEntry)
	mutate(tuning)
	tuning.Dirty = true
}

// Update advances the widgets and mirrors the live tuning state onto the
// labels and sliders.
func (p *TuningPanel) Update() {
	p.UI.Update()

	tuningEntry, ok := components.Tuning.First(p.ecs.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(tuningEntry)

	p.responseLabel.Label = fmt.Sprintf("response: %.2f s", tuning.Response)
	p.ratioLabel.Label = fmt.Sprintf("damping ratio: %.2f", tuning.DampingRatio)
	if textWidget := p.clampButton.Text(); textWidget != nil {
		if tuning.ClampToStage {
			textWidget.Label = "Clamp: on"
		} else {
			textWidget.Label = "Clamp: off"
		}
	}

	// Mirror externally applied presets onto the sliders without
	// re-triggering the changed handlers.
	p.syncing = true
	p.responseSlider.Current = valueToSlider(tuning.Response, cfg.Panel.ResponseMin, cfg.Panel.ResponseMax)
	p.ratioSlider.Current = valueToSlider(tuning.DampingRatio, cfg.Panel.DampingRatioMin, cfg.Panel.DampingRatioMax)
	p.syncing = false
}

func sliderToValue(current int, min, max float64) float64 {
	frac := float64(current) / float64(cfg.Panel.SliderResolution)
	return min + frac*(max-min)
}

func valueToSlider(value, min, max float64) int {
	frac := (value - min) / (max - min)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return int(frac*float64(cfg.Panel.SliderResolution) + 0.5)
}
