package config

import "image/color"

// SpringPreset pairs a display name with perceptual spring parameters
type SpringPreset struct {
	Name         string
	Response     float64
	DampingRatio float64
}

// FollowerConfig contains the spring-follower swarm configuration
type FollowerConfig struct {
	Count      int
	Radius     float64 // draw radius in pixels
	RingRadius float64 // initial ring layout radius
	// Each follower scales the shared response by a small factor so the
	// swarm fans out instead of moving as one rigid blob.
	ResponseSpread float64
	Colors         []color.RGBA
}

// PuckConfig contains the momentum puck configuration
type PuckConfig struct {
	Radius     float64
	FlingScale float64 // velocity per pixel of distance to the fling point
	Color      color.RGBA
}

// TrailConfig contains motion trail configuration
type TrailConfig struct {
	Length     int     // points kept per follower
	DotRadius  float64 // radius of the trail dots
	SampleStep int     // frames between trail samples
}

// PanelConfig contains the tuning side panel configuration
type PanelConfig struct {
	Width            int
	ResponseMin      float64
	ResponseMax      float64
	DampingRatioMin  float64
	DampingRatioMax  float64
	SliderResolution int // slider steps across the min..max span
	Background       color.RGBA
	RowBackground    color.RGBA
}

// ToastConfig contains the preset toast banner configuration
type ToastConfig struct {
	SlideSeconds float32 // slide-in duration
	HoldFrames   int     // frames the banner stays before despawning
	SlideFromY   float64 // off-screen start
	SlideToY     float64 // resting position
	Color        color.RGBA
}

// HUDConfig contains on-screen help text configuration
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	DimColor  color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawVelocities bool // draw velocity vectors on followers
}

// Global configuration instances
var C *Config
var Follower FollowerConfig
var Puck PuckConfig
var Trail TrailConfig
var Panel PanelConfig
var Toast ToastConfig
var HUD HUDConfig
var Debug DebugConfig
var Presets []SpringPreset

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DimGray    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	Background = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	TargetRed  = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	ClampEdge  = color.RGBA{R: 90, G: 120, B: 200, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "motion playground",
	}

	Follower = FollowerConfig{
		Count:          12,
		Radius:         7.0,
		RingRadius:     120.0,
		ResponseSpread: 0.35,
		Colors: []color.RGBA{
			{R: 120, G: 200, B: 255, A: 255},
			{R: 255, G: 190, B: 90, A: 255},
			{R: 160, G: 255, B: 140, A: 255},
			{R: 255, G: 130, B: 200, A: 255},
		},
	}

	Puck = PuckConfig{
		Radius:     11.0,
		FlingScale: 3.0,
		Color:      color.RGBA{R: 240, G: 240, B: 120, A: 255},
	}

	Trail = TrailConfig{
		Length:     24,
		DotRadius:  2.5,
		SampleStep: 2,
	}

	Panel = PanelConfig{
		Width:            230,
		ResponseMin:      0.05,
		ResponseMax:      2.0,
		DampingRatioMin:  0.0,
		DampingRatioMax:  2.0,
		SliderResolution: 200,
		Background:       color.RGBA{R: 26, G: 28, B: 38, A: 255},
		RowBackground:    color.RGBA{R: 36, G: 38, B: 50, A: 255},
	}

	Toast = ToastConfig{
		SlideSeconds: 0.35,
		HoldFrames:   90,
		SlideFromY:   -30.0,
		SlideToY:     16.0,
		Color:        color.RGBA{R: 255, G: 255, B: 160, A: 255},
	}

	HUD = HUDConfig{
		Margin:    10.0,
		TextColor: White,
		DimColor:  DimGray,
	}

	Debug = DebugConfig{
		DrawVelocities: false,
	}

	Presets = []SpringPreset{
		{Name: "Gentle", Response: 0.8, DampingRatio: 1.0},
		{Name: "Snappy", Response: 0.25, DampingRatio: 1.0},
		{Name: "Bouncy", Response: 0.5, DampingRatio: 0.3},
		{Name: "Molasses", Response: 1.2, DampingRatio: 2.0},
	}
}
