package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/motion/components"
	"github.com/quasilyte/gdata"
)

// SavedTuning represents the tuning data stored on disk
type SavedTuning struct {
	Response     float64 `json:"response"`
	DampingRatio float64 `json:"dampingRatio"`
	ClampToStage bool    `json:"clampToStage"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "motion-playground",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads saved tuning from disk; nil means use defaults.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var saved SavedTuning
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}

	return &saved, nil
}

// SaveTuning saves tuning to disk
func SaveTuning(s *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// SaveCurrentTuning persists the live tuning component.
func SaveCurrentTuning(t *components.TuningData) {
	_ = SaveTuning(&SavedTuning{
		Response:     t.Response,
		DampingRatio: t.DampingRatio,
		ClampToStage: t.ClampToStage,
	})
}
