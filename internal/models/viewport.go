package models

import "lavaclimb.dev/internal/generation"

// ViewportData is the slice of a level between two world heights
type ViewportData struct {
	LevelID string              `json:"level_id"`
	Top     float64             `json:"top"`
	Bottom  float64             `json:"bottom"`
	Objects []generation.Object `json:"objects"`
}
