package models

import "lavaclimb.dev/internal/generation"

// DifficultyInfo is a preset plus the derived numbers players care about
type DifficultyInfo struct {
	generation.DifficultySettings
	FinishY   float64 `json:"finish_y"`
	MinStep   int     `json:"min_step"`
	MaxStep   int     `json:"max_step"`
	MinWidth  int     `json:"min_width"`
	MaxWidth  int     `json:"max_width"`
	Challenge float64 `json:"challenge"`
}
