package models

import (
	"time"

	"lavaclimb.dev/internal/generation"
)

// LevelInfo describes one running level session
type LevelInfo struct {
	ID              string    `json:"id"`
	Difficulty      string    `json:"difficulty"`
	Seed            uint64    `json:"seed"`
	Hearts          int       `json:"hearts"`
	LavaSpeed       float64   `json:"lava_speed"`
	FinishY         float64   `json:"finish_y"`
	ScrollY         float64   `json:"scroll_y"`
	GeneratedHeight float64   `json:"generated_height"`
	CreatedAt       time.Time `json:"created_at"`
}

// LevelSnapshot is everything a client needs to rebuild a level from scratch
type LevelSnapshot struct {
	Level   LevelInfo             `json:"level"`
	Objects []generation.Object   `json:"objects"`
	Path    []generation.Platform `json:"path"`
	Stats   generation.Stats      `json:"stats"`
}

// CreateLevelRequest is the body of POST /api/levels. A nil seed picks one.
type CreateLevelRequest struct {
	Difficulty string  `json:"difficulty"`
	Seed       *uint64 `json:"seed,omitempty"`
}

// ScrollRequest moves the camera; also the WebSocket client frame
type ScrollRequest struct {
	ScrollY float64 `json:"scroll_y"`
}

// CommandBatch lists the creates and destroys caused by one scroll
type CommandBatch struct {
	LevelID         string               `json:"level_id"`
	ScrollY         float64              `json:"scroll_y"`
	GeneratedHeight float64              `json:"generated_height"`
	Commands        []generation.Command `json:"commands"`
}

// AuditResult is a reachability check over a level's live platforms
type AuditResult struct {
	LevelID     string                `json:"level_id"`
	StartY      float64               `json:"start_y"`
	EndY        float64               `json:"end_y"`
	Platforms   int                   `json:"platforms"`
	Valid       bool                  `json:"valid"`
	Reached     int                   `json:"reached"`
	Unreachable []generation.Platform `json:"unreachable"`
}

// LevelExport is the file cmd/generate writes for each difficulty
type LevelExport struct {
	Difficulty string                `json:"difficulty"`
	Seed       uint64                `json:"seed"`
	FinishY    float64               `json:"finish_y"`
	Objects    []generation.Object   `json:"objects"`
	Path       []generation.Platform `json:"path"`
	Audit      generation.PathAudit  `json:"audit"`
	Stats      generation.Stats      `json:"stats"`
}
