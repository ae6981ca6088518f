package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/models"
)

var minimum, maximum int = 10000, 99999

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <difficulty> [seed]  (generate single difficulty)")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	levels := generation.AllDifficulties()
	if len(os.Args) >= 3 {
		level, err := generation.ParseDifficulty(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		levels = []generation.DifficultyLevel{level}
	}

	seed := uint64(rand.IntN(maximum-minimum+1) + minimum)
	if len(os.Args) >= 4 {
		parsed, err := strconv.ParseUint(os.Args[3], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid seed %q: %v\n", os.Args[3], err)
			os.Exit(1)
		}
		seed = parsed
	}

	// Ensure output directory exists
	levelsDir := filepath.Join(outputDir, "levels")
	if err := os.MkdirAll(levelsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, level := range levels {
		fmt.Printf("Generating %s level (seed %d)...\n", level, seed)

		export := generateLevel(level, seed)

		filename := fmt.Sprintf("%s.json", level)
		path := filepath.Join(levelsDir, filename)

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR marshaling JSON: %v\n", err)
			failed = true
			continue
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
			failed = true
			continue
		}

		status := "valid"
		if !export.Audit.Valid {
			status = "INVALID"
			failed = true
		}
		fmt.Printf("  Created %s (%d objects, %d path platforms, %s, %d unreachable)\n",
			filename, len(export.Objects), len(export.Path), status, len(export.Audit.Unreachable))
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("Done!")
}

// generateLevel climbs from the start to the difficulty's finish line
// without cleanup, so the export holds the whole level.
func generateLevel(level generation.DifficultyLevel, seed uint64) models.LevelExport {
	settings := generation.GetDifficulty(level)
	rec := generation.NewRecorder()
	gen := generation.NewLevelGenerator(rec, generation.GeneratorConfig{
		Difficulty: settings,
		Seed:       seed,
		Logger:     log.New(os.Stderr, "  ", 0),
	})

	gen.GenerateInitialLevel()
	finishY := settings.FinishY()
	for gen.LastPlatform().Y > finishY {
		gen.GenerateNextSection()
	}

	platforms := rec.Platforms()
	audit := gen.Physics().ValidateLevelPath(platforms, generation.GameHeight-generation.TileSize/2, finishY)

	return models.LevelExport{
		Difficulty: string(level),
		Seed:       seed,
		FinishY:    finishY,
		Objects:    rec.Objects(),
		Path:       gen.PathPlatforms(),
		Audit:      audit,
		Stats:      gen.Stats(),
	}
}
