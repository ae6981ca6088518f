package generation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name does not match a preset
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyLevel identifies a tuning preset
type DifficultyLevel string

const (
	VeryEasy DifficultyLevel = "very_easy"
	Easy     DifficultyLevel = "easy"
	Normal   DifficultyLevel = "normal"
	Hard     DifficultyLevel = "hard"
	Hardcore DifficultyLevel = "hardcore"
)

// AllDifficulties lists presets from gentlest to harshest
func AllDifficulties() []DifficultyLevel {
	return []DifficultyLevel{VeryEasy, Easy, Normal, Hard, Hardcore}
}

// ParseDifficulty accepts preset names case-insensitively, with either
// underscores or dashes
func ParseDifficulty(s string) (DifficultyLevel, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, l := range AllDifficulties() {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// PatternWeights are the relative odds of each pattern category
type PatternWeights struct {
	Easy    float64 `yaml:"easy" json:"easy"`
	Medium  float64 `yaml:"medium" json:"medium"`
	Hard    float64 `yaml:"hard" json:"hard"`
	Special float64 `yaml:"special" json:"special"`
}

// Total sums the non-negative weights
func (w PatternWeights) Total() float64 {
	total := 0.0
	for _, v := range w.Slice() {
		if v > 0 {
			total += v
		}
	}
	return total
}

// Slice returns the weights in PatternCategories order
func (w PatternWeights) Slice() []float64 {
	return []float64{w.Easy, w.Medium, w.Hard, w.Special}
}

// DifficultySettings is selected once per run and never changes
type DifficultySettings struct {
	Level            DifficultyLevel `yaml:"level" json:"level"`
	Name             string          `yaml:"name" json:"name"`
	Hearts           int             `yaml:"hearts" json:"hearts"`
	DamagePerHit     int             `yaml:"damage_per_hit" json:"damage_per_hit"`
	LavaSpeed        float64         `yaml:"lava_speed" json:"lava_speed"`
	LavaColor        uint32          `yaml:"lava_color" json:"lava_color"`
	TargetFloors     int             `yaml:"target_floors" json:"target_floors"`
	HeartSpawnChance float64         `yaml:"heart_spawn_chance" json:"heart_spawn_chance"`
	PatternWeights   PatternWeights  `yaml:"pattern_weights" json:"pattern_weights"`
}

// GetDifficulty returns the settings for a preset, falling back to Normal
func GetDifficulty(l DifficultyLevel) *DifficultySettings {
	switch l {
	case VeryEasy:
		return &DifficultySettings{
			Level:            VeryEasy,
			Name:             "Very Easy",
			Hearts:           5,
			DamagePerHit:     1,
			LavaSpeed:        12,
			LavaColor:        0xff7a33,
			TargetFloors:     25,
			HeartSpawnChance: 0.15,
			PatternWeights:   PatternWeights{Easy: 6, Medium: 1, Hard: 0, Special: 3},
		}

	case Easy:
		return &DifficultySettings{
			Level:            Easy,
			Name:             "Easy",
			Hearts:           4,
			DamagePerHit:     1,
			LavaSpeed:        18,
			LavaColor:        0xff6622,
			TargetFloors:     35,
			HeartSpawnChance: 0.1,
			PatternWeights:   PatternWeights{Easy: 5, Medium: 3, Hard: 0.5, Special: 1.5},
		}

	case Hard:
		return &DifficultySettings{
			Level:            Hard,
			Name:             "Hard",
			Hearts:           2,
			DamagePerHit:     1,
			LavaSpeed:        34,
			LavaColor:        0xe8331a,
			TargetFloors:     60,
			HeartSpawnChance: 0.04,
			PatternWeights:   PatternWeights{Easy: 1, Medium: 4, Hard: 4, Special: 1},
		}

	case Hardcore:
		return &DifficultySettings{
			Level:            Hardcore,
			Name:             "Hardcore",
			Hearts:           1,
			DamagePerHit:     1,
			LavaSpeed:        44,
			LavaColor:        0xc01010,
			TargetFloors:     80,
			HeartSpawnChance: 0,
			PatternWeights:   PatternWeights{Easy: 0, Medium: 3, Hard: 6, Special: 1},
		}

	default:
		return &DifficultySettings{
			Level:            Normal,
			Name:             "Normal",
			Hearts:           3,
			DamagePerHit:     1,
			LavaSpeed:        25,
			LavaColor:        0xff4422,
			TargetFloors:     45,
			HeartSpawnChance: 0.06,
			PatternWeights:   PatternWeights{Easy: 3, Medium: 4, Hard: 2, Special: 1},
		}
	}
}

// FinishY is the world y of the finish line for this run, measured from
// the middle of the first screen
func (d *DifficultySettings) FinishY() float64 {
	return GameHeight/2 - float64(d.TargetFloors)*FloorHeight
}

// Path geometry shared by every policy
const (
	maxPlatformHistory = 32
	maxPathHistory     = 24
	maxPathAttempts    = 40
	maxDecorAttempts   = 16

	patternChance    = 0.12
	baseLadderChance = 0.55
	minLadderChance  = 0.3
	coinChance       = 0.35
	portalChance     = 0.08

	maxPlatformsInRegion = 4
	regionCheckHeight    = FloorHeight * 1.5
	minDecorVerticalGap  = TileSize * 2.5
	minDecorHorizGap     = TileSize * 3
	minPortalDistance    = TileSize * 6
	portalLift           = FloorHeight * 3
)

// GenerationPolicy is every difficulty-dependent knob the generator reads,
// derived once from DifficultySettings and the player's physics.
type GenerationPolicy struct {
	Challenge float64 // 0 gentle .. 1 punishing
	HardRatio float64

	MinVerticalGap float64 // player height + one tile
	MinStep        int
	MaxStep        int
	SafeStep       float64 // forced placement step
	HorizontalPad  float64 // clearance for a player squeezing sideways

	KeepDirChance  float64
	MinOffsetTiles int
	MaxOffsetTiles int
	VerticalChance float64 // odds of a pure-vertical step

	LadderChance    float64
	HeartChance     float64
	MaxDecorExtras  int
	CategoryWeights []float64
	MinWidth        int
	MaxWidth        int
}

// NewGenerationPolicy derives generator tuning from settings and physics
func NewGenerationPolicy(d *DifficultySettings, phys *Physics) GenerationPolicy {
	cfg := phys.Config()
	w := d.PatternWeights

	challenge := 0.5
	if total := w.Easy + w.Medium + w.Hard + w.Special; total > 0 {
		challenge = clamp((w.Medium*0.5+w.Hard)/total, 0, 1)
	}
	hardRatio := w.Hard / (w.Easy + w.Medium + w.Hard + 0.001)

	minGap := cfg.PlayerHeight + TileSize
	maxPathStep := float64(round(max(minGap+8, cfg.SafeJumpHeight-8)))

	minStep := lerp(minGap, minGap+TileSize*0.5, challenge)
	maxStep := lerp(maxPathStep-TileSize*0.5, maxPathStep, challenge)

	minW, maxW := 4, 6
	switch {
	case hardRatio > 0.4:
		minW, maxW = 2, 3
	case hardRatio > 0.2:
		minW, maxW = 3, 4
	}

	return GenerationPolicy{
		Challenge:       challenge,
		HardRatio:       hardRatio,
		MinVerticalGap:  minGap,
		MinStep:         round(min(minStep, maxStep)),
		MaxStep:         round(max(minStep, maxStep)),
		SafeStep:        min(maxPathStep, cfg.SafeJumpHeight-TileSize*0.25),
		HorizontalPad:   float64(round(cfg.PlayerWidth * 1.1)),
		KeepDirChance:   lerp(0.75, 0.55, challenge),
		MinOffsetTiles:  round(lerp(1, 2, challenge)),
		MaxOffsetTiles:  round(lerp(3, 5, challenge)),
		VerticalChance:  lerp(0.25, 0.05, challenge),
		LadderChance:    lerp(baseLadderChance, minLadderChance, challenge),
		HeartChance:     d.HeartSpawnChance,
		MaxDecorExtras:  maxInt(0, round(lerp(1, 0, challenge))),
		CategoryWeights: w.Slice(),
		MinWidth:        minW,
		MaxWidth:        maxW,
	}
}
