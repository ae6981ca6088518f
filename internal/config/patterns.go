package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lavaclimb.dev/internal/generation"
)

// patternFile is the on-disk layout of a pattern catalog
type patternFile struct {
	Patterns []patternDef `yaml:"patterns"`
}

type patternDef struct {
	ID             string       `yaml:"id"`
	Category       string       `yaml:"category"`
	HeightInFloors float64      `yaml:"height_in_floors"`
	Entry          []float64    `yaml:"entry"` // [min, max] in tenths of the field
	Exit           []float64    `yaml:"exit"`
	Elements       []elementDef `yaml:"elements"`
}

type elementDef struct {
	Type     string  `yaml:"type"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	PortalID string  `yaml:"portal_id"`
}

// LoadPatterns reads a YAML pattern catalog from disk
func LoadPatterns(path string) ([]generation.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	patterns, err := DecodePatterns(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return patterns, nil
}

// DecodePatterns parses and validates a YAML pattern catalog
func DecodePatterns(data []byte) ([]generation.Pattern, error) {
	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse patterns: %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("pattern catalog is empty")
	}

	seen := make(map[string]bool)
	out := make([]generation.Pattern, 0, len(file.Patterns))
	for i, def := range file.Patterns {
		if def.ID == "" {
			return nil, fmt.Errorf("patterns[%d].id must be set", i)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate pattern id %q", def.ID)
		}
		seen[def.ID] = true

		p, err := def.toPattern()
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", def.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (d patternDef) toPattern() (generation.Pattern, error) {
	category, err := parseCategory(d.Category)
	if err != nil {
		return generation.Pattern{}, err
	}
	if len(d.Elements) == 0 {
		return generation.Pattern{}, fmt.Errorf("no elements")
	}

	p := generation.Pattern{
		ID:             d.ID,
		Category:       category,
		HeightInFloors: d.HeightInFloors,
		Elements:       make([]generation.PatternElement, 0, len(d.Elements)),
	}
	if p.MinEntryX, p.MaxEntryX, err = span(d.Entry, "entry"); err != nil {
		return generation.Pattern{}, err
	}
	if p.MinExitX, p.MaxExitX, err = span(d.Exit, "exit"); err != nil {
		return generation.Pattern{}, err
	}

	for i, e := range d.Elements {
		if e.X < 0 || e.X > 10 {
			return generation.Pattern{}, fmt.Errorf("elements[%d].x %.2f outside [0, 10]", i, e.X)
		}
		el, err := e.toElement()
		if err != nil {
			return generation.Pattern{}, fmt.Errorf("elements[%d]: %w", i, err)
		}
		p.Elements = append(p.Elements, el)
	}
	return p, nil
}

func (e elementDef) toElement() (generation.PatternElement, error) {
	switch e.Type {
	case generation.KindPlatform:
		return generation.PlatformElement{X: e.X, Y: e.Y, Width: e.Width}, nil
	case generation.KindLadder:
		return generation.LadderElement{X: e.X, Y: e.Y, Height: e.Height}, nil
	case generation.KindPortal:
		return generation.PortalElement{X: e.X, Y: e.Y, PortalID: e.PortalID}, nil
	case generation.KindHeart:
		return generation.HeartElement{X: e.X, Y: e.Y}, nil
	case generation.KindCoin:
		return generation.CoinElement{X: e.X, Y: e.Y}, nil
	default:
		return nil, fmt.Errorf("unknown element type %q", e.Type)
	}
}

func parseCategory(s string) (generation.PatternCategory, error) {
	for _, c := range generation.PatternCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// span reads an optional [min, max] pair; absent means the full field
func span(v []float64, name string) (float64, float64, error) {
	switch len(v) {
	case 0:
		return 0, 10, nil
	case 2:
		if v[0] > v[1] {
			return 0, 0, fmt.Errorf("%s range inverted", name)
		}
		return v[0], v[1], nil
	default:
		return 0, 0, fmt.Errorf("%s must be [min, max]", name)
	}
}
