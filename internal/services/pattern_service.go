package services

import (
	"errors"
	"fmt"

	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/models"
)

// ErrPatternNotFound is returned for unknown pattern ids
var ErrPatternNotFound = errors.New("pattern not found")

// PatternService exposes the pattern catalog a server was started with
type PatternService struct {
	patterns []generation.Pattern
}

// NewPatternService creates a new PatternService
func NewPatternService(patterns []generation.Pattern) *PatternService {
	return &PatternService{patterns: patterns}
}

// GetAll returns all patterns in catalog order
func (s *PatternService) GetAll() *models.PatternList {
	list := &models.PatternList{Patterns: make([]models.PatternInfo, 0, len(s.patterns))}
	for _, p := range s.patterns {
		list.Patterns = append(list.Patterns, toPatternInfo(p))
	}
	return list
}

// GetByID returns a specific pattern by ID
func (s *PatternService) GetByID(id string) (*models.PatternInfo, error) {
	for _, p := range s.patterns {
		if p.ID == id {
			info := toPatternInfo(p)
			return &info, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPatternNotFound, id)
}

func toPatternInfo(p generation.Pattern) models.PatternInfo {
	var flat elementFlattener
	for _, e := range p.Elements {
		e.Accept(&flat)
	}
	return models.PatternInfo{
		ID:             p.ID,
		Category:       string(p.Category),
		HeightInFloors: p.HeightInFloors,
		Entry:          [2]float64{p.MinEntryX, p.MaxEntryX},
		Exit:           [2]float64{p.MinExitX, p.MaxExitX},
		Elements:       flat.out,
	}
}

// elementFlattener turns pattern elements into wire records
type elementFlattener struct {
	out []models.ElementInfo
}

func (f *elementFlattener) VisitPlatform(e generation.PlatformElement) {
	f.out = append(f.out, models.ElementInfo{Type: e.Kind(), X: e.X, Y: e.Y, Width: e.EffectiveWidth()})
}

func (f *elementFlattener) VisitLadder(e generation.LadderElement) {
	f.out = append(f.out, models.ElementInfo{Type: e.Kind(), X: e.X, Y: e.Y, Height: e.EffectiveHeight()})
}

func (f *elementFlattener) VisitPortal(e generation.PortalElement) {
	f.out = append(f.out, models.ElementInfo{Type: e.Kind(), X: e.X, Y: e.Y, PortalID: e.PortalID})
}

func (f *elementFlattener) VisitHeart(e generation.HeartElement) {
	f.out = append(f.out, models.ElementInfo{Type: e.Kind(), X: e.X, Y: e.Y})
}

func (f *elementFlattener) VisitCoin(e generation.CoinElement) {
	f.out = append(f.out, models.ElementInfo{Type: e.Kind(), X: e.X, Y: e.Y})
}
