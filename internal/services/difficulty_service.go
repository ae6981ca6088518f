package services

import (
	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/models"
)

// DifficultyService describes the tuning presets
type DifficultyService struct {
	physics *generation.Physics
}

// NewDifficultyService creates a new DifficultyService
func NewDifficultyService(phys *generation.Physics) *DifficultyService {
	if phys == nil {
		phys = generation.DefaultPhysics()
	}
	return &DifficultyService{physics: phys}
}

// GetAll returns every preset from gentlest to harshest
func (s *DifficultyService) GetAll() []models.DifficultyInfo {
	out := make([]models.DifficultyInfo, 0, len(generation.AllDifficulties()))
	for _, l := range generation.AllDifficulties() {
		out = append(out, s.describe(l))
	}
	return out
}

// Get returns one preset by name
func (s *DifficultyService) Get(name string) (*models.DifficultyInfo, error) {
	level, err := generation.ParseDifficulty(name)
	if err != nil {
		return nil, err
	}
	info := s.describe(level)
	return &info, nil
}

func (s *DifficultyService) describe(l generation.DifficultyLevel) models.DifficultyInfo {
	settings := generation.GetDifficulty(l)
	policy := generation.NewGenerationPolicy(settings, s.physics)
	return models.DifficultyInfo{
		DifficultySettings: *settings,
		FinishY:            settings.FinishY(),
		MinStep:            policy.MinStep,
		MaxStep:            policy.MaxStep,
		MinWidth:           policy.MinWidth,
		MaxWidth:           policy.MaxWidth,
		Challenge:          policy.Challenge,
	}
}
