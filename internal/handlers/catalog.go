package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lavaclimb.dev/internal/services"
)

// PatternHandler handles pattern catalog endpoints
type PatternHandler struct {
	patternService *services.PatternService
}

// NewPatternHandler creates a new PatternHandler
func NewPatternHandler(ps *services.PatternService) *PatternHandler {
	return &PatternHandler{patternService: ps}
}

// ListPatterns handles GET /api/patterns
func (h *PatternHandler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.patternService.GetAll())
}

// GetPattern handles GET /api/patterns/{id}
func (h *PatternHandler) GetPattern(w http.ResponseWriter, r *http.Request) {
	pattern, err := h.patternService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Pattern not found")
		return
	}
	respondJSON(w, http.StatusOK, pattern)
}

// DifficultyHandler handles difficulty preset endpoints
type DifficultyHandler struct {
	difficultyService *services.DifficultyService
}

// NewDifficultyHandler creates a new DifficultyHandler
func NewDifficultyHandler(ds *services.DifficultyService) *DifficultyHandler {
	return &DifficultyHandler{difficultyService: ds}
}

// ListDifficulties handles GET /api/difficulties
func (h *DifficultyHandler) ListDifficulties(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.difficultyService.GetAll())
}

// GetDifficulty handles GET /api/difficulties/{name}
func (h *DifficultyHandler) GetDifficulty(w http.ResponseWriter, r *http.Request) {
	info, err := h.difficultyService.Get(chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}
