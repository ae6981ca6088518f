package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/models"
	"lavaclimb.dev/internal/services"
)

// LevelHandler handles level session endpoints
type LevelHandler struct {
	levelService *services.LevelService
}

// NewLevelHandler creates a new LevelHandler
func NewLevelHandler(ls *services.LevelService) *LevelHandler {
	return &LevelHandler{levelService: ls}
}

// ListLevels handles GET /api/levels
func (h *LevelHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.levelService.List())
}

// CreateLevel handles POST /api/levels. An empty body uses the defaults.
func (h *LevelHandler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.levelService.Create(req.Difficulty, req.Seed)
	if err != nil {
		if errors.Is(err, generation.ErrUnknownDifficulty) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, snap)
}

// GetLevel handles GET /api/levels/{id}
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	snap, err := h.levelService.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// DeleteLevel handles DELETE /api/levels/{id}
func (h *LevelHandler) DeleteLevel(w http.ResponseWriter, r *http.Request) {
	if err := h.levelService.Delete(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetViewport handles GET /api/levels/{id}/viewport?top=&bottom=
func (h *LevelHandler) GetViewport(w http.ResponseWriter, r *http.Request) {
	top, err := parseFloatParam(r, "top", -generation.GameHeight)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid top")
		return
	}
	bottom, err := parseFloatParam(r, "bottom", generation.GameHeight)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid bottom")
		return
	}

	viewport, err := h.levelService.Viewport(chi.URLParam(r, "id"), top, bottom)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewport)
}

// Scroll handles POST /api/levels/{id}/scroll
func (h *LevelHandler) Scroll(w http.ResponseWriter, r *http.Request) {
	var req models.ScrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch, err := h.levelService.Scroll(chi.URLParam(r, "id"), req.ScrollY)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, batch)
}

// Audit handles GET /api/levels/{id}/audit
func (h *LevelHandler) Audit(w http.ResponseWriter, r *http.Request) {
	audit, err := h.levelService.Audit(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, audit)
}

// parseFloatParam parses a float query parameter with a default value
func parseFloatParam(r *http.Request, name string, defaultVal float64) (float64, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(val, 64)
}
