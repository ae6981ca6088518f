package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lavaclimb.dev/internal/config"
	"lavaclimb.dev/internal/generation"
	"lavaclimb.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize services
	phys := generation.NewPhysics(cfg.Physics)
	levelService := services.NewLevelService(services.LevelServiceConfig{
		Physics:           phys,
		Patterns:          cfg.Patterns,
		DefaultDifficulty: cfg.Difficulty(),
		Logger:            log.Default(),
	})
	patternService := services.NewPatternService(cfg.Patterns)
	difficultyService := services.NewDifficultyService(phys)

	// Initialize handlers
	levelHandler := NewLevelHandler(levelService)
	streamHandler := NewStreamHandler(levelService, StreamConfig{})
	patternHandler := NewPatternHandler(patternService)
	difficultyHandler := NewDifficultyHandler(difficultyService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Level sessions
		r.Route("/levels", func(r chi.Router) {
			r.Get("/", levelHandler.ListLevels)
			r.Post("/", levelHandler.CreateLevel)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", levelHandler.GetLevel)
				r.Delete("/", levelHandler.DeleteLevel)
				r.Get("/viewport", levelHandler.GetViewport)
				r.Post("/scroll", levelHandler.Scroll)
				r.Get("/audit", levelHandler.Audit)
				r.Get("/stream", streamHandler.Stream)
			})
		})

		// Catalogs
		r.Get("/patterns", patternHandler.ListPatterns)
		r.Get("/patterns/{id}", patternHandler.GetPattern)
		r.Get("/difficulties", difficultyHandler.ListDifficulties)
		r.Get("/difficulties/{name}", difficultyHandler.GetDifficulty)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto status codes
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrPatternNotFound),
		errors.Is(err, generation.ErrUnknownDifficulty):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidScroll):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
