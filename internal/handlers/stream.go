package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"lavaclimb.dev/internal/models"
	"lavaclimb.dev/internal/services"
)

// StreamConfig configures a StreamHandler
type StreamConfig struct {
	Logger *log.Logger
}

// StreamHandler serves a level's command stream over a WebSocket. The
// client sends ScrollRequest frames and receives one CommandBatch per frame.
type StreamHandler struct {
	levelService *services.LevelService
	logger       *log.Logger
	upgrader     websocket.Upgrader
}

// NewStreamHandler creates a new StreamHandler
func NewStreamHandler(ls *services.LevelService, cfg StreamConfig) *StreamHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &StreamHandler{
		levelService: ls,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Stream handles GET /api/levels/{id}/stream
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.levelService.Get(id); err != nil {
		respondServiceError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed for level %s: %v", id, err)
		return
	}
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("stream for level %s closed: %v", id, err)
			}
			return
		}

		var msg models.ScrollRequest
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed frame for level %s: %v", id, err)
			continue
		}

		batch, err := h.levelService.Scroll(id, msg.ScrollY)
		if errors.Is(err, services.ErrSessionNotFound) {
			message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "level deleted")
			conn.WriteMessage(websocket.CloseMessage, message)
			return
		}
		if errors.Is(err, services.ErrInvalidScroll) {
			h.logger.Printf("discarding scroll for level %s: %v", id, err)
			continue
		}
		if err != nil {
			h.logger.Printf("scroll failed for level %s: %v", id, err)
			return
		}

		if err := conn.WriteJSON(batch); err != nil {
			h.logger.Printf("write failed for level %s: %v", id, err)
			return
		}
	}
}
