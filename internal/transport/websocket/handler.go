package websocket

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"linux-monitor/internal/config"
	"linux-monitor/internal/logger"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	log      logger.Logger
}

// NewHandler accepts requests without an Origin header (non-browser
// viewers) and browser requests from cfg.AllowedOrigins. "*" allows any.
func NewHandler(hub *Hub, log logger.Logger, cfg *config.Config) *Handler {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || slices.Contains(cfg.AllowedOrigins, "*") {
				return true
			}

			allowed := slices.Contains(cfg.AllowedOrigins, origin)
			if !allowed {
				log.Warn("websocket origin rejected", "origin", origin)
			}
			return allowed
		},
	}

	return &Handler{
		hub:      hub,
		upgrader: upgrader,
		log:      log,
	}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade failed", "error", err)
		return
	}

	client := NewClient(h.hub, conn, h.log)
	if !h.hub.registerClient(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.log.Info("client connected", "remote_addr", conn.RemoteAddr())
}
