// Package rest exposes the snapshot cache over HTTP/JSON.
package rest

import (
	"net/http"

	"linux-monitor/internal/config"
	"linux-monitor/internal/logger"
)

type RouterDeps struct {
	Monitor *MonitorHandler
	Ws      http.HandlerFunc
	Metrics http.Handler
}

func NewRouter(cfg *config.Config, log logger.Logger, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	global := NewChain()
	global.Use(RequestLog(log))
	global.Use(CORS(cfg))

	// HEALTH
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// MONITOR
	mux.HandleFunc("POST /monitor", deps.Monitor.Publish)
	mux.HandleFunc("GET /monitor", deps.Monitor.Latest)

	// WEBSOCKET
	if deps.Ws != nil {
		mux.HandleFunc("GET /ws", deps.Ws)
	}

	// SELF METRICS
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	return global.Apply(mux)
}
