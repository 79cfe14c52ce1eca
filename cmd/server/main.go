package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linux-monitor/internal/config"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/observability"
	"linux-monitor/internal/storage/snapshot"
	"linux-monitor/internal/transport/rest"
	"linux-monitor/internal/transport/websocket"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	appLog := logger.New(cfg)

	reg := prometheus.NewRegistry()
	obs := observability.NewPromObs(reg)

	store := snapshot.NewSnapshotStore()

	// WebSocket
	wsHub := websocket.NewHub(appLog, obs)
	wsHandler := websocket.NewHandler(wsHub, appLog, cfg)
	go wsHub.Run(ctx)

	store.OnSet(wsHub.BroadcastSnapshot)

	router := rest.NewRouter(cfg, appLog, &rest.RouterDeps{
		Monitor: rest.NewMonitorHandler(store, appLog, obs),
		Ws:      wsHandler.Serve,
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	if err := rest.NewServer(cfg.Address, router, appLog).Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLog.Error("http: server failed", "error", err)
		log.Fatal(err)
	}

	appLog.Info("http: server stopped")
}
