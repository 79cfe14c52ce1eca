package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"linux-monitor/internal/agent"
	"linux-monitor/internal/config"
	"linux-monitor/internal/logger"
	"linux-monitor/internal/metrics"
	"linux-monitor/internal/observability"
	"linux-monitor/internal/transport/rest"
)

func main() {
	cfg := config.Load()
	appLog := logger.New(cfg)

	if cfg.CollectInterval <= 0 {
		log.Fatal("FATAL: COLLECT_INTERVAL must be positive")
	}

	appLog.Info("linux monitor collector: starting...", "host", cfg.HostName, "mode", cfg.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	obs := observability.NewPromObs(reg)

	sampler := metrics.NewSampler(cfg, appLog).WithObserver(obs)
	reporter := agent.NewReporter(agent.NewClient(cfg), appLog, obs)
	collector := agent.New(cfg, appLog, sampler, reporter)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Collection loop
	g.Go(func() error {
		err := collector.Run(gCtx)
		// Snapshot mode finishes on its own; take the listener down with it.
		stop()
		return err
	})

	// 2. Self metrics
	if cfg.MetricsAddress != "" {
		g.Go(func() error {
			router := rest.NewChain(rest.RequestLog(appLog)).Apply(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			return rest.NewServer(cfg.MetricsAddress, router, appLog).Start(gCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLog.Error("collector failed unexpectedly", "error", err)
		log.Fatal(err)
	}

	appLog.Info("linux monitor collector: stopped")
}
