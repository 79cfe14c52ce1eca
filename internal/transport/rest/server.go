package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"linux-monitor/internal/logger"
)

type Server struct {
	addr    string
	handler http.Handler
	log     logger.Logger
	srv     *http.Server
}

func NewServer(addr string, handler http.Handler, log logger.Logger) *Server {
	return &Server{addr: addr, handler: handler, log: log}
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting http server", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
