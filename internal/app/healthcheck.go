package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// statusHandler serves /health and the run's prometheus metrics on /metrics.
func (a *App) statusHandler(ctx context.Context) http.Handler {
	logger := ctxlog.FromContext(ctx)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	return mux
}

// startStatusServer runs the status HTTP server in the background.
func (a *App) startStatusServer(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.StatusPort)

	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.statusHandler(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Status server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Status server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeStatusServer(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("Status server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	logger.Debug("Shutting down status server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logger.Error("Status server shutdown failed", "error", err)
		return err
	}
	logger.Debug("Status server shut down gracefully.")
	return nil
}
