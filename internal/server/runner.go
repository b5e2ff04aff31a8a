// Package server runs the daemon's long-lived components: the HTTP API,
// the startup search, the proximity watcher and periodic pruning of the
// cache and event log.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config for the runner.
type Config struct {
	Addr            string
	DefaultQuery    string        // searched once at startup; empty disables
	PruneInterval   time.Duration // 0 disables pruning
	EventRetention  time.Duration
	ShutdownTimeout time.Duration
	Proximity       <-chan bool // load-more triggers for Browser.Watch; nil disables
}

// Browser runs the startup search and follows proximity triggers.
type Browser interface {
	Search(ctx context.Context, query string) error
	Watch(ctx context.Context, signals <-chan bool)
}

// CachePruner drops expired cache entries.
type CachePruner interface {
	Prune(ctx context.Context) (int64, error)
}

// EventPruner drops events older than a retention window.
type EventPruner interface {
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Runner manages the daemon components.
type Runner struct {
	config  Config
	handler http.Handler
	browser Browser
	cache   CachePruner
	events  EventPruner
	logger  *slog.Logger
}

// NewRunner creates a new runner. browser, cache and events may be nil.
func NewRunner(cfg Config, handler http.Handler, browser Browser, cache CachePruner, events EventPruner, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	return &Runner{
		config:  cfg,
		handler: handler,
		browser: browser,
		cache:   cache,
		events:  events,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln.
// It blocks until the context is canceled or a component fails.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           logRequests(r.handler, r.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.browser != nil && r.config.DefaultQuery != "" {
		g.Go(func() error {
			if err := r.browser.Search(ctx, r.config.DefaultQuery); err != nil {
				r.logger.Warn("startup search failed", "query", r.config.DefaultQuery, "error", err)
			}
			return nil
		})
	}

	if r.browser != nil && r.config.Proximity != nil {
		g.Go(func() error {
			r.browser.Watch(ctx, r.config.Proximity)
			return nil
		})
	}

	if r.config.PruneInterval > 0 && (r.cache != nil || r.events != nil) {
		g.Go(func() error {
			r.pruneLoop(ctx)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(r.config.PruneInterval)
	defer ticker.Stop()

	r.logger.Debug("pruner started", "interval", r.config.PruneInterval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Prune(ctx)
		}
	}
}

// Prune removes expired cache entries and events past retention.
func (r *Runner) Prune(ctx context.Context) {
	if r.cache != nil {
		n, err := r.cache.Prune(ctx)
		if err != nil {
			r.logger.Error("cache prune failed", "error", err)
		} else if n > 0 {
			r.logger.Info("cache pruned", "removed", n)
		}
	}
	if r.events != nil && r.config.EventRetention > 0 {
		n, err := r.events.Prune(ctx, r.config.EventRetention)
		if err != nil {
			r.logger.Error("event prune failed", "error", err)
		} else if n > 0 {
			r.logger.Info("events pruned", "removed", n)
		}
	}
}
