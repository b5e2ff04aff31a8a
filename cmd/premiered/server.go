package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/time/rate"
	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/premiere/internal/api/v1"
	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/config"
	"github.com/vmunix/premiere/internal/details"
	"github.com/vmunix/premiere/internal/events"
	"github.com/vmunix/premiere/internal/metadata"
	"github.com/vmunix/premiere/internal/migrations"
	"github.com/vmunix/premiere/internal/server"
	"github.com/vmunix/premiere/internal/tmdb"
	"github.com/vmunix/premiere/pkg/itunes"
	"github.com/vmunix/premiere/pkg/omdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	if configPath == "" {
		found, err := config.Discover()
		if err != nil {
			return fmt.Errorf("config: %w (run 'premiere init' to create one)", err)
		}
		configPath = found
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, logger.With("component", "bus"))
	defer func() { _ = bus.Close() }()

	deps := buildDeps(cfg, db, bus, logger)
	defer func() {
		deps.details.Close()
		deps.details.Wait()
	}()

	api, err := v1.New(deps.serverDeps(eventLog))
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting",
		"addr", addr,
		"database", cfg.Database.Path,
		"search_cache", !cfg.Cache.DisableSearch,
		"tmdb", cfg.TMDB.Enabled(),
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{
		Addr:           addr,
		DefaultQuery:   startupQuery(ctx, cfg.Browse, eventLog, logger),
		PruneInterval:  cfg.Cache.PruneInterval,
		EventRetention: cfg.Cache.EventRetention,
		Proximity:      deps.proximity.Signals(),
	}, mux, deps.browser, deps.cache, eventLog, logger.With("component", "runner"))

	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// startupQuery picks the query searched at startup. With resume_last set, the
// last recorded search wins over the configured default.
func startupQuery(ctx context.Context, cfg config.BrowseConfig, log *events.EventLog, logger *slog.Logger) string {
	if !cfg.ResumeLast {
		return cfg.DefaultQuery
	}
	q, err := events.LastQuery(ctx, log, events.DefaultRegistry())
	if err != nil {
		logger.Warn("could not read last query", "error", err)
		return cfg.DefaultQuery
	}
	if q == "" {
		return cfg.DefaultQuery
	}
	logger.Info("resuming last search", "query", q)
	return q
}

type daemonDeps struct {
	browser     *browse.Controller
	details     *details.Aggregator
	cache       *metadata.Cache
	searchCache *metadata.CachedDirectory // nil when search caching is off
	proximity   *browse.Proximity
	services    map[string]bool
}

func (d daemonDeps) serverDeps(log *events.EventLog) v1.ServerDeps {
	sd := v1.ServerDeps{
		Browser:   d.browser,
		Details:   d.details,
		Proximity: d.proximity,
		Services:  d.services,
		Version:   version,
	}
	// Typed nils must not become non-nil interfaces.
	if log != nil {
		sd.EventLog = log
	}
	if d.searchCache != nil {
		sd.SearchCache = d.searchCache
	}
	return sd
}

// buildDeps wires the remote clients into the browse controller and the
// detail aggregator.
func buildDeps(cfg *config.Config, db *sql.DB, bus *events.Bus, logger *slog.Logger) daemonDeps {
	movies := omdb.NewClient(cfg.OMDb.APIKey,
		omdb.WithBaseURL(cfg.OMDb.URL),
		omdb.WithHTTPClient(&http.Client{Timeout: cfg.OMDb.Timeout}),
		omdb.WithLogger(logger.With("component", "omdb")),
	)

	cache := metadata.NewCache(db)

	var dir browse.Directory = movies
	var searchCache *metadata.CachedDirectory
	if !cfg.Cache.DisableSearch {
		searchCache = metadata.NewCachedDirectory(movies, cache, cfg.Cache.SearchTTL, logger.With("component", "search-cache"))
		dir = searchCache
	}

	songs := itunes.NewClient(
		itunes.WithBaseURL(cfg.ITunes.URL),
		itunes.WithHTTPClient(&http.Client{Timeout: cfg.ITunes.Timeout}),
	)

	// Left as a nil interface when disabled so every actor gets an avatar.
	var people details.PersonSource
	if cfg.TMDB.Enabled() {
		people = tmdb.NewClient(cfg.TMDB.APIKey,
			tmdb.WithBaseURL(cfg.TMDB.URL),
			tmdb.WithCacheTTL(cfg.TMDB.CacheTTL),
			tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
			tmdb.WithLogger(logger.With("component", "tmdb")),
		)
	}

	browser := browse.NewController(dir, browse.Config{
		PageSize: cfg.Browse.PageSize,
		MaxPages: cfg.Browse.MaxPages,
	}, bus, logger.With("component", "browse"))

	agg := details.NewAggregator(movies, songs, people, details.Config{
		SongLimit:    cfg.ITunes.SongLimit,
		PhotoSize:    cfg.TMDB.PhotoSize,
		PhotoWorkers: cfg.TMDB.Workers,
		PhotoRate:    rate.Limit(cfg.TMDB.RatePerSecond),
	}, bus, logger.With("component", "details"))

	return daemonDeps{
		browser:     browser,
		details:     agg,
		cache:       cache,
		searchCache: searchCache,
		proximity:   browse.NewProximity(),
		services: map[string]bool{
			"omdb":         true,
			"itunes":       true,
			"tmdb":         cfg.TMDB.Enabled(),
			"search_cache": !cfg.Cache.DisableSearch,
		},
	}
}
