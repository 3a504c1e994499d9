// Package runtime provides application runtime context for Hydrate.
package runtime

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/hydrate/internal/app"
	"github.com/manav03panchal/hydrate/internal/config"
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/output"
	"github.com/manav03panchal/hydrate/internal/storage"
	"github.com/manav03panchal/hydrate/internal/storage/sqlstore"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	Formatter *output.Formatter
	Tracker   *app.Tracker

	// Backend is the storage backend in use and Path its location
	// ("" for in-memory).
	Backend string
	Path    string

	// Ctx carries the invocation's request id for logging.
	Ctx    context.Context
	Logger *slog.Logger

	// Debug mode
	Debug bool

	store io.Closer
}

// Options configures the runtime context.
type Options struct {
	ConfigFile string
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool

	// Config skips loading when set.
	Config *config.Config
	// Now overrides the clock.
	Now func() time.Time
	// Writer overrides stdout.
	Writer io.Writer
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New loads configuration, opens the configured store and wires the
// tracker. The default drink catalog is seeded on every start.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	if err := initLogging(cfg, opts.Debug); err != nil {
		return nil, err
	}
	reqCtx := logging.NewRequestContext()
	log := logging.LoggerFromContext(reqCtx)

	repos, store, path, err := openStore(cfg, opts.Debug)
	if err != nil {
		return nil, err
	}
	log.Debug("store opened", logging.KeyBackend, cfg.Storage.Backend, logging.KeyPath, path)

	tracker := app.NewTracker(repos, app.Options{
		Now:             opts.Now,
		DefaultGoal:     cfg.DefaultGoal(),
		StatsWindowDays: cfg.Stats.WindowDays,
		MaxStreakDays:   cfg.Stats.MaxStreakDays,
		Logger:          log,
	})
	if _, err := tracker.Catalog.SeedDefaults(); err != nil {
		store.Close()
		return nil, errors.Wrap(err, "seed drink catalog")
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	if opts.Writer != nil {
		formatter.Writer = opts.Writer
	}

	return &Context{
		Config:    cfg,
		Formatter: formatter,
		Tracker:   tracker,
		Backend:   cfg.Storage.Backend,
		Path:      path,
		Ctx:       reqCtx,
		Logger:    log,
		Debug:     opts.Debug,
		store:     store,
	}, nil
}

func initLogging(cfg *config.Config, debug bool) error {
	if debug {
		logging.InitDebug()
		return nil
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.NewValidationErrorWithValue("log.level", cfg.Log.Level, "unknown log level", err)
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.JSON = cfg.Log.JSON
	logging.Init(lc)
	return nil
}

// openStore opens the configured backend and returns its repositories.
func openStore(cfg *config.Config, debug bool) (*model.Repositories, io.Closer, string, error) {
	path := cfg.Storage.Path

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if path == "" {
			path = DefaultSQLitePath()
		}
		if path != storage.MemoryPath {
			if err := storage.EnsureDirectory(filepath.Dir(path)); err != nil {
				return nil, nil, "", err
			}
		}
		store, err := sqlstore.Open(sqlstore.Options{Path: path, Debug: debug})
		if err != nil {
			return nil, nil, "", err
		}
		if path == storage.MemoryPath {
			path = ""
		}
		return store.Repositories(), store, path, nil

	default:
		if path == "" {
			path = storage.DefaultPath()
		}
		db, err := storage.Open(storage.Options{Path: path, InMemory: cfg.InMemory()})
		if err != nil {
			return nil, nil, "", err
		}
		return db.Repositories(), db, db.Path(), nil
	}
}

// DefaultSQLitePath returns the default sqlite database file.
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, storage.AppName, "hydrate.db")
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Close(); err != nil {
		logging.Warn("store close failed", logging.KeyBackend, c.Backend, logging.KeyError, err)
		return err
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// AfterMutation refreshes the stats snapshot. Commands call it after
// every change to entries or goals.
func (c *Context) AfterMutation(op string) error {
	start := time.Now()
	_, err := c.Tracker.RefreshStats()
	c.Logger.Debug("mutation",
		logging.KeyOperation, op,
		logging.KeyDuration, time.Since(start).Milliseconds(),
		logging.KeyError, err)
	return err
}

// Debugf logs a debug message with the invocation's request id.
func (c *Context) Debugf(msg string, args ...any) {
	logging.DebugContext(c.Ctx, msg, args...)
}
