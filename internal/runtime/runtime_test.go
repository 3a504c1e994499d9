package runtime

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/hydrate/internal/config"
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/output"
	"github.com/manav03panchal/hydrate/internal/parser"
	"github.com/manav03panchal/hydrate/internal/storage"
)

// =============================================================================
// Context Tests
// =============================================================================

func memoryConfig(backend string) *config.Config {
	cfg := config.Default()
	cfg.Storage.Backend = backend
	cfg.Storage.Path = storage.MemoryPath
	return cfg
}

func newTestContext(t *testing.T, opts Options) *Context {
	t.Helper()
	if opts.Config == nil {
		opts.Config = memoryConfig(config.BackendBadger)
	}
	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
	assert.Empty(t, opts.ConfigFile)
}

func TestNew(t *testing.T) {
	ctx := newTestContext(t, Options{})

	assert.NotNil(t, ctx.Formatter)
	require.NotNil(t, ctx.Tracker)
	assert.Equal(t, config.BackendBadger, ctx.Backend)
	assert.Empty(t, ctx.Path)
	assert.NotNil(t, ctx.Logger)

	// The catalog is seeded on start.
	drinks, err := ctx.Tracker.Catalog.ListActive()
	require.NoError(t, err)
	assert.Len(t, drinks, len(model.DefaultDrinkTypes()))
}

func TestNewSQLite(t *testing.T) {
	ctx := newTestContext(t, Options{Config: memoryConfig(config.BackendSQLite)})

	assert.Equal(t, config.BackendSQLite, ctx.Backend)
	assert.Empty(t, ctx.Path)

	m, err := ctx.Tracker.Catalog.MultiplierFor("coffee")
	require.NoError(t, err)
	assert.Equal(t, 0.8, m)
}

func TestNewSQLiteFile(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.Path = filepath.Join(t.TempDir(), "nested", "hydrate.db")

	ctx := newTestContext(t, Options{Config: cfg})
	assert.Equal(t, cfg.Storage.Path, ctx.Path)
	assert.FileExists(t, cfg.Storage.Path)
}

func TestNewWithOptions(t *testing.T) {
	ctx := newTestContext(t, Options{
		Format:    output.FormatJSON,
		ColorMode: output.ColorNever,
		Debug:     true,
	})

	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorNever, ctx.Formatter.ColorMode)
	assert.True(t, ctx.Debug)
}

func TestNewWithEnvVariable(t *testing.T) {
	t.Setenv(config.EnvDatabase, storage.MemoryPath)

	ctx, err := New(Options{})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Empty(t, ctx.Path)
}

func TestNewWithEnvVariablePath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb")
	t.Setenv(config.EnvDatabase, dbPath)

	ctx, err := New(Options{})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, dbPath, ctx.Path)
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := memoryConfig(config.BackendBadger)
	cfg.Log.Level = "loud"

	_, err := New(Options{Config: cfg})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestContextClose(t *testing.T) {
	ctx, err := New(Options{Config: memoryConfig(config.BackendBadger)})
	require.NoError(t, err)

	assert.NoError(t, ctx.Close())
	assert.NoError(t, (&Context{}).Close())
}

func TestContextFormatters(t *testing.T) {
	ctx := newTestContext(t, Options{Format: output.FormatCLI})

	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())
	assert.True(t, ctx.IsCLI())
	assert.False(t, ctx.IsJSON())

	ctx.Formatter.Format = output.FormatJSON
	assert.True(t, ctx.IsJSON())
	assert.False(t, ctx.IsCLI())
}

func TestContextWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx := newTestContext(t, Options{Format: output.FormatPlain, Writer: &buf})

	ctx.CLIFormatter().Success("ok")
	assert.Contains(t, buf.String(), "ok")
}

func TestAfterMutation(t *testing.T) {
	now := time.Date(2026, 4, 8, 12, 0, 0, 0, time.Local)
	ctx := newTestContext(t, Options{Now: func() time.Time { return now }})

	_, err := ctx.Tracker.Entries.Create(64, model.UnitOz, "water", time.Time{})
	require.NoError(t, err)
	require.NoError(t, ctx.AfterMutation("add"))

	stats, err := ctx.Tracker.Stats.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 64.0, stats.TotalIntake)
}

func TestContextDebugf(t *testing.T) {
	ctx := newTestContext(t, Options{})
	assert.NotPanics(t, func() {
		ctx.Debugf("test message", "key", "value")
	})
}

func TestDefaultSQLitePath(t *testing.T) {
	assert.True(t, strings.HasSuffix(DefaultSQLitePath(), filepath.Join("hydrate", "hydrate.db")))
}

// =============================================================================
// Error Tests
// =============================================================================

func TestFormatError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, FormatError(nil, false))
	})

	t.Run("parse_error_lists_examples", func(t *testing.T) {
		msg := FormatError(parser.NewAmountError("lots"), false)
		assert.Contains(t, msg, "invalid amount 'lots'")
		assert.Contains(t, msg, "Valid examples:")
		assert.Contains(t, msg, "500ml")
	})

	t.Run("not_found", func(t *testing.T) {
		msg := FormatError(errors.EntryNotFound("abc"), false)
		assert.Contains(t, msg, "entry not found: abc")
		assert.Contains(t, msg, "hydrate entries")
	})

	t.Run("debug_includes_chain", func(t *testing.T) {
		err := errors.Wrap(errors.EntryNotFound("abc"), "edit")
		msg := FormatError(err, true)
		assert.Contains(t, msg, "Error chain:")
		assert.Contains(t, msg, "Category: user")
	})
}

func TestGetSuggestion(t *testing.T) {
	assert.Equal(t, "Supported units are oz, ml and cups.", GetSuggestion(parser.NewUnitError("l")))
	assert.Equal(t, errors.Suggestions[errors.ErrNothingToUndo], GetSuggestion(errors.ErrNothingToUndo))
	assert.Empty(t, GetSuggestion(fmt.Errorf("random")))
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", errors.NewValidationError("amount", "must be positive"), StatusValidation},
		{"parse", parser.NewAmountError("x"), StatusValidation},
		{"not_found", errors.EntryNotFound("x"), StatusNotFound},
		{"system", errors.NewSystemError("boom", nil), StatusSystem},
		{"other", fmt.Errorf("random"), StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorStatus(tt.err))
		})
	}
}

func TestNewDiskFullError(t *testing.T) {
	err := NewDiskFullError("export", "/tmp/backup.json", fmt.Errorf("write failed"))

	assert.Equal(t, "export", err.Op)
	assert.Equal(t, "/tmp/backup.json", err.Path)
	assert.Contains(t, err.Error(), "disk full during export on /tmp/backup.json")
	assert.True(t, errors.Is(err, errors.ErrDiskFull))

	noPath := NewDiskFullError("import", "", fmt.Errorf("sync failed"))
	assert.Equal(t, "disk full during import: sync failed", noPath.Error())
}

func TestIsDiskFullError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"typed", NewDiskFullError("write", "", nil), true},
		{"sentinel", errors.ErrDiskFull, true},
		{"wrapped_sentinel", fmt.Errorf("context: %w", errors.ErrDiskFull), true},
		{"enospc", syscall.ENOSPC, true},
		{"message", fmt.Errorf("no space left on device"), true},
		{"uppercase", fmt.Errorf("DISK FULL"), true},
		{"out_of_space", fmt.Errorf("out of disk space"), true},
		{"regular", fmt.Errorf("connection timeout"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDiskFullError(tt.err))
		})
	}
}

func TestWrapDiskFullError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, WrapDiskFullError(nil, "write", "/path"))
	})

	t.Run("disk_full_becomes_system_error", func(t *testing.T) {
		err := WrapDiskFullError(fmt.Errorf("no space left on device"), "export", "/path/to/file")

		assert.True(t, errors.IsSystemError(err))
		var dfe *DiskFullError
		require.True(t, errors.As(err, &dfe))
		assert.Equal(t, "/path/to/file", dfe.Path)
		assert.Equal(t, StatusSystem, ErrorStatus(err))
	})

	t.Run("regular_error_unchanged", func(t *testing.T) {
		orig := fmt.Errorf("connection timeout")
		assert.Equal(t, orig, WrapDiskFullError(orig, "write", "/path"))
	})
}
