// Package storage provides the badger-backed database layer for Hydrate.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "hydrate"

	// MemoryPath selects an in-memory database.
	MemoryPath = ":memory:"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the badger directory under the XDG data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := opts.Path

	if opts.InMemory || path == "" || path == MemoryPath {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
		path = ""
	} else {
		if err := EnsureDirectory(path); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, classifyOpenError(err)
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, or "" for an in-memory database.
func (d *DB) Path() string {
	return d.path
}

// classifyOpenError maps badger open failures onto system errors the CLI
// can explain.
func classifyOpenError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "cannot acquire directory lock"):
		return errors.NewSystemErrorWithOp("open database", "database is locked", errors.ErrDatabaseLocked)
	case os.IsPermission(err) || strings.Contains(msg, "permission denied"):
		return errors.NewSystemErrorWithOp("open database", "permission denied", errors.ErrPermissionDenied)
	case isCorruption(msg):
		return errors.NewSystemErrorWithOp("open database", "database is corrupted", errors.Wrap(errors.ErrDatabaseCorrupted, err.Error()))
	default:
		return errors.NewSystemErrorWithOp("open database", err.Error(), err)
	}
}

var corruptionPatterns = []string{
	"checksum mismatch",
	"corrupt",
	"unexpected eof",
	"bad magic",
	"truncated",
}

func isCorruption(msg string) bool {
	for _, pattern := range corruptionPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// Repositories returns the badger-backed repositories sharing this connection.
func (d *DB) Repositories() *model.Repositories {
	return &model.Repositories{
		Entries:    NewEntryRepo(d),
		Goals:      NewGoalRepo(d),
		DrinkTypes: NewDrinkTypeRepo(d),
		Stats:      NewStatsRepo(d),
		Undo:       NewUndoRepo(d),
	}
}
