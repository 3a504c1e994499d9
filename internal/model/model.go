// Package model defines the domain models for Hydrate.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixEntry     = "entry"
	PrefixGoal      = "goal"
	PrefixDrinkType = "drink"
	KeyStats        = "stats"
)

// joinKey builds "<prefix>:<id>".
func joinKey(prefix, id string) string {
	return prefix + ":" + id
}

// splitKey strips "<prefix>:" from a key. Keys without the prefix are
// returned unchanged.
func splitKey(prefix, key string) string {
	return strings.TrimPrefix(key, prefix+":")
}

// NewID returns a new time-sortable record id. UUIDv7 keeps a prefix
// scan in insertion order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
