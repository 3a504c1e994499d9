package model

import "time"

// EntryRepository stores water entries. Implementations return an
// errors.NotFoundError for unknown ids and list entries in insertion order.
type EntryRepository interface {
	Create(entry *WaterEntry) error
	Get(id string) (*WaterEntry, error)
	Update(entry *WaterEntry) error
	// Delete removes the entry and returns what was stored.
	Delete(id string) (*WaterEntry, error)
	List() ([]*WaterEntry, error)
	// ListBetween returns entries with start <= timestamp <= end.
	ListBetween(start, end time.Time) ([]*WaterEntry, error)
}

// GoalRepository stores the history of daily goals.
type GoalRepository interface {
	Save(goal *DailyGoal) error
	List() ([]*DailyGoal, error)
}

// DrinkTypeRepository stores the drink catalog, keyed by value.
type DrinkTypeRepository interface {
	Save(drink *DrinkType) error
	GetByValue(value string) (*DrinkType, error)
	List() ([]*DrinkType, error)
}

// StatsRepository persists the cached statistics snapshot. Get returns a
// zero snapshot when none has been saved.
type StatsRepository interface {
	Get() (*UserStats, error)
	Save(stats *UserStats) error
}

// UndoRepository persists the single undo slot. Get returns nil when the
// slot is empty.
type UndoRepository interface {
	Get() (*UndoState, error)
	Save(state *UndoState) error
	Clear() error
}

// Repositories bundles the repositories of one storage backend.
type Repositories struct {
	Entries    EntryRepository
	Goals      GoalRepository
	DrinkTypes DrinkTypeRepository
	Stats      StatsRepository
	Undo       UndoRepository
}
