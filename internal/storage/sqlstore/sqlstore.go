// Package sqlstore is the SQLite storage backend, built on gorm.
//
// # Usage
//
//	store, err := sqlstore.Open(sqlstore.Options{Path: "hydrate.db"})
//	repos := store.Repositories()
package sqlstore

import (
	"time"

	json "github.com/goccy/go-json"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

// Options configures the SQLite connection.
type Options struct {
	// Path is the database file. ":memory:" opens a private in-memory database.
	Path string
	// Debug logs every SQL statement.
	Debug bool
}

// Store wraps a gorm connection.
type Store struct {
	db *gorm.DB
}

// Open connects to the database and migrates the schema.
func Open(opts Options) (*Store, error) {
	logMode := logger.Silent
	if opts.Debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(opts.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("open database", err.Error(), err)
	}

	if opts.Path == ":memory:" {
		// Each pooled connection would otherwise see its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&entryRow{}, &goalRow{}, &drinkRow{}, &statsRow{}, &undoRow{}); err != nil {
		return nil, errors.NewSystemErrorWithOp("migrate database", err.Error(), err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Repositories returns the SQLite-backed repositories sharing this store.
func (s *Store) Repositories() *model.Repositories {
	return &model.Repositories{
		Entries:    &EntryRepo{db: s.db},
		Goals:      &GoalRepo{db: s.db},
		DrinkTypes: &DrinkTypeRepo{db: s.db},
		Stats:      &StatsRepo{db: s.db},
		Undo:       &UndoRepo{db: s.db},
	}
}

// =============================================================================
// Rows
// =============================================================================

// Times are stored in UTC so the driver's text encoding sorts correctly.
type entryRow struct {
	ID                  string    `gorm:"primaryKey"`
	Amount              float64   `gorm:"not null"`
	Unit                string    `gorm:"not null"`
	DrinkType           string    `gorm:"not null"`
	Timestamp           time.Time `gorm:"index;not null"`
	HydrationPoints     *float64
	HydrationMultiplier *float64
}

func (entryRow) TableName() string { return "entries" }

func toEntryRow(e *model.WaterEntry) *entryRow {
	return &entryRow{
		ID:                  e.ID,
		Amount:              e.Amount,
		Unit:                string(e.Unit),
		DrinkType:           e.DrinkType,
		Timestamp:           e.Timestamp.UTC(),
		HydrationPoints:     e.HydrationPoints,
		HydrationMultiplier: e.HydrationMultiplier,
	}
}

func (r *entryRow) toModel() *model.WaterEntry {
	return &model.WaterEntry{
		ID:                  r.ID,
		Amount:              r.Amount,
		Unit:                model.Unit(r.Unit),
		DrinkType:           r.DrinkType,
		Timestamp:           r.Timestamp,
		HydrationPoints:     r.HydrationPoints,
		HydrationMultiplier: r.HydrationMultiplier,
	}
}

type goalRow struct {
	ID           string    `gorm:"primaryKey"`
	Date         time.Time `gorm:"index;not null"`
	TargetAmount float64   `gorm:"not null"`
	Unit         string    `gorm:"not null"`
}

func (goalRow) TableName() string { return "goals" }

type drinkRow struct {
	ID                  string `gorm:"primaryKey"`
	Value               string `gorm:"uniqueIndex;not null"`
	Label               string
	Icon                string
	HydrationMultiplier float64 `gorm:"not null"`
	Active              bool
}

func (drinkRow) TableName() string { return "drink_types" }

// statsRow and undoRow hold a single row with ID 1.
type statsRow struct {
	ID            uint `gorm:"primaryKey"`
	CurrentStreak int
	LongestStreak int
	TotalIntake   float64
	AverageDaily  float64
}

func (statsRow) TableName() string { return "user_stats" }

type undoRow struct {
	ID       uint `gorm:"primaryKey"`
	Action   string
	EntryID  string
	Snapshot []byte
}

func (undoRow) TableName() string { return "undo_state" }

const singletonID = 1

// =============================================================================
// EntryRepo
// =============================================================================

var _ model.EntryRepository = (*EntryRepo)(nil)

// EntryRepo stores entries in the entries table. Ids are UUIDv7, so
// ordering by id is insertion order.
type EntryRepo struct {
	db *gorm.DB
}

// Create stores a new entry, assigning an id if it has none.
func (r *EntryRepo) Create(entry *model.WaterEntry) error {
	if entry.ID == "" {
		entry.ID = model.NewID()
	}
	return errors.Wrap(r.db.Create(toEntryRow(entry)).Error, "store entry")
}

// Get retrieves an entry by id.
func (r *EntryRepo) Get(id string) (*model.WaterEntry, error) {
	var row entryRow
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.EntryNotFound(id)
		}
		return nil, errors.Wrap(err, "read entry")
	}
	return row.toModel(), nil
}

// Update overwrites an existing entry.
func (r *EntryRepo) Update(entry *model.WaterEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing entryRow
		if err := tx.Where("id = ?", entry.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.EntryNotFound(entry.ID)
			}
			return errors.Wrap(err, "update entry")
		}
		return errors.Wrap(tx.Save(toEntryRow(entry)).Error, "update entry")
	})
}

// Delete removes an entry and returns it.
func (r *EntryRepo) Delete(id string) (*model.WaterEntry, error) {
	var row entryRow
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.EntryNotFound(id)
			}
			return errors.Wrap(err, "delete entry")
		}
		return errors.Wrap(tx.Delete(&entryRow{}, "id = ?", id).Error, "delete entry")
	})
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// List retrieves all entries in insertion order.
func (r *EntryRepo) List() ([]*model.WaterEntry, error) {
	return r.find(r.db.Order("id"))
}

// ListBetween retrieves entries with start <= timestamp <= end.
func (r *EntryRepo) ListBetween(start, end time.Time) ([]*model.WaterEntry, error) {
	return r.find(r.db.Where("timestamp >= ? AND timestamp <= ?", start.UTC(), end.UTC()).Order("id"))
}

func (r *EntryRepo) find(q *gorm.DB) ([]*model.WaterEntry, error) {
	var rows []entryRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list entries")
	}
	entries := make([]*model.WaterEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toModel())
	}
	return entries, nil
}

// =============================================================================
// GoalRepo
// =============================================================================

var _ model.GoalRepository = (*GoalRepo)(nil)

// GoalRepo stores goals in the goals table.
type GoalRepo struct {
	db *gorm.DB
}

// Save creates or overwrites a goal, assigning an id if it has none.
func (r *GoalRepo) Save(goal *model.DailyGoal) error {
	if goal.ID == "" {
		goal.ID = model.NewID()
	}
	row := goalRow{ID: goal.ID, Date: goal.Date.UTC(), TargetAmount: goal.TargetAmount, Unit: string(goal.Unit)}
	return errors.Wrap(r.db.Save(&row).Error, "store goal")
}

// List retrieves all goals in insertion order.
func (r *GoalRepo) List() ([]*model.DailyGoal, error) {
	var rows []goalRow
	if err := r.db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list goals")
	}
	goals := make([]*model.DailyGoal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, &model.DailyGoal{
			ID:           row.ID,
			Date:         row.Date,
			TargetAmount: row.TargetAmount,
			Unit:         model.Unit(row.Unit),
		})
	}
	return goals, nil
}

// =============================================================================
// DrinkTypeRepo
// =============================================================================

var _ model.DrinkTypeRepository = (*DrinkTypeRepo)(nil)

// DrinkTypeRepo stores the catalog in the drink_types table.
type DrinkTypeRepo struct {
	db *gorm.DB
}

// Save upserts a drink type by value.
func (r *DrinkTypeRepo) Save(drink *model.DrinkType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing drinkRow
		err := tx.Where("value = ?", drink.Value).First(&existing).Error
		switch {
		case err == nil:
			drink.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if drink.ID == "" {
				drink.ID = model.NewID()
			}
		default:
			return errors.Wrap(err, "store drink type")
		}

		row := drinkRow{
			ID:                  drink.ID,
			Value:               drink.Value,
			Label:               drink.Label,
			Icon:                drink.Icon,
			HydrationMultiplier: drink.HydrationMultiplier,
			Active:              drink.Active,
		}
		return errors.Wrap(tx.Save(&row).Error, "store drink type")
	})
}

// GetByValue looks a drink type up by its value.
func (r *DrinkTypeRepo) GetByValue(value string) (*model.DrinkType, error) {
	var row drinkRow
	if err := r.db.Where("value = ?", value).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.DrinkTypeNotFound(value)
		}
		return nil, errors.Wrap(err, "read drink type")
	}
	return row.toModel(), nil
}

// List retrieves the catalog in insertion order.
func (r *DrinkTypeRepo) List() ([]*model.DrinkType, error) {
	var rows []drinkRow
	if err := r.db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list drink types")
	}
	drinks := make([]*model.DrinkType, 0, len(rows))
	for i := range rows {
		drinks = append(drinks, rows[i].toModel())
	}
	return drinks, nil
}

func (r *drinkRow) toModel() *model.DrinkType {
	return &model.DrinkType{
		ID:                  r.ID,
		Value:               r.Value,
		Label:               r.Label,
		Icon:                r.Icon,
		HydrationMultiplier: r.HydrationMultiplier,
		Active:              r.Active,
	}
}

// =============================================================================
// StatsRepo
// =============================================================================

var _ model.StatsRepository = (*StatsRepo)(nil)

// StatsRepo stores the stats snapshot as a single row.
type StatsRepo struct {
	db *gorm.DB
}

// Get returns the stored snapshot, or a zero snapshot if none exists.
func (r *StatsRepo) Get() (*model.UserStats, error) {
	var row statsRow
	if err := r.db.First(&row, singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.UserStats{}, nil
		}
		return nil, errors.Wrap(err, "read stats")
	}
	return &model.UserStats{
		CurrentStreak: row.CurrentStreak,
		LongestStreak: row.LongestStreak,
		TotalIntake:   row.TotalIntake,
		AverageDaily:  row.AverageDaily,
	}, nil
}

// Save stores the snapshot.
func (r *StatsRepo) Save(stats *model.UserStats) error {
	row := statsRow{
		ID:            singletonID,
		CurrentStreak: stats.CurrentStreak,
		LongestStreak: stats.LongestStreak,
		TotalIntake:   stats.TotalIntake,
		AverageDaily:  stats.AverageDaily,
	}
	return errors.Wrap(r.db.Save(&row).Error, "store stats")
}

// =============================================================================
// UndoRepo
// =============================================================================

var _ model.UndoRepository = (*UndoRepo)(nil)

// UndoRepo stores the undo slot as a single row with a JSON snapshot.
type UndoRepo struct {
	db *gorm.DB
}

// Get retrieves the current undo state, or nil.
func (r *UndoRepo) Get() (*model.UndoState, error) {
	var row undoRow
	if err := r.db.First(&row, singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read undo state")
	}

	state := &model.UndoState{Action: model.UndoAction(row.Action), EntryID: row.EntryID}
	if len(row.Snapshot) > 0 {
		state.EntrySnapshot = &model.WaterEntry{}
		if err := json.Unmarshal(row.Snapshot, state.EntrySnapshot); err != nil {
			return nil, errors.Wrap(err, "decode undo snapshot")
		}
	}
	return state, nil
}

// Save stores the undo state, replacing any previous one.
func (r *UndoRepo) Save(state *model.UndoState) error {
	row := undoRow{ID: singletonID, Action: string(state.Action), EntryID: state.EntryID}
	if state.EntrySnapshot != nil {
		data, err := json.Marshal(state.EntrySnapshot)
		if err != nil {
			return err
		}
		row.Snapshot = data
	}
	return errors.Wrap(r.db.Save(&row).Error, "store undo state")
}

// Clear removes the undo state.
func (r *UndoRepo) Clear() error {
	return errors.Wrap(r.db.Delete(&undoRow{}, singletonID).Error, "clear undo state")
}
