package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newEntry(amount float64, ts time.Time) *model.WaterEntry {
	e := &model.WaterEntry{Amount: amount, Unit: model.UnitOz, DrinkType: "water", Timestamp: ts}
	e.SetHydration(1.0, amount)
	return e
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		assert.NoError(t, db.Close())
	})

	t.Run("memory_path", func(t *testing.T) {
		db, err := Open(Options{Path: MemoryPath})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		require.NoError(t, NewEntryRepo(db).Create(newEntry(8, time.Now())))
		require.NoError(t, db.Close())

		db, err = Open(Options{Path: dir})
		require.NoError(t, err)
		defer db.Close()
		entries, err := NewEntryRepo(db).List()
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("locked", func(t *testing.T) {
		dir := t.TempDir()
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		defer db.Close()

		_, err = Open(Options{Path: dir})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrDatabaseLocked))
		assert.True(t, errors.IsSystemError(err))
	})
}

func TestDefaultPath(t *testing.T) {
	assert.Contains(t, DefaultPath(), filepath.Join(AppName, "db"))
}

// =============================================================================
// EntryRepo Tests
// =============================================================================

func TestEntryRepoCreateGet(t *testing.T) {
	repo := NewEntryRepo(setupTestDB(t))
	ts := time.Date(2026, 4, 8, 9, 0, 0, 0, time.UTC)

	e := newEntry(16, ts)
	require.NoError(t, repo.Create(e))
	assert.NotEmpty(t, e.ID)

	got, err := repo.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, 16.0, got.Amount)
	assert.Equal(t, model.UnitOz, got.Unit)
	assert.True(t, ts.Equal(got.Timestamp))
	require.NotNil(t, got.HydrationPoints)
	assert.Equal(t, 16.0, *got.HydrationPoints)
}

func TestEntryRepoGetMissing(t *testing.T) {
	repo := NewEntryRepo(setupTestDB(t))
	_, err := repo.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestEntryRepoUpdate(t *testing.T) {
	repo := NewEntryRepo(setupTestDB(t))
	e := newEntry(8, time.Now())
	require.NoError(t, repo.Create(e))

	e.Amount = 12
	require.NoError(t, repo.Update(e))
	got, err := repo.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.Amount)

	missing := newEntry(1, time.Now())
	missing.ID = "missing"
	err = repo.Update(missing)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEntryRepoDelete(t *testing.T) {
	repo := NewEntryRepo(setupTestDB(t))
	e := newEntry(8, time.Now())
	require.NoError(t, repo.Create(e))
	require.NoError(t, repo.Create(newEntry(4, time.Now())))

	t.Run("missing_leaves_repo_unchanged", func(t *testing.T) {
		_, err := repo.Delete("does-not-exist")
		assert.True(t, errors.Is(err, errors.ErrNotFound))
		all, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("returns_removed", func(t *testing.T) {
		removed, err := repo.Delete(e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.ID, removed.ID)
		assert.Equal(t, 8.0, removed.Amount)

		_, err = repo.Get(e.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestEntryRepoListInsertionOrder(t *testing.T) {
	repo := NewEntryRepo(setupTestDB(t))
	now := time.Now()

	// Later timestamps first; listing must follow creation order.
	var ids []string
	for i := 0; i < 5; i++ {
		e := newEntry(float64(i+1), now.Add(-time.Duration(i)*time.Hour))
		require.NoError(t, repo.Create(e))
		ids = append(ids, e.ID)
	}

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, e := range all {
		assert.Equal(t, ids[i], e.ID)
	}
}

func TestEntryRepoListBetweenInclusive(t *testing.T) {
	repo := NewEntryRepo(setupTestDB(t))
	start := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	require.NoError(t, repo.Create(newEntry(1, start.Add(-time.Second))))
	require.NoError(t, repo.Create(newEntry(2, start)))
	require.NoError(t, repo.Create(newEntry(3, start.Add(12*time.Hour))))
	require.NoError(t, repo.Create(newEntry(4, end)))
	require.NoError(t, repo.Create(newEntry(5, end.Add(time.Second))))

	got, err := repo.ListBetween(start, end)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 2.0, got[0].Amount)
	assert.Equal(t, 4.0, got[2].Amount)
}

func TestEntryRepoLegacyRecord(t *testing.T) {
	db := setupTestDB(t)
	legacy := &model.WaterEntry{ID: "legacy", Amount: 16, Unit: model.UnitOz, DrinkType: "water", Timestamp: time.Now()}
	require.NoError(t, db.Set(legacy))

	got, err := NewEntryRepo(db).Get("legacy")
	require.NoError(t, err)
	assert.Nil(t, got.HydrationPoints)
	assert.Equal(t, 16.0, got.Points())
}

// =============================================================================
// GoalRepo Tests
// =============================================================================

func TestGoalRepo(t *testing.T) {
	repo := NewGoalRepo(setupTestDB(t))

	goals, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, goals)

	g := &model.DailyGoal{Date: time.Now(), TargetAmount: 80, Unit: model.UnitOz}
	require.NoError(t, repo.Save(g))
	assert.NotEmpty(t, g.ID)

	g.TargetAmount = 96
	require.NoError(t, repo.Save(g))

	goals, err = repo.List()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 96.0, goals[0].TargetAmount)
	assert.Equal(t, g.ID, goals[0].ID)
}

// =============================================================================
// DrinkTypeRepo Tests
// =============================================================================

func TestDrinkTypeRepo(t *testing.T) {
	repo := NewDrinkTypeRepo(setupTestDB(t))

	for _, d := range model.DefaultDrinkTypes() {
		require.NoError(t, repo.Save(d))
	}

	drinks, err := repo.List()
	require.NoError(t, err)
	require.Len(t, drinks, 6)
	assert.Equal(t, "water", drinks[0].Value)
	assert.Equal(t, "sports drink", drinks[5].Value)

	coffee, err := repo.GetByValue("coffee")
	require.NoError(t, err)
	assert.Equal(t, 0.8, coffee.HydrationMultiplier)

	// Upsert by value keeps id and position.
	id := coffee.ID
	require.NoError(t, repo.Save(&model.DrinkType{Value: "coffee", Label: "Coffee", HydrationMultiplier: 0.7}))
	coffee, err = repo.GetByValue("coffee")
	require.NoError(t, err)
	assert.Equal(t, id, coffee.ID)
	assert.Equal(t, 0.7, coffee.HydrationMultiplier)

	drinks, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, drinks, 6)
	assert.Equal(t, "coffee", drinks[2].Value)

	_, err = repo.GetByValue("soda")
	assert.True(t, errors.Is(err, errors.ErrDrinkTypeNotFound))
}

// =============================================================================
// StatsRepo / UndoRepo Tests
// =============================================================================

func TestStatsRepo(t *testing.T) {
	repo := NewStatsRepo(setupTestDB(t))

	stats, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, &model.UserStats{}, stats)

	want := &model.UserStats{CurrentStreak: 2, LongestStreak: 7, TotalIntake: 500, AverageDaily: 62.5}
	require.NoError(t, repo.Save(want))

	stats, err = repo.Get()
	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestUndoRepo(t *testing.T) {
	repo := NewUndoRepo(setupTestDB(t))

	state, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, state)

	e := newEntry(8, time.Now())
	e.ID = "e1"
	require.NoError(t, repo.Save(model.NewUndoState(model.UndoActionDelete, e)))

	state, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, model.UndoActionDelete, state.Action)
	assert.Equal(t, "e1", state.EntrySnapshot.ID)

	require.NoError(t, repo.Clear())
	state, err = repo.Get()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRepositories(t *testing.T) {
	repos := setupTestDB(t).Repositories()
	assert.NotNil(t, repos.Entries)
	assert.NotNil(t, repos.Goals)
	assert.NotNil(t, repos.DrinkTypes)
	assert.NotNil(t, repos.Stats)
	assert.NotNil(t, repos.Undo)
}

// =============================================================================
// File Tests
// =============================================================================

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, WriteFileAtomic(path, []byte(`{"a":1}`), 0600))
	require.NoError(t, WriteFileAtomic(path, []byte(`{"a":2}`), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".hydrate-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "x.json"), []byte("x"), 0600)
	assert.Error(t, err)
}

func TestEnsureDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDirectory(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
