package model

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// WaterEntry Tests
// =============================================================================

func TestEntrySetGetKey(t *testing.T) {
	e := &WaterEntry{}
	e.SetKey("entry:abc123")
	assert.Equal(t, "abc123", e.ID)
	assert.Equal(t, "entry:abc123", e.GetKey())
}

func TestEntryPointsFallback(t *testing.T) {
	legacy := &WaterEntry{Amount: 12}
	assert.Equal(t, 12.0, legacy.Points())
	assert.Equal(t, 1.0, legacy.Multiplier())

	e := &WaterEntry{Amount: 10}
	e.SetHydration(0.8, 8)
	assert.Equal(t, 8.0, e.Points())
	assert.Equal(t, 0.8, e.Multiplier())
}

func TestEntryClone(t *testing.T) {
	e := &WaterEntry{ID: "a", Amount: 10}
	e.SetHydration(0.9, 9)

	c := e.Clone()
	*c.HydrationPoints = 1
	c.Amount = 99

	assert.Equal(t, 9.0, e.Points())
	assert.Equal(t, 10.0, e.Amount)
}

func TestEntryJSONFieldNames(t *testing.T) {
	ts := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	e := &WaterEntry{ID: "e1", Amount: 10, Unit: UnitOz, DrinkType: "coffee", Timestamp: ts}
	e.SetHydration(0.8, 8)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "e1",
		"amount": 10,
		"unit": "oz",
		"drinkType": "coffee",
		"timestamp": "2026-03-04T09:30:00Z",
		"hydrationPoints": 8,
		"hydrationMultiplier": 0.8
	}`, string(data))
}

func TestEntryDecodesLegacyRecord(t *testing.T) {
	var e WaterEntry
	err := json.Unmarshal([]byte(`{"id":"1","amount":16,"unit":"oz","drinkType":"water","timestamp":"2024-01-15T08:00:00.000Z"}`), &e)
	require.NoError(t, err)
	assert.Nil(t, e.HydrationPoints)
	assert.Equal(t, 16.0, e.Points())
}

// =============================================================================
// EntryPatch Tests
// =============================================================================

func TestEntryPatch(t *testing.T) {
	amount := 20.0
	unit := UnitMl
	e := &WaterEntry{Amount: 10, Unit: UnitOz, DrinkType: "water"}

	t.Run("empty", func(t *testing.T) {
		p := EntryPatch{}
		assert.True(t, p.IsEmpty())
		assert.False(t, p.AffectsHydration())
	})

	t.Run("unit_only", func(t *testing.T) {
		p := EntryPatch{Unit: &unit}
		assert.False(t, p.IsEmpty())
		assert.False(t, p.AffectsHydration())
	})

	t.Run("apply", func(t *testing.T) {
		p := EntryPatch{Amount: &amount, Unit: &unit}
		assert.True(t, p.AffectsHydration())
		p.Apply(e)
		assert.Equal(t, 20.0, e.Amount)
		assert.Equal(t, UnitMl, e.Unit)
		assert.Equal(t, "water", e.DrinkType)
	})
}

// =============================================================================
// Unit Tests
// =============================================================================

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
		ok   bool
	}{
		{"oz", UnitOz, true},
		{"Ounces", UnitOz, true},
		{"ml", UnitMl, true},
		{" milliliters ", UnitMl, true},
		{"cup", UnitCups, true},
		{"cups", UnitCups, true},
		{"gallons", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUnit(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitValid(t *testing.T) {
	for _, u := range Units {
		assert.True(t, u.Valid())
	}
	assert.False(t, Unit("l").Valid())
}

// =============================================================================
// DailyGoal Tests
// =============================================================================

func TestDefaultGoal(t *testing.T) {
	g := DefaultGoal()
	assert.Equal(t, "default", g.ID)
	assert.Equal(t, 64.0, g.TargetAmount)
	assert.Equal(t, UnitOz, g.Unit)
	assert.True(t, g.IsDefault())
}

func TestGoalSameDay(t *testing.T) {
	loc := time.Local
	g := NewDailyGoal(80, UnitOz, time.Date(2026, 5, 1, 23, 59, 0, 0, loc))

	assert.True(t, g.SameDay(time.Date(2026, 5, 1, 0, 0, 0, 0, loc)))
	assert.False(t, g.SameDay(time.Date(2026, 5, 2, 0, 0, 1, 0, loc)))
	assert.False(t, g.IsDefault())
	assert.NotEmpty(t, g.ID)
}

func TestGoalJSONFieldNames(t *testing.T) {
	g := &DailyGoal{ID: "g1", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), TargetAmount: 64, Unit: UnitOz}
	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"g1","date":"2026-01-02T00:00:00Z","targetAmount":64,"unit":"oz"}`, string(data))
}

// =============================================================================
// DrinkType / Stats / Undo Tests
// =============================================================================

func TestDefaultDrinkTypes(t *testing.T) {
	drinks := DefaultDrinkTypes()
	require.Len(t, drinks, 6)
	assert.Equal(t, "water", drinks[0].Value)
	assert.Equal(t, 1.0, drinks[0].HydrationMultiplier)
	assert.Equal(t, "coffee", drinks[2].Value)
	assert.Equal(t, 0.8, drinks[2].HydrationMultiplier)
	for _, d := range drinks {
		assert.True(t, d.Active)
		assert.Empty(t, d.ID)
	}
}

func TestDrinkTypeJSONFieldNames(t *testing.T) {
	d := &DrinkType{ID: "1", Value: "tea", Label: "Tea", Icon: "Coffee", HydrationMultiplier: 0.9, Active: true}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","value":"tea","label":"Tea","icon":"Coffee","hydrationMultiplier":0.9,"active":true}`, string(data))
}

func TestStatsJSONFieldNames(t *testing.T) {
	s := &UserStats{CurrentStreak: 2, LongestStreak: 5, TotalIntake: 100.5, AverageDaily: 50.25}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentStreak":2,"longestStreak":5,"totalIntake":100.5,"averageDaily":50.25}`, string(data))
	assert.Equal(t, KeyStats, s.GetKey())
}

func TestNewUndoState(t *testing.T) {
	e := &WaterEntry{ID: "e1", Amount: 8}
	u := NewUndoState(UndoActionDelete, e)

	assert.Equal(t, UndoActionDelete, u.Action)
	assert.Equal(t, "e1", u.EntryID)
	assert.Equal(t, KeyUndo, u.GetKey())

	e.Amount = 100
	assert.Equal(t, 8.0, u.EntrySnapshot.Amount)
}

func TestNewIDIsSortable(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.Less(t, a, b)
}
