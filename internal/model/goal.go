package model

import "time"

// Default goal used when no goal has been stored.
const (
	DefaultGoalID     = "default"
	DefaultGoalAmount = 64.0
	DefaultGoalUnit   = UnitOz
)

// GoalPresets are the suggested daily targets in ounces.
var GoalPresets = []float64{48, 64, 80, 96, 128}

// DailyGoal is a daily intake target. The goal with the most recent date
// is the current one.
type DailyGoal struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	TargetAmount float64   `json:"targetAmount"`
	Unit         Unit      `json:"unit"`
}

// SetKey sets the database key for this goal.
func (g *DailyGoal) SetKey(key string) {
	g.ID = splitKey(PrefixGoal, key)
}

// GetKey returns the database key for this goal.
func (g *DailyGoal) GetKey() string {
	return joinKey(PrefixGoal, g.ID)
}

// NewDailyGoal creates a goal dated at the given time.
func NewDailyGoal(target float64, unit Unit, date time.Time) *DailyGoal {
	return &DailyGoal{
		ID:           NewID(),
		Date:         date,
		TargetAmount: target,
		Unit:         unit,
	}
}

// DefaultGoal returns the sentinel goal reported when none is stored.
func DefaultGoal() *DailyGoal {
	return &DailyGoal{
		ID:           DefaultGoalID,
		TargetAmount: DefaultGoalAmount,
		Unit:         DefaultGoalUnit,
	}
}

// IsDefault reports whether g is the sentinel goal.
func (g *DailyGoal) IsDefault() bool {
	return g.ID == DefaultGoalID
}

// SameDay reports whether the goal is dated on the same local calendar day as t.
func (g *DailyGoal) SameDay(t time.Time) bool {
	y1, m1, d1 := g.Date.In(t.Location()).Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
