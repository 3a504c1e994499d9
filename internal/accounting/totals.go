package accounting

import (
	"time"

	"github.com/manav03panchal/hydrate/internal/model"
)

// DayKeyLayout formats calendar-day keys.
const DayKeyLayout = "2006-01-02"

// DailyTotal sums entry amounts normalized to unit.
func DailyTotal(entries []*model.WaterEntry, unit model.Unit) float64 {
	var total float64
	for _, e := range entries {
		total += Convert(e.Amount, e.Unit, unit)
	}
	return total
}

// HydrationPointsTotal sums hydration points, using the raw amount for
// entries without points.
func HydrationPointsTotal(entries []*model.WaterEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Points()
	}
	return Round2(total)
}

// ProgressPercent returns total as a percentage of goal, clamped to
// [0, 100]. A goal of zero or less counts as already achieved.
func ProgressPercent(total, goal float64) float64 {
	if goal <= 0 {
		return 100
	}
	p := total / goal * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// Remaining returns how much is left to reach goal, never negative.
func Remaining(total, goal float64) float64 {
	if total >= goal {
		return 0
	}
	return goal - total
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DayKey returns the local calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(DayKeyLayout)
}

// DailyTotals groups entries by local calendar day and sums their amounts
// normalized to unit.
func DailyTotals(entries []*model.WaterEntry, unit model.Unit) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range entries {
		totals[DayKey(e.Timestamp)] += Convert(e.Amount, e.Unit, unit)
	}
	return totals
}
