package accounting

import (
	"time"

	"github.com/manav03panchal/hydrate/internal/model"
)

// DaysPerWeek is the length of a breakdown.
const DaysPerWeek = 7

// DayProgress is one day of a weekly breakdown.
type DayProgress struct {
	Date            time.Time `json:"date"`
	Total           float64   `json:"total"`
	ProgressPercent float64   `json:"progressPercent"`
	GoalMet         bool      `json:"goalMet"`
}

// WeeklyBreakdown returns seven days of progress against goal, starting at
// the Sunday on or before weekStart. Totals are in the goal's unit.
func WeeklyBreakdown(entries []*model.WaterEntry, goal *model.DailyGoal, weekStart time.Time) []DayProgress {
	start := StartOfWeek(weekStart.In(time.Local))
	totals := DailyTotals(entries, goal.Unit)

	days := make([]DayProgress, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		day := start.AddDate(0, 0, i)
		total := totals[DayKey(day)]
		days = append(days, DayProgress{
			Date:            day,
			Total:           Round2(total),
			ProgressPercent: Round2(ProgressPercent(total, goal.TargetAmount)),
			GoalMet:         total >= goal.TargetAmount,
		})
	}
	return days
}

// WeekSummary aggregates a weekly breakdown.
type WeekSummary struct {
	WeekStart    time.Time     `json:"weekStart"`
	Days         []DayProgress `json:"days"`
	Total        float64       `json:"total"`
	AverageDaily float64       `json:"averageDaily"`
	DaysGoalMet  int           `json:"daysGoalMet"`
	SuccessRate  float64       `json:"successRate"`
	Unit         model.Unit    `json:"unit"`
	GoalAmount   float64       `json:"goalAmount"`
}

// SummarizeWeek builds the weekly breakdown and its aggregates. The
// average and success rate are taken over all seven days.
func SummarizeWeek(entries []*model.WaterEntry, goal *model.DailyGoal, weekStart time.Time) WeekSummary {
	days := WeeklyBreakdown(entries, goal, weekStart)

	var total float64
	met := 0
	for _, d := range days {
		total += d.Total
		if d.GoalMet {
			met++
		}
	}

	return WeekSummary{
		WeekStart:    days[0].Date,
		Days:         days,
		Total:        Round2(total),
		AverageDaily: Round2(total / DaysPerWeek),
		DaysGoalMet:  met,
		SuccessRate:  Round2(float64(met) / DaysPerWeek * 100),
		Unit:         goal.Unit,
		GoalAmount:   goal.TargetAmount,
	}
}
