package app

import (
	"log/slog"
	"time"

	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
)

// Options configures a Tracker.
type Options struct {
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
	// DefaultGoal is reported when no goal is stored. Defaults to 64 oz.
	DefaultGoal *model.DailyGoal
	// StatsWindowDays is the averaging window for averageDaily.
	StatsWindowDays int
	// MaxStreakDays caps the streak walk.
	MaxStreakDays int
	Logger        *slog.Logger
}

// Tracker wires the services over one set of repositories.
type Tracker struct {
	Catalog *CatalogService
	Entries *EntryService
	Goals   *GoalService
	Stats   *StatsService

	now func() time.Time
	log *slog.Logger
}

// NewTracker builds the services for repos.
func NewTracker(repos *model.Repositories, opts Options) *Tracker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	catalog := NewCatalogService(repos.DrinkTypes, log)
	return &Tracker{
		Catalog: catalog,
		Entries: NewEntryService(repos.Entries, repos.Undo, catalog, now, log),
		Goals:   NewGoalService(repos.Goals, opts.DefaultGoal, now, log),
		Stats:   NewStatsService(repos.Stats, opts.StatsWindowDays, opts.MaxStreakDays, now, log),
		now:     now,
		log:     log,
	}
}

// Now returns the tracker's clock reading.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// RefreshStats recomputes the stats snapshot from every entry and the
// current goal. Commands call it after each mutation.
func (t *Tracker) RefreshStats() (*model.UserStats, error) {
	entries, err := t.Entries.ListAll()
	if err != nil {
		return nil, err
	}
	goal, err := t.Goals.CurrentGoal()
	if err != nil {
		return nil, err
	}
	return t.Stats.Recompute(entries, goal)
}

// DaySummary is one day's intake measured against the current goal.
type DaySummary struct {
	Date            time.Time           `json:"date"`
	Goal            *model.DailyGoal    `json:"goal"`
	Entries         []*model.WaterEntry `json:"entries"`
	Total           float64             `json:"total"`
	Remaining       float64             `json:"remaining"`
	ProgressPercent float64             `json:"progressPercent"`
	HydrationPoints float64             `json:"hydrationPoints"`
	GoalMet         bool                `json:"goalMet"`
}

// Today summarizes the current day.
func (t *Tracker) Today() (*DaySummary, error) {
	return t.Day(t.now())
}

// Day summarizes the local calendar day containing day.
func (t *Tracker) Day(day time.Time) (*DaySummary, error) {
	entries, err := t.Entries.ListDay(day)
	if err != nil {
		return nil, err
	}
	goal, err := t.Goals.CurrentGoal()
	if err != nil {
		return nil, err
	}

	total := accounting.DailyTotal(entries, goal.Unit)
	if entries == nil {
		entries = []*model.WaterEntry{}
	}
	return &DaySummary{
		Date:            accounting.StartOfDay(day.In(time.Local)),
		Goal:            goal,
		Entries:         entries,
		Total:           accounting.Round2(total),
		Remaining:       accounting.Round2(accounting.Remaining(total, goal.TargetAmount)),
		ProgressPercent: accounting.Round2(accounting.ProgressPercent(total, goal.TargetAmount)),
		HydrationPoints: accounting.HydrationPointsTotal(entries),
		GoalMet:         total >= goal.TargetAmount,
	}, nil
}

// Week summarizes the Sunday-to-Saturday week containing ref.
func (t *Tracker) Week(ref time.Time) (*accounting.WeekSummary, error) {
	start := accounting.StartOfWeek(ref.In(time.Local))
	end := accounting.EndOfDay(start.AddDate(0, 0, accounting.DaysPerWeek-1))

	entries, err := t.Entries.ListInRange(start, end)
	if err != nil {
		return nil, err
	}
	goal, err := t.Goals.CurrentGoal()
	if err != nil {
		return nil, err
	}

	summary := accounting.SummarizeWeek(entries, goal, start)
	return &summary, nil
}
