package app

import (
	"log/slog"
	"time"

	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
)

// Defaults for the statistics windows.
const (
	DefaultStatsWindowDays = 30
	DefaultMaxStreakDays   = 365
)

// StatsService derives and caches UserStats.
type StatsService struct {
	stats      model.StatsRepository
	now        func() time.Time
	windowDays int
	maxStreak  int
	log        *slog.Logger
}

// NewStatsService creates a stats service. Non-positive window sizes fall
// back to the defaults.
func NewStatsService(stats model.StatsRepository, windowDays, maxStreakDays int, now func() time.Time, log *slog.Logger) *StatsService {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	if maxStreakDays <= 0 {
		maxStreakDays = DefaultMaxStreakDays
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Discard()
	}
	return &StatsService{stats: stats, now: now, windowDays: windowDays, maxStreak: maxStreakDays, log: log}
}

// Recompute derives fresh stats from every entry and the current goal and
// persists them. All amounts are normalized to the goal's unit. The
// longest streak only ever grows.
func (s *StatsService) Recompute(entries []*model.WaterEntry, goal *model.DailyGoal) (*model.UserStats, error) {
	prev, err := s.stats.Get()
	if err != nil {
		return nil, err
	}

	now := s.now()
	totals := accounting.DailyTotals(entries, goal.Unit)
	current := accounting.CurrentStreak(totals, goal.TargetAmount, now, s.maxStreak)

	stats := &model.UserStats{
		CurrentStreak: current,
		LongestStreak: max(prev.LongestStreak, current),
		TotalIntake:   accounting.Round2(accounting.SumAll(totals)),
		AverageDaily:  accounting.AverageDaily(totals, now, s.windowDays),
	}

	if err := s.stats.Save(stats); err != nil {
		return nil, err
	}
	s.log.Debug("stats recomputed",
		"current_streak", stats.CurrentStreak,
		"longest_streak", stats.LongestStreak,
		logging.KeyCount, len(entries))
	return stats, nil
}

// Stats returns the cached snapshot.
func (s *StatsService) Stats() (*model.UserStats, error) {
	return s.stats.Get()
}

// Reset zeroes the snapshot, including the longest streak. Entries and
// goals are untouched.
func (s *StatsService) Reset() (*model.UserStats, error) {
	stats := &model.UserStats{}
	if err := s.stats.Save(stats); err != nil {
		return nil, err
	}
	s.log.Debug("stats reset")
	return stats, nil
}

// Restore writes an imported snapshot.
func (s *StatsService) Restore(stats *model.UserStats) error {
	st := *stats
	return s.stats.Save(&st)
}
