package app

import (
	"log/slog"
	"sort"
	"time"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
)

// GoalService resolves and sets the daily goal.
type GoalService struct {
	goals    model.GoalRepository
	fallback model.DailyGoal
	now      func() time.Time
	log      *slog.Logger
}

// NewGoalService creates a goal service. fallback is reported when no goal
// has been stored; nil means the 64 oz default.
func NewGoalService(goals model.GoalRepository, fallback *model.DailyGoal, now func() time.Time, log *slog.Logger) *GoalService {
	if fallback == nil {
		fallback = model.DefaultGoal()
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Discard()
	}
	return &GoalService{goals: goals, fallback: *fallback, now: now, log: log}
}

// CurrentGoal returns the goal with the latest date, or the default
// sentinel when none is stored. Ties go to the most recently inserted goal.
func (s *GoalService) CurrentGoal() (*model.DailyGoal, error) {
	goals, err := s.goals.List()
	if err != nil {
		return nil, err
	}

	var current *model.DailyGoal
	for _, g := range goals {
		if current == nil || !g.Date.Before(current.Date) {
			current = g
		}
	}
	if current == nil {
		fallback := s.fallback
		fallback.ID = model.DefaultGoalID
		return &fallback, nil
	}
	return current, nil
}

// SetCurrentGoal updates today's goal in place, or creates a goal dated
// today if none exists, so a day never has two current goals.
func (s *GoalService) SetCurrentGoal(target float64, unit model.Unit) (*model.DailyGoal, error) {
	if !(target > 0) {
		return nil, errors.NewValidationErrorWithValue("targetAmount", formatFloat(target), "must be a positive number", errors.ErrInvalidAmount).
			WithSuggestion("Common goals are 48, 64, 80, 96 or 128 oz.")
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	goals, err := s.goals.List()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var today *model.DailyGoal
	for _, g := range goals {
		if g.SameDay(now) {
			today = g
		}
	}

	if today == nil {
		today = model.NewDailyGoal(target, unit, now)
	} else {
		today.TargetAmount = target
		today.Unit = unit
	}

	if err := s.goals.Save(today); err != nil {
		return nil, err
	}
	s.log.Debug("goal set", logging.KeyGoal, target, logging.KeyUnit, unit)
	return today, nil
}

// History returns every stored goal, newest first.
func (s *GoalService) History() ([]*model.DailyGoal, error) {
	goals, err := s.goals.List()
	if err != nil {
		return nil, err
	}
	// Reverse first so equal dates keep newest-inserted first.
	for i, j := 0, len(goals)-1; i < j; i, j = i+1, j-1 {
		goals[i], goals[j] = goals[j], goals[i]
	}
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Date.After(goals[j].Date)
	})
	return goals, nil
}

// Restore writes a goal back verbatim. Import uses it.
func (s *GoalService) Restore(goal *model.DailyGoal) error {
	if !(goal.TargetAmount > 0) {
		return errors.NewValidationErrorWithValue("targetAmount", formatFloat(goal.TargetAmount), "must be a positive number", errors.ErrInvalidAmount)
	}
	if err := validateUnit(goal.Unit); err != nil {
		return err
	}
	g := *goal
	return s.goals.Save(&g)
}
