package storage

import (
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

var _ model.GoalRepository = (*GoalRepo)(nil)

// GoalRepo provides operations for DailyGoal records.
type GoalRepo struct {
	db *DB
}

// NewGoalRepo creates a new goal repository.
func NewGoalRepo(db *DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// Save creates or overwrites a goal, assigning an id if it has none.
func (r *GoalRepo) Save(goal *model.DailyGoal) error {
	if goal.ID == "" {
		goal.ID = model.NewID()
	}
	return errors.Wrap(r.db.Set(goal), "store goal")
}

// List retrieves all goals in insertion order.
func (r *GoalRepo) List() ([]*model.DailyGoal, error) {
	goals, err := GetAllByPrefix(r.db, model.PrefixGoal+":", func() *model.DailyGoal {
		return &model.DailyGoal{}
	})
	return goals, errors.Wrap(err, "list goals")
}
