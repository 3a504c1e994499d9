package storage

import (
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

var _ model.StatsRepository = (*StatsRepo)(nil)

// StatsRepo persists the cached statistics snapshot.
type StatsRepo struct {
	db *DB
}

// NewStatsRepo creates a new stats repository.
func NewStatsRepo(db *DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Get returns the stored snapshot, or a zero snapshot if none exists.
func (r *StatsRepo) Get() (*model.UserStats, error) {
	stats := &model.UserStats{}
	if err := r.db.Get(model.KeyStats, stats); err != nil {
		if IsErrKeyNotFound(err) {
			return &model.UserStats{}, nil
		}
		return nil, errors.Wrap(err, "read stats")
	}
	return stats, nil
}

// Save stores the snapshot.
func (r *StatsRepo) Save(stats *model.UserStats) error {
	return errors.Wrap(r.db.Set(stats), "store stats")
}
