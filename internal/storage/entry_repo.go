package storage

import (
	"time"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

var _ model.EntryRepository = (*EntryRepo)(nil)

// EntryRepo provides operations for WaterEntry records.
type EntryRepo struct {
	db *DB
}

// NewEntryRepo creates a new entry repository.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Create stores a new entry, assigning an id if it has none.
func (r *EntryRepo) Create(entry *model.WaterEntry) error {
	if entry.ID == "" {
		entry.ID = model.NewID()
	}
	return errors.Wrap(r.db.Set(entry), "store entry")
}

// Get retrieves an entry by id.
func (r *EntryRepo) Get(id string) (*model.WaterEntry, error) {
	entry := &model.WaterEntry{}
	if err := r.db.Get(model.EntryKey(id), entry); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errors.EntryNotFound(id)
		}
		return nil, errors.Wrap(err, "read entry")
	}
	return entry, nil
}

// Update overwrites an existing entry.
func (r *EntryRepo) Update(entry *model.WaterEntry) error {
	found, err := r.db.Replace(entry)
	if err != nil {
		return errors.Wrap(err, "update entry")
	}
	if !found {
		return errors.EntryNotFound(entry.ID)
	}
	return nil
}

// Delete removes an entry and returns it.
func (r *EntryRepo) Delete(id string) (*model.WaterEntry, error) {
	entry := &model.WaterEntry{}
	if err := r.db.Take(model.EntryKey(id), entry); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errors.EntryNotFound(id)
		}
		return nil, errors.Wrap(err, "delete entry")
	}
	return entry, nil
}

// List retrieves all entries in insertion order.
func (r *EntryRepo) List() ([]*model.WaterEntry, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixEntry+":", func() *model.WaterEntry {
		return &model.WaterEntry{}
	})
	return entries, errors.Wrap(err, "list entries")
}

// ListBetween retrieves entries with start <= timestamp <= end.
func (r *EntryRepo) ListBetween(start, end time.Time) ([]*model.WaterEntry, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}

	var result []*model.WaterEntry
	for _, e := range all {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			result = append(result, e)
		}
	}
	return result, nil
}
