package storage

import (
	"github.com/manav03panchal/hydrate/internal/model"
)

var _ model.UndoRepository = (*UndoRepo)(nil)

// UndoRepo provides operations for UndoState entities.
type UndoRepo struct {
	db *DB
}

// NewUndoRepo creates a new undo repository.
func NewUndoRepo(db *DB) *UndoRepo {
	return &UndoRepo{db: db}
}

// Get retrieves the current undo state.
func (r *UndoRepo) Get() (*model.UndoState, error) {
	state := &model.UndoState{}
	if err := r.db.Get(model.KeyUndo, state); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return state, nil
}

// Save stores the undo state, replacing any previous one.
func (r *UndoRepo) Save(state *model.UndoState) error {
	return r.db.Set(state)
}

// Clear removes the undo state.
func (r *UndoRepo) Clear() error {
	return r.db.Delete(model.KeyUndo)
}
