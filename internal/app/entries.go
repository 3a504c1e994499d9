package app

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
)

// EntryService records and edits water entries.
type EntryService struct {
	entries model.EntryRepository
	undo    model.UndoRepository
	catalog *CatalogService
	now     func() time.Time
	log     *slog.Logger
}

// NewEntryService creates an entry service. undo may be nil, in which case
// no undo state is recorded.
func NewEntryService(entries model.EntryRepository, undo model.UndoRepository, catalog *CatalogService, now func() time.Time, log *slog.Logger) *EntryService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Discard()
	}
	return &EntryService{entries: entries, undo: undo, catalog: catalog, now: now, log: log}
}

// Create validates and stores a new entry. An empty drinkType means water
// and a zero timestamp means now. The drink's current multiplier is
// snapshotted onto the entry.
func (s *EntryService) Create(amount float64, unit model.Unit, drinkType string, at time.Time) (*model.WaterEntry, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	drinkType = NormalizeDrinkType(drinkType)
	if drinkType == "" {
		drinkType = model.DefaultDrinkType
	}
	if at.IsZero() {
		at = s.now()
	}

	entry := &model.WaterEntry{
		ID:        model.NewID(),
		Amount:    amount,
		Unit:      unit,
		DrinkType: drinkType,
		Timestamp: at,
	}
	if err := s.applyHydration(entry); err != nil {
		return nil, err
	}

	if err := s.entries.Create(entry); err != nil {
		return nil, err
	}
	s.recordUndo(model.UndoActionAdd, entry)

	s.log.Debug("entry created",
		logging.KeyEntryID, entry.ID,
		logging.KeyAmount, entry.Amount,
		logging.KeyUnit, entry.Unit,
		logging.KeyDrinkType, entry.DrinkType)
	return entry, nil
}

// Update applies a patch to an existing entry. Changing the amount or the
// drink type recomputes hydration from the current catalog multiplier.
func (s *EntryService) Update(id string, patch model.EntryPatch) (*model.WaterEntry, error) {
	entry, err := s.entries.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return nil, err
		}
	}
	if patch.Unit != nil {
		if err := validateUnit(*patch.Unit); err != nil {
			return nil, err
		}
	}
	if patch.DrinkType != nil {
		dt := NormalizeDrinkType(*patch.DrinkType)
		if dt == "" {
			dt = model.DefaultDrinkType
		}
		patch.DrinkType = &dt
	}
	if patch.IsEmpty() {
		return entry, nil
	}

	patch.Apply(entry)
	if patch.AffectsHydration() {
		if err := s.applyHydration(entry); err != nil {
			return nil, err
		}
	}

	if err := s.entries.Update(entry); err != nil {
		return nil, err
	}
	s.log.Debug("entry updated", logging.KeyEntryID, entry.ID)
	return entry, nil
}

// Delete removes an entry and returns it.
func (s *EntryService) Delete(id string) (*model.WaterEntry, error) {
	entry, err := s.entries.Delete(id)
	if err != nil {
		return nil, err
	}
	s.recordUndo(model.UndoActionDelete, entry)
	s.log.Debug("entry deleted", logging.KeyEntryID, entry.ID)
	return entry, nil
}

// Get returns a single entry.
func (s *EntryService) Get(id string) (*model.WaterEntry, error) {
	return s.entries.Get(id)
}

// ListAll returns every entry in insertion order.
func (s *EntryService) ListAll() ([]*model.WaterEntry, error) {
	return s.entries.List()
}

// ListToday returns the entries on the current local calendar day in
// insertion order.
func (s *EntryService) ListToday() ([]*model.WaterEntry, error) {
	return s.ListDay(s.now())
}

// ListDay returns the entries on the local calendar day containing t.
func (s *EntryService) ListDay(t time.Time) ([]*model.WaterEntry, error) {
	t = t.In(time.Local)
	return s.entries.ListBetween(accounting.StartOfDay(t), accounting.EndOfDay(t))
}

// ListInRange returns entries with start <= timestamp <= end.
func (s *EntryService) ListInRange(start, end time.Time) ([]*model.WaterEntry, error) {
	return s.entries.ListBetween(start, end)
}

// Restore writes an entry snapshot back verbatim, creating or replacing it.
// Undo and import use it; hydration fields are not recomputed.
func (s *EntryService) Restore(entry *model.WaterEntry) error {
	if entry.ID == "" {
		return errors.NewValidationError("id", "entry id is required")
	}
	if err := validateAmount(entry.Amount); err != nil {
		return err
	}
	if err := validateUnit(entry.Unit); err != nil {
		return err
	}

	_, err := s.entries.Get(entry.ID)
	switch {
	case err == nil:
		return s.entries.Update(entry.Clone())
	case errors.IsNotFoundError(err):
		return s.entries.Create(entry.Clone())
	default:
		return err
	}
}

// Undo reverts the last add or delete. It returns the state that was undone.
func (s *EntryService) Undo() (*model.UndoState, error) {
	if s.undo == nil {
		return nil, errors.ErrNothingToUndo
	}
	state, err := s.undo.Get()
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errors.ErrNothingToUndo
	}

	switch state.Action {
	case model.UndoActionAdd:
		if _, err := s.entries.Delete(state.EntryID); err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
	case model.UndoActionDelete:
		if state.EntrySnapshot == nil {
			return nil, errors.ErrNothingToUndo
		}
		if err := s.Restore(state.EntrySnapshot); err != nil {
			return nil, err
		}
	default:
		return nil, errors.ErrNothingToUndo
	}

	if err := s.undo.Clear(); err != nil {
		return nil, err
	}
	s.log.Debug("undo", logging.KeyOperation, state.Action, logging.KeyEntryID, state.EntryID)
	return state, nil
}

func (s *EntryService) applyHydration(entry *model.WaterEntry) error {
	m, err := s.catalog.MultiplierFor(entry.DrinkType)
	if err != nil {
		return err
	}
	entry.SetHydration(m, accounting.HydrationPoints(entry.Amount, m))
	return nil
}

func (s *EntryService) recordUndo(action model.UndoAction, entry *model.WaterEntry) {
	if s.undo == nil {
		return
	}
	if err := s.undo.Save(model.NewUndoState(action, entry)); err != nil {
		s.log.Warn("failed to record undo state", logging.KeyError, err)
	}
}

func validateAmount(amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return errors.NewValidationErrorWithValue("amount", formatFloat(amount), "must be a positive number", errors.ErrInvalidAmount)
	}
	return nil
}

func validateUnit(unit model.Unit) error {
	if !unit.Valid() {
		return errors.NewValidationErrorWithValue("unit", string(unit), "unknown unit", errors.ErrInvalidUnit)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
