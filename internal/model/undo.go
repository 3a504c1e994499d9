package model

// UndoAction represents the type of action that can be undone.
type UndoAction string

const (
	UndoActionAdd    UndoAction = "add"
	UndoActionDelete UndoAction = "delete"
)

// KeyUndo is the database key for the undo state.
const KeyUndo = "undo"

// UndoState stores the last action that can be undone.
type UndoState struct {
	Action        UndoAction  `json:"action"`
	EntryID       string      `json:"entryId"`
	EntrySnapshot *WaterEntry `json:"entrySnapshot,omitempty"` // Full entry data for restore
}

// SetKey is a no-op; the undo state lives under a fixed key.
func (u *UndoState) SetKey(string) {}

// GetKey returns the database key for this undo state.
func (u *UndoState) GetKey() string {
	return KeyUndo
}

// NewUndoState creates a new undo state for the given action.
func NewUndoState(action UndoAction, entry *WaterEntry) *UndoState {
	return &UndoState{
		Action:        action,
		EntryID:       entry.ID,
		EntrySnapshot: entry.Clone(),
	}
}
