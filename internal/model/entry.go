package model

import "time"

// DefaultDrinkType is used when an entry is created without a drink type.
const DefaultDrinkType = "water"

// WaterEntry is a single intake record. The hydration fields are absent
// on records written before the drink catalog existed.
type WaterEntry struct {
	ID                  string    `json:"id"`
	Amount              float64   `json:"amount"`
	Unit                Unit      `json:"unit"`
	DrinkType           string    `json:"drinkType"`
	Timestamp           time.Time `json:"timestamp"`
	HydrationPoints     *float64  `json:"hydrationPoints,omitempty"`
	HydrationMultiplier *float64  `json:"hydrationMultiplier,omitempty"`
}

// EntryKey returns the database key for an entry id.
func EntryKey(id string) string {
	return joinKey(PrefixEntry, id)
}

// SetKey sets the database key for this entry.
func (e *WaterEntry) SetKey(key string) {
	e.ID = splitKey(PrefixEntry, key)
}

// GetKey returns the database key for this entry.
func (e *WaterEntry) GetKey() string {
	return EntryKey(e.ID)
}

// Points returns the stored hydration points, or the raw amount for
// legacy entries.
func (e *WaterEntry) Points() float64 {
	if e.HydrationPoints != nil {
		return *e.HydrationPoints
	}
	return e.Amount
}

// Multiplier returns the snapshotted multiplier, or 1.0 for legacy entries.
func (e *WaterEntry) Multiplier() float64 {
	if e.HydrationMultiplier != nil {
		return *e.HydrationMultiplier
	}
	return 1.0
}

// SetHydration records the multiplier snapshot and derived points.
func (e *WaterEntry) SetHydration(multiplier, points float64) {
	e.HydrationMultiplier = &multiplier
	e.HydrationPoints = &points
}

// Clone returns a deep copy, so snapshots held for undo are not aliased.
func (e *WaterEntry) Clone() *WaterEntry {
	c := *e
	if e.HydrationPoints != nil {
		p := *e.HydrationPoints
		c.HydrationPoints = &p
	}
	if e.HydrationMultiplier != nil {
		m := *e.HydrationMultiplier
		c.HydrationMultiplier = &m
	}
	return &c
}

// EntryPatch is a partial update. Nil fields are left unchanged.
type EntryPatch struct {
	Amount    *float64
	Unit      *Unit
	DrinkType *string
	Timestamp *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Amount == nil && p.Unit == nil && p.DrinkType == nil && p.Timestamp == nil
}

// AffectsHydration reports whether applying the patch requires the
// hydration points to be recomputed.
func (p EntryPatch) AffectsHydration() bool {
	return p.Amount != nil || p.DrinkType != nil
}

// Apply merges the non-nil fields into e. Hydration fields are not touched.
func (p EntryPatch) Apply(e *WaterEntry) {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Unit != nil {
		e.Unit = *p.Unit
	}
	if p.DrinkType != nil {
		e.DrinkType = *p.DrinkType
	}
	if p.Timestamp != nil {
		e.Timestamp = *p.Timestamp
	}
}
