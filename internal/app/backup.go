package app

import (
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/logging"
	"github.com/manav03panchal/hydrate/internal/model"
	"github.com/manav03panchal/hydrate/internal/validate"
)

// BackupVersion is the current export document version.
const BackupVersion = 1

// Backup is a full export of the tracker's data.
type Backup struct {
	Version    int                 `json:"version"`
	ExportedAt time.Time           `json:"exportedAt"`
	DrinkTypes []*model.DrinkType  `json:"drinkTypes"`
	Entries    []*model.WaterEntry `json:"entries"`
	Goals      []*model.DailyGoal  `json:"goals"`
	Stats      *model.UserStats    `json:"stats"`
}

// Validate checks the version and every record, so an import either
// writes everything or nothing.
func (b *Backup) Validate() error {
	if b.Version < 1 || b.Version > BackupVersion {
		return errors.NewValidationErrorWithValue("version", formatFloat(float64(b.Version)),
			"unsupported backup version", errors.ErrUnsupportedBackup)
	}
	for i, d := range b.DrinkTypes {
		if err := validateBackupDrink(d); err != nil {
			return errors.Wrapf(err, "drinkTypes[%d]", i)
		}
	}
	for i, e := range b.Entries {
		if err := validateBackupEntry(e); err != nil {
			return errors.Wrapf(err, "entries[%d]", i)
		}
	}
	for i, g := range b.Goals {
		if err := validateBackupGoal(g); err != nil {
			return errors.Wrapf(err, "goals[%d]", i)
		}
	}
	return nil
}

func validateBackupDrink(d *model.DrinkType) error {
	if d == nil {
		return errors.NewValidationError("drinkType", "record is null")
	}
	if err := validate.DrinkValue(NormalizeDrinkType(d.Value)); err != nil {
		return err
	}
	if !(d.HydrationMultiplier > 0) {
		return errors.NewValidationErrorWithValue("hydrationMultiplier",
			formatFloat(d.HydrationMultiplier), "multiplier must be positive", nil)
	}
	return nil
}

func validateBackupEntry(e *model.WaterEntry) error {
	if e == nil {
		return errors.NewValidationError("entry", "record is null")
	}
	if e.ID == "" {
		return errors.NewValidationError("id", "entry id is required")
	}
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	return validateUnit(e.Unit)
}

func validateBackupGoal(g *model.DailyGoal) error {
	if g == nil {
		return errors.NewValidationError("goal", "record is null")
	}
	if !(g.TargetAmount > 0) {
		return errors.NewValidationErrorWithValue("targetAmount", formatFloat(g.TargetAmount),
			"must be a positive number", errors.ErrInvalidAmount)
	}
	return validateUnit(g.Unit)
}

// Summary counts the records in b without importing them.
func (b *Backup) Summary() *ImportResult {
	return &ImportResult{
		DrinkTypes: len(b.DrinkTypes),
		Entries:    len(b.Entries),
		Goals:      len(b.Goals),
		Stats:      b.Stats,
	}
}

// ImportResult reports what an import wrote.
type ImportResult struct {
	DrinkTypes int              `json:"drinkTypes"`
	Entries    int              `json:"entries"`
	Goals      int              `json:"goals"`
	Stats      *model.UserStats `json:"stats"`
}

// Export collects every record into a Backup.
func (t *Tracker) Export() (*Backup, error) {
	drinks, err := t.Catalog.List()
	if err != nil {
		return nil, err
	}
	entries, err := t.Entries.ListAll()
	if err != nil {
		return nil, err
	}
	goals, err := t.Goals.History()
	if err != nil {
		return nil, err
	}
	stats, err := t.Stats.Stats()
	if err != nil {
		return nil, err
	}

	b := &Backup{
		Version:    BackupVersion,
		ExportedAt: t.now(),
		DrinkTypes: drinks,
		Entries:    entries,
		Goals:      goals,
		Stats:      stats,
	}
	if b.DrinkTypes == nil {
		b.DrinkTypes = []*model.DrinkType{}
	}
	if b.Entries == nil {
		b.Entries = []*model.WaterEntry{}
	}
	if b.Goals == nil {
		b.Goals = []*model.DailyGoal{}
	}
	return b, nil
}

// Import merges a backup into the store. Records are upserted by id
// (drink types by value). The imported longest streak is kept if it is
// higher, then stats are recomputed.
func (t *Tracker) Import(b *Backup) (*ImportResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, d := range b.DrinkTypes {
		if _, err := t.Catalog.Upsert(d); err != nil {
			return nil, errors.Wrapf(err, "import drink type %q", d.Value)
		}
		result.DrinkTypes++
	}
	for _, e := range b.Entries {
		if err := t.Entries.Restore(e); err != nil {
			return nil, errors.Wrapf(err, "import entry %s", e.ID)
		}
		result.Entries++
	}
	for _, g := range b.Goals {
		if err := t.Goals.Restore(g); err != nil {
			return nil, errors.Wrapf(err, "import goal %s", g.ID)
		}
		result.Goals++
	}

	if b.Stats != nil {
		current, err := t.Stats.Stats()
		if err != nil {
			return nil, err
		}
		if b.Stats.LongestStreak > current.LongestStreak {
			current.LongestStreak = b.Stats.LongestStreak
			if err := t.Stats.Restore(current); err != nil {
				return nil, err
			}
		}
	}

	stats, err := t.RefreshStats()
	if err != nil {
		return nil, err
	}
	result.Stats = stats

	t.log.Debug("import complete",
		logging.KeyCount, result.Entries,
		"goals", result.Goals,
		"drink_types", result.DrinkTypes)
	return result, nil
}

// EncodeBackup writes b as indented JSON.
func EncodeBackup(w io.Writer, b *Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// DecodeBackup reads a backup document.
func DecodeBackup(r io.Reader) (*Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, errors.NewValidationError("backup", "invalid backup file: "+err.Error())
	}
	return &b, nil
}
