package output

import (
	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/app"
	"github.com/manav03panchal/hydrate/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntryResponse wraps a single entry mutation.
type EntryResponse struct {
	Status string            `json:"status"`
	Entry  *model.WaterEntry `json:"entry"`
}

// EntriesResponse represents an entry listing.
type EntriesResponse struct {
	Entries         []*model.WaterEntry `json:"entries"`
	Count           int                 `json:"count"`
	HydrationPoints float64             `json:"hydrationPoints"`
}

// NewEntriesResponse creates an EntriesResponse. A nil slice is reported
// as an empty list.
func NewEntriesResponse(entries []*model.WaterEntry) *EntriesResponse {
	if entries == nil {
		entries = []*model.WaterEntry{}
	}
	return &EntriesResponse{
		Entries:         entries,
		Count:           len(entries),
		HydrationPoints: accounting.HydrationPointsTotal(entries),
	}
}

// StatsResponse represents the stats snapshot with its unit.
type StatsResponse struct {
	*model.UserStats
	Unit model.Unit `json:"unit"`
}

// UndoResponse represents an undo.
type UndoResponse struct {
	Status string            `json:"status"`
	Action model.UndoAction  `json:"action"`
	Entry  *model.WaterEntry `json:"entry,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintEntry outputs an entry mutation with the given status
// ("added", "updated", "deleted").
func (j *JSONFormatter) PrintEntry(status string, entry *model.WaterEntry) error {
	return j.JSON(EntryResponse{Status: status, Entry: entry})
}

// PrintEntries outputs an entry listing.
func (j *JSONFormatter) PrintEntries(entries []*model.WaterEntry) error {
	return j.JSON(NewEntriesResponse(entries))
}

// PrintDay outputs a day summary.
func (j *JSONFormatter) PrintDay(day *app.DaySummary) error {
	return j.JSON(day)
}

// PrintWeek outputs a weekly breakdown.
func (j *JSONFormatter) PrintWeek(week *accounting.WeekSummary) error {
	return j.JSON(week)
}

// PrintStats outputs the stats snapshot.
func (j *JSONFormatter) PrintStats(stats *model.UserStats, unit model.Unit) error {
	return j.JSON(StatsResponse{UserStats: stats, Unit: unit})
}

// PrintUndo outputs an undo result.
func (j *JSONFormatter) PrintUndo(state *model.UndoState) error {
	return j.JSON(UndoResponse{Status: "undone", Action: state.Action, Entry: state.EntrySnapshot})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
