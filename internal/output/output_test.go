package output

import (
	"bytes"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/app"
	"github.com/manav03panchal/hydrate/internal/model"
)

func newCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever}), &buf
}

func sampleEntry() *model.WaterEntry {
	e := &model.WaterEntry{
		ID:        "0190a1b2-0000-7000-8000-000000000001",
		Amount:    10,
		Unit:      model.UnitOz,
		DrinkType: "coffee",
		Timestamp: time.Date(2026, 4, 8, 9, 30, 0, 0, time.Local),
	}
	e.SetHydration(0.8, 8)
	return e
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatPlain, ParseFormat("plain"))
	assert.Equal(t, FormatCLI, ParseFormat("cli"))
	assert.Equal(t, FormatCLI, ParseFormat("bogus"))
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ColorAlways, ParseColorMode("always"))
	assert.Equal(t, ColorNever, ParseColorMode("never"))
	assert.Equal(t, ColorAuto, ParseColorMode(""))
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_disables_color", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways, Format: FormatPlain}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{
			Writer:    &buf,
			ColorMode: ColorAuto,
		}
		// Buffer is not a terminal
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("hello")
	f.Println(" world")
	f.Printf("%d", 42)
	assert.Equal(t, "hello world\n42", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	err := f.JSON(map[string]string{"key": "value"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"key": "value"`)
}

// =============================================================================
// Value Formatting Tests
// =============================================================================

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		unit     model.Unit
		expected string
	}{
		{16, model.UnitOz, "16 oz"},
		{12.5, model.UnitOz, "12.5 oz"},
		{500, model.UnitMl, "500 ml"},
		{1, model.UnitCups, "1 cup"},
		{2, model.UnitCups, "2 cups"},
		{16.907, model.UnitOz, "16.91 oz"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount, tt.unit))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "25%", FormatPercent(25))
	assert.Equal(t, "33.33%", FormatPercent(100.0/3))
	assert.Equal(t, "100%", FormatPercent(100))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 4, 8, 9, 5, 7, 0, time.Local)
	assert.Equal(t, "2026-04-08 09:05:07", FormatTime(ts))
	assert.Equal(t, "2026-04-08 09:05", FormatTimeShort(ts))
	assert.Equal(t, "2026-04-08", FormatDate(ts))
	assert.Equal(t, "09:05", FormatTimeOnly(ts))
	assert.Equal(t, "Wed 04-08", FormatWeekday(ts))
}

// =============================================================================
// CLIFormatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	cli, buf := newCLI()

	cli.Title("My Title")
	cli.Success("Operation completed")
	cli.Warning("Be careful")
	cli.Error("Something failed")
	cli.Muted("quiet")

	out := buf.String()
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "✓ Operation completed")
	assert.Contains(t, out, "⚠ Be careful")
	assert.Contains(t, out, "✗ Something failed")
	assert.Contains(t, out, "quiet")
}

func TestCLIFormatterNoColorIsPlainText(t *testing.T) {
	cli, _ := newCLI()
	assert.Equal(t, "coffee", cli.DrinkName("coffee"))
	assert.Equal(t, "16 oz", cli.Amount(16, model.UnitOz))
}

func TestCLIFormatterPrintEntryAdded(t *testing.T) {
	cli, buf := newCLI()
	cli.PrintEntryAdded(sampleEntry())

	out := buf.String()
	assert.Contains(t, out, "Logged 10 oz of coffee")
	assert.Contains(t, out, "8 points (x0.8)")
	assert.Contains(t, out, "2026-04-08 09:30")
	assert.Contains(t, out, "0190a1b2-0000-7000-8000-000000000001")
}

func TestCLIFormatterPrintEntryDeleted(t *testing.T) {
	cli, buf := newCLI()
	cli.PrintEntryDeleted(sampleEntry())
	assert.Contains(t, buf.String(), "Deleted 10 oz of coffee")
	assert.Contains(t, buf.String(), "hydrate undo")
}

func TestCLIFormatterPrintDay(t *testing.T) {
	t.Run("in_progress", func(t *testing.T) {
		cli, buf := newCLI()
		cli.PrintDay("Today", &app.DaySummary{
			Date:            time.Date(2026, 4, 8, 0, 0, 0, 0, time.Local),
			Goal:            model.DefaultGoal(),
			Entries:         []*model.WaterEntry{sampleEntry()},
			Total:           16,
			Remaining:       48,
			ProgressPercent: 25,
			HydrationPoints: 8,
		})

		out := buf.String()
		assert.Contains(t, out, "Today (2026-04-08)")
		assert.Contains(t, out, "16 oz / 64 oz")
		assert.Contains(t, out, "█████░░░░░░░░░░░░░░░")
		assert.Contains(t, out, "25%")
		assert.Contains(t, out, "Remaining: 48 oz")
		assert.Contains(t, out, "coffee")
	})

	t.Run("goal_met_empty", func(t *testing.T) {
		cli, buf := newCLI()
		cli.PrintDay("Today", &app.DaySummary{
			Goal:            &model.DailyGoal{ID: "g", TargetAmount: 0, Unit: model.UnitOz},
			ProgressPercent: 100,
			GoalMet:         true,
		})
		assert.Contains(t, buf.String(), "Goal reached!")
		assert.Contains(t, buf.String(), "No drinks logged yet")
	})
}

func TestCLIFormatterPrintWeek(t *testing.T) {
	cli, buf := newCLI()
	start := time.Date(2026, 4, 5, 0, 0, 0, 0, time.Local)
	entries := []*model.WaterEntry{
		{ID: "a", Amount: 64, Unit: model.UnitOz, Timestamp: start.Add(10 * time.Hour)},
	}
	week := accounting.SummarizeWeek(entries, model.DefaultGoal(), start)
	cli.PrintWeek(&week)

	out := buf.String()
	assert.Contains(t, out, "Week of 2026-04-05")
	assert.Contains(t, out, "Sun 04-05")
	assert.Contains(t, out, "Sat 04-11")
	assert.Contains(t, out, "Goal met: 1/7 days")
}

func TestCLIFormatterPrintStats(t *testing.T) {
	cli, buf := newCLI()
	cli.PrintStats(&model.UserStats{CurrentStreak: 1, LongestStreak: 5, TotalIntake: 320, AverageDaily: 64}, model.UnitOz)

	out := buf.String()
	assert.Contains(t, out, "Current streak: 1 day")
	assert.Contains(t, out, "Longest streak: 5 days")
	assert.Contains(t, out, "320 oz")
}

func TestCLIFormatterPrintGoal(t *testing.T) {
	cli, buf := newCLI()
	cli.PrintGoal(model.DefaultGoal())
	assert.Contains(t, buf.String(), "Daily goal: 64 oz")
	assert.Contains(t, buf.String(), "default goal")
}

func TestCLIFormatterPrintDrinks(t *testing.T) {
	cli, buf := newCLI()
	drinks := model.DefaultDrinkTypes()
	drinks[2].Active = false
	cli.PrintDrinks(drinks)

	out := buf.String()
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "sports drink")
	assert.Contains(t, out, "x0.95")
	assert.Contains(t, out, "inactive")
}

// =============================================================================
// ProgressBar Tests
// =============================================================================

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percentage float64
		width      int
	}{
		{0, 10},
		{50, 10},
		{100, 10},
		{150, 10}, // Over 100%
		{-10, 10}, // Negative
		{75, 20},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			bar := ProgressBar(tt.percentage, tt.width)
			assert.Equal(t, tt.width, len([]rune(bar)))
		})
	}
}

func TestProgressBarContent(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "██████████", ProgressBar(100, 10))
}

// =============================================================================
// Table Tests
// =============================================================================

func TestCLIFormatterPrintTable(t *testing.T) {
	t.Run("with_rows", func(t *testing.T) {
		cli, buf := newCLI()

		headers := []string{"Drink", "Amount"}
		rows := []TableRow{
			{Columns: []string{"water", "16 oz"}},
			{Columns: []string{"tea", "8 oz"}},
		}

		cli.PrintTable(headers, rows)
		out := buf.String()

		assert.Contains(t, out, "Drink")
		assert.Contains(t, out, "Amount")
		assert.Contains(t, out, "water  16 oz")
		assert.Contains(t, out, "tea    8 oz")
		assert.Contains(t, out, "─")
	})

	t.Run("empty_rows", func(t *testing.T) {
		cli, buf := newCLI()
		cli.PrintTable([]string{"Name"}, []TableRow{})
		assert.Empty(t, buf.String())
	})
}

// =============================================================================
// JSONFormatter Tests
// =============================================================================

func TestJSONFormatterPrintEntry(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(&Formatter{Writer: &buf})

	require.NoError(t, jf.PrintEntry("added", sampleEntry()))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "added", resp["status"])
	entry := resp["entry"].(map[string]any)
	assert.Equal(t, "coffee", entry["drinkType"])
	assert.Equal(t, 8.0, entry["hydrationPoints"])
}

func TestJSONFormatterPrintEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(&Formatter{Writer: &buf})

	require.NoError(t, jf.PrintEntries(nil))
	assert.Contains(t, buf.String(), `"entries": []`)
	assert.Contains(t, buf.String(), `"count": 0`)
}

func TestJSONFormatterPrintStats(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(&Formatter{Writer: &buf})

	require.NoError(t, jf.PrintStats(&model.UserStats{CurrentStreak: 3, LongestStreak: 7}, model.UnitMl))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 3.0, resp["currentStreak"])
	assert.Equal(t, 7.0, resp["longestStreak"])
	assert.Equal(t, "ml", resp["unit"])
}

func TestJSONFormatterPrintError(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(&Formatter{Writer: &buf})

	require.NoError(t, jf.PrintError("error", "entry not found: x", "Use 'hydrate entries' to see entry ids."))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "entry not found: x", resp.Error)
	assert.NotEmpty(t, resp.Message)
}
