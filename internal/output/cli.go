package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/hydrate/internal/accounting"
	"github.com/manav03panchal/hydrate/internal/app"
	"github.com/manav03panchal/hydrate/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleDrink = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleAmount = lipgloss.NewStyle().
			Bold(true)

	styleBar = lipgloss.NewStyle().
			Foreground(colorPrimary)
)

// progressBarWidth is the width of day and week progress bars.
const progressBarWidth = 20

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// DrinkName formats a drink type.
func (c *CLIFormatter) DrinkName(name string) string {
	return c.render(styleDrink, name)
}

// Amount formats an amount with its unit.
func (c *CLIFormatter) Amount(amount float64, unit model.Unit) string {
	return c.render(styleAmount, FormatAmount(amount, unit))
}

// Bar renders a progress bar.
func (c *CLIFormatter) Bar(percentage float64) string {
	return c.render(styleBar, ProgressBar(percentage, progressBarWidth))
}

// PrintEntryAdded prints a newly logged entry.
func (c *CLIFormatter) PrintEntryAdded(entry *model.WaterEntry) {
	c.Success(fmt.Sprintf("Logged %s of %s", FormatAmount(entry.Amount, entry.Unit), entry.DrinkType))
	c.printEntryDetails(entry)
}

// PrintEntryUpdated prints an edited entry.
func (c *CLIFormatter) PrintEntryUpdated(entry *model.WaterEntry) {
	c.Success("Updated entry")
	c.Printf("  %s of %s\n", c.Amount(entry.Amount, entry.Unit), c.DrinkName(entry.DrinkType))
	c.printEntryDetails(entry)
}

// PrintEntryDeleted prints a removed entry.
func (c *CLIFormatter) PrintEntryDeleted(entry *model.WaterEntry) {
	c.Success(fmt.Sprintf("Deleted %s of %s", FormatAmount(entry.Amount, entry.Unit), entry.DrinkType))
	c.Muted("Use 'hydrate undo' to restore it.")
}

func (c *CLIFormatter) printEntryDetails(entry *model.WaterEntry) {
	c.Printf("  Hydration: %s points (x%s)\n", FormatNumber(entry.Points()), FormatNumber(entry.Multiplier()))
	c.Printf("  Time: %s\n", FormatTimeShort(entry.Timestamp))
	c.Printf("  ID: %s\n", entry.ID)
}

// PrintUndo prints the result of an undo.
func (c *CLIFormatter) PrintUndo(state *model.UndoState) {
	switch state.Action {
	case model.UndoActionAdd:
		c.Success("Undid add of entry " + state.EntryID)
	case model.UndoActionDelete:
		c.Success("Restored entry " + state.EntryID)
	}
}

// PrintDay prints a day's progress and entries.
func (c *CLIFormatter) PrintDay(title string, day *app.DaySummary) {
	c.Title(fmt.Sprintf("%s (%s)", title, FormatDate(day.Date)))
	c.Println("")

	goal := day.Goal
	c.Printf("  %s / %s  %s  %s\n",
		c.Amount(day.Total, goal.Unit),
		FormatAmount(goal.TargetAmount, goal.Unit),
		c.Bar(day.ProgressPercent),
		FormatPercent(day.ProgressPercent))

	if day.GoalMet {
		c.Println("  " + c.render(styleSuccess, "Goal reached!"))
	} else {
		c.Printf("  Remaining: %s\n", FormatAmount(day.Remaining, goal.Unit))
	}
	c.Printf("  Hydration points: %s\n", FormatNumber(day.HydrationPoints))
	c.Println("")

	if len(day.Entries) == 0 {
		c.Muted("No drinks logged yet. Use 'hydrate add 16oz' to log one.")
		return
	}
	c.PrintEntries(day.Entries, false)
}

// PrintEntries prints entries as a table. withDate includes the date column.
func (c *CLIFormatter) PrintEntries(entries []*model.WaterEntry, withDate bool) {
	if len(entries) == 0 {
		c.Muted("No entries.")
		return
	}

	headers := []string{"TIME", "AMOUNT", "DRINK", "POINTS", "ID"}
	rows := make([]TableRow, 0, len(entries))
	for _, e := range entries {
		when := FormatTimeOnly(e.Timestamp)
		if withDate {
			when = FormatTimeShort(e.Timestamp)
		}
		rows = append(rows, TableRow{Columns: []string{
			when,
			FormatAmount(e.Amount, e.Unit),
			e.DrinkType,
			FormatNumber(e.Points()),
			e.ID,
		}})
	}
	c.PrintTable(headers, rows)
}

// PrintWeek prints a weekly breakdown.
func (c *CLIFormatter) PrintWeek(week *accounting.WeekSummary) {
	c.Title(fmt.Sprintf("Week of %s", FormatDate(week.WeekStart)))
	c.Println("")

	for _, d := range week.Days {
		mark := " "
		if d.GoalMet {
			mark = c.render(styleSuccess, "✓")
		}
		c.Printf("  %s  %10s  %s  %7s %s\n",
			FormatWeekday(d.Date),
			FormatAmount(d.Total, week.Unit),
			c.Bar(d.ProgressPercent),
			FormatPercent(d.ProgressPercent),
			mark)
	}

	c.Println("")
	c.Printf("  Total: %s\n", c.Amount(week.Total, week.Unit))
	c.Printf("  Daily average: %s\n", FormatAmount(week.AverageDaily, week.Unit))
	c.Printf("  Goal met: %d/%d days (%s)\n", week.DaysGoalMet, accounting.DaysPerWeek, FormatPercent(week.SuccessRate))
}

// PrintStats prints the stats snapshot. Amounts are in unit.
func (c *CLIFormatter) PrintStats(stats *model.UserStats, unit model.Unit) {
	c.Title("Statistics")
	c.Println("")
	c.Printf("  Current streak: %s\n", c.render(styleBold, days(stats.CurrentStreak)))
	c.Printf("  Longest streak: %s\n", days(stats.LongestStreak))
	c.Printf("  Total intake:   %s\n", FormatAmount(stats.TotalIntake, unit))
	c.Printf("  Daily average:  %s\n", FormatAmount(stats.AverageDaily, unit))
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// PrintGoal prints the current goal.
func (c *CLIFormatter) PrintGoal(goal *model.DailyGoal) {
	c.Printf("Daily goal: %s\n", c.Amount(goal.TargetAmount, goal.Unit))
	if goal.IsDefault() {
		c.Muted("Using the default goal. Set one with 'hydrate goal set 80oz'.")
	} else {
		c.Muted("Set on " + FormatDate(goal.Date))
	}
}

// PrintGoalHistory prints stored goals, newest first.
func (c *CLIFormatter) PrintGoalHistory(goals []*model.DailyGoal) {
	if len(goals) == 0 {
		c.Muted("No goals set yet.")
		return
	}
	rows := make([]TableRow, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, TableRow{Columns: []string{FormatDate(g.Date), FormatAmount(g.TargetAmount, g.Unit)}})
	}
	c.PrintTable([]string{"DATE", "GOAL"}, rows)
}

// PrintDrinks prints the drink catalog.
func (c *CLIFormatter) PrintDrinks(drinks []*model.DrinkType) {
	if len(drinks) == 0 {
		c.Muted("No drink types.")
		return
	}
	rows := make([]TableRow, 0, len(drinks))
	for _, d := range drinks {
		status := "active"
		if !d.Active {
			status = "inactive"
		}
		rows = append(rows, TableRow{Columns: []string{d.Value, d.Label, d.Icon, "x" + FormatNumber(d.HydrationMultiplier), status}})
	}
	c.PrintTable([]string{"VALUE", "LABEL", "ICON", "HYDRATION", "STATUS"}, rows)
}

// PrintImport prints the result of an import.
func (c *CLIFormatter) PrintImport(result *app.ImportResult) {
	c.Success(fmt.Sprintf("Imported %d entries, %d goals and %d drink types", result.Entries, result.Goals, result.DrinkTypes))
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
