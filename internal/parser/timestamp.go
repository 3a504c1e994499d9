// Package parser turns command-line text into amounts, units and times.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// TimestampResult holds the parsed timestamp and any error.
type TimestampResult struct {
	Time  time.Time
	Error error
}

// periodRegex matches period expressions like "this week", "last month".
var periodRegex = regexp.MustCompile(`(?i)^(this|current|last|previous)\s+(day|week|month|year)$`)

// ParseTimestamp parses a natural language timestamp relative to the
// current time.
func ParseTimestamp(input string) TimestampResult {
	return ParseTimestampAt(input, time.Now())
}

// ParseTimestampAt parses a natural language timestamp relative to now.
// "9am", "yesterday 3pm", "2 hours ago" and RFC 3339 all work.
func ParseTimestampAt(input string, now time.Time) TimestampResult {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return TimestampResult{Time: now}
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return TimestampResult{Time: t}
	}

	if match := periodRegex.FindStringSubmatch(input); match != nil {
		return TimestampResult{Time: periodStart(match[1], match[2], now)}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return TimestampResult{Error: NewTimestampError(input)}
	}

	return TimestampResult{Time: result.Time}
}

// periodStart returns the start of the named period. Weeks start on Sunday.
func periodStart(modifier, period string, now time.Time) time.Time {
	previous := strings.EqualFold(modifier, "last") || strings.EqualFold(modifier, "previous")
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(period) {
	case "day":
		if previous {
			return day.AddDate(0, 0, -1)
		}
		return day

	case "week":
		t := day.AddDate(0, 0, -int(now.Weekday()))
		if previous {
			t = t.AddDate(0, 0, -7)
		}
		return t

	case "month":
		t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(0, -1, 0)
		}
		return t

	case "year":
		t := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(-1, 0, 0)
		}
		return t
	}
	return now
}

// ParseDay resolves a day reference ("today", "yesterday", "monday",
// "2026-04-08") to the start of that local day.
func ParseDay(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today", "now":
		return startOfDay(now), nil
	case "yesterday":
		return startOfDay(now).AddDate(0, 0, -1), nil
	}

	if t, err := time.ParseInLocation(time.DateOnly, input, now.Location()); err == nil {
		return t, nil
	}

	result := ParseTimestampAt(input, now)
	if result.Error != nil {
		return time.Time{}, NewDayError(input)
	}
	return startOfDay(result.Time.In(now.Location())), nil
}

// ParseWeek resolves a week reference ("this week", "last week", a date
// inside the week) to a time within that week.
func ParseWeek(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now, nil
	}
	if n, ok := weeksAgo(input); ok {
		return now.AddDate(0, 0, -7*n), nil
	}
	t, err := ParseDay(input, now)
	if err != nil {
		return time.Time{}, NewWeekError(input)
	}
	return t, nil
}

var weeksAgoRegex = regexp.MustCompile(`(?i)^(\d+)\s*(w|wk|wks|week|weeks)(\s+ago)?$`)

func weeksAgo(input string) (int, bool) {
	match := weeksAgoRegex.FindStringSubmatch(input)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
