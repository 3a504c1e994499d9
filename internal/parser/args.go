package parser

import (
	"strings"
	"time"
	"unicode"

	"github.com/manav03panchal/hydrate/internal/model"
)

// ParsedArgs holds the parsed arguments of an add command such as
// "16oz coffee at 9am" or "2 cups of tea yesterday 3pm".
type ParsedArgs struct {
	Amount    float64
	Unit      model.Unit
	DrinkType string
	Timestamp time.Time

	// Raw strings before processing
	RawAmount    string
	RawTimestamp string

	// Flags for what was found
	HasAmount    bool
	HasUnit      bool
	HasDrink     bool
	HasTimestamp bool
}

// Keywords for natural language parsing.
var (
	timestampKeywords = []string{"at", "on"}
	skipWords         = map[string]bool{
		"of": true, "a": true, "an": true, "glass": true,
	}
	timeLikeWords = map[string]bool{
		"now": true, "today": true, "yesterday": true, "ago": true,
		"last": true, "this": true, "previous": true,
		"am": true, "pm": true, "noon": true, "midnight": true,
		"morning": true, "afternoon": true, "evening": true, "night": true,
		"hour": true, "hours": true, "minute": true, "minutes": true,
		"min": true, "mins": true, "day": true, "days": true,
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
		"jan": true, "feb": true, "mar": true, "apr": true, "may": true, "jun": true,
		"jul": true, "aug": true, "sep": true, "oct": true, "nov": true, "dec": true,
		"january": true, "february": true, "march": true, "april": true,
		"june": true, "july": true, "august": true, "september": true,
		"october": true, "november": true, "december": true,
	}
)

// Parse splits add-command arguments into amount, unit, drink type and
// timestamp. Nothing is validated here; call Process for that.
func Parse(args []string) *ParsedArgs {
	result := &ParsedArgs{}
	tokens := tokenize(strings.Join(args, " "))
	if len(tokens) == 0 {
		return result
	}

	// The amount comes first, optionally followed by a separate unit.
	result.RawAmount = tokens[0]
	result.HasAmount = true
	tokens = tokens[1:]
	if len(tokens) > 0 && !hasLetter(result.RawAmount) {
		if unit, ok := model.ParseUnit(tokens[0]); ok {
			result.Unit = unit
			result.HasUnit = true
			tokens = tokens[1:]
		}
	}

	var (
		drinkTokens     []string
		timestampTokens []string
		inTimestamp     bool
	)
	for _, token := range tokens {
		lower := strings.ToLower(token)

		if inTimestamp {
			timestampTokens = append(timestampTokens, token)
			continue
		}
		if containsString(timestampKeywords, lower) {
			inTimestamp = true
			continue
		}
		if skipWords[lower] {
			continue
		}
		if isTimeLike(token) {
			inTimestamp = true
			timestampTokens = append(timestampTokens, token)
			continue
		}
		drinkTokens = append(drinkTokens, token)
	}

	if len(drinkTokens) > 0 {
		result.DrinkType = strings.ToLower(strings.Join(drinkTokens, " "))
		result.HasDrink = true
	}
	if len(timestampTokens) > 0 {
		result.RawTimestamp = strings.Join(timestampTokens, " ")
		result.HasTimestamp = true
	}
	return result
}

// Process converts raw strings to typed values. defaultUnit applies when
// neither the amount nor a separate argument names a unit.
func (p *ParsedArgs) Process(defaultUnit model.Unit, now time.Time) error {
	if !p.HasAmount {
		return NewAmountError("")
	}

	amount, err := ParseAmount(p.RawAmount, defaultUnit)
	if err != nil {
		return err
	}
	p.Amount = amount.Amount
	if !p.HasUnit {
		p.Unit = amount.Unit
		p.HasUnit = amount.HasUnit
	}

	if p.RawTimestamp != "" {
		result := ParseTimestampAt(p.RawTimestamp, now)
		if result.Error != nil {
			return result.Error
		}
		p.Timestamp = result.Time
	}
	return nil
}

// Merge merges flag values into parsed args (flags override).
func (p *ParsedArgs) Merge(unitFlag, drinkFlag, atFlag string) error {
	if unitFlag != "" {
		unit, err := ParseUnitArg(unitFlag)
		if err != nil {
			return err
		}
		p.Unit = unit
		p.HasUnit = true
	}
	if drinkFlag != "" {
		p.DrinkType = strings.ToLower(strings.TrimSpace(drinkFlag))
		p.HasDrink = true
	}
	if atFlag != "" {
		p.RawTimestamp = atFlag
		p.HasTimestamp = true
	}
	return nil
}

// tokenize splits input into tokens, preserving quoted strings.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, r := range input {
		if (r == '"' || r == '\'') && !inQuote {
			inQuote = true
			quoteChar = r
			continue
		}
		if r == quoteChar && inQuote {
			inQuote = false
			quoteChar = 0
			continue
		}
		if r == ' ' && !inQuote {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// containsString checks if a slice contains a string.
func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// isTimeLike checks if a token looks like part of a time expression.
// Drink names never start with a digit, so any number is treated as time.
func isTimeLike(token string) bool {
	lower := strings.ToLower(token)
	if timeLikeWords[lower] {
		return true
	}
	if len(token) > 0 && token[0] >= '0' && token[0] <= '9' {
		return true
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
