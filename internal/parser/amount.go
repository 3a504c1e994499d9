package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/manav03panchal/hydrate/internal/model"
)

// amountRegex matches "16", "16oz", "16 oz", "0.5 cups", "500ml".
var amountRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?|\.\d+)\s*([a-zA-Z][a-zA-Z ]*)?$`)

// AmountResult holds a parsed amount.
type AmountResult struct {
	Amount  float64
	Unit    model.Unit
	HasUnit bool
}

// ParseAmount parses an amount with an optional unit suffix. When no unit
// is given, defaultUnit is used and HasUnit is false.
func ParseAmount(input string, defaultUnit model.Unit) (AmountResult, error) {
	input = strings.TrimSpace(input)
	match := amountRegex.FindStringSubmatch(input)
	if match == nil {
		return AmountResult{}, NewAmountError(input)
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil || amount <= 0 {
		return AmountResult{}, NewAmountError(input)
	}

	result := AmountResult{Amount: amount, Unit: defaultUnit}
	if suffix := strings.TrimSpace(match[2]); suffix != "" {
		unit, ok := model.ParseUnit(suffix)
		if !ok {
			return AmountResult{}, NewUnitError(suffix)
		}
		result.Unit = unit
		result.HasUnit = true
	}
	return result, nil
}

// ParseUnitArg parses a standalone unit argument.
func ParseUnitArg(input string) (model.Unit, error) {
	unit, ok := model.ParseUnit(input)
	if !ok {
		return "", NewUnitError(input)
	}
	return unit, nil
}
