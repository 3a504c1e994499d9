package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		amount  float64
		unit    model.Unit
		hasUnit bool
	}{
		{"16", 16, model.UnitOz, false},
		{"16oz", 16, model.UnitOz, true},
		{"16 oz", 16, model.UnitOz, true},
		{"500ml", 500, model.UnitMl, true},
		{"500 milliliters", 500, model.UnitMl, true},
		{"2cups", 2, model.UnitCups, true},
		{"1 cup", 1, model.UnitCups, true},
		{"0.5cups", 0.5, model.UnitCups, true},
		{".5 cups", 0.5, model.UnitCups, true},
		{"  12.25  ", 12.25, model.UnitOz, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input, model.UnitOz)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, got.Amount)
			assert.Equal(t, tt.unit, got.Unit)
			assert.Equal(t, tt.hasUnit, got.HasUnit)
		})
	}
}

func TestParseAmountDefaultUnit(t *testing.T) {
	got, err := ParseAmount("250", model.UnitMl)
	require.NoError(t, err)
	assert.Equal(t, model.UnitMl, got.Unit)
}

func TestParseAmountInvalid(t *testing.T) {
	tests := []struct {
		input string
		cause error
	}{
		{"", errors.ErrInvalidAmount},
		{"abc", errors.ErrInvalidAmount},
		{"-5", errors.ErrInvalidAmount},
		{"0", errors.ErrInvalidAmount},
		{"0oz", errors.ErrInvalidAmount},
		{"12 gallons", errors.ErrInvalidUnit},
		{"12pints", errors.ErrInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseAmount(tt.input, model.UnitOz)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.cause))
			assert.True(t, errors.Is(err, errors.ErrValidation))
		})
	}
}

func TestParseUnitArg(t *testing.T) {
	unit, err := ParseUnitArg("Ounces")
	require.NoError(t, err)
	assert.Equal(t, model.UnitOz, unit)

	_, err = ParseUnitArg("liters")
	assert.True(t, errors.Is(err, errors.ErrInvalidUnit))
}
