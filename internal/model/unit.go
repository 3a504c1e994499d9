package model

import "strings"

// Unit is a volume unit an entry or goal is expressed in.
type Unit string

const (
	UnitOz   Unit = "oz"
	UnitMl   Unit = "ml"
	UnitCups Unit = "cups"
)

// Units lists the supported units in display order.
var Units = []Unit{UnitOz, UnitMl, UnitCups}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	switch u {
	case UnitOz, UnitMl, UnitCups:
		return true
	}
	return false
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit accepts the canonical unit names plus common spellings
// ("ounces", "milliliters", "cup").
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oz", "ounce", "ounces", "fl oz", "floz":
		return UnitOz, true
	case "ml", "milliliter", "milliliters", "millilitre", "millilitres":
		return UnitMl, true
	case "cup", "cups", "c":
		return UnitCups, true
	}
	return "", false
}
