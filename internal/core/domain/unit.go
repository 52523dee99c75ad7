package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Unit is a CSS length unit.
type Unit string

const (
	// UnitPx is the CSS pixel.
	UnitPx Unit = "px"
	// UnitRem is relative to the root font size.
	UnitRem Unit = "rem"
	// UnitEm is relative to the element font size, taken as the root font size.
	UnitEm Unit = "em"
)

// RootFontSize is the number of pixels in one rem.
const RootFontSize = 16.0

// unitRatios maps each unit to how many of it make one rem.
var unitRatios = map[Unit]float64{
	UnitPx:  RootFontSize,
	UnitRem: 1,
	UnitEm:  1,
}

// Units returns the supported units in display order.
func Units() []Unit {
	return []Unit{UnitPx, UnitRem, UnitEm}
}

// ParseUnit validates a unit token.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if _, ok := unitRatios[u]; !ok {
		return "", Detail(ErrUnsupportedUnit, "unit", s)
	}
	return u, nil
}

// Ratio returns how many of u make one rem.
func (u Unit) Ratio() float64 {
	return unitRatios[u]
}

// ToRem converts value expressed in unit to rem.
func ToRem(value float64, unit Unit) (float64, error) {
	if _, err := ParseUnit(string(unit)); err != nil {
		return 0, err
	}
	return value / unit.Ratio(), nil
}

// FromRem expands a rem value into every supported unit.
func FromRem(rem float64) map[Unit]float64 {
	units := Units()
	out := make(map[Unit]float64, len(units))
	for _, u := range units {
		out[u] = rem * u.Ratio()
	}
	return out
}

// Length is a numeric value paired with its unit.
type Length struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}

// ParseLength reads a length from the positional arguments of the unit command.
// It accepts "<value> <unit>" or a single token with the unit attached ("16px").
func ParseLength(args []string) (Length, error) {
	switch len(args) {
	case 0:
		return Length{}, Detail(ErrUsage, "expected", "<value> <unit>")
	case 1:
		return parseAttachedLength(args[0])
	case 2:
		value, err := ParseNumber(args[0], "value")
		if err != nil {
			return Length{}, err
		}
		unit, err := ParseUnit(args[1])
		if err != nil {
			return Length{}, err
		}
		return Length{Value: value, Unit: unit}, nil
	default:
		return Length{}, Detail(ErrUsage, "unexpected", strings.Join(args[2:], " "))
	}
}

// attachedLength splits "16px" or "-1.5e1rem" into its number and unit suffix.
var attachedLength = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)([a-zA-Z%]*)$`)

func parseAttachedLength(token string) (Length, error) {
	m := attachedLength.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return Length{}, zerr.With(Detail(ErrInvalidNumber, "field", "value"), "value", token)
	}
	if m[2] == "" {
		return Length{}, Detail(ErrUsage, "expected", "<value> <unit>")
	}
	value, err := ParseNumber(m[1], "value")
	if err != nil {
		return Length{}, err
	}
	unit, err := ParseUnit(m[2])
	if err != nil {
		return Length{}, err
	}
	return Length{Value: value, Unit: unit}, nil
}

// ParseNumber parses a decimal number argument. field names the argument in errors.
func ParseNumber(token, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, zerr.With(Detail(ErrInvalidNumber, "field", field), "value", token)
	}
	return v, nil
}
