// Package units converts trade quantities between metric and imperial units.
//
// Only a handful of directed factors are known. A pair is converted either by
// its direct factor or by dividing through the factor of the reverse pair.
package units

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnsupportedConversion = errors.New("unsupported unit conversion")

// Dimension groups units that measure the same quantity.
type Dimension string

const (
	Weight Dimension = "weight"
	Volume Dimension = "volume"
	Area   Dimension = "area"
)

// System is a measurement system.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

type pair struct {
	from, to string
}

var factors = map[pair]float64{
	{"kg", "lb"}:        2.20462,
	{"ton", "ton (US)"}: 1.10231,
	{"liter", "gallon"}: 0.264172,
	{"m²", "ft²"}:       10.7639,
}

var catalog = map[Dimension]map[System][]string{
	Weight: {
		Metric:   {"kg", "ton", "g"},
		Imperial: {"lb", "oz", "ton (US)"},
	},
	Volume: {
		Metric:   {"liter", "ml", "m³"},
		Imperial: {"gallon", "fl oz", "ft³"},
	},
	Area: {
		Metric:   {"m²", "hectare", "km²"},
		Imperial: {"ft²", "acre", "mile²"},
	},
}

// Dimensions returns the supported dimensions in display order.
func Dimensions() []Dimension {
	return []Dimension{Weight, Volume, Area}
}

// List returns a copy of the units of dimension d in system s, or nil when
// either is unknown.
func List(d Dimension, s System) []string {
	units := catalog[d][s]
	if units == nil {
		return nil
	}
	out := make([]string, len(units))
	copy(out, units)
	return out
}

// Convert converts v from one unit to another.
//
// Identical units return v unchanged. A known pair multiplies by its factor,
// the reverse of a known pair divides by it. Any other pair yields
// ErrUnsupportedConversion.
func Convert(v float64, from, to string) (float64, error) {
	if from == to {
		return v, nil
	}
	if f, ok := factors[pair{from, to}]; ok {
		return v * f, nil
	}
	if f, ok := factors[pair{to, from}]; ok {
		return v / f, nil
	}
	return 0, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
}

// Supported reports whether Convert can handle the pair.
func Supported(from, to string) bool {
	if from == to {
		return true
	}
	_, direct := factors[pair{from, to}]
	_, reverse := factors[pair{to, from}]
	return direct || reverse
}

// Round2 rounds v to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
