package model

import (
	"math"
	"strconv"
)

// Display holds the formatted text of every field, indexed by Field
type Display [FieldCount]string

// Non-finite renderings
const (
	TextPosInf = "inf"
	TextNegInf = "-inf"
	TextNaN    = "NaN"
)

// FormatQuantity renders a value fixed-point with two decimals
func FormatQuantity(v float64) string {
	switch {
	case math.IsNaN(v):
		return TextNaN
	case math.IsInf(v, 1):
		return TextPosInf
	case math.IsInf(v, -1):
		return TextNegInf
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Value returns the numeric value shown for a field
func (m Mixture) Value(f Field) float64 {
	switch f {
	case FieldPureAlcoholMass:
		return m.PureAlcoholMass
	case FieldWeightPercent:
		return m.WeightPercent()
	case FieldTotalMass:
		return m.TotalMass()
	case FieldVolumePercent:
		return m.VolumePercent()
	case FieldTotalVolume:
		return m.TotalVolume()
	default:
		return math.NaN()
	}
}

// Render formats every field from the current state
func Render(m Mixture) Display {
	var d Display
	for _, f := range Fields() {
		d[f] = FormatQuantity(m.Value(f))
	}
	return d
}

// Text returns the formatted text of a single field
func (d Display) Text(f Field) string {
	if !f.IsValid() {
		return ""
	}
	return d[f]
}
