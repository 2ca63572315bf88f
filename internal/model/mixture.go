package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// AlcoholDensity is the density of pure ethanol in g/ml. Water is taken as 1 g/ml
// and the two are assumed to mix without volume contraction.
const AlcoholDensity = 0.789

// Default state shown on startup
const (
	DefaultPureAlcoholMass = 0.0
	DefaultWeightFraction  = 0.031829
)

// Percent scale bounds
const (
	MinPercent = 0.0
	MaxPercent = 100.0
)

// Mixture holds the canonical state of an alcohol/water mixture. Everything else
// on the form is derived from these two values on demand.
type Mixture struct {
	PureAlcoholMass float64 // grams
	WeightFraction  float64 // 0.0 to 1.0
}

// NewMixture creates a mixture with the default values
func NewMixture() *Mixture {
	return &Mixture{
		PureAlcoholMass: DefaultPureAlcoholMass,
		WeightFraction:  DefaultWeightFraction,
	}
}

// Reset restores the default values
func (m *Mixture) Reset() {
	m.PureAlcoholMass = DefaultPureAlcoholMass
	m.WeightFraction = DefaultWeightFraction
}

// WeightPercent returns the weight fraction on the 0-100 scale
func (m Mixture) WeightPercent() float64 {
	return m.WeightFraction * 100
}

// VolumeFraction returns the share of alcohol by volume, 0.0 to 1.0
func (m Mixture) VolumeFraction() float64 {
	return VolumeFromWeight(m.WeightFraction)
}

// VolumePercent returns the volume fraction on the 0-100 scale
func (m Mixture) VolumePercent() float64 {
	return m.VolumeFraction() * 100
}

// TotalMass returns the mass of the whole mixture in grams.
// It is non-finite when the weight fraction is zero.
func (m Mixture) TotalMass() float64 {
	return m.PureAlcoholMass / m.WeightFraction
}

// TotalVolume returns the volume of the whole mixture in milliliters
func (m Mixture) TotalVolume() float64 {
	return (m.TotalMass() - m.PureAlcoholMass) + m.PureAlcoholMass/AlcoholDensity
}

// SetPureAlcoholMass stores a new pure alcohol mass. Negative or unparseable
// input leaves the mixture unchanged.
func (m *Mixture) SetPureAlcoholMass(text string) bool {
	mass, ok := ParseQuantity(text)
	if !ok || mass < 0 {
		return false
	}
	m.PureAlcoholMass = mass
	return true
}

// SetWeightPercent stores a new weight fraction given on the 0-100 scale
func (m *Mixture) SetWeightPercent(text string) bool {
	percent, ok := ParseQuantity(text)
	if !ok {
		return false
	}
	m.WeightFraction = ClampPercent(percent) / 100
	return true
}

// SetVolumePercent converts a volume percentage into the equivalent weight fraction
func (m *Mixture) SetVolumePercent(text string) bool {
	percent, ok := ParseQuantity(text)
	if !ok {
		return false
	}
	m.WeightFraction = WeightFromVolumePercent(ClampPercent(percent))
	return true
}

// SetTotalMass rescales the pure alcohol mass to a new total mass, keeping the strength
func (m *Mixture) SetTotalMass(text string) bool {
	total, ok := ParseQuantity(text)
	if !ok {
		return false
	}
	m.PureAlcoholMass = total * m.WeightFraction
	return true
}

// SetTotalVolume rescales the pure alcohol mass to a new total volume, keeping the strength
func (m *Mixture) SetTotalVolume(text string) bool {
	total, ok := ParseQuantity(text)
	if !ok {
		return false
	}
	m.PureAlcoholMass = total * m.VolumeFraction() * AlcoholDensity
	return true
}

// VolumeFromWeight converts a weight fraction to a volume fraction
func VolumeFromWeight(weightFraction float64) float64 {
	return weightFraction / (AlcoholDensity*(1-weightFraction) + weightFraction)
}

// WeightFromVolumePercent converts a volume percentage (0-100) to a weight fraction (0-1)
func WeightFromVolumePercent(volumePercent float64) float64 {
	t := volumePercent * AlcoholDensity
	return t / (MaxPercent - volumePercent + t)
}

// ClampPercent limits a percentage to [0, 100]
func ClampPercent(percent float64) float64 {
	return math.Max(MinPercent, math.Min(MaxPercent, percent))
}

// ParseQuantity parses user input into a number. Surrounding whitespace is
// ignored and a single comma is accepted as the decimal separator. Empty input
// and NaN are rejected; values that overflow parse to ±Inf.
func ParseQuantity(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(value) {
		return 0, false
	}
	return value, true
}
