package model

import (
	"math"
	"testing"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.00"},
		{10, "10.00"},
		{3.1829, "3.18"},
		{314.1788934619372, "314.18"},
		{0.125, "0.12"},
		{0.375, "0.38"},
		{-2.5, "-2.50"},
		{1e6, "1000000.00"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}

	for _, test := range tests {
		result := FormatQuantity(test.value)
		if result != test.expected {
			t.Errorf("FormatQuantity(%v) = %s, expected %s", test.value, result, test.expected)
		}
	}
}

func TestRender_Defaults(t *testing.T) {
	d := Render(*NewMixture())
	expected := Display{"0.00", "3.18", "0.00", "4.00", "0.00"}

	if d != expected {
		t.Errorf("Render(defaults) = %v, expected %v", d, expected)
	}
}

func TestRender_AfterMassEdit(t *testing.T) {
	m := NewMixture()
	m.SetPureAlcoholMass("10")

	d := Render(*m)
	expected := Display{"10.00", "3.18", "314.18", "4.00", "316.85"}
	if d != expected {
		t.Errorf("Render() = %v, expected %v", d, expected)
	}
}

func TestRender_ZeroStrength(t *testing.T) {
	m := Mixture{PureAlcoholMass: 10, WeightFraction: 0}

	d := Render(m)
	if d.Text(FieldTotalMass) != "inf" {
		t.Errorf("Total mass rendered as %q, expected inf", d.Text(FieldTotalMass))
	}
	if d.Text(FieldTotalVolume) != "inf" {
		t.Errorf("Total volume rendered as %q, expected inf", d.Text(FieldTotalVolume))
	}
	if d.Text(FieldVolumePercent) != "0.00" {
		t.Errorf("Volume percent rendered as %q, expected 0.00", d.Text(FieldVolumePercent))
	}
}

func TestDisplay_TextInvalidField(t *testing.T) {
	d := Render(*NewMixture())
	if d.Text(Field(-1)) != "" || d.Text(Field(FieldCount)) != "" {
		t.Error("Text() for an invalid field should be empty")
	}
}

func TestMixture_ValueInvalidField(t *testing.T) {
	if !math.IsNaN(NewMixture().Value(Field(99))) {
		t.Error("Value() for an invalid field should be NaN")
	}
}
