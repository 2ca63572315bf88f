package model

import "testing"

func TestField_String(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{FieldPureAlcoholMass, "pure_alcohol_mass"},
		{FieldWeightPercent, "weight_percent"},
		{FieldTotalMass, "total_mass"},
		{FieldVolumePercent, "volume_percent"},
		{FieldTotalVolume, "total_volume"},
		{Field(42), "unknown"},
	}

	for _, test := range tests {
		result := test.field.String()
		if result != test.expected {
			t.Errorf("Field(%d).String() = %s, expected %s", int(test.field), result, test.expected)
		}
	}
}

func TestField_Unit(t *testing.T) {
	expected := []string{"gram", "%", "gram", "%", "ml"}

	fields := Fields()
	if len(fields) != FieldCount {
		t.Fatalf("Expected %d fields, got %d", FieldCount, len(fields))
	}

	for i, field := range fields {
		if field.Unit() != expected[i] {
			t.Errorf("Field(%s).Unit() = %q, expected %q", field, field.Unit(), expected[i])
		}
	}
}

func TestField_IsPercent(t *testing.T) {
	tests := []struct {
		field    Field
		expected bool
	}{
		{FieldPureAlcoholMass, false},
		{FieldWeightPercent, true},
		{FieldTotalMass, false},
		{FieldVolumePercent, true},
		{FieldTotalVolume, false},
	}

	for _, test := range tests {
		result := test.field.IsPercent()
		if result != test.expected {
			t.Errorf("Field(%s).IsPercent() = %v, expected %v", test.field, result, test.expected)
		}
	}
}

func TestField_IsValid(t *testing.T) {
	for _, field := range Fields() {
		if !field.IsValid() {
			t.Errorf("Field(%s).IsValid() = false, expected true", field)
		}
	}

	if Field(-1).IsValid() || Field(FieldCount).IsValid() {
		t.Error("Out of range fields should not be valid")
	}
}
