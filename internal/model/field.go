package model

// Field identifies one of the five quantities shown on the form
type Field int

// Fields in display order
const (
	FieldPureAlcoholMass Field = iota
	FieldWeightPercent
	FieldTotalMass
	FieldVolumePercent
	FieldTotalVolume
)

// FieldCount is the number of editable fields
const FieldCount = 5

// Unit suffixes shown next to each entry
const (
	UnitGram       = "gram"
	UnitPercent    = "%"
	UnitMilliliter = "ml"
)

// Fields returns all fields in display order
func Fields() []Field {
	return []Field{
		FieldPureAlcoholMass,
		FieldWeightPercent,
		FieldTotalMass,
		FieldVolumePercent,
		FieldTotalVolume,
	}
}

// String returns a stable identifier used in logs and localization keys
func (f Field) String() string {
	switch f {
	case FieldPureAlcoholMass:
		return "pure_alcohol_mass"
	case FieldWeightPercent:
		return "weight_percent"
	case FieldTotalMass:
		return "total_mass"
	case FieldVolumePercent:
		return "volume_percent"
	case FieldTotalVolume:
		return "total_volume"
	default:
		return "unknown"
	}
}

// Unit returns the unit suffix rendered next to the field
func (f Field) Unit() string {
	switch f {
	case FieldPureAlcoholMass, FieldTotalMass:
		return UnitGram
	case FieldWeightPercent, FieldVolumePercent:
		return UnitPercent
	case FieldTotalVolume:
		return UnitMilliliter
	default:
		return ""
	}
}

// IsPercent returns true if the field is edited on the 0-100 scale
func (f Field) IsPercent() bool {
	return f == FieldWeightPercent || f == FieldVolumePercent
}

// IsValid returns true for the five known fields
func (f Field) IsValid() bool {
	return f >= FieldPureAlcoholMass && f <= FieldTotalVolume
}
