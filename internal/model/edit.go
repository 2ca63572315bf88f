package model

// Edit is a text change coming from one of the form fields
type Edit struct {
	Field Field
	Text  string
}

// NewEdit creates an edit event for a field
func NewEdit(field Field, text string) Edit {
	return Edit{Field: field, Text: text}
}

// Update applies an edit in place and reports whether the text was accepted.
// Rejected text leaves the mixture untouched.
func (m *Mixture) Update(e Edit) bool {
	switch e.Field {
	case FieldPureAlcoholMass:
		return m.SetPureAlcoholMass(e.Text)
	case FieldWeightPercent:
		return m.SetWeightPercent(e.Text)
	case FieldTotalMass:
		return m.SetTotalMass(e.Text)
	case FieldVolumePercent:
		return m.SetVolumePercent(e.Text)
	case FieldTotalVolume:
		return m.SetTotalVolume(e.Text)
	default:
		return false
	}
}

// Apply returns the mixture that results from an edit without modifying m
func Apply(m Mixture, e Edit) (Mixture, bool) {
	ok := m.Update(e)
	return m, ok
}
