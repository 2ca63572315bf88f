package model

// Package model defines the alcohol/water mixture: the two canonical values,
// the closed-form conversions to the three derived quantities, the edit events
// coming from the form, and the fixed-point display strings. It has no UI
// dependencies so the reducer can be tested directly.
