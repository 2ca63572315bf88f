package ui

// Package ui contains the Fyne-based desktop form for the calculator. Each of
// the five entries feeds edits into the mixture model and the form re-renders
// the other fields from the resulting state. All UI strings are localized via
// Localization.
