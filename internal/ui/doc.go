package ui

// Package ui contains the Fyne-based desktop user interface for the merge
// form. It renders form.State, forwards picker and button events to the form,
// and offers settings and a language menu. All UI strings are localized via
// Localization.
