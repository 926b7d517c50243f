package model

// Package model defines domain data structures used across the app: video
// selections, the resolution catalog, and submission records with their
// status enum. Structures are designed for direct binding in the UI and
// explicit state transitions.
