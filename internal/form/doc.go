package form

// Package form holds the merge form's state and its submit operation
// independent of any widget toolkit. The desktop UI and the CLI both drive a
// Form and render its State.
