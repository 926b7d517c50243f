package model

import (
	"fmt"
	"time"
)

// Submission records one attempt to merge two videos
type Submission struct {
	ID         string
	Resolution string
	VideoA     string // display name of input A
	VideoB     string // display name of input B
	Status     SubmissionStatus
	OutputPath string    // where the merged file was saved
	LastError  string    // diagnostic cause, never shown to the user
	StartedAt  time.Time // when the request was dispatched
	FinishedAt time.Time // when it resolved
}

// GetElapsedString returns how long the submission took as mm:ss or hh:mm:ss,
// or "—" while it is still running
func (s *Submission) GetElapsedString() string {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return "—"
	}

	total := int(s.FinishedAt.Sub(s.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
