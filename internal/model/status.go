package model

// SubmissionStatus represents the lifecycle state of a merge submission
type SubmissionStatus string

const (
	// SubmissionIdle means nothing has been sent yet
	SubmissionIdle SubmissionStatus = "Idle"

	// SubmissionInFlight means the request was dispatched and has not resolved
	SubmissionInFlight SubmissionStatus = "InFlight"

	// SubmissionSucceeded means the merged file was received and saved
	SubmissionSucceeded SubmissionStatus = "Succeeded"

	// SubmissionFailed means the request or the save failed
	SubmissionFailed SubmissionStatus = "Failed"
)

// String returns the string representation of SubmissionStatus
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsActive returns true while a request is outstanding
func (s SubmissionStatus) IsActive() bool {
	return s == SubmissionInFlight
}

// IsFinished returns true once the submission resolved either way
func (s SubmissionStatus) IsFinished() bool {
	return s == SubmissionSucceeded || s == SubmissionFailed
}
