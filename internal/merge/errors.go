package merge

import (
	"errors"
	"fmt"
)

// ErrTransport matches every TransportError via errors.Is
var ErrTransport = errors.New("merge request failed")

// ValidationError is an input problem caught before any network activity.
// Message is safe to show to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError covers network failures, non-2xx responses and failures
// while streaming the payload. Its detail is for logs only.
type TransportError struct {
	StatusCode int    // 0 when no response was received
	Body       string // excerpt of a non-2xx response body
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("server error %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return ErrTransport.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
