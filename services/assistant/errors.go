package assistant

import "fmt"

// SessionError covers missing, expired, or out-of-phase sessions. The
// operation cannot proceed; the user has to start over.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(msg string) error {
	return &SessionError{
		Code:    "sessionError",
		Message: msg,
	}
}

// StoreError wraps a failed meeting save. The draft stays in the session so
// retrying the schedule call is safe.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("storeError: %s: %v", e.Message, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
