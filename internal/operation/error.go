package operation

import (
	"errors"
	"fmt"
)

// ErrWatchTimeout is returned when a resource does not leave its pending state in time
var ErrWatchTimeout = errors.New("timed out waiting for the operation to complete")

// Error is the error payload attached to a failed resource
type Error struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (e *Error) isEmpty() bool {
	return e == nil || (e.ID == "" && e.Message == "")
}

// statusUnknown is shown for a failure without an error payload or a status
const statusUnknown = "Unknown"

func describeStatus(status Status) string {
	if text := Humanize(status); text != "" {
		return text
	}
	return statusUnknown
}

// FailedError is returned when a resource settles on a failure status
// A Detail with neither an id nor a message is treated as absent
type FailedError struct {
	Status Status
	Detail *Error
}

func (err FailedError) Error() string {
	if err.Detail.isEmpty() {
		return describeStatus(err.Status)
	}
	switch {
	case err.Detail.ID == "":
		return err.Detail.Message
	case err.Detail.Message == "":
		return err.Detail.ID
	}
	return fmt.Sprintf("%s\n%s", err.Detail.ID, err.Detail.Message)
}

// ErrorID returns the id of the resource error, if any
func (err FailedError) ErrorID() string {
	if err.Detail.isEmpty() {
		return ""
	}
	return err.Detail.ID
}

// DisableUsage disables usage printing for failed operations
func (err FailedError) DisableUsage() struct{} { return struct{}{} }

type timeoutError struct {
	status Status
}

func (err timeoutError) Error() string {
	return fmt.Sprintf("%s (last status: %s)", ErrWatchTimeout, describeStatus(err.status))
}

func (err timeoutError) Unwrap() error { return ErrWatchTimeout }
