package api

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// StatusError is an error produced from an http response status
type StatusError interface {
	error
	HTTPStatus() int
}

// HTTPStatus returns the response status code that caused the error
func (err ErrUnexpectedStatusCode) HTTPStatus() int { return err.StatusCode }

// IsTransient reports whether the error is worth retrying:
// network failures and 429 or 5xx responses are, anything else is not
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr StatusError
	if errors.As(err, &statusErr) {
		status := statusErr.HTTPStatus()
		return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
