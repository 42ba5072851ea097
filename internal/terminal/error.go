package terminal

import (
	"errors"
)

const (
	logFieldErr   = "err"
	logFieldErrID = "id"
)

var (
	errorMessageFields       = []string{logFieldErr}
	errorMessageFieldsWithID = []string{logFieldErrID, logFieldErr}
)

// ErrorIdentifier is an error that carries the id of the api error behind it
type ErrorIdentifier interface {
	ErrorID() string
}

type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	return e.Error(), nil
}

// Payload includes the api error id when one is found in the error chain
func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	payload := map[string]interface{}{logFieldErr: e.Error()}

	var identifier ErrorIdentifier
	if errors.As(e.error, &identifier) && identifier.ErrorID() != "" {
		payload[logFieldErrID] = identifier.ErrorID()
		return errorMessageFieldsWithID, payload, nil
	}
	return errorMessageFields, payload, nil
}
