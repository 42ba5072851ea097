package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrIDNotFound is the error id returned for records that do not exist
const ErrIDNotFound = "record_not_found"

// ServerError is an error returned by the Heroku or add-on apis
type ServerError struct {
	StatusCode int    `json:"-"`
	ID         string `json:"id"`
	Message    string `json:"message"`
}

func (se ServerError) Error() string {
	if se.Message == "" {
		return se.ID
	}
	return se.Message
}

// HTTPStatus returns the response status code
func (se ServerError) HTTPStatus() int { return se.StatusCode }

// ErrorID returns the api error id
func (se ServerError) ErrorID() string { return se.ID }

// ParseResponseError reads and unmarshals a server error
// from the provided *http.Response and closes its body
func ParseResponseError(res *http.Response) error {
	defer res.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return err
	}

	serverError := ServerError{StatusCode: res.StatusCode}

	payload := strings.TrimSpace(buf.String())
	if payload == "" {
		serverError.Message = res.Status
		return serverError
	}

	if err := json.Unmarshal(buf.Bytes(), &serverError); err != nil || (serverError.ID == "" && serverError.Message == "") {
		serverError.Message = payload
	}
	return serverError
}

// IsNotFound reports whether the error is a record not found server error
func IsNotFound(err error) bool {
	var serverError ServerError
	if !errors.As(err, &serverError) {
		return false
	}
	return serverError.ID == ErrIDNotFound || serverError.StatusCode == http.StatusNotFound
}
