package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// set of supported api header keys
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "Request-Id"
	HeaderUserAgent     = "User-Agent"
)

// set of supported api media types
const (
	MediaTypeApplicationJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body   io.Reader
	Header http.Header
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:   bytes.NewReader(body),
		Header: http.Header{HeaderContentType: []string{MediaTypeApplicationJSON}},
	}, nil
}

// PathEscape escapes a single path segment
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}

// ErrUnexpectedStatusCode is an error for a non-error response status the caller does not expect,
// such as a bodiless 204 where a record is expected
type ErrUnexpectedStatusCode struct {
	Action     string
	StatusCode int
}

func (err ErrUnexpectedStatusCode) Error() string {
	return fmt.Sprintf("failed to %s: unexpected status code %d", err.Action, err.StatusCode)
}

// CheckStatus returns nil when the response status is one of expected
// A 4xx or 5xx response is parsed into a ServerError and any other status is an ErrUnexpectedStatusCode
// The response body is closed unless the status is expected
func CheckStatus(res *http.Response, expected ...int) error {
	for _, status := range expected {
		if res.StatusCode == status {
			return nil
		}
	}

	if res.StatusCode >= http.StatusBadRequest {
		return ParseResponseError(res)
	}
	res.Body.Close()

	action := "complete the request"
	if res.Request != nil {
		action = res.Request.Method + " " + res.Request.URL.Path
	}
	return ErrUnexpectedStatusCode{action, res.StatusCode}
}

// DecodeJSON decodes the response body into the provided value and closes the body
func DecodeJSON(res *http.Response, v interface{}) error {
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// DecodeOptionalJSON is DecodeJSON for responses that may carry no body, which leaves v untouched
func DecodeOptionalJSON(res *http.Response, v interface{}) error {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
