package operation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/heroku/applink-cli/internal/utils/api"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
)

type testResource struct {
	status Status
	err    *Error
}

func (r testResource) OperationStatus() Status { return r.status }
func (r testResource) OperationError() *Error  { return r.err }

var testOptions = Options{
	Pending:  NewStatusSet("pending", "authenticating", "authenticated", "connecting"),
	Success:  NewStatusSet("connected"),
	Interval: time.Millisecond,
}

type fetcher struct {
	results []testResource
	errs    []error
	calls   int
}

func (f *fetcher) fetch(ctx context.Context) (testResource, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return testResource{}, f.errs[i]
	}
	if i >= len(f.results) {
		return f.results[len(f.results)-1], nil
	}
	return f.results[i], nil
}

func TestWatch(t *testing.T) {
	t.Run("should not poll when the initial status is already terminal", func(t *testing.T) {
		f := fetcher{results: []testResource{{status: "connecting"}}}

		resource, err := Watch(context.Background(), testResource{status: "connected"}, f.fetch, testOptions)
		assert.Nil(t, err)
		assert.Equal(t, Status("connected"), resource.status)
		assert.Equal(t, 0, f.calls)
	})

	t.Run("should keep polling while the status is pending and stop once it is not", func(t *testing.T) {
		f := fetcher{results: []testResource{
			{status: "authenticating"},
			{status: "authenticated"},
			{status: "connecting"},
			{status: "connected"},
			{status: "disconnected"},
		}}

		var statuses []Status
		opts := testOptions
		opts.Progress = func(status Status) { statuses = append(statuses, status) }

		resource, err := Watch(context.Background(), testResource{status: "pending"}, f.fetch, opts)
		assert.Nil(t, err)
		assert.Equal(t, Status("connected"), resource.status)
		assert.Equal(t, 4, f.calls)
		assert.Equal(t, []Status{"pending", "authenticating", "authenticated", "connecting", "connected"}, statuses)
	})

	t.Run("should fall back to the humanized status for an empty error payload", func(t *testing.T) {
		var detail *Error
		assert.Nil(t, json.Unmarshal([]byte(`{}`), &detail))

		_, err := Watch(context.Background(), testResource{status: "connection_failed", err: detail}, (&fetcher{}).fetch, testOptions)
		assert.Equal(t, "Connection Failed", err.Error())
	})

	t.Run("should return the fetched resource with a failed error including the error payload", func(t *testing.T) {
		f := fetcher{results: []testResource{{
			status: "authentication_failed",
			err:    &Error{"org_connection_failed", "There was a problem connecting your org. Try again later."},
		}}}

		resource, err := Watch(context.Background(), testResource{status: "authenticating"}, f.fetch, testOptions)
		assert.Equal(t, "org_connection_failed\nThere was a problem connecting your org. Try again later.", err.Error())
		assert.Equal(t, Status("authentication_failed"), resource.status)

		var failedErr FailedError
		assert.True(t, errors.As(err, &failedErr), "expected a failed error but got %T", err)
	})

	t.Run("should return a failed error with the humanized status without an error payload", func(t *testing.T) {
		f := fetcher{results: []testResource{{status: "connection_failed"}}}

		_, err := Watch(context.Background(), testResource{status: "connecting"}, f.fetch, testOptions)
		assert.Equal(t, FailedError{Status: "connection_failed"}, err)
		assert.Equal(t, "Connection Failed", err.Error())
	})

	t.Run("should fail on an unknown initial status without polling", func(t *testing.T) {
		f := fetcher{}

		_, err := Watch(context.Background(), testResource{status: "disconnected"}, f.fetch, testOptions)
		assert.Equal(t, FailedError{Status: "disconnected"}, err)
		assert.Equal(t, 0, f.calls)
	})

	t.Run("should return a non transient fetch error without retrying", func(t *testing.T) {
		fetchErr := api.ErrUnexpectedStatusCode{Action: "get connection", StatusCode: http.StatusNotFound}
		f := fetcher{errs: []error{fetchErr}}

		resource, err := Watch(context.Background(), testResource{status: "connecting"}, f.fetch, testOptions)
		assert.Equal(t, fetchErr, err)
		assert.Equal(t, Status("connecting"), resource.status)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("should retry transient fetch errors", func(t *testing.T) {
		transientErr := api.ErrUnexpectedStatusCode{Action: "get connection", StatusCode: http.StatusServiceUnavailable}
		f := fetcher{
			errs:    []error{transientErr, transientErr},
			results: []testResource{{}, {}, {status: "connected"}},
		}

		resource, err := Watch(context.Background(), testResource{status: "connecting"}, f.fetch, testOptions)
		assert.Nil(t, err)
		assert.Equal(t, Status("connected"), resource.status)
		assert.Equal(t, 3, f.calls)
	})

	t.Run("should return the transient fetch error once retries are exhausted", func(t *testing.T) {
		transientErr := api.ErrUnexpectedStatusCode{Action: "get connection", StatusCode: http.StatusBadGateway}
		f := fetcher{errs: []error{transientErr, transientErr, transientErr}}

		opts := testOptions
		opts.Retries = 2

		_, err := Watch(context.Background(), testResource{status: "connecting"}, f.fetch, opts)
		assert.Equal(t, transientErr, err)
		assert.Equal(t, 3, f.calls)
	})

	t.Run("should time out when the status never leaves the pending set", func(t *testing.T) {
		f := fetcher{results: []testResource{{status: "connecting"}}}

		opts := testOptions
		opts.Timeout = 20 * time.Millisecond

		resource, err := Watch(context.Background(), testResource{status: "pending"}, f.fetch, opts)
		assert.True(t, errors.Is(err, ErrWatchTimeout), "expected a timeout error but got %v", err)
		assert.Equal(t, Status("connecting"), resource.status)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var calls int
		fetch := func(ctx context.Context) (testResource, error) {
			calls++
			cancel()
			return testResource{status: "connecting"}, nil
		}

		_, err := Watch(ctx, testResource{status: "connecting"}, fetch, testOptions)
		assert.Equal(t, context.Canceled, err)
		assert.Equal(t, 1, calls)
	})
}
