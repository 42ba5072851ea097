package operation

import (
	"context"
	"time"

	"github.com/heroku/applink-cli/internal/utils/api"

	"github.com/cenkalti/backoff/v4"
)

// set of default watch options
const (
	DefaultInterval = 5 * time.Second
	DefaultTimeout  = 15 * time.Minute
	DefaultRetries  = 3
)

// Resource is an add-on resource with an asynchronous status lifecycle
type Resource interface {
	OperationStatus() Status
	OperationError() *Error
}

// Options are the options to watch a resource with
// Zero values are replaced by their defaults
type Options struct {
	// Pending are the statuses which keep the watch polling
	Pending StatusSet

	// Success are the terminal statuses which end the watch without error,
	// any other status outside of Pending is a failure
	Success StatusSet

	Interval time.Duration
	Timeout  time.Duration

	// Retries is the number of times a transient fetch failure is retried per poll
	Retries uint64

	// Progress is called with the initial status and every fetched status
	Progress func(status Status)
}

func (opts Options) withDefaults() Options {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Retries == 0 {
		opts.Retries = DefaultRetries
	}
	if opts.Progress == nil {
		opts.Progress = func(Status) {}
	}
	return opts
}

// Watch polls a resource until its status leaves the pending set
//
// The most recently fetched resource is always returned alongside the error,
// which is nil when the final status is a success status and a FailedError otherwise.
// The watch ends early with ctx.Err() on cancellation or with ErrWatchTimeout once
// the timeout elapses. Fetch errors are returned as-is once transient retries run out.
func Watch[T Resource](ctx context.Context, initial T, fetch func(ctx context.Context) (T, error), opts Options) (T, error) {
	opts = opts.withDefaults()

	watchCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	current := initial
	opts.Progress(current.OperationStatus())

	for opts.Pending.Contains(current.OperationStatus()) {
		if err := wait(watchCtx, opts.Interval); err != nil {
			return current, watchErr(ctx, current.OperationStatus())
		}

		next, err := fetchWithRetry(watchCtx, fetch, opts)
		if err != nil {
			if watchCtx.Err() != nil {
				return current, watchErr(ctx, current.OperationStatus())
			}
			return current, err
		}

		current = next
		opts.Progress(current.OperationStatus())
	}

	if opts.Success.Contains(current.OperationStatus()) {
		return current, nil
	}
	return current, FailedError{current.OperationStatus(), current.OperationError()}
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func watchErr(ctx context.Context, status Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return timeoutError{status}
}

func fetchWithRetry[T Resource](ctx context.Context, fetch func(ctx context.Context) (T, error), opts Options) (T, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = opts.Interval
	exp.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, opts.Retries), ctx)

	var result T
	err := backoff.Retry(func() error {
		r, err := fetch(ctx)
		if err != nil {
			if api.IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = r
		return nil
	}, policy)
	return result, err
}
