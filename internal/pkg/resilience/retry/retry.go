// Package retry provides a configurable retry mechanism for operations that
// may fail temporarily. It wraps the retry-go package from Avast and exposes a
// small interface with functional options.
//
// The default strategy is exponential backoff with random jitter, which is
// suitable for provider-facing I/O where synchronized retries would only make
// a rate-limit situation worse.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs the given function with the configured retry logic.
	//
	// The context allows for cancellation and timeout control. If the context
	// is canceled or times out, the operation stops retrying and returns the
	// context error.
	//
	// The operation must be safe to call multiple times. Execute returns nil
	// if the operation succeeds within the configured number of attempts, or
	// an error if all attempts fail or the context is done.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint            // maximum number of attempts, including the first
	delay       time.Duration   // base delay between attempts
	maxDelay    time.Duration   // cap on the backoff growth
	maxJitter   time.Duration   // upper bound of the random jitter added to each delay
	retryIf     func(error) bool // predicate deciding whether an error is retryable
	lastErrOnly bool            // whether to return only the last error
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry.
var _ Retry = (*retrier)(nil)

// New creates a Retry implementation configured with the provided options.
//
// Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - maxJitter:   250 milliseconds
//   - retryIf:     retry every error
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		maxJitter:   250 * time.Millisecond,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface. The operation is attempted
// immediately, then retried with exponential backoff plus jitter until it
// succeeds, the attempt budget is exhausted, or the configured predicate
// marks the error as non-retryable.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	// RandomDelay panics on a zero jitter bound, so it only joins the delay
	// chain when jitter is enabled.
	delayType := retry.BackOffDelay
	if r.cfg.maxJitter > 0 {
		delayType = retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.MaxJitter(r.cfg.maxJitter),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the initial one.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts. With exponential
// backoff, subsequent delays grow from this value. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithMaxJitter sets the upper bound of the random component added to each
// delay. Default: 250 milliseconds.
func WithMaxJitter(d time.Duration) Option {
	return func(c *config) {
		c.maxJitter = d
	}
}

// WithRetryIf installs a predicate consulted after each failure. Returning
// false stops retrying immediately and surfaces the error. Default: every
// error is retryable.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithLastErrorOnly sets whether to return only the error from the final
// attempt instead of all accumulated errors. Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}
