package invoker

import (
	"context"
	"fmt"
	"log"
	"time"

	"ai-chartgen-be/pkg/llm"
)

// RetryFunc observes a failed attempt before the backoff sleep. attempt is
// 1-based: the first retry reports 1.
type RetryFunc func(attempt int, err error)

// ExhaustedError is returned once every attempt has failed. It wraps the last
// underlying error so callers can still classify it.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("invoker: exhausted %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Invoker wraps a single external LLM call with bounded retry, capped
// exponential backoff, and response-shape repair.
type Invoker struct {
	provider llm.LLMProvider
	base     time.Duration
	cap      time.Duration
	logger   *log.Logger
}

func New(provider llm.LLMProvider, base, cap time.Duration, logger *log.Logger) *Invoker {
	if base <= 0 {
		base = 500 * time.Millisecond
	}
	if cap <= 0 {
		cap = 8 * time.Second
	}
	return &Invoker{
		provider: provider,
		base:     base,
		cap:      cap,
		logger:   logger,
	}
}

// Invoke executes the prompt up to maxAttempts times and decodes the
// response into T. On success the returned value is fully parsed structured
// data, never a string requiring further parsing.
//
// Transient failures (network, non-2xx status, empty result, unparsable
// payload after repair) are retried; a content-safety block fails the call
// immediately and is reported distinctly via llm.ErrSafetyBlocked.
func Invoke[T any](ctx context.Context, inv *Invoker, prompt string, maxAttempts int, onRetry RetryFunc, opts ...llm.Option) (T, error) {
	var zero T
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if onRetry != nil {
				onRetry(attempt, lastErr)
			}
			if err := sleep(ctx, inv.delay(attempt)); err != nil {
				return zero, err
			}
		}

		raw, err := inv.provider.Generate(ctx, prompt, opts...)
		if err != nil {
			if !llm.Retryable(err) {
				return zero, err
			}
			inv.logger.Printf("[INVOKER] Attempt %d/%d failed: %v", attempt+1, maxAttempts, err)
			lastErr = err
			continue
		}

		var out T
		if err := decodeStructured(raw, &out); err != nil {
			inv.logger.Printf("[INVOKER] Attempt %d/%d returned unparsable payload: %v", attempt+1, maxAttempts, err)
			lastErr = err
			continue
		}

		return out, nil
	}

	return zero, &ExhaustedError{Attempts: maxAttempts, Last: lastErr}
}

// delay is attempt-indexed: base << (attempt-1), capped.
func (inv *Invoker) delay(attempt int) time.Duration {
	d := inv.base << (attempt - 1)
	if d > inv.cap || d <= 0 {
		return inv.cap
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
