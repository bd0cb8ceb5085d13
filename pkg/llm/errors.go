package llm

import (
	"errors"
	"fmt"
)

// ErrSafetyBlocked marks a completion rejected by the provider's content
// filter. Callers must not retry it.
var ErrSafetyBlocked = errors.New("llm: completion blocked by content safety filter")

// ErrEmptyResult marks a well-formed response carrying no usable content.
var ErrEmptyResult = errors.New("llm: provider returned no content")

// StatusError is a non-2xx HTTP response from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm: status %d: %s", e.Code, truncateBody(e.Body))
}

// Retryable classifies a provider error. Safety blocks are terminal; network
// failures, bad statuses and empty results are transient.
func Retryable(err error) bool {
	return !errors.Is(err, ErrSafetyBlocked)
}

func truncateBody(body string) string {
	const maxLen = 200
	if len(body) <= maxLen {
		return body
	}
	return body[:maxLen] + "..."
}
