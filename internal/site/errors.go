package site

import (
	"errors"
	"fmt"
)

// ErrNoFallbackComponent is returned when the catalog has no generic fallback
// registered and a section has no renderable candidate.
var ErrNoFallbackComponent = errors.New("site: catalog has no fallback component registered")

// InvalidRequestError rejects a GenerationRequest before any generative call.
// The caller can fix the request and resubmit.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// PlanningError means the generative service failed to produce a schema-valid
// architecture after all retries. Fatal: there is no bundle without an
// architecture.
type PlanningError struct {
	Attempts int
	Err      error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("architecture planning failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *PlanningError) Unwrap() error { return e.Err }

// PageError marks a single page whose assembly became unusable. Recoverable at
// the bundle level; sibling pages proceed.
type PageError struct {
	Page string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %q assembly failed: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }
