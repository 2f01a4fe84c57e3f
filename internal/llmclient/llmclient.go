package llmclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// LLMClient is the abstract generative text service: structured prompt in,
// structured JSON out. Implementations stay transport-thin; retries, timeouts
// and logging are middleware concerns.
type LLMClient interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error)
	Close() error
}

// ErrEmptyResponse means the provider returned no usable candidate text.
var ErrEmptyResponse = errors.New("llmclient: empty response from provider")

// PermanentError marks a failure that will not resolve with retries
// (auth errors, malformed requests). Retry middleware stops on it.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error { return &PermanentError{Err: err} }

// SchemaError means the provider answered but the payload failed validation
// against the expected output schema. Recoverable: callers retry with a
// stricter instruction.
type SchemaError struct {
	Kind   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("llmclient: %s response failed schema validation: %s", e.Kind, e.Reason)
}

// NewSchemaError builds a SchemaError for the given request kind.
func NewSchemaError(kind, reason string) error {
	return &SchemaError{Kind: kind, Reason: reason}
}
