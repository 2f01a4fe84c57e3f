package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
)

// TimeoutError marks a single generative call that exceeded its deadline.
// Recoverable: the retry policy handles it.
type TimeoutError struct {
	Stage Stage
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("llm: %s generation exceeded %s", e.Stage, e.Limit)
}

// Timeout bounds every GenerateJSON call with its own deadline. A call that
// overruns fails with TimeoutError instead of hanging the pipeline.
func Timeout(limit time.Duration) Middleware {
	if limit <= 0 {
		limit = 45 * time.Second
	}
	return func(next llmclient.LLMClient) llmclient.LLMClient {
		return &timed{next: next, limit: limit}
	}
}

type timed struct {
	next  llmclient.LLMClient
	limit time.Duration
}

func (t *timed) Name() string { return t.next.Name() }
func (t *timed) Close() error { return t.next.Close() }

func (t *timed) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()
	raw, err := t.next.GenerateJSON(callCtx, prompt, input)
	if err != nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, &TimeoutError{Stage: StageFrom(ctx), Limit: t.limit}
	}
	return raw, err
}
