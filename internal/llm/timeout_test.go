package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowClient blocks until its context is done.
type slowClient struct{}

func (slowClient) Name() string { return "slow" }
func (slowClient) Close() error { return nil }

func (slowClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestTimeoutConvertsDeadlineToTypedError(t *testing.T) {
	client := Chain(slowClient{}, Timeout(5*time.Millisecond))

	ctx := WithStage(context.Background(), StageComponent)
	_, err := client.GenerateJSON(ctx, "p", nil)

	var tErr *TimeoutError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if tErr.Stage != StageComponent {
		t.Fatalf("unexpected stage: %s", tErr.Stage)
	}
}

func TestTimeoutPreservesCallerCancellation(t *testing.T) {
	client := Chain(slowClient{}, Timeout(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := client.GenerateJSON(ctx, "p", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("caller cancellation must surface as Canceled, got %v", err)
	}
	var tErr *TimeoutError
	if errors.As(err, &tErr) {
		t.Fatalf("caller cancellation must not look like a timeout")
	}
}

func TestStageRoundTrip(t *testing.T) {
	ctx := WithStage(context.Background(), StageNav)
	if got := StageFrom(ctx); got != StageNav {
		t.Fatalf("stage lost: %s", got)
	}
	if got := StageFrom(context.Background()); got != "" {
		t.Fatalf("untagged context should yield empty stage, got %s", got)
	}
}
