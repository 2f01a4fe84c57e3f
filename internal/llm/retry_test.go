package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
)

// scriptedClient fails a fixed number of times before succeeding.
type scriptedClient struct {
	failures int
	err      error
	calls    int
}

func (s *scriptedClient) Name() string { return "scripted" }
func (s *scriptedClient) Close() error { return nil }

func (s *scriptedClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, s.err
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	base := &scriptedClient{failures: 2, err: errors.New("transient")}
	client := Chain(base, Retry(3, time.Millisecond))

	raw, err := client.GenerateJSON(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Fatalf("unexpected payload: %s", raw)
	}
	if base.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", base.calls)
	}
}

func TestRetryExhaustsAndReturnsLastError(t *testing.T) {
	base := &scriptedClient{failures: 10, err: errors.New("always down")}
	client := Chain(base, Retry(3, time.Millisecond))

	_, err := client.GenerateJSON(context.Background(), "p", nil)
	if err == nil || err.Error() != "always down" {
		t.Fatalf("expected last error, got %v", err)
	}
	if base.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", base.calls)
	}
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	base := &scriptedClient{
		failures: 10,
		err:      &llmclient.PermanentError{Err: errors.New("bad request")},
	}
	client := Chain(base, Retry(5, time.Millisecond))

	_, err := client.GenerateJSON(context.Background(), "p", nil)
	var pErr *llmclient.PermanentError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("permanent error must not be retried, got %d calls", base.calls)
	}
}

func TestRetryReturnsWithoutBackoffAfterFinalAttempt(t *testing.T) {
	base := &scriptedClient{failures: 10, err: errors.New("always down")}
	client := Chain(base, Retry(1, time.Hour))

	start := time.Now()
	_, err := client.GenerateJSON(context.Background(), "p", nil)
	if err == nil {
		t.Fatalf("expected failure")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("no backoff should follow the final attempt, took %v", elapsed)
	}
}

func TestRetryBackoffInterruptedByCancellation(t *testing.T) {
	base := &scriptedClient{failures: 10, err: errors.New("transient")}
	client := Chain(base, Retry(3, time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(50*time.Millisecond, cancel)
	defer timer.Stop()

	start := time.Now()
	_, err := client.GenerateJSON(ctx, "p", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("cancellation should cut the backoff short, took %v", elapsed)
	}
	if base.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", base.calls)
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	base := &scriptedClient{failures: 10, err: errors.New("transient")}
	client := Chain(base, Retry(5, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateJSON(ctx, "p", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", base.calls)
	}
}
