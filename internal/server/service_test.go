package server

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

func TestToGenerateErrorMapsTypedFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"invalid request", &site.InvalidRequestError{Field: "prompt", Reason: "empty"}, connect.CodeInvalidArgument},
		{"planning exhausted", &site.PlanningError{Attempts: 3, Err: errors.New("down")}, connect.CodeUnavailable},
		{"cancelled", context.Canceled, connect.CodeCanceled},
		{"deadline", context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{"anything else", errors.New("boom"), connect.CodeInternal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toGenerateError(c.err)
			if got.Code() != c.want {
				t.Fatalf("code = %s, want %s", got.Code(), c.want)
			}
		})
	}
}

func TestJSONCodecRoundTrip(t *testing.T) {
	codec := jsonCodec{}
	if codec.Name() != "json" {
		t.Fatalf("unexpected codec name %q", codec.Name())
	}

	in := GenerateRequest{
		SiteID:  "site-1",
		Request: site.GenerationRequest{Prompt: "a bakery", MaxPages: 3},
	}
	raw, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out GenerateRequest
	if err := codec.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.SiteID != "site-1" || out.Request.Prompt != "a bakery" || out.Request.MaxPages != 3 {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	// Empty bodies are tolerated; connect sends them for empty messages.
	if err := codec.Unmarshal(nil, &out); err != nil {
		t.Fatalf("empty payload: %v", err)
	}
}
