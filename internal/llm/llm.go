package llm

import (
	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
)

// Middleware wraps an LLMClient with a cross-cutting concern.
type Middleware func(next llmclient.LLMClient) llmclient.LLMClient

// Chain applies middlewares to base, first middleware outermost.
func Chain(base llmclient.LLMClient, mws ...Middleware) llmclient.LLMClient {
	out := base
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}
