package llm

import "context"

// Stage names the kind of generation being requested. It selects the expected
// output schema and is carried on the context so middleware and the offline
// fake can see it.
type Stage string

const (
	StageArchitecture Stage = "architecture"
	StageComponent    Stage = "component"
	StageNav          Stage = "nav"
	StageFooter       Stage = "footer"
)

type stageKey struct{}

// WithStage tags ctx with the generation stage.
func WithStage(ctx context.Context, s Stage) context.Context {
	return context.WithValue(ctx, stageKey{}, s)
}

// StageFrom returns the stage tagged on ctx, or "" when untagged.
func StageFrom(ctx context.Context) Stage {
	if s, ok := ctx.Value(stageKey{}).(Stage); ok {
		return s
	}
	return ""
}
