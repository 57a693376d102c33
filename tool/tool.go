package tool

import (
	"context"
	"encoding/json"

	"github.com/crewsearch/crewsearch/errors"
	"github.com/invopop/jsonschema"
)

// Tool is a callable capability an agent can be granted: a name, a
// human-readable description, a JSON schema for its arguments, and the
// invocation itself. Binding is explicit; nothing is discovered at runtime.
type Tool interface {
	Name() string
	Description() string
	InputSchema() *jsonschema.Schema
	Call(ctx context.Context, args json.RawMessage) (string, error)
}

type localTool[In any] struct {
	name        string
	description string
	fn          func(ctx context.Context, in In) (string, error)
}

// NewLocalTool wraps a typed function as a Tool, deriving the argument schema
// from the input struct's jsonschema tags.
func NewLocalTool[In any](name, description string, fn func(ctx context.Context, in In) (string, error)) Tool {
	return &localTool[In]{
		name:        name,
		description: description,
		fn:          fn,
	}
}

func (t *localTool[In]) Name() string        { return t.name }
func (t *localTool[In]) Description() string { return t.description }

func (t *localTool[In]) InputSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(new(In))
}

func (t *localTool[In]) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var in In
	if len(args) > 0 {
		if err := json.Unmarshal(args, &in); err != nil {
			return "", errors.Wrapf(errors.ErrInvalidParams, "failed to unmarshal arguments for tool %s: %v", t.name, err)
		}
	}
	return t.fn(ctx, in)
}
