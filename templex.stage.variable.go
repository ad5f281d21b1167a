package templex

import (
	"context"

	"github.com/itsatony/go-templex/internal"
)

// VariableStage replaces {{ path }} markers with the text of the resolved value.
// It runs last so that every structural directive is already gone.
type VariableStage struct {
	RaiseOnError bool
}

// NewVariableStage creates a variable stage with the given failure policy.
func NewVariableStage(raiseOnError bool) *VariableStage {
	return &VariableStage{RaiseOnError: raiseOnError}
}

// Name implements Stage.
func (s *VariableStage) Name() string { return StageNameVariable }

// Apply implements Stage.
func (s *VariableStage) Apply(_ context.Context, text string, data *Context, rt Runtime) (string, error) {
	return internal.ReplaceAll(internal.VariablePattern, text, func(raw string, groups []string) (string, error) {
		path := groups[0]
		val, err := data.Resolve(path)
		if err != nil {
			if s.RaiseOnError {
				return "", NewRenderError(ErrMsgVariableMissing, StageNameVariable, path, err)
			}
			suppressed(rt, StageNameVariable, path, err)
			return raw, nil
		}
		return val.String(), nil
	})
}
