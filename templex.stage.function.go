package templex

import (
	"context"

	"github.com/itsatony/go-templex/internal"
)

// FunctionStage replaces {{ path() }} markers with the text returned by the
// zero-argument invocable found at path.
type FunctionStage struct {
	RaiseOnError bool
}

// NewFunctionStage creates a function-call stage with the given failure policy.
func NewFunctionStage(raiseOnError bool) *FunctionStage {
	return &FunctionStage{RaiseOnError: raiseOnError}
}

// Name implements Stage.
func (s *FunctionStage) Name() string { return StageNameFunction }

// Apply implements Stage.
func (s *FunctionStage) Apply(_ context.Context, text string, data *Context, rt Runtime) (string, error) {
	return internal.ReplaceAll(internal.FunctionPattern, text, func(raw string, groups []string) (string, error) {
		path := groups[0]
		out, err := s.call(data, path)
		if err != nil {
			if s.RaiseOnError {
				return "", err
			}
			suppressed(rt, StageNameFunction, path, err)
			return raw, nil
		}
		return out, nil
	})
}

func (s *FunctionStage) call(data *Context, path string) (string, error) {
	fn, err := data.Resolve(path)
	if err != nil {
		return "", NewRenderError(ErrMsgFunctionMissing, StageNameFunction, path, err)
	}
	if fn.Kind() != ValueInvocable {
		return "", NewReasonError(ErrMsgNotInvocable, StageNameFunction, path, ReasonNotInvocable)
	}
	result, err := fn.Call()
	if err != nil {
		return "", NewCallFailedError(StageNameFunction, path, err)
	}
	return result.String(), nil
}
