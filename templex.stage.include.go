package templex

import (
	"context"

	"github.com/itsatony/go-templex/internal"
)

// IncludeStage splices the raw text of another source location into the
// template. {{#INCLUDE key}} names a context path whose value is the
// location. The included text is spliced verbatim: markers inside it are not
// expanded by the remaining stages.
type IncludeStage struct {
	RaiseOnError bool
}

// NewIncludeStage creates a raw-include stage with the given failure policy.
func NewIncludeStage(raiseOnError bool) *IncludeStage {
	return &IncludeStage{RaiseOnError: raiseOnError}
}

// Name implements Stage.
func (s *IncludeStage) Name() string { return StageNameInclude }

// Apply implements Stage.
func (s *IncludeStage) Apply(ctx context.Context, text string, data *Context, rt Runtime) (string, error) {
	return internal.ReplaceAll(internal.IncludePattern, text, func(raw string, groups []string) (string, error) {
		key := groups[0]
		content, err := s.load(ctx, data, key, rt)
		if err != nil {
			if s.RaiseOnError {
				return "", err
			}
			suppressed(rt, StageNameInclude, key, err)
			return raw, nil
		}
		return internal.Protect(content), nil
	})
}

func (s *IncludeStage) load(ctx context.Context, data *Context, key string, rt Runtime) (string, error) {
	val, err := data.Resolve(key)
	if err != nil {
		return "", NewRenderError(ErrMsgIncludeFailed, StageNameInclude, key, err)
	}
	location, ok := val.AsString()
	if !ok || location == "" {
		return "", NewReasonError(ErrMsgIncludeFailed, StageNameInclude, key, ReasonNotLocation)
	}
	content, err := rt.Load(ctx, location)
	if err != nil {
		return "", NewLoadFailedError(ErrMsgIncludeFailed, StageNameInclude, key, location, err)
	}
	return content, nil
}
