package templex

import (
	"context"

	"github.com/itsatony/go-templex/internal"
)

// RenderStage replaces {{#RENDER location}} with the fully rendered text of
// the template stored at location, using the current context.
type RenderStage struct {
	RaiseOnError bool
}

// NewRenderStage creates a sub-template stage with the given failure policy.
func NewRenderStage(raiseOnError bool) *RenderStage {
	return &RenderStage{RaiseOnError: raiseOnError}
}

// Name implements Stage.
func (s *RenderStage) Name() string { return StageNameRender }

// Apply implements Stage. Load failures follow the stage policy; failures of
// the nested render itself always propagate.
func (s *RenderStage) Apply(ctx context.Context, text string, data *Context, rt Runtime) (string, error) {
	return internal.ReplaceAll(internal.RenderPattern, text, func(raw string, groups []string) (string, error) {
		location := groups[0]
		content, err := s.load(ctx, location, rt)
		if err != nil {
			if s.RaiseOnError {
				return "", err
			}
			suppressed(rt, StageNameRender, location, err)
			return raw, nil
		}
		return rt.Render(ctx, content, data)
	})
}

func (s *RenderStage) load(ctx context.Context, location string, rt Runtime) (string, error) {
	if location == "" {
		return "", NewReasonError(ErrMsgRenderFailed, StageNameRender, location, ReasonNotLocation)
	}
	content, err := rt.Load(ctx, location)
	if err != nil {
		return "", NewLoadFailedError(ErrMsgRenderFailed, StageNameRender, location, location, err)
	}
	return content, nil
}
