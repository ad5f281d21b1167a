package templex

import (
	"context"
	"strings"

	"github.com/itsatony/go-templex/internal"
	"go.uber.org/zap"
)

// EachStage expands {{#EACH path AS alias}} body {{/EACH}} blocks. The body is
// rendered through the whole pipeline once per element, with alias bound to
// the element in a derived context, and the outputs are concatenated.
type EachStage struct {
	RaiseOnError bool
}

// NewEachStage creates an iteration stage with the given failure policy.
func NewEachStage(raiseOnError bool) *EachStage {
	return &EachStage{RaiseOnError: raiseOnError}
}

// Name implements Stage.
func (s *EachStage) Name() string { return StageNameEach }

// Apply implements Stage.
func (s *EachStage) Apply(ctx context.Context, text string, data *Context, rt Runtime) (string, error) {
	var sb strings.Builder
	pos := 0

	for {
		block, ok := internal.FindEachBlock(text, pos)
		if !ok {
			break
		}
		sb.WriteString(text[pos:block.Start])
		pos = block.End

		items, err := s.items(data, block.Path)
		if err != nil {
			if s.RaiseOnError {
				return "", err
			}
			suppressed(rt, StageNameEach, block.Path, err)
			// Kept blocks must not be rewritten by later stages.
			sb.WriteString(internal.Protect(block.Raw))
			continue
		}

		for _, item := range items {
			out, err := rt.Render(ctx, block.Body, data.Bind(block.Alias, item))
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
		}

		runtimeLogger(rt).Debug(LogMsgEachExpanded,
			zap.String(LogFieldPath, block.Path),
			zap.String(LogFieldAlias, block.Alias),
			zap.Int(LogFieldItems, len(items)),
		)
	}

	if pos == 0 {
		return text, nil
	}
	sb.WriteString(text[pos:])
	return sb.String(), nil
}

func (s *EachStage) items(data *Context, path string) ([]Value, error) {
	val, err := data.Resolve(path)
	if err != nil {
		return nil, NewRenderError(ErrMsgMissingPath, StageNameEach, path, err)
	}
	items, ok := val.Items()
	if !ok {
		return nil, NewReasonError(ErrMsgNotIterable, StageNameEach, path, ReasonNotIterable)
	}
	return items, nil
}
