package templex

import (
	"context"

	"go.uber.org/zap"
)

// Stage is one text-rewrite pass of the directive pipeline. Apply receives
// the whole current text and returns the rewritten text. A stage must not
// mutate data; stages that need to render sub-strings do so through rt.
type Stage interface {
	Name() string
	Apply(ctx context.Context, text string, data *Context, rt Runtime) (string, error)
}

// Runtime is the view of the running pipeline handed to each stage.
type Runtime interface {
	// Render runs the full stage list over text with data, one level deeper.
	Render(ctx context.Context, text string, data *Context) (string, error)
	// Load reads text from the template's source.
	Load(ctx context.Context, location string) (string, error)
	// Logger returns the render logger. Never nil.
	Logger() *zap.Logger
	// Depth returns the current sub-render depth; the top-level render is 0.
	Depth() int
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(ctx context.Context, text string, data *Context, rt Runtime) (string, error)
}

// Name implements Stage.
func (s StageFunc) Name() string { return s.StageName }

// Apply implements Stage.
func (s StageFunc) Apply(ctx context.Context, text string, data *Context, rt Runtime) (string, error) {
	if s.Fn == nil {
		return text, nil
	}
	return s.Fn(ctx, text, data, rt)
}

// suppressed records a failure that the stage policy turned into a placeholder.
func suppressed(rt Runtime, stage, path string, err error) {
	if rt == nil {
		return
	}
	rt.Logger().Debug(LogMsgFailureSuppressed,
		zap.String(LogFieldStage, stage),
		zap.String(LogFieldPath, path),
		zap.Int(LogFieldDepth, rt.Depth()),
		zap.Error(err),
	)
}

func runtimeLogger(rt Runtime) *zap.Logger {
	if rt == nil {
		return zap.NewNop()
	}
	return rt.Logger()
}
