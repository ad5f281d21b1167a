package templex

import (
	"context"

	"github.com/itsatony/go-templex/internal"
	"go.uber.org/zap"
)

// TemplateInput selects where a template's text comes from. Exactly one of
// Text and Location must be set; an empty Text counts as unset.
type TemplateInput struct {
	Text     string
	Location string
}

// Template is template text bound to a stage list and a text source.
// It can be rendered any number of times, concurrently, with different data.
type Template struct {
	text     string
	location string
	pipeline *Pipeline
	source   TextSource
	logger   *zap.Logger
	maxDepth int
}

// Render renders the template with the given data.
// This is a convenience method that creates a Context from the data map.
func (t *Template) Render(ctx context.Context, data map[string]any) (string, error) {
	return t.RenderContext(ctx, NewContext(data))
}

// RenderContext folds the template text through the current stage list.
// The first stage error aborts the render.
func (t *Template) RenderContext(ctx context.Context, data *Context) (string, error) {
	if data == nil {
		data = NewContext(nil)
	}

	rt := &renderRuntime{
		stages:   t.pipeline.Stages(),
		source:   t.source,
		logger:   t.logger,
		maxDepth: t.maxDepth,
	}

	t.logger.Debug(LogMsgRenderStart,
		zap.String(LogFieldLocation, t.location),
		zap.Int(LogFieldLength, len(t.text)),
		zap.Int(LogFieldStages, len(rt.stages)),
	)

	out, err := rt.fold(ctx, t.text, data)
	if err != nil {
		return "", err
	}
	out = internal.Unprotect(out)

	t.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldLength, len(out)))
	return out, nil
}

// InsertStage inserts stage at index; 0 <= index <= len(Stages()).
func (t *Template) InsertStage(index int, stage Stage) error {
	if err := t.pipeline.InsertStage(index, stage); err != nil {
		return err
	}
	t.logger.Debug(LogMsgStageInserted, zap.String(LogFieldStage, stage.Name()), zap.Int(LogFieldIndex, index))
	return nil
}

// RemoveStage removes the stage at index; 0 <= index < len(Stages()).
func (t *Template) RemoveStage(index int) error {
	if err := t.pipeline.RemoveStage(index); err != nil {
		return err
	}
	t.logger.Debug(LogMsgStageRemoved, zap.Int(LogFieldIndex, index))
	return nil
}

// Stages returns a copy of the current stage list.
func (t *Template) Stages() []Stage {
	return t.pipeline.Stages()
}

// StageNames returns the names of the current stages in order.
func (t *Template) StageNames() []string {
	return t.pipeline.StageNames()
}

// Text returns the template text as loaded.
func (t *Template) Text() string {
	return t.text
}

// Location returns the source location the template was loaded from, or ""
// for templates built from literal text.
func (t *Template) Location() string {
	return t.location
}

// Source returns the text source used by INCLUDE and RENDER.
func (t *Template) Source() TextSource {
	return t.source
}
