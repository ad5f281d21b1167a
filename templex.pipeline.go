package templex

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Pipeline is an ordered, mutable list of stages. It is safe for concurrent
// use: renders work on a snapshot taken by Stages.
type Pipeline struct {
	mu     sync.RWMutex
	stages []Stage
}

// NewPipeline creates a pipeline holding stages in order.
func NewPipeline(stages ...Stage) *Pipeline {
	list := make([]Stage, len(stages))
	copy(list, stages)
	return &Pipeline{stages: list}
}

// Stages returns a copy of the current stage list.
func (p *Pipeline) Stages() []Stage {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]Stage, len(p.stages))
	copy(list, p.stages)
	return list
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.stages)
}

// InsertStage inserts stage before position index. Valid indices are
// 0 through Len inclusive; Len appends.
func (p *Pipeline) InsertStage(index int, stage Stage) error {
	if stage == nil {
		return NewValidationError(ErrMsgNilStage)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index > len(p.stages) {
		return NewIndexOutOfRangeError(index, len(p.stages))
	}

	p.stages = append(p.stages, nil)
	copy(p.stages[index+1:], p.stages[index:])
	p.stages[index] = stage
	return nil
}

// RemoveStage removes the stage at index. Valid indices are 0 through Len-1.
func (p *Pipeline) RemoveStage(index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.stages) {
		return NewIndexOutOfRangeError(index, len(p.stages))
	}

	last := len(p.stages) - 1
	copy(p.stages[index:], p.stages[index+1:])
	p.stages[last] = nil
	p.stages = p.stages[:last]
	return nil
}

// StageNames returns the names of the current stages in order.
func (p *Pipeline) StageNames() []string {
	stages := p.Stages()
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name()
	}
	return names
}

// renderRuntime carries one render through the stage list. Sub-renders copy
// it with the depth incremented, so nothing is shared between levels.
type renderRuntime struct {
	stages   []Stage
	source   TextSource
	logger   *zap.Logger
	depth    int
	maxDepth int
}

// fold applies every stage in order, each consuming the previous output.
func (r *renderRuntime) fold(ctx context.Context, text string, data *Context) (string, error) {
	for _, stage := range r.stages {
		out, err := stage.Apply(ctx, text, data, r)
		if err != nil {
			return "", err
		}
		r.logger.Debug(LogMsgStageApplied,
			zap.String(LogFieldStage, stage.Name()),
			zap.Int(LogFieldDepth, r.depth),
			zap.Int(LogFieldLength, len(out)),
		)
		text = out
	}
	return text, nil
}

// Render implements Runtime.
func (r *renderRuntime) Render(ctx context.Context, text string, data *Context) (string, error) {
	next := r.depth + 1
	if r.maxDepth > 0 && next > r.maxDepth {
		return "", NewMaxDepthError(next, r.maxDepth)
	}

	r.logger.Debug(LogMsgSubRender, zap.Int(LogFieldDepth, next), zap.Int(LogFieldLength, len(text)))

	child := *r
	child.depth = next
	return child.fold(ctx, text, data)
}

// Load implements Runtime.
func (r *renderRuntime) Load(ctx context.Context, location string) (string, error) {
	if r.source == nil {
		return "", NewSourceError(ErrMsgNoSource, location, nil)
	}
	content, err := r.source.Load(ctx, location)
	if err != nil {
		return "", err
	}
	r.logger.Debug(LogMsgSourceLoaded,
		zap.String(LogFieldLocation, location),
		zap.Int(LogFieldLength, len(content)),
	)
	return content, nil
}

// Logger implements Runtime.
func (r *renderRuntime) Logger() *zap.Logger { return r.logger }

// Depth implements Runtime.
func (r *renderRuntime) Depth() int { return r.depth }
