package templex

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// builtinStageNames lists the built-in stages in pipeline order.
var builtinStageNames = []string{
	StageNameInclude,
	StageNameRender,
	StageNameEach,
	StageNameIf,
	StageNameFunction,
	StageNameVariable,
}

// Engine produces templates that share one configuration: text source,
// failure policies, depth limit and logger.
type Engine struct {
	config *engineConfig
	logger *zap.Logger
}

// New creates a new templex Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.maxDepth < 0 {
		return nil, NewConfigError(ErrMsgNegativeMaxDepth, MetaKeyMaxDepth, strconv.Itoa(config.maxDepth))
	}
	for name := range config.stageRaise {
		if !isBuiltinStage(name) {
			return nil, NewConfigError(ErrMsgUnknownStage, MetaKeyStage, name)
		}
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug(LogMsgEngineCreated,
		zap.Int(LogFieldDepth, config.maxDepth),
		zap.Strings(LogFieldStages, builtinStageNames),
	)

	return &Engine{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// DefaultStages returns a fresh list of the built-in stages in their required
// order: Include, Render, Each, If, Function, Variable. Each stage carries
// the failure policy configured on the engine.
func (e *Engine) DefaultStages() []Stage {
	c := e.config
	return []Stage{
		NewIncludeStage(c.raiseFor(StageNameInclude)),
		NewRenderStage(c.raiseFor(StageNameRender)),
		NewEachStage(c.raiseFor(StageNameEach)),
		NewConditionalStage(c.raiseFor(StageNameIf)),
		NewFunctionStage(c.raiseFor(StageNameFunction)),
		NewVariableStage(c.raiseFor(StageNameVariable)),
	}
}

// NewTemplate builds a template from literal text or from a source location.
// Exactly one of the two must be given.
func (e *Engine) NewTemplate(ctx context.Context, input TemplateInput) (*Template, error) {
	hasText := input.Text != ""
	hasLocation := input.Location != ""

	switch {
	case hasText && hasLocation:
		return nil, NewValidationError(ErrMsgBothTemplateInput)
	case !hasText && !hasLocation:
		return nil, NewValidationError(ErrMsgNoTemplateInput)
	}

	text := input.Text
	if hasLocation {
		if e.config.source == nil {
			return nil, NewSourceError(ErrMsgNoSource, input.Location, nil)
		}
		loaded, err := e.config.source.Load(ctx, input.Location)
		if err != nil {
			return nil, err
		}
		text = loaded
		e.logger.Debug(LogMsgSourceLoaded,
			zap.String(LogFieldLocation, input.Location),
			zap.Int(LogFieldLength, len(loaded)),
		)
	}

	return &Template{
		text:     text,
		location: input.Location,
		pipeline: NewPipeline(e.DefaultStages()...),
		source:   e.config.source,
		logger:   e.logger,
		maxDepth: e.config.maxDepth,
	}, nil
}

// FromText builds a template from literal text.
func (e *Engine) FromText(text string) (*Template, error) {
	return e.NewTemplate(context.Background(), TemplateInput{Text: text})
}

// FromSource builds a template from the text stored at location.
func (e *Engine) FromSource(ctx context.Context, location string) (*Template, error) {
	return e.NewTemplate(ctx, TemplateInput{Location: location})
}

// Render is a convenience method that builds a template from text and
// renders it in one step.
func (e *Engine) Render(ctx context.Context, text string, data map[string]any) (string, error) {
	tmpl, err := e.FromText(text)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// Source returns the engine's text source.
func (e *Engine) Source() TextSource {
	return e.config.source
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

func isBuiltinStage(name string) bool {
	for _, builtin := range builtinStageNames {
		if builtin == name {
			return true
		}
	}
	return false
}
