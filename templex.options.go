package templex

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	source       TextSource
	maxDepth     int
	raiseOnError bool
	stageRaise   map[string]bool
	logger       *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		source:       &FilesystemSource{},
		maxDepth:     DefaultMaxDepth,
		raiseOnError: false,
		stageRaise:   make(map[string]bool),
		logger:       nil,
	}
}

// raiseFor returns the failure policy for the named built-in stage.
func (c *engineConfig) raiseFor(stage string) bool {
	if raise, ok := c.stageRaise[stage]; ok {
		return raise
	}
	return c.raiseOnError
}

// WithSource sets the text source read by INCLUDE, RENDER and FromSource.
// Default: FilesystemSource with no root (locations used as given)
func WithSource(source TextSource) Option {
	return func(c *engineConfig) {
		c.source = source
	}
}

// WithMaxDepth limits nested sub-renders (EACH bodies, RENDER targets).
// Use 0 for unlimited depth.
// Default: 64
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithRaiseOnError sets the failure policy of every built-in stage. When
// true the first directive failure aborts the render; when false failing
// markers are left in place.
// Default: false
func WithRaiseOnError(raise bool) Option {
	return func(c *engineConfig) {
		c.raiseOnError = raise
	}
}

// WithStageRaise sets the failure policy of a single built-in stage,
// overriding WithRaiseOnError for it.
func WithStageRaise(stage string, raise bool) Option {
	return func(c *engineConfig) {
		c.stageRaise[stage] = raise
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
