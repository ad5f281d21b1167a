package templex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)

		assert.Equal(t, DefaultMaxDepth, engine.config.maxDepth)
		assert.False(t, engine.config.raiseOnError)
		assert.IsType(t, &FilesystemSource{}, engine.Source())
		assert.NotNil(t, engine.Logger())
	})

	t.Run("with options", func(t *testing.T) {
		source := NewMemorySource(nil)
		logger := zap.NewNop()
		engine, err := New(
			WithSource(source),
			WithMaxDepth(0),
			WithRaiseOnError(true),
			WithStageRaise(StageNameIf, false),
			WithLogger(logger),
		)
		require.NoError(t, err)

		assert.Same(t, source, engine.Source())
		assert.Same(t, logger, engine.Logger())
		assert.Equal(t, 0, engine.config.maxDepth)
	})

	t.Run("negative max depth", func(t *testing.T) {
		_, err := New(WithMaxDepth(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNegativeMaxDepth)
	})

	t.Run("unknown stage name", func(t *testing.T) {
		_, err := New(WithStageRaise("bogus", true))
		require.Error(t, err)
		stage, _ := ErrorMetadata(err, MetaKeyStage)
		assert.Equal(t, "bogus", stage)
	})

	t.Run("MustNew panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(WithMaxDepth(-5)) })
	})
}

func TestEngine_DefaultStages(t *testing.T) {
	engine := MustNew(WithRaiseOnError(true), WithStageRaise(StageNameVariable, false))
	stages := engine.DefaultStages()

	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name()
	}
	assert.Equal(t, builtinStageNames, names)

	assert.True(t, stages[0].(*IncludeStage).RaiseOnError)
	assert.True(t, stages[3].(*ConditionalStage).RaiseOnError)
	assert.False(t, stages[5].(*VariableStage).RaiseOnError)
}

func TestEngine_NewTemplate(t *testing.T) {
	source := NewMemorySource(map[string]string{"greeting.txt": "Hi {{name}}"})
	engine := MustNew(WithSource(source))
	ctx := context.Background()

	t.Run("neither input", func(t *testing.T) {
		_, err := engine.NewTemplate(ctx, TemplateInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNoTemplateInput)
	})

	t.Run("empty text counts as absent", func(t *testing.T) {
		_, err := engine.FromText("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNoTemplateInput)
	})

	t.Run("both inputs", func(t *testing.T) {
		_, err := engine.NewTemplate(ctx, TemplateInput{Text: "x", Location: "greeting.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgBothTemplateInput)
	})

	t.Run("from source", func(t *testing.T) {
		tmpl, err := engine.FromSource(ctx, "greeting.txt")
		require.NoError(t, err)
		assert.Equal(t, "Hi {{name}}", tmpl.Text())
		assert.Equal(t, "greeting.txt", tmpl.Location())
		assert.Same(t, source, tmpl.Source())

		out, err := tmpl.Render(ctx, map[string]any{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Hi Ann", out)
	})

	t.Run("missing source location", func(t *testing.T) {
		_, err := engine.FromSource(ctx, "nope.txt")
		require.Error(t, err)
		assert.True(t, IsSourceNotFound(err))
	})

	t.Run("no source configured", func(t *testing.T) {
		bare := MustNew(WithSource(nil))
		_, err := bare.FromSource(ctx, "greeting.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNoSource)
	})
}

func TestTemplate_StageMutationIsPerTemplate(t *testing.T) {
	engine := MustNew()
	a, err := engine.FromText("{{x}}")
	require.NoError(t, err)
	b, err := engine.FromText("{{x}}")
	require.NoError(t, err)

	require.NoError(t, a.RemoveStage(len(a.Stages())-1))

	data := map[string]any{"x": "1"}
	outA, err := a.Render(context.Background(), data)
	require.NoError(t, err)
	outB, err := b.Render(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, "{{x}}", outA)
	assert.Equal(t, "1", outB)

	err = a.InsertStage(99, NewVariableStage(false))
	assert.True(t, IsIndexOutOfRange(err))
}

func TestTemplate_RenderContext(t *testing.T) {
	tmpl, err := MustNew().FromText("{{a}}")
	require.NoError(t, err)

	out, err := tmpl.RenderContext(context.Background(), NewContextFromValues(map[string]Value{"a": Int(7)}))
	require.NoError(t, err)
	assert.Equal(t, "7", out)

	out, err = tmpl.RenderContext(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "{{a}}", out)
}
