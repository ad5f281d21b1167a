package templex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_InsertStage(t *testing.T) {
	engine := MustNew()

	t.Run("bounds", func(t *testing.T) {
		p := NewPipeline(engine.DefaultStages()...)
		custom := StageFunc{StageName: "custom"}

		for _, index := range []int{-1, 7} {
			err := p.InsertStage(index, custom)
			require.Error(t, err, index)
			assert.True(t, IsIndexOutOfRange(err))

			length, _ := ErrorMetadata(err, MetaKeyLength)
			assert.Equal(t, "6", length)
		}
		assert.Equal(t, 6, p.Len())
	})

	t.Run("front, middle and end", func(t *testing.T) {
		p := NewPipeline(engine.DefaultStages()...)

		require.NoError(t, p.InsertStage(0, StageFunc{StageName: "first"}))
		require.NoError(t, p.InsertStage(3, StageFunc{StageName: "middle"}))
		require.NoError(t, p.InsertStage(p.Len(), StageFunc{StageName: "last"}))

		assert.Equal(t, []string{
			"first", StageNameInclude, StageNameRender, "middle", StageNameEach,
			StageNameIf, StageNameFunction, StageNameVariable, "last",
		}, p.StageNames())
	})

	t.Run("nil stage", func(t *testing.T) {
		p := NewPipeline()
		err := p.InsertStage(0, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilStage)
	})
}

func TestPipeline_RemoveStage(t *testing.T) {
	p := NewPipeline(MustNew().DefaultStages()...)

	for _, index := range []int{-1, 6} {
		err := p.RemoveStage(index)
		require.Error(t, err, index)
		assert.True(t, IsIndexOutOfRange(err))
	}

	require.NoError(t, p.RemoveStage(0))
	require.NoError(t, p.RemoveStage(4))
	assert.Equal(t, []string{StageNameRender, StageNameEach, StageNameIf, StageNameFunction}, p.StageNames())

	empty := NewPipeline()
	assert.True(t, IsIndexOutOfRange(empty.RemoveStage(0)))
}

func TestPipeline_StagesIsACopy(t *testing.T) {
	p := NewPipeline(MustNew().DefaultStages()...)

	stages := p.Stages()
	stages[0] = nil

	assert.NotNil(t, p.Stages()[0])
}
