package templex

import (
	"encoding/json"
	"testing"

	"github.com/itsatony/go-templex/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("clean template", func(t *testing.T) {
		result := Validate("Hi {{name}} {{#IF a}}{{#EACH xs AS x}}{{x}}{{/EACH}}{{#ELSE}}-{{/IF}}")

		assert.True(t, result.IsValid())
		assert.False(t, result.HasWarnings())
		assert.Empty(t, result.Issues())
	})

	t.Run("errors and warnings", func(t *testing.T) {
		result := Validate("{{ }}\n{{#IF a}}open")

		assert.True(t, result.HasErrors())
		assert.True(t, result.HasWarnings())
		require.Len(t, result.Errors(), 1)
		require.Len(t, result.Warnings(), 1)

		unclosed := result.Errors()[0]
		assert.Equal(t, internal.LintMsgUnclosedIf, unclosed.Message)
		assert.Equal(t, "{{#IF a}}", unclosed.Marker)
		assert.Equal(t, Position{Offset: 6, Line: 2, Column: 1}, unclosed.Position)

		assert.Equal(t, internal.LintMsgEmptyMarker, result.Warnings()[0].Message)
	})

	t.Run("template method", func(t *testing.T) {
		tmpl, err := MustNew().FromText("{{/EACH}}")
		require.NoError(t, err)

		result := tmpl.Validate()
		require.Len(t, result.Issues(), 1)
		assert.Equal(t, internal.LintMsgUnopenedEach, result.Issues()[0].Message)
	})
}

func TestValidationIssue_JSON(t *testing.T) {
	issue := ValidationIssue{Severity: SeverityWarning, Message: "m", Marker: "{{ }}", Position: Position{Offset: 1, Line: 1, Column: 2}}

	raw, err := json.Marshal(issue)
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"warning","message":"m","marker":"{{ }}","position":{"offset":1,"line":1,"column":2}}`, string(raw))
	assert.Equal(t, SeverityNameError, SeverityError.String())
}
