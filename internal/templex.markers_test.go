package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariablePattern(t *testing.T) {
	matches := []string{"{{name}}", "{{ name }}", "{{user.profile.name}}", "{{ items.0 }}", "{{first-name}}"}
	for _, m := range matches {
		assert.True(t, VariablePattern.MatchString(m), m)
	}

	rejects := []string{"{{fn()}}", "{{#IF a}}", "{{/IF}}", "{{#INCLUDE x}}", "{{ a b }}", "{{}}"}
	for _, r := range rejects {
		assert.False(t, VariablePattern.MatchString(r), r)
	}
}

func TestFunctionPattern(t *testing.T) {
	m := FunctionPattern.FindStringSubmatch("At {{ user.get_time() }}.")
	require.Len(t, m, 2)
	assert.Equal(t, "user.get_time", m[1])

	assert.False(t, FunctionPattern.MatchString("{{user.get_time}}"))
	assert.False(t, FunctionPattern.MatchString("{{fn(1)}}"))
}

func TestReplaceAll(t *testing.T) {
	t.Run("rewrites every match", func(t *testing.T) {
		out, err := ReplaceAll(VariablePattern, "{{ a }}-{{b}}", func(raw string, groups []string) (string, error) {
			return strings.ToUpper(groups[0]), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "A-B", out)
	})

	t.Run("keeps raw marker", func(t *testing.T) {
		out, err := ReplaceAll(IncludePattern, "x {{#INCLUDE   header  }} y", func(raw string, groups []string) (string, error) {
			assert.Equal(t, "header", groups[0])
			return raw, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "x {{#INCLUDE   header  }} y", out)
	})

	t.Run("stops on error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ReplaceAll(VariablePattern, "{{a}}", func(string, []string) (string, error) {
			return "", boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no matches returns input", func(t *testing.T) {
		out, err := ReplaceAll(VariablePattern, "plain", nil)
		require.NoError(t, err)
		assert.Equal(t, "plain", out)
	})
}

func TestIsPath(t *testing.T) {
	assert.True(t, IsPath("a.b.c"))
	assert.False(t, IsPath("a..b"))
	assert.False(t, IsPath(""))
	assert.Equal(t, []string{"a", "b"}, SplitPath("a.b"))
}

func TestProtect(t *testing.T) {
	raw := "snippet {{name}} {{#IF a}}x{{/IF}}"
	protected := Protect(raw)

	assert.NotContains(t, protected, StrOpenDelim)
	assert.False(t, VariablePattern.MatchString(protected))
	assert.Equal(t, raw, Unprotect(protected))
	assert.Equal(t, "plain", Unprotect(Protect("plain")))
}
