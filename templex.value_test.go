package templex

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringerValue struct{}

func (stringerValue) String() string { return "stringer" }

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		kind     ValueKind
		expected string
	}{
		{"nil", nil, ValueNull, ""},
		{"string", "hi", ValueString, "hi"},
		{"bool", true, ValueBool, "true"},
		{"int", 42, ValueNumber, "42"},
		{"uint8", uint8(7), ValueNumber, "7"},
		{"uint64 max", uint64(math.MaxUint64), ValueNumber, "18446744073709551615"},
		{"uint64 in range", uint64(math.MaxInt64), ValueNumber, "9223372036854775807"},
		{"float", 1.25, ValueNumber, "1.25"},
		{"whole float", 3.0, ValueNumber, "3"},
		{"json int", json.Number("12"), ValueNumber, "12"},
		{"json float", json.Number("0.5"), ValueNumber, "0.5"},
		{"slice", []any{"a", 1}, ValueSequence, "[a, 1]"},
		{"map", map[string]any{"b": 2, "a": "x"}, ValueMapping, "{a: x, b: 2}"},
		{"yaml map", map[any]any{"k": "v"}, ValueMapping, "{k: v}"},
		{"func", func() string { return "called" }, ValueInvocable, "called"},
		{"stringer", stringerValue{}, ValueString, "stringer"},
		{"fallback", struct{ A int }{A: 1}, ValueString, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.input)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestValue_Index(t *testing.T) {
	root := ValueOf(map[string]any{
		"list": []any{"a", "b"},
		"name": "x",
	})

	t.Run("mapping key", func(t *testing.T) {
		v, reason := root.Index("name")
		assert.Empty(t, reason)
		assert.Equal(t, "x", v.String())
	})

	t.Run("absent key", func(t *testing.T) {
		_, reason := root.Index("nope")
		assert.Equal(t, ReasonMissing, reason)
	})

	t.Run("sequence position", func(t *testing.T) {
		list, _ := root.Index("list")
		v, reason := list.Index("1")
		assert.Empty(t, reason)
		assert.Equal(t, "b", v.String())

		_, reason = list.Index("2")
		assert.Equal(t, ReasonMissing, reason)

		_, reason = list.Index("first")
		assert.Equal(t, ReasonNotIndexable, reason)
	})

	t.Run("scalar", func(t *testing.T) {
		_, reason := String("x").Index("0")
		assert.Equal(t, ReasonNotIndexable, reason)
	})
}

func TestValue_Truthy(t *testing.T) {
	assert.False(t, Null().Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.False(t, Int(0).Truthy())
	assert.False(t, Number(0).Truthy())
	assert.False(t, String("").Truthy())
	assert.False(t, Sequence().Truthy())
	assert.False(t, Mapping(nil).Truthy())

	assert.True(t, Bool(true).Truthy())
	assert.True(t, Int(-1).Truthy())
	assert.True(t, String("0").Truthy())
	assert.True(t, Sequence(Null()).Truthy())
	assert.True(t, Func(Null).Truthy())
}

func TestValue_Call(t *testing.T) {
	t.Run("invocable", func(t *testing.T) {
		out, err := Func(func() Value { return String("ok") }).Call()
		require.NoError(t, err)
		assert.Equal(t, "ok", out.String())
	})

	t.Run("failing invocable renders empty", func(t *testing.T) {
		boom := errors.New("boom")
		v := FuncErr(func() (Value, error) { return Null(), boom })

		_, err := v.Call()
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "", v.String())
	})

	t.Run("not invocable", func(t *testing.T) {
		_, err := String("x").Call()
		require.Error(t, err)
		reason, _ := ErrorMetadata(err, MetaKeyReason)
		assert.Equal(t, ReasonNotInvocable, reason)
	})
}

func TestValue_Accessors(t *testing.T) {
	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = Int(1).AsString()
	assert.False(t, ok)

	n, ok := Int(4).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	items, ok := Sequence(Int(1), Int(2)).Items()
	assert.True(t, ok)
	assert.Len(t, items, 2)

	fields, ok := ValueOf(map[string]string{"a": "b"}).Fields()
	assert.True(t, ok)
	assert.Equal(t, "b", fields["a"].String())

	assert.Equal(t, 2, Sequence(Null(), Null()).Len())
	assert.Equal(t, 3, String("abc").Len())
	assert.Equal(t, 0, Bool(true).Len())
	assert.Equal(t, ValueKindNameInvocable, ValueInvocable.String())
}
