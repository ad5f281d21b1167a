package templex

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueBool
	ValueNumber
	ValueSequence
	ValueMapping
	ValueInvocable
)

// Value kind names for diagnostics
const (
	ValueKindNameNull      = "null"
	ValueKindNameString    = "string"
	ValueKindNameBool      = "bool"
	ValueKindNameNumber    = "number"
	ValueKindNameSequence  = "sequence"
	ValueKindNameMapping   = "mapping"
	ValueKindNameInvocable = "invocable"
)

// String returns the string representation of the value kind
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return ValueKindNameString
	case ValueBool:
		return ValueKindNameBool
	case ValueNumber:
		return ValueKindNameNumber
	case ValueSequence:
		return ValueKindNameSequence
	case ValueMapping:
		return ValueKindNameMapping
	case ValueInvocable:
		return ValueKindNameInvocable
	default:
		return ValueKindNameNull
	}
}

// Invocable is a zero-argument function stored in a context.
type Invocable func() (Value, error)

// Value is an element of the context graph: a scalar (string, bool, number),
// a sequence, a mapping, an invocable, or null. The zero Value is null.
type Value struct {
	kind  ValueKind
	str   string
	b     bool
	num   float64
	inum  int64
	isInt bool
	exact string // decimal text of integers beyond int64
	seq   []Value
	m     map[string]Value
	fn    Invocable
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string scalar.
func String(s string) Value { return Value{kind: ValueString, str: s} }

// Bool returns a boolean scalar.
func Bool(b bool) Value { return Value{kind: ValueBool, b: b} }

// Number returns a floating point scalar.
func Number(f float64) Value { return Value{kind: ValueNumber, num: f} }

// Int returns an integer scalar.
func Int(i int64) Value { return Value{kind: ValueNumber, num: float64(i), inum: i, isInt: true} }

// Uint returns an unsigned integer scalar. Values beyond the int64 range keep
// their exact decimal text.
func Uint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Value{kind: ValueNumber, num: float64(u), exact: strconv.FormatUint(u, 10)}
}

// Sequence returns an ordered sequence of values.
func Sequence(items ...Value) Value {
	return Value{kind: ValueSequence, seq: items}
}

// Mapping returns a mapping value. The map is used as is and must not be
// mutated afterwards.
func Mapping(m map[string]Value) Value {
	if m == nil {
		m = make(map[string]Value)
	}
	return Value{kind: ValueMapping, m: m}
}

// Func returns an invocable that cannot fail.
func Func(fn func() Value) Value {
	return Value{kind: ValueInvocable, fn: func() (Value, error) { return fn(), nil }}
}

// FuncErr returns an invocable that may fail.
func FuncErr(fn Invocable) Value {
	return Value{kind: ValueInvocable, fn: fn}
}

// ValueOf converts plain Go data, as produced by JSON or YAML decoding or
// written by hand, into a Value. Nested maps and slices are converted
// eagerly. Unknown types become string scalars of their fmt form.
func ValueOf(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case *Context:
		if val == nil {
			return Null()
		}
		return val.Value()
	case string:
		return String(val)
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint:
		return Uint(uint64(val))
	case uint8:
		return Int(int64(val))
	case uint16:
		return Int(int64(val))
	case uint32:
		return Int(int64(val))
	case uint64:
		return Uint(val)
	case float32:
		return Number(float64(val))
	case float64:
		return Number(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Int(i)
		}
		f, err := val.Float64()
		if err != nil {
			return String(val.String())
		}
		return Number(f)
	case []Value:
		return Sequence(val...)
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = ValueOf(item)
		}
		return Sequence(items...)
	case []string:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = String(item)
		}
		return Sequence(items...)
	case []int:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = Int(int64(item))
		}
		return Sequence(items...)
	case []float64:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = Number(item)
		}
		return Sequence(items...)
	case []map[string]any:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = ValueOf(item)
		}
		return Sequence(items...)
	case map[string]Value:
		return Mapping(val)
	case map[string]any:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			m[k] = ValueOf(item)
		}
		return Mapping(m)
	case map[string]string:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			m[k] = String(item)
		}
		return Mapping(m)
	case map[any]any:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = ValueOf(item)
		}
		return Mapping(m)
	case Invocable:
		return FuncErr(val)
	case func() (Value, error):
		return FuncErr(val)
	case func() Value:
		return Func(val)
	case func() string:
		return Func(func() Value { return String(val()) })
	case func() any:
		return Func(func() Value { return ValueOf(val()) })
	case func() (string, error):
		return FuncErr(func() (Value, error) {
			s, err := val()
			return String(s), err
		})
	case func() (any, error):
		return FuncErr(func() (Value, error) {
			out, err := val()
			return ValueOf(out), err
		})
	case fmt.Stringer:
		return String(val.String())
	default:
		return String(fmt.Sprint(val))
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == ValueNull }

// Index looks up one path segment. Mappings are indexed by key and sequences
// by non-negative decimal position. On failure the returned reason is
// ReasonMissing or ReasonNotIndexable.
func (v Value) Index(segment string) (Value, string) {
	switch v.kind {
	case ValueMapping:
		item, ok := v.m[segment]
		if !ok {
			return Null(), ReasonMissing
		}
		return item, ""
	case ValueSequence:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 {
			return Null(), ReasonNotIndexable
		}
		if i >= len(v.seq) {
			return Null(), ReasonMissing
		}
		return v.seq[i], ""
	default:
		return Null(), ReasonNotIndexable
	}
}

// Truthy reports the truth value: null, false, zero, the empty string and
// empty collections are false; everything else is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case ValueBool:
		return v.b
	case ValueString:
		return v.str != ""
	case ValueNumber:
		if v.isInt {
			return v.inum != 0
		}
		return v.num != 0
	case ValueSequence:
		return len(v.seq) > 0
	case ValueMapping:
		return len(v.m) > 0
	case ValueInvocable:
		return true
	default:
		return false
	}
}

// AsString returns the string held by a string scalar.
func (v Value) AsString() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the number held by a numeric scalar.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != ValueNumber {
		return 0, false
	}
	return v.num, true
}

// AsBool returns the bool held by a boolean scalar.
func (v Value) AsBool() (bool, bool) {
	if v.kind != ValueBool {
		return false, false
	}
	return v.b, true
}

// Items returns the elements of a sequence.
func (v Value) Items() ([]Value, bool) {
	if v.kind != ValueSequence {
		return nil, false
	}
	return v.seq, true
}

// Fields returns the entries of a mapping.
func (v Value) Fields() (map[string]Value, bool) {
	if v.kind != ValueMapping {
		return nil, false
	}
	return v.m, true
}

// Len returns the number of elements of a sequence or mapping, the byte
// length of a string, and zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case ValueSequence:
		return len(v.seq)
	case ValueMapping:
		return len(v.m)
	case ValueString:
		return len(v.str)
	default:
		return 0
	}
}

// Call invokes an invocable and returns its result.
func (v Value) Call() (Value, error) {
	if v.kind != ValueInvocable || v.fn == nil {
		return Null(), NewReasonError(ErrMsgNotInvocable, "", "", ReasonNotInvocable)
	}
	return v.fn()
}

// String returns the textual representation used when the value is
// substituted into a template. Invocables render their result; a failing
// invocable renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueBool:
		if v.b {
			return BoolTextTrue
		}
		return BoolTextFalse
	case ValueNumber:
		if v.isInt {
			return strconv.FormatInt(v.inum, 10)
		}
		if v.exact != "" {
			return v.exact
		}
		return strconv.FormatFloat(v.num, NumberFormatFlag, NumberPrecisionAll, NumberBitSize)
	case ValueSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return SequenceOpen + strings.Join(parts, ElementSeparator) + SequenceClose
	case ValueMapping:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + KeyValueSeparator + v.m[k].String()
		}
		return MappingOpen + strings.Join(parts, ElementSeparator) + MappingClose
	case ValueInvocable:
		out, err := v.Call()
		if err != nil {
			return ""
		}
		return out.String()
	default:
		return ""
	}
}
