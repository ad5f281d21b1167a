package templex

import (
	"sort"
	"strings"

	"github.com/itsatony/go-templex/internal"
)

// Context provides read access to template variables.
// It supports dot-notation path resolution (e.g., "user.profile.name").
// A Context is never mutated by rendering; Bind derives a new one.
type Context struct {
	bindings map[string]Value
}

// NewContext creates a context from plain Go data.
// If data is nil, an empty context is returned.
func NewContext(data map[string]any) *Context {
	bindings := make(map[string]Value, len(data))
	for k, v := range data {
		bindings[k] = ValueOf(v)
	}
	return &Context{bindings: bindings}
}

// NewContextFromValues creates a context from already converted values.
func NewContextFromValues(values map[string]Value) *Context {
	bindings := make(map[string]Value, len(values))
	for k, v := range values {
		bindings[k] = v
	}
	return &Context{bindings: bindings}
}

// Resolve looks up a dot-notation path.
func (c *Context) Resolve(path string) (Value, error) {
	return Resolve(path, c.Value())
}

// Has checks if a value exists at the given path.
func (c *Context) Has(path string) bool {
	_, err := c.Resolve(path)
	return err == nil
}

// Bind returns a derived context in which name is bound to value, shadowing
// any existing binding. The receiver is left unchanged.
func (c *Context) Bind(name string, value Value) *Context {
	size := 1
	if c != nil {
		size += len(c.bindings)
	}
	bindings := make(map[string]Value, size)
	if c != nil {
		for k, v := range c.bindings {
			bindings[k] = v
		}
	}
	bindings[name] = value
	return &Context{bindings: bindings}
}

// Value returns the context as a mapping value.
func (c *Context) Value() Value {
	if c == nil {
		return Mapping(nil)
	}
	return Mapping(c.bindings)
}

// Keys returns the top-level binding names in sorted order.
func (c *Context) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve folds a dot-notation path over root, indexing the accumulator by
// each segment in turn. Resolution is strict: the first segment that is
// absent or lands on a value that cannot be indexed fails the lookup with a
// missing path error naming that segment.
func Resolve(path string, root Value) (Value, error) {
	path = strings.TrimSpace(path)
	current := root

	for _, segment := range internal.SplitPath(path) {
		if segment == "" {
			return Null(), NewMissingPathError(path, segment, ReasonMissing)
		}
		next, reason := current.Index(segment)
		if reason != "" {
			return Null(), NewMissingPathError(path, segment, reason)
		}
		current = next
	}

	return current, nil
}
