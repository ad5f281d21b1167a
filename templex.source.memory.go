package templex

import (
	"context"
	"sort"
	"sync"
)

// MemorySource holds template text in memory.
// It is primarily intended for tests and for templates assembled at runtime.
type MemorySource struct {
	mu      sync.RWMutex
	entries map[string]string
}

// MemorySourceDriver is the driver for creating MemorySource instances.
type MemorySourceDriver struct{}

func init() {
	RegisterSourceDriver(SourceDriverNameMemory, &MemorySourceDriver{})
}

// Open creates a new, empty MemorySource.
// The connection string is ignored.
func (d *MemorySourceDriver) Open(connectionString string) (TextSource, error) {
	return NewMemorySource(nil), nil
}

// NewMemorySource creates a memory source seeded with entries.
func NewMemorySource(entries map[string]string) *MemorySource {
	s := &MemorySource{entries: make(map[string]string, len(entries))}
	for loc, body := range entries {
		s.entries[loc] = body
	}
	return s
}

// Load implements TextSource.
func (s *MemorySource) Load(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.entries[location]
	if !ok {
		return "", NewSourceNotFoundError(location, nil)
	}
	return body, nil
}

// Set stores body at location, replacing any previous text.
func (s *MemorySource) Set(location, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[location] = body
}

// Delete removes location. Deleting an absent location is a no-op.
func (s *MemorySource) Delete(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, location)
}

// Locations returns every stored location, sorted.
func (s *MemorySource) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locs := make([]string, 0, len(s.entries))
	for loc := range s.entries {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}
