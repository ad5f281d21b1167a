package templex

import (
	"context"
	"sort"
	"sync"
)

// TextSource loads template text by location. INCLUDE and RENDER targets and
// templates built with Engine.FromSource are read through it.
// Implementations must be safe for concurrent use.
type TextSource interface {
	// Load returns the text stored at location. A location the source does
	// not hold fails with an error for which IsSourceNotFound is true.
	Load(ctx context.Context, location string) (string, error)
}

// SourceDriver is a factory for creating text sources.
// Drivers register themselves during init().
type SourceDriver interface {
	// Open creates a new source with the given connection string.
	// The format of the connection string is driver-specific.
	Open(connectionString string) (TextSource, error)
}

// Source driver registry
var (
	sourceDriversMu sync.RWMutex
	sourceDrivers   = make(map[string]SourceDriver)
)

// RegisterSourceDriver registers a source driver by name.
// This is typically called from a driver's init() function.
// Panics if driver is nil or a driver with the same name is already registered.
func RegisterSourceDriver(name string, driver SourceDriver) {
	sourceDriversMu.Lock()
	defer sourceDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgSourceDriverNil)
	}
	if _, exists := sourceDrivers[name]; exists {
		panic(ErrMsgSourceDriverExists + ": " + name)
	}
	sourceDrivers[name] = driver
}

// OpenSource opens a text source using the named driver.
//
// Example:
//
//	src, err := templex.OpenSource("memory", "")
//	src, err := templex.OpenSource("filesystem", "/path/to/templates")
func OpenSource(driverName, connectionString string) (TextSource, error) {
	sourceDriversMu.RLock()
	driver, ok := sourceDrivers[driverName]
	sourceDriversMu.RUnlock()

	if !ok {
		return nil, NewSourceDriverError(ErrMsgSourceDriverNotFound, driverName)
	}

	return driver.Open(connectionString)
}

// ListSourceDrivers returns the names of all registered source drivers, sorted.
func ListSourceDrivers() []string {
	sourceDriversMu.RLock()
	defer sourceDriversMu.RUnlock()

	names := make([]string, 0, len(sourceDrivers))
	for name := range sourceDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
