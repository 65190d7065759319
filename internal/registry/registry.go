// MIT License
//
// Copyright (c) 2026 Troupe Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package registry

import (
	"strings"
	"sync"
)

// Registry defines a named entries store. It maps a normalized name to a
// value of type T. It is safe for concurrent use. Names are normalized by
// trimming surrounding spaces and lowering the case, so lookups are
// case-insensitive.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// NewRegistry creates a new registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
	}
}

// Register adds the given entry to the registry. Registering an existing
// name overwrites the previous entry. It returns true when an existing
// entry has been replaced.
func (x *Registry[T]) Register(name string, entry T) bool {
	key := lowTrim(name)
	x.mu.Lock()
	_, replaced := x.entries[key]
	x.entries[key] = entry
	x.mu.Unlock()
	return replaced
}

// Deregister removes the given name from the registry
func (x *Registry[T]) Deregister(name string) {
	x.mu.Lock()
	delete(x.entries, lowTrim(name))
	x.mu.Unlock()
}

// Lookup returns the entry registered under the given name
func (x *Registry[T]) Lookup(name string) (T, bool) {
	x.mu.RLock()
	entry, ok := x.entries[lowTrim(name)]
	x.mu.RUnlock()
	return entry, ok
}

// Exists returns true when the given name is registered
func (x *Registry[T]) Exists(name string) bool {
	_, ok := x.Lookup(name)
	return ok
}

// Names returns the list of registered names at any point in time
func (x *Registry[T]) Names() []string {
	x.mu.RLock()
	names := make([]string, 0, len(x.entries))
	for name := range x.entries {
		names = append(names, name)
	}
	x.mu.RUnlock()
	return names
}

// Len returns the number of registered entries
func (x *Registry[T]) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

// lowTrim trim any space and lower the string value
func lowTrim(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
