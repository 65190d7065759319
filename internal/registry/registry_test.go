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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("With Register and Lookup", func(t *testing.T) {
		reg := NewRegistry[int]()
		replaced := reg.Register("Exchanger", 1)
		require.False(t, replaced)

		entry, ok := reg.Lookup("exchanger")
		require.True(t, ok)
		assert.Equal(t, 1, entry)
		assert.True(t, reg.Exists(" Exchanger "))
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("With overwrite", func(t *testing.T) {
		reg := NewRegistry[int]()
		reg.Register("worker", 1)
		replaced := reg.Register("Worker", 2)
		require.True(t, replaced)

		entry, ok := reg.Lookup("worker")
		require.True(t, ok)
		assert.Equal(t, 2, entry)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("With Deregister", func(t *testing.T) {
		reg := NewRegistry[string]()
		reg.Register("worker", "behavior")
		reg.Deregister("worker")
		assert.False(t, reg.Exists("worker"))
		assert.Empty(t, reg.Names())
	})

	t.Run("With unknown name", func(t *testing.T) {
		reg := NewRegistry[string]()
		entry, ok := reg.Lookup("unknown")
		require.False(t, ok)
		assert.Empty(t, entry)
	})
}
