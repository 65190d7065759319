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

package collection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		ring := NewRing[int](2)
		ring.Push(1)
		ring.Push(2)
		ring.Push(3)
		require.Equal(t, 3, ring.Len())

		for _, expected := range []int{1, 2, 3} {
			value, ok := ring.Pop()
			require.True(t, ok)
			require.Equal(t, expected, value)
		}
		require.Zero(t, ring.Len())
	})

	t.Run("With empty queue", func(t *testing.T) {
		ring := NewRing[string](0)
		value, ok := ring.Pop()
		require.False(t, ok)
		require.Empty(t, value)
	})

	t.Run("With interleaved push and pop", func(t *testing.T) {
		ring := NewRing[int](1)
		for i := 0; i < 100; i++ {
			ring.Push(i)
			value, ok := ring.Pop()
			require.True(t, ok)
			require.Equal(t, i, value)
		}
		require.Zero(t, ring.Len())
	})
}
