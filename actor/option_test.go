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

package actor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/troupe-go/troupe/log"
)

func TestOptions(t *testing.T) {
	classifier := func(err error) bool { return errors.Is(err, errFatalBoom) }

	testCases := []struct {
		name     string
		option   Option
		expected func(*testing.T, *system)
	}{
		{
			name:   "WithLogger",
			option: WithLogger(log.DebugLogger),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, log.DebugLogger, sys.logger)
			},
		},
		{
			name:   "WithAskTimeout",
			option: WithAskTimeout(2 * time.Second),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, 2*time.Second, sys.askTimeout)
			},
		},
		{
			name:   "WithShutdownTimeout",
			option: WithShutdownTimeout(10 * time.Second),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, 10*time.Second, sys.shutdownTimeout)
			},
		},
		{
			name:   "WithInitMaxRetries",
			option: WithInitMaxRetries(2),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, 2, sys.initMaxRetries)
			},
		},
		{
			name:   "WithInitTimeout",
			option: WithInitTimeout(3 * time.Second),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, 3*time.Second, sys.initTimeout)
			},
		},
		{
			name:   "WithSendQueueSize",
			option: WithSendQueueSize(16),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, 16, sys.sendQueueSize)
			},
		},
		{
			name:   "WithSendQueueSize ignoring non-positive size",
			option: WithSendQueueSize(0),
			expected: func(t *testing.T, sys *system) {
				assert.Equal(t, DefaultSendQueueSize, sys.sendQueueSize)
			},
		},
		{
			name:   "WithFatalClassifier",
			option: WithFatalClassifier(classifier),
			expected: func(t *testing.T, sys *system) {
				require.NotNil(t, sys.isFatal)
				assert.True(t, sys.isFatal(errFatalBoom))
				assert.False(t, sys.isFatal(errBoom))
			},
		},
		{
			name:   "WithPool",
			option: WithPool("Echo", 3, "arg"),
			expected: func(t *testing.T, sys *system) {
				require.Len(t, sys.startupPools, 1)
				assert.Equal(t, "Echo", sys.startupPools[0].Name)
				assert.Equal(t, 3, sys.startupPools[0].Count)
				assert.Equal(t, []any{"arg"}, sys.startupPools[0].Args)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			sys, err := NewActorSystem("testSys", testCase.option)
			require.NoError(t, err)
			testCase.expected(t, sys.(*system))
		})
	}
}
