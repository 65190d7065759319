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

import "time"

const (
	// DefaultAskTimeout is the default time a sender waits for a response
	// when the caller context carries no deadline
	DefaultAskTimeout = 5 * time.Second
	// DefaultShutdownTimeout is the default time the system waits for
	// in-flight handlers while stopping
	DefaultShutdownTimeout = 30 * time.Second
	// DefaultInitTimeout is the default time an instance preStart hook is
	// given to complete
	DefaultInitTimeout = time.Second
	// DefaultInitMaxRetries is the default number of times an instance
	// preStart hook is retried
	DefaultInitMaxRetries = 5
	// DefaultSendQueueSize is the default capacity of the pending sends
	// queue of a saturated pool
	DefaultSendQueueSize = 1024
)
