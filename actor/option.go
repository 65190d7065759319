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
	"time"

	"github.com/troupe-go/troupe/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(sys *system)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*system)

// Apply applies the options to the actor system
func (f OptionFunc) Apply(sys *system) {
	f(sys)
}

// WithLogger sets the actor system custom log
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(x *system) {
		x.logger = logger
	})
}

// WithAskTimeout sets how long a sender waits for a response when its
// context carries no deadline
func WithAskTimeout(timeout time.Duration) Option {
	return OptionFunc(func(x *system) {
		x.askTimeout = timeout
	})
}

// WithShutdownTimeout sets the shutdown timeout
func WithShutdownTimeout(timeout time.Duration) Option {
	return OptionFunc(func(x *system) {
		x.shutdownTimeout = timeout
	})
}

// WithInitMaxRetries sets the number of times to retry an instance init process
func WithInitMaxRetries(max int) Option {
	return OptionFunc(func(x *system) {
		x.initMaxRetries = max
	})
}

// WithInitTimeout sets the time an instance init process is given to complete
func WithInitTimeout(timeout time.Duration) Option {
	return OptionFunc(func(x *system) {
		x.initTimeout = timeout
	})
}

// WithSendQueueSize sets the capacity of the pending sends queue of a
// saturated pool. Sends beyond that capacity fail with ErrSendQueueFull.
func WithSendQueueSize(size int) Option {
	return OptionFunc(func(x *system) {
		if size > 0 {
			x.sendQueueSize = size
		}
	})
}

// WithFatalClassifier sets the predicate deciding whether a handler error is
// fatal to its instance. A fatal error gets the instance replaced through
// the registered factory instead of being returned to the pool.
func WithFatalClassifier(isFatal func(error) bool) Option {
	return OptionFunc(func(x *system) {
		x.isFatal = isFatal
	})
}

// WithPool declares a pool the system spawns on startup. Startup pools are
// spawned in declaration order and stopped in the reverse order on shutdown.
func WithPool(name string, count int, args ...any) Option {
	return OptionFunc(func(x *system) {
		x.startupPools = append(x.startupPools, PoolSpec{
			Name:  name,
			Count: count,
			Args:  args,
		})
	})
}
