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
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	gerrors "github.com/troupe-go/troupe/errors"
)

// instance wraps a single constructed Actor of a pool. The pool guarantees
// that at most one message handler is in flight per instance at any time:
// an instance is either idle inside the pool ring or owned by exactly one
// dispatching goroutine.
type instance struct {
	id        string
	poolName  string
	actor     Actor
	processed *atomic.Int64
	createdAt time.Time
}

// newInstance creates a new instance of the given actor behavior
func newInstance(poolName string, actor Actor) *instance {
	return &instance{
		id:        uuid.NewString(),
		poolName:  poolName,
		actor:     actor,
		processed: atomic.NewInt64(0),
		createdAt: time.Now(),
	}
}

// ID returns the unique identifier of the instance
func (x *instance) ID() string {
	return x.id
}

// ProcessedCount returns the number of messages the instance has handled
func (x *instance) ProcessedCount() int64 {
	return x.processed.Load()
}

// init runs the actor preStart hook with retries. When the initialization
// fails the instance must not be added to the pool.
func (x *instance) init(ctx context.Context, maxRetries int, timeout time.Duration) error {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	retrier := retry.NewRetrier(maxRetries, time.Millisecond, timeout)
	if err := retrier.RunContext(cctx, func(ctx context.Context) error {
		return x.actor.PreStart(ctx)
	}); err != nil {
		return gerrors.NewErrInitFailure(err)
	}
	return nil
}

// handle invokes the actor message handler. Panics raised by the handler
// are recovered and surfaced as a *errors.PanicError so that one failing
// message never takes down the pool.
func (x *instance) handle(ctx context.Context, message any) (response any, err error) {
	defer func() {
		if r := recover(); r != nil {
			pc, fn, line, _ := runtime.Caller(2)
			switch v, ok := r.(error); {
			case ok:
				err = gerrors.NewPanicError(
					fmt.Errorf("%w at %s[%s:%d]", v, runtime.FuncForPC(pc).Name(), fn, line),
				)
			default:
				err = gerrors.NewPanicError(
					fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line),
				)
			}
			response = nil
		}
	}()

	x.processed.Inc()
	return x.actor.Receive(ctx, message)
}

// shutdown runs the actor postStop hook
func (x *instance) shutdown(ctx context.Context) error {
	return x.actor.PostStop(ctx)
}
