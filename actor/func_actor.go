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

import "context"

// ReceiveFunc defines the message handler of a function-based actor
type ReceiveFunc func(ctx context.Context, message any) (any, error)

// PreStartFunc defines the pre-start hook of a function-based actor
type PreStartFunc func(ctx context.Context) error

// PostStopFunc defines the post-stop hook of a function-based actor
type PostStopFunc func(ctx context.Context) error

// funcActor is an adapter turning plain functions into an Actor
type funcActor struct {
	preStart PreStartFunc
	receive  ReceiveFunc
	postStop PostStopFunc
}

// enforce compilation error
var _ Actor = (*funcActor)(nil)

// FuncOption configures a function-based actor
type FuncOption func(*funcActor)

// WithPreStart sets the pre-start hook of a function-based actor
func WithPreStart(fn PreStartFunc) FuncOption {
	return func(x *funcActor) {
		x.preStart = fn
	}
}

// WithPostStop sets the post-stop hook of a function-based actor
func WithPostStop(fn PostStopFunc) FuncOption {
	return func(x *funcActor) {
		x.postStop = fn
	}
}

// NewFuncActor creates an Actor from the given receive function. The
// returned actor is mostly useful for small behaviors and tests where
// defining a dedicated type is overkill.
func NewFuncActor(receive ReceiveFunc, opts ...FuncOption) Actor {
	fn := &funcActor{
		receive: receive,
	}
	for _, opt := range opts {
		opt(fn)
	}
	return fn
}

// PreStart runs the configured pre-start hook when set
func (x *funcActor) PreStart(ctx context.Context) error {
	if x.preStart != nil {
		return x.preStart(ctx)
	}
	return nil
}

// Receive processes the given message
func (x *funcActor) Receive(ctx context.Context, message any) (any, error) {
	return x.receive(ctx, message)
}

// PostStop runs the configured post-stop hook when set
func (x *funcActor) PostStop(ctx context.Context) error {
	if x.postStop != nil {
		return x.postStop(ctx)
	}
	return nil
}
