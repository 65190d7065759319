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

// Actor defines the behavior shared by all instances spawned under a given
// registered type name. An instance processes a single message at a time;
// the runtime never invokes Receive concurrently on the same instance.
//
// An implementation is constructed by a Factory, initialized with PreStart
// before it is eligible for messages, and torn down with PostStop when its
// pool is drained or the instance is replaced after a fatal error.
type Actor interface {
	// PreStart is executed before the actor instance starts processing
	// messages. Use it to initialize any resource the instance owns, like a
	// database connection. When it returns an error the instance is not
	// added to the pool.
	PreStart(ctx context.Context) error

	// Receive processes the given message and returns a response that is
	// delivered to the sender. A returned error is propagated to the sender
	// and, unless classified as fatal, leaves the instance available for
	// subsequent messages.
	Receive(ctx context.Context, message any) (response any, err error)

	// PostStop is executed when the actor instance is shutting down.
	// Use it to release any resource acquired in PreStart.
	PostStop(ctx context.Context) error
}

// Factory produces a fresh Actor instance. It is registered under a type
// name and invoked once per instance when a pool is spawned or when an
// instance is replaced after a fatal error. The variadic arguments are the
// ones supplied to ActorSystem.Spawn.
type Factory func(args ...any) (Actor, error)
