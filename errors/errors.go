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

// Package errors defines the various errors returned by the troupe runtime.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidActorSystemName is returned when the actor system name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNameRequired is returned when an actor system name is required but not provided.
	ErrNameRequired = errors.New("actor system name is required")

	// ErrActorSystemNotStarted indicates that an actor system has not been started before use.
	ErrActorSystemNotStarted = errors.New("actor system is not running")

	// ErrActorSystemAlreadyStarted is returned when starting an actor system that is already running.
	ErrActorSystemAlreadyStarted = errors.New("actor system is already started")

	// ErrTypeNotRegistered is returned when attempting to use an unregistered actor type.
	ErrTypeNotRegistered = errors.New("actor type is not registered")

	// ErrPoolAlreadyStarted is returned when spawning a pool under a name that already has a live pool.
	ErrPoolAlreadyStarted = errors.New("actor pool is already started")

	// ErrPoolNotFound indicates that no live pool exists under the given name.
	ErrPoolNotFound = errors.New("actor pool is not found")

	// ErrPoolStopping is returned when a message is sent to a pool that is shutting down.
	ErrPoolStopping = errors.New("actor pool is shutting down")

	// ErrInvalidPoolSize is returned when a pool size is less than one.
	ErrInvalidPoolSize = errors.New("pool size must be a positive integer")

	// ErrSendQueueFull is returned when the bounded queue of pending sends has reached
	// its capacity. The caller can retry once in-flight messages have completed.
	ErrSendQueueFull = errors.New("pending sends queue is full")

	// ErrInitFailure is returned when an actor instance preStart hook fails during initialization.
	ErrInitFailure = errors.New("preStart failed")

	// ErrDuplicatePoolSpec is returned when the same pool name is declared more than
	// once in the startup pools list.
	ErrDuplicatePoolSpec = errors.New("duplicate pool name in startup pools")
)

// NewErrInitFailure wraps the given error into an ErrInitFailure
func NewErrInitFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrInitFailure, err)
}

// PanicError defines an error wrapping a panic recovered at the dispatch
// boundary while an actor instance was handling a message
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("message processing panicked: %v", e.err)
}

// Unwrap returns the wrapped error
func (e *PanicError) Unwrap() error {
	return e.err
}
