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
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

var (
	errBoom      = errors.New("boom")
	errFatalBoom = errors.New("fatal boom")
)

// echoActor replies with the message it receives
type echoActor struct{}

var _ Actor = (*echoActor)(nil)

func newEchoActor(...any) (Actor, error) {
	return &echoActor{}, nil
}

func (x *echoActor) PreStart(context.Context) error {
	return nil
}

func (x *echoActor) Receive(_ context.Context, message any) (any, error) {
	return message, nil
}

func (x *echoActor) PostStop(context.Context) error {
	return nil
}

// identityActor replies with a marker unique to the instance servicing the
// message, which makes dispatch order observable
type identityActor struct {
	id string
}

var _ Actor = (*identityActor)(nil)

func newIdentityActor(...any) (Actor, error) {
	return &identityActor{id: uuid.NewString()}, nil
}

func (x *identityActor) PreStart(context.Context) error {
	return nil
}

func (x *identityActor) Receive(context.Context, any) (any, error) {
	return x.id, nil
}

func (x *identityActor) PostStop(context.Context) error {
	return nil
}

// faultyActor fails on demand: errBoom for "boom", errFatalBoom for "fatal",
// a panic for "panic", otherwise it echoes
type faultyActor struct{}

var _ Actor = (*faultyActor)(nil)

func newFaultyActor(...any) (Actor, error) {
	return &faultyActor{}, nil
}

func (x *faultyActor) PreStart(context.Context) error {
	return nil
}

func (x *faultyActor) Receive(_ context.Context, message any) (any, error) {
	switch message {
	case "boom":
		return nil, errBoom
	case "fatal":
		return nil, errFatalBoom
	case "panic":
		panic("something went wrong")
	default:
		return message, nil
	}
}

func (x *faultyActor) PostStop(context.Context) error {
	return nil
}

// gatedActor blocks inside its handler until the gate is released. It also
// detects concurrent handler entries on the same instance.
type gatedActor struct {
	gate     chan struct{}
	entered  *atomic.Int64
	violated *atomic.Bool
	inside   *atomic.Bool
}

var _ Actor = (*gatedActor)(nil)

// newGatedFactory builds gated actors sharing one gate, one entry counter
// and one violation flag
func newGatedFactory(gate chan struct{}, entered *atomic.Int64, violated *atomic.Bool) Factory {
	return func(...any) (Actor, error) {
		return &gatedActor{
			gate:     gate,
			entered:  entered,
			violated: violated,
			inside:   atomic.NewBool(false),
		}, nil
	}
}

func (x *gatedActor) PreStart(context.Context) error {
	return nil
}

func (x *gatedActor) Receive(_ context.Context, message any) (any, error) {
	if !x.inside.CompareAndSwap(false, true) {
		x.violated.Store(true)
	}
	x.entered.Inc()
	<-x.gate
	x.inside.Store(false)
	return message, nil
}

func (x *gatedActor) PostStop(context.Context) error {
	return nil
}

// recorder collects lifecycle and processing events in order
type recorder struct {
	mu     sync.Mutex
	events []string
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) record(event string) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// lifecycleActor records its hooks and processed messages into a shared recorder
type lifecycleActor struct {
	label    string
	recorder *recorder
	delay    time.Duration
}

var _ Actor = (*lifecycleActor)(nil)

// newLifecycleFactory builds lifecycle actors writing to the given recorder
func newLifecycleFactory(label string, recorder *recorder, delay time.Duration) Factory {
	return func(...any) (Actor, error) {
		return &lifecycleActor{
			label:    label,
			recorder: recorder,
			delay:    delay,
		}, nil
	}
}

func (x *lifecycleActor) PreStart(context.Context) error {
	x.recorder.record("prestart:" + x.label)
	return nil
}

func (x *lifecycleActor) Receive(_ context.Context, message any) (any, error) {
	if x.delay > 0 {
		time.Sleep(x.delay)
	}
	x.recorder.record("message:" + message.(string))
	return message, nil
}

func (x *lifecycleActor) PostStop(context.Context) error {
	x.recorder.record("poststop:" + x.label)
	return nil
}

// brokenInitActor always fails its preStart hook
type brokenInitActor struct{}

var _ Actor = (*brokenInitActor)(nil)

func newBrokenInitActor(...any) (Actor, error) {
	return &brokenInitActor{}, nil
}

func (x *brokenInitActor) PreStart(context.Context) error {
	return errBoom
}

func (x *brokenInitActor) Receive(_ context.Context, message any) (any, error) {
	return message, nil
}

func (x *brokenInitActor) PostStop(context.Context) error {
	return nil
}
