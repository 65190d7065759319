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
	"sync"
	"time"

	gods "github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/internal/collection"
	"github.com/troupe-go/troupe/internal/errorschain"
	"github.com/troupe-go/troupe/internal/types"
	"github.com/troupe-go/troupe/log"
)

// waiter represents one pending send parked until an instance frees up.
// The releasing goroutine hands the freed instance straight to the oldest
// live waiter, which preserves the arrival order of saturated sends.
type waiter struct {
	ready    chan *instance
	canceled *atomic.Bool
}

// poolConfig carries the settings a pool needs at construction time
type poolConfig struct {
	name           string
	factory        Factory
	args           []any
	logger         log.Logger
	initMaxRetries int
	initTimeout    time.Duration
	sendQueueSize  int
	isFatal        func(error) bool
}

// pool maintains the ring of live instances spawned under one registered
// name and routes each inbound message to exactly one of them.
//
// The idle ring and the pending sends queue are the only shared mutable
// structures; both are guarded by a single mutex so that pop/push pairs are
// atomic relative to concurrent ask and shutdown calls. An instance sits in
// the idle ring if and only if it is neither handling a message nor stopped,
// which is what enforces the at-most-one-in-flight-message-per-instance
// guarantee: a popped instance is simply invisible to other senders.
type pool struct {
	name           string
	factory        Factory
	args           []any
	logger         log.Logger
	initMaxRetries int
	initTimeout    time.Duration
	isFatal        func(error) bool

	mu      sync.Mutex
	idle    *collection.Ring[*instance]
	pending *gods.RingBuffer
	// pendingCap is the configured bound on parked sends. It is enforced
	// on Len before offering because the ring buffer is allocated larger
	// than the bound: a single-slot buffer cannot detect fullness and
	// overwrites its parked entry instead of rejecting the put.
	pendingCap int
	// busy counts instances currently out of the idle ring
	busy     sync.WaitGroup
	stopping *atomic.Bool

	size      *atomic.Int64
	processed *atomic.Int64
	restarts  *atomic.Int64
}

// newPool creates a pool shell; no instance exists until start is called
func newPool(config poolConfig) *pool {
	capacity := config.sendQueueSize
	if capacity < 2 {
		capacity = 2
	}
	return &pool{
		name:           config.name,
		factory:        config.factory,
		args:           config.args,
		logger:         config.logger,
		initMaxRetries: config.initMaxRetries,
		initTimeout:    config.initTimeout,
		isFatal:        config.isFatal,
		idle:           collection.NewRing[*instance](4),
		pending:        gods.NewRingBuffer(uint64(capacity)),
		pendingCap:     config.sendQueueSize,
		stopping:       atomic.NewBool(false),
		size:           atomic.NewInt64(0),
		processed:      atomic.NewInt64(0),
		restarts:       atomic.NewInt64(0),
	}
}

// start constructs and initializes count instances and enqueues them in FIFO
// order. Construction happens concurrently; when any instance fails to
// initialize the successfully built ones are stopped again and the error is
// returned, leaving no pool behind.
func (p *pool) start(ctx context.Context, count int) error {
	instances := make([]*instance, count)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range instances {
		i := i
		eg.Go(func() error {
			actor, err := p.factory(p.args...)
			if err != nil {
				return err
			}
			inst := newInstance(p.name, actor)
			if err := inst.init(egCtx, p.initMaxRetries, p.initTimeout); err != nil {
				return err
			}
			instances[i] = inst
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		for _, inst := range instances {
			if inst != nil {
				if serr := inst.shutdown(ctx); serr != nil {
					p.logger.Warnf("pool=(%s) failed to stop instance=(%s): %v", p.name, inst.ID(), serr)
				}
			}
		}
		return err
	}

	p.mu.Lock()
	for _, inst := range instances {
		p.idle.Push(inst)
	}
	p.size.Store(int64(count))
	p.mu.Unlock()
	return nil
}

// ask routes the given message to the least-recently-used idle instance and
// returns the handler response. When every instance is busy the call parks
// in the bounded pending queue until an instance frees up or the context is
// canceled.
func (p *pool) ask(ctx context.Context, message any) (any, error) {
	inst, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}

	p.processed.Inc()
	response, err := inst.handle(ctx, message)
	p.release(inst, err)
	return response, err
}

// acquire pops the instance at the head of the idle ring. This is the
// round-robin tie-break: the instance that has been idle the longest
// services the next message.
func (p *pool) acquire(ctx context.Context) (*instance, error) {
	p.mu.Lock()
	if p.stopping.Load() {
		p.mu.Unlock()
		return nil, gerrors.ErrPoolStopping
	}

	if inst, ok := p.idle.Pop(); ok {
		p.busy.Add(1)
		p.mu.Unlock()
		return inst, nil
	}

	if p.pending.Len() >= uint64(p.pendingCap) {
		p.mu.Unlock()
		return nil, gerrors.ErrSendQueueFull
	}

	w := &waiter{
		ready:    make(chan *instance, 1),
		canceled: atomic.NewBool(false),
	}
	ok, err := p.pending.Offer(w)
	p.mu.Unlock()

	if err != nil {
		return nil, gerrors.ErrPoolStopping
	}
	if !ok {
		return nil, gerrors.ErrSendQueueFull
	}

	select {
	case inst, open := <-w.ready:
		if !open {
			return nil, gerrors.ErrPoolStopping
		}
		return inst, nil
	case <-ctx.Done():
		p.mu.Lock()
		w.canceled.Store(true)
		// the instance may have been handed over right before the
		// cancellation was recorded; put it back into rotation
		select {
		case inst, open := <-w.ready:
			if open && inst != nil {
				p.handback(inst)
			}
		default:
		}
		p.mu.Unlock()
		return nil, ctx.Err()
	}
}

// release returns an instance to rotation once its handler completed. A
// non-fatal handler error keeps the instance available; a fatal one gets the
// instance replaced through the factory.
func (p *pool) release(inst *instance, err error) {
	if err != nil && p.isFatal != nil && p.isFatal(err) {
		p.replace(inst, err)
		return
	}

	p.mu.Lock()
	p.handback(inst)
	p.mu.Unlock()
}

// handback hands the instance to the oldest live waiter when one is parked,
// otherwise pushes it at the tail of the idle ring. Must be called with
// p.mu held. On handoff the busy count carries over to the waiter.
func (p *pool) handback(inst *instance) {
	for p.pending.Len() > 0 {
		item, err := p.pending.Get()
		if err != nil {
			break
		}
		w := item.(*waiter)
		if w.canceled.Load() {
			continue
		}
		w.ready <- inst
		return
	}

	p.idle.Push(inst)
	p.busy.Done()
}

// replace swaps a faulty instance for a freshly built one. When the
// replacement cannot be constructed or initialized the pool shrinks by one
// instance.
func (p *pool) replace(old *instance, cause error) {
	ctx := context.Background()
	p.logger.Warnf("pool=(%s) instance=(%s) hit a fatal error after %s: %v",
		p.name, old.ID(), time.Since(old.createdAt).Round(time.Millisecond), cause)
	if err := old.shutdown(ctx); err != nil {
		p.logger.Warnf("pool=(%s) failed to stop faulty instance=(%s): %v", p.name, old.ID(), err)
	}

	actor, err := p.factory(p.args...)
	if err == nil {
		fresh := newInstance(p.name, actor)
		if err = fresh.init(ctx, p.initMaxRetries, p.initTimeout); err == nil {
			p.restarts.Inc()
			p.logger.Infof("pool=(%s) replaced instance=(%s) with instance=(%s)", p.name, old.ID(), fresh.ID())
			p.mu.Lock()
			p.handback(fresh)
			p.mu.Unlock()
			return
		}
	}

	p.logger.Errorf("pool=(%s) failed to replace instance=(%s): %v", p.name, old.ID(), err)
	p.mu.Lock()
	p.size.Dec()
	p.busy.Done()
	p.mu.Unlock()
}

// shutdown drains the pool: new sends are rejected, parked sends fail with
// ErrPoolStopping, in-flight handlers run to completion and every instance
// gets its postStop hook invoked. Shutdown never preempts a handler.
func (p *pool) shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.stopping.Load() {
		p.mu.Unlock()
		return gerrors.ErrPoolStopping
	}
	p.stopping.Store(true)

	for p.pending.Len() > 0 {
		item, err := p.pending.Get()
		if err != nil {
			break
		}
		w := item.(*waiter)
		if !w.canceled.Load() {
			close(w.ready)
		}
	}
	p.mu.Unlock()

	drained := make(chan types.Unit, 1)
	go func() {
		p.busy.Wait()
		drained <- types.Unit{}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-drained:
	}

	p.mu.Lock()
	chain := errorschain.New(errorschain.ReturnAll())
	for {
		inst, ok := p.idle.Pop()
		if !ok {
			break
		}
		chain.AddError(inst.shutdown(ctx))
	}
	p.size.Store(0)
	p.mu.Unlock()
	return chain.Error()
}

// Size returns the current number of live instances
func (p *pool) Size() int64 {
	return p.size.Load()
}

// ProcessedCount returns the number of messages dispatched by the pool
func (p *pool) ProcessedCount() int64 {
	return p.processed.Load()
}

// RestartsCount returns the number of instances replaced after fatal errors
func (p *pool) RestartsCount() int64 {
	return p.restarts.Load()
}
