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
	"os"
	"os/signal"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/future"
	"github.com/troupe-go/troupe/internal/errorschain"
	"github.com/troupe-go/troupe/internal/registry"
	"github.com/troupe-go/troupe/log"
)

// nameRegex matches a valid actor system name
var nameRegex = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_]*$")

// PoolSpec declares a pool the system spawns on startup. Startup pools are
// spawned in declaration order and stopped in the reverse order when the
// system shuts down.
type PoolSpec struct {
	// Name is the registered actor type name
	Name string
	// Count is the number of instances to spawn
	Count int
	// Args are handed to the factory for every instance
	Args []any
}

// ActorSystem is the entry point of the troupe runtime. It owns the type
// registry, the live pools and their lifecycle. All message addressing goes
// through the system by registered name; callers never hold a reference to
// an individual instance.
type ActorSystem interface {
	// Name returns the actor system name
	Name() string
	// Logger returns the logger sets when creating the actor system
	Logger() log.Logger
	// Register associates the given type name with a factory. Registering an
	// existing name overwrites the previous factory; pools already spawned
	// keep the factory they were built with until they are respawned.
	Register(name string, factory Factory)
	// Deregister removes the given type name from the registry. Live pools
	// are not affected.
	Deregister(name string)
	// Spawn creates a pool of count instances under the given registered
	// name. Spawning a name that already has a live pool fails with
	// ErrPoolAlreadyStarted.
	Spawn(ctx context.Context, name string, count int, args ...any) error
	// Kill drains the pool registered under the given name and removes it.
	// In-flight messages run to completion before the instances are stopped.
	Kill(ctx context.Context, name string) error
	// Ask routes the given message to one instance of the pool and blocks
	// until the response (or the handler error) is available, an instance
	// could not be obtained, or the context is canceled.
	Ask(ctx context.Context, name string, message any) (any, error)
	// AskAsync is the promise-returning form of Ask
	AskAsync(ctx context.Context, name string, message any) future.Future
	// Tell routes the given message to one instance of the pool without
	// waiting for the outcome. Handler errors are logged.
	Tell(ctx context.Context, name string, message any) error
	// PoolSize returns the number of live instances of the given pool
	PoolSize(name string) int64
	// PoolNames returns the names of the live pools in spawn order
	PoolNames() []string
	// Start starts the actor system and spawns the startup pools declared
	// with WithPool in their declaration order
	Start(ctx context.Context) error
	// Stop stops the actor system. Live pools are drained in the reverse of
	// their spawn order.
	Stop(ctx context.Context) error
	// Run starts the actor system and blocks until a SIGINT or SIGTERM is
	// received, then stops it. The hooks wrap the start and stop phases and
	// may be nil.
	Run(ctx context.Context, startHook func(ctx context.Context) error, stopHook func(ctx context.Context) error)
	// Running returns true when the actor system is started
	Running() bool
	// Uptime returns the number of seconds since the actor system started
	Uptime() int64
	// Metric returns a snapshot of the actor system counters
	Metric() *Metric
}

type system struct {
	name     string
	logger   log.Logger
	registry *registry.Registry[Factory]

	mu         sync.RWMutex
	pools      map[string]*pool
	spawnOrder []string
	// reserved holds names whose pool is still initializing; it keeps the
	// system lock free while instances run their preStart hooks
	reserved mapset.Set[string]

	startupPools []PoolSpec
	started      *atomic.Bool
	startedAt    *atomic.Int64

	askTimeout      time.Duration
	shutdownTimeout time.Duration
	initTimeout     time.Duration
	initMaxRetries  int
	sendQueueSize   int
	isFatal         func(error) bool
}

// enforce compilation error
var _ ActorSystem = (*system)(nil)

// NewActorSystem creates a new actor system with the given name and options.
// The name must consist of only alphanumeric characters plus non-leading
// hyphens or underscores.
func NewActorSystem(name string, opts ...Option) (ActorSystem, error) {
	if name == "" {
		return nil, gerrors.ErrNameRequired
	}
	if !nameRegex.MatchString(name) {
		return nil, gerrors.ErrInvalidActorSystemName
	}

	sys := &system{
		name:            name,
		logger:          log.New(log.ErrorLevel, os.Stderr),
		registry:        registry.NewRegistry[Factory](),
		pools:           make(map[string]*pool),
		reserved:        mapset.NewSet[string](),
		started:         atomic.NewBool(false),
		startedAt:       atomic.NewInt64(0),
		askTimeout:      DefaultAskTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		initTimeout:     DefaultInitTimeout,
		initMaxRetries:  DefaultInitMaxRetries,
		sendQueueSize:   DefaultSendQueueSize,
	}

	for _, opt := range opts {
		opt.Apply(sys)
	}
	return sys, nil
}

// Name returns the actor system name
func (x *system) Name() string {
	return x.name
}

// Logger returns the logger sets when creating the actor system
func (x *system) Logger() log.Logger {
	return x.logger
}

// Register associates the given type name with a factory
func (x *system) Register(name string, factory Factory) {
	if replaced := x.registry.Register(name, factory); replaced {
		x.logger.Warnf("actor type=(%s) factory has been overwritten", name)
	}
}

// Deregister removes the given type name from the registry
func (x *system) Deregister(name string) {
	x.registry.Deregister(name)
}

// Spawn creates a pool of count instances under the given registered name
func (x *system) Spawn(ctx context.Context, name string, count int, args ...any) error {
	if !x.started.Load() {
		return gerrors.ErrActorSystemNotStarted
	}
	if count < 1 {
		return gerrors.ErrInvalidPoolSize
	}

	factory, ok := x.registry.Lookup(name)
	if !ok {
		return gerrors.ErrTypeNotRegistered
	}

	key := normalize(name)
	x.mu.Lock()
	if _, exists := x.pools[key]; exists || !x.reserved.Add(key) {
		x.mu.Unlock()
		return gerrors.ErrPoolAlreadyStarted
	}
	x.mu.Unlock()
	defer x.reserved.Remove(key)

	p := newPool(poolConfig{
		name:           key,
		factory:        factory,
		args:           args,
		logger:         x.logger,
		initMaxRetries: x.initMaxRetries,
		initTimeout:    x.initTimeout,
		sendQueueSize:  x.sendQueueSize,
		isFatal:        x.isFatal,
	})
	if err := p.start(ctx, count); err != nil {
		x.logger.Errorf("failed to spawn pool=(%s): %v", key, err)
		return err
	}

	x.mu.Lock()
	x.pools[key] = p
	x.spawnOrder = append(x.spawnOrder, key)
	x.mu.Unlock()

	x.logger.Infof("pool=(%s) started with (%d) instances", key, count)
	return nil
}

// Kill drains the pool registered under the given name and removes it
func (x *system) Kill(ctx context.Context, name string) error {
	if !x.started.Load() {
		return gerrors.ErrActorSystemNotStarted
	}

	key := normalize(name)
	x.mu.RLock()
	p, ok := x.pools[key]
	x.mu.RUnlock()
	if !ok {
		return gerrors.ErrPoolNotFound
	}

	err := p.shutdown(ctx)
	x.mu.Lock()
	delete(x.pools, key)
	x.spawnOrder = remove(x.spawnOrder, key)
	x.mu.Unlock()

	x.logger.Infof("pool=(%s) stopped", key)
	return err
}

// Ask routes the given message to one instance of the pool and blocks until
// the response is available
func (x *system) Ask(ctx context.Context, name string, message any) (any, error) {
	if !x.started.Load() {
		return nil, gerrors.ErrActorSystemNotStarted
	}

	x.mu.RLock()
	p, ok := x.pools[normalize(name)]
	x.mu.RUnlock()
	if !ok {
		return nil, gerrors.ErrPoolNotFound
	}

	if x.askTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, x.askTimeout)
			defer cancel()
		}
	}
	return p.ask(ctx, message)
}

// AskAsync is the promise-returning form of Ask
func (x *system) AskAsync(ctx context.Context, name string, message any) future.Future {
	return future.New(func() (any, error) {
		return x.Ask(ctx, name, message)
	})
}

// Tell routes the given message to one instance of the pool without waiting
// for the outcome
func (x *system) Tell(ctx context.Context, name string, message any) error {
	if !x.started.Load() {
		return gerrors.ErrActorSystemNotStarted
	}

	x.mu.RLock()
	_, ok := x.pools[normalize(name)]
	x.mu.RUnlock()
	if !ok {
		return gerrors.ErrPoolNotFound
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if _, err := x.Ask(detached, name, message); err != nil {
			x.logger.Errorf("pool=(%s) failed to process message: %v", normalize(name), err)
		}
	}()
	return nil
}

// PoolSize returns the number of live instances of the given pool
func (x *system) PoolSize(name string) int64 {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if p, ok := x.pools[normalize(name)]; ok {
		return p.Size()
	}
	return 0
}

// PoolNames returns the names of the live pools in spawn order
func (x *system) PoolNames() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	names := make([]string, len(x.spawnOrder))
	copy(names, x.spawnOrder)
	return names
}

// Start starts the actor system and spawns the startup pools in their
// declaration order
func (x *system) Start(ctx context.Context) error {
	if !x.started.CompareAndSwap(false, true) {
		return gerrors.ErrActorSystemAlreadyStarted
	}
	x.startedAt.Store(time.Now().Unix())
	x.logger.Infof("%s actor system starting..", x.name)

	seen := mapset.NewSet[string]()
	for _, spec := range x.startupPools {
		if !seen.Add(normalize(spec.Name)) {
			x.started.Store(false)
			x.startedAt.Store(0)
			return fmt.Errorf("%w: %s", gerrors.ErrDuplicatePoolSpec, spec.Name)
		}
	}

	for _, spec := range x.startupPools {
		if err := x.Spawn(ctx, spec.Name, spec.Count, spec.Args...); err != nil {
			// unwind the pools started so far, newest first
			if serr := x.stopPools(ctx); serr != nil {
				x.logger.Errorf("failed to unwind startup pools: %v", serr)
			}
			x.started.Store(false)
			x.startedAt.Store(0)
			return err
		}
	}

	x.logger.Infof("%s actor system started", x.name)
	return nil
}

// Stop stops the actor system and drains the live pools in the reverse of
// their spawn order
func (x *system) Stop(ctx context.Context) error {
	if !x.started.CompareAndSwap(true, false) {
		return gerrors.ErrActorSystemNotStarted
	}
	x.logger.Infof("%s actor system stopping..", x.name)

	if x.shutdownTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, x.shutdownTimeout)
			defer cancel()
		}
	}

	err := x.stopPools(ctx)
	x.startedAt.Store(0)
	if err != nil {
		return err
	}

	x.logger.Infof("%s actor system stopped", x.name)
	return nil
}

// Run starts the actor system and blocks until a SIGINT or SIGTERM is
// received, then stops it
func (x *system) Run(ctx context.Context, startHook func(ctx context.Context) error, stopHook func(ctx context.Context) error) {
	if startHook != nil {
		if err := startHook(ctx); err != nil {
			x.logger.Fatal(err)
		}
	}
	if err := x.Start(ctx); err != nil {
		x.logger.Fatal(err)
	}

	notifier := make(chan os.Signal, 1)
	signal.Notify(notifier, syscall.SIGINT, syscall.SIGTERM)
	<-notifier
	signal.Stop(notifier)

	if err := x.Stop(ctx); err != nil {
		x.logger.Error(err)
	}
	if stopHook != nil {
		if err := stopHook(ctx); err != nil {
			x.logger.Error(err)
		}
	}
}

// Running returns true when the actor system is started
func (x *system) Running() bool {
	return x.started.Load()
}

// Uptime returns the number of seconds since the actor system started
func (x *system) Uptime() int64 {
	if x.started.Load() {
		return time.Now().Unix() - x.startedAt.Load()
	}
	return 0
}

// Metric returns a snapshot of the actor system counters
func (x *system) Metric() *Metric {
	x.mu.RLock()
	defer x.mu.RUnlock()

	metric := &Metric{
		poolsCount: int64(len(x.pools)),
		uptime:     x.Uptime(),
	}
	for _, p := range x.pools {
		metric.instancesCount += p.Size()
		metric.messagesCount += p.ProcessedCount()
		metric.restartsCount += p.RestartsCount()
	}
	return metric
}

// stopPools drains every live pool, newest first, and aggregates their
// shutdown errors
func (x *system) stopPools(ctx context.Context) error {
	x.mu.Lock()
	order := make([]string, len(x.spawnOrder))
	copy(order, x.spawnOrder)
	pools := x.pools
	x.pools = make(map[string]*pool)
	x.spawnOrder = nil
	x.mu.Unlock()

	chain := errorschain.New(errorschain.ReturnAll())
	for i := len(order) - 1; i >= 0; i-- {
		if p, ok := pools[order[i]]; ok {
			chain.AddError(p.shutdown(ctx))
			x.logger.Infof("pool=(%s) stopped", order[i])
		}
	}
	return chain.Error()
}

// normalize trims any space and lowers the given pool name
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// remove drops the first occurrence of the given value from the slice
func remove(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i], values[i+1:]...)
		}
	}
	return values
}
