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

// Package actor implements a named, round-robin actor pool dispatcher.
//
// Actor behaviors are registered by name through a factory. Spawning a name
// creates a pool of instances; every message addressed to that name is
// routed to exactly one idle instance, least-recently-used first, and the
// instance returns to the tail of the rotation once its handler completes.
// When every instance is busy, sends park in a bounded FIFO queue and are
// matched to freed instances in arrival order.
//
// The ActorSystem supervises the pools: startup pools declared with
// WithPool are spawned in order when the system starts and drained in
// reverse order when it stops.
package actor
