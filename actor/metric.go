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

// Metric defines the actor system metric
type Metric struct {
	// poolsCount returns the total number of live pools in the system
	poolsCount int64
	// instancesCount returns the total number of live instances in the system
	instancesCount int64
	// messagesCount returns the total number of messages dispatched
	messagesCount int64
	// restartsCount returns the total number of instances replaced after fatal errors
	restartsCount int64
	// uptime returns the number of seconds since the system started
	uptime int64
}

// PoolsCount returns the total number of live pools in the system
func (m Metric) PoolsCount() int64 {
	return m.poolsCount
}

// InstancesCount returns the total number of live instances in the system
func (m Metric) InstancesCount() int64 {
	return m.instancesCount
}

// MessagesCount returns the total number of messages dispatched
func (m Metric) MessagesCount() int64 {
	return m.messagesCount
}

// RestartsCount returns the total number of instances replaced after fatal errors
func (m Metric) RestartsCount() int64 {
	return m.restartsCount
}

// Uptime returns the number of seconds since the system started
func (m Metric) Uptime() int64 {
	return m.uptime
}
