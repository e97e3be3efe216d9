// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

import "sync"

// boundedBuffer is a fixed-capacity FIFO backed by one mutex and two
// condition variables. Exactly one waiter is woken per state change
// (Signal, not Broadcast) to avoid a thundering herd; every waiter
// re-checks its own predicate on wake.
type boundedBuffer[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	q        []T
	head     int
	n        int // number of buffered elements
	cap      int
}

func newBoundedBuffer[T any](capacity int) *boundedBuffer[T] {
	b := &boundedBuffer[T]{q: make([]T, capacity), cap: capacity}
	b.notFull = sync.NewCond(&b.mu)
	b.notEmpty = sync.NewCond(&b.mu)
	return b
}

func (b *boundedBuffer[T]) push(v T) {
	b.mu.Lock()
	for b.n == b.cap {
		b.notFull.Wait()
	}
	b.insert(v)
	b.mu.Unlock()
	b.notEmpty.Signal()
}

func (b *boundedBuffer[T]) pop() T {
	b.mu.Lock()
	for b.n == 0 {
		b.notEmpty.Wait()
	}
	v := b.remove()
	b.mu.Unlock()
	b.notFull.Signal()
	return v
}

func (b *boundedBuffer[T]) tryPush(v T) bool {
	b.mu.Lock()
	if b.n == b.cap {
		b.mu.Unlock()
		return false
	}
	b.insert(v)
	b.mu.Unlock()
	b.notEmpty.Signal()
	return true
}

func (b *boundedBuffer[T]) tryPop() (T, bool) {
	b.mu.Lock()
	if b.n == 0 {
		b.mu.Unlock()
		var zero T
		return zero, false
	}
	v := b.remove()
	b.mu.Unlock()
	b.notFull.Signal()
	return v, true
}

// insert appends v at the tail. Caller must hold b.mu and have already
// established b.n < b.cap.
func (b *boundedBuffer[T]) insert(v T) {
	tail := (b.head + b.n) % b.cap
	b.q[tail] = v
	b.n++
}

// remove takes the head element. Caller must hold b.mu and have already
// established b.n > 0.
func (b *boundedBuffer[T]) remove() T {
	v := b.q[b.head]
	var zero T
	b.q[b.head] = zero
	b.head = (b.head + 1) % b.cap
	b.n--
	return v
}
