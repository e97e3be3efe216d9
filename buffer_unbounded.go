// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

import "sync"

// unboundedBuffer is a FIFO sequence with no capacity limit, backed by a
// single mutex and one condition variable.
type unboundedBuffer[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	q        []T
	head     int // index of the oldest element in q
}

func newUnboundedBuffer[T any]() *unboundedBuffer[T] {
	b := &unboundedBuffer[T]{}
	b.notEmpty = sync.NewCond(&b.mu)
	return b
}

func (b *unboundedBuffer[T]) push(v T) {
	b.mu.Lock()
	b.q = append(b.q, v)
	b.mu.Unlock()
	b.notEmpty.Signal()
}

func (b *unboundedBuffer[T]) pop() T {
	b.mu.Lock()
	for len(b.q) == b.head {
		b.notEmpty.Wait()
	}
	v := b.take()
	b.mu.Unlock()
	return v
}

func (b *unboundedBuffer[T]) tryPush(v T) bool {
	b.push(v)
	return true
}

func (b *unboundedBuffer[T]) tryPop() (T, bool) {
	b.mu.Lock()
	if len(b.q) == b.head {
		b.mu.Unlock()
		var zero T
		return zero, false
	}
	v := b.take()
	b.mu.Unlock()
	return v, true
}

// take removes and returns the front element. Caller must hold b.mu and
// have already established len(b.q) > b.head.
func (b *unboundedBuffer[T]) take() T {
	v := b.q[b.head]
	var zero T
	b.q[b.head] = zero // allow GC of the referenced value
	b.head++

	// Compact once the consumed prefix dominates the live slice so the
	// backing array doesn't grow without bound under a fast producer /
	// slow consumer.
	if b.head > 64 && b.head*2 > len(b.q) {
		n := copy(b.q, b.q[b.head:])
		b.q = b.q[:n]
		b.head = 0
	}
	return v
}
