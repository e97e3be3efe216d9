// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

import "sync"

// rendezvousBuffer is a zero-capacity hand-off: an optional cell holding
// at most one value, with three condition variables: slotEmpty for
// producers waiting for room, slotFilled for consumers waiting for a
// value, and slotDrained for the producer that just filled the cell,
// waiting for its value to be taken.
//
// push only returns once a pop has taken its value — this two-phase
// discipline is what makes Rendezvous a true synchronization point
// rather than a size-1 bounded buffer that merely looks like one.
type rendezvousBuffer[T any] struct {
	mu          sync.Mutex
	slotEmpty   *sync.Cond
	slotFilled  *sync.Cond
	slotDrained *sync.Cond
	has         bool
	value       T

	waitingConsumers int // consumers currently parked on slotFilled
	waitingProducers int // producers currently parked on slotEmpty
}

func newRendezvousBuffer[T any]() *rendezvousBuffer[T] {
	b := &rendezvousBuffer[T]{}
	b.slotEmpty = sync.NewCond(&b.mu)
	b.slotFilled = sync.NewCond(&b.mu)
	b.slotDrained = sync.NewCond(&b.mu)
	return b
}

func (b *rendezvousBuffer[T]) push(v T) {
	b.mu.Lock()
	for b.has {
		b.waitingProducers++
		b.slotEmpty.Wait()
		b.waitingProducers--
	}
	b.value = v
	b.has = true
	b.slotFilled.Signal()

	// Wait for the matching pop to take the value before returning,
	// giving push a genuine synchronization point with recv.
	for b.has {
		b.slotDrained.Wait()
	}
	b.mu.Unlock()
}

func (b *rendezvousBuffer[T]) pop() T {
	b.mu.Lock()
	for !b.has {
		b.waitingConsumers++
		b.slotFilled.Wait()
		b.waitingConsumers--
	}
	v := b.take()
	b.mu.Unlock()
	return v
}

// tryPush succeeds only when a consumer is already parked waiting for a
// value: a rendezvous hand-off cannot be decided unilaterally, so this
// never creates a pending value for a future Recv to find. Unlike push,
// tryPush does not wait for the woken consumer to actually take the
// value — the consumer is already parked under this same mutex, so
// handing it the value and returning is enough to guarantee delivery
// without the caller itself suspending.
func (b *rendezvousBuffer[T]) tryPush(v T) bool {
	b.mu.Lock()
	if b.has || b.waitingConsumers == 0 {
		b.mu.Unlock()
		return false
	}
	b.value = v
	b.has = true
	b.slotFilled.Signal()
	b.mu.Unlock()
	return true
}

// tryPop succeeds only when a value is already present.
func (b *rendezvousBuffer[T]) tryPop() (T, bool) {
	b.mu.Lock()
	if !b.has {
		b.mu.Unlock()
		var zero T
		return zero, false
	}
	v := b.take()
	b.mu.Unlock()
	return v, true
}

// take removes the cell's value and wakes the matched producer plus, if
// any, the next waiting producer. Every producer parked on slotDrained
// is woken, since the matched one is not necessarily the oldest waiter
// there. Caller must hold b.mu and have already established b.has.
func (b *rendezvousBuffer[T]) take() T {
	v := b.value
	var zero T
	b.value = zero
	b.has = false
	b.slotDrained.Broadcast()
	b.slotEmpty.Signal()
	return v
}
