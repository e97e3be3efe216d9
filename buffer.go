// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

// buffer is the shared contract for the three buffering disciplines.
// All synchronization — mutex, waiters, capacity, hand-off state — is
// internal to the implementation; callers never see a lock.
//
// push and pop are safe to call concurrently from any number of
// goroutines. Neither operation fails, drops a value, or wakes spuriously
// without re-checking its predicate. Expiration (the "other side is
// gone") is not a buffer concern — it belongs to the endpoint lifecycle
// layer in shared.go, which decides whether to call push/pop at all.
type buffer[T any] interface {
	// push inserts v, suspending the calling goroutine according to the
	// buffer's discipline (never for Unbounded, while full for Bounded,
	// until a matching pop completes for Rendezvous).
	push(v T)

	// pop removes and returns the oldest available value, suspending the
	// calling goroutine while none is available.
	pop() T

	// tryPush attempts to insert v without suspending. ok is false if the
	// buffer cannot accept v immediately.
	tryPush(v T) (ok bool)

	// tryPop attempts to remove a value without suspending. ok is false
	// if no value is immediately available.
	tryPop() (v T, ok bool)
}
