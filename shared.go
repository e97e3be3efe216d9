// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

import (
	"runtime"

	"code.hybscloud.com/atomix"
)

// shared is the jointly-owned record behind every channel: one buffer
// plus an "alive" flag recording whether the buffer's strong owner still
// exists.
//
// Every Sender/Receiver pair around a channel holds a pointer to the
// same *shared[T]. Go is garbage collected, so there is no destructor to
// hook for "the strong side is gone" — the strong-holding endpoint type
// (Receiver for MPSC, Sender for SPMC) calls close() explicitly from its
// Close method, and a finalizer is attached as a backstop for callers
// that never call Close (see attachFinalizer).
//
// alive is an atomix.Bool rather than a plain bool guarded by the
// buffer's mutex: it lets any observer query liveness atomically, without
// ever touching the buffer's own lock.
type shared[T any] struct {
	buf   buffer[T]
	alive atomix.Bool
	cap   int
}

func newShared[T any](f Flavor) *shared[T] {
	s := &shared[T]{buf: newBuffer[T](f), cap: f.cap()}
	s.alive.StoreRelease(true)
	return s
}

// isAlive reports whether the strong side still exists. Safe to call
// from any goroutine without additional synchronization.
func (s *shared[T]) isAlive() bool {
	return s.alive.LoadAcquire()
}

// close marks the shared record permanently expired. Idempotent.
func (s *shared[T]) close() {
	s.alive.StoreRelease(false)
}

// attachFinalizer arms a GC backstop that calls close if owner is
// collected without an explicit Close. owner must be the strong-holding
// endpoint value (a pointer), never s itself — finalizing s would be
// trivially true the moment the last observer drops its reference, which
// is not the lifecycle event this is meant to catch.
func attachFinalizer[T any](owner any, s *shared[T]) {
	runtime.SetFinalizer(owner, func(any) { s.close() })
}

// clearFinalizer disarms the backstop after an explicit Close, so the
// finalizer doesn't fire a second time (harmless, since close is
// idempotent, but avoids scheduling needless finalizer work).
func clearFinalizer(owner any) {
	runtime.SetFinalizer(owner, nil)
}
