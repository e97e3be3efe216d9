// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

// SPMCSender is the strong, non-copyable endpoint of a single-producer/
// multi-consumer channel. Exactly one SPMCSender exists per channel; its
// lifetime bounds the channel's buffer.
type SPMCSender[T any] struct {
	_ noCopy
	s *shared[T]
}

// NewSPMC creates a channel with the given buffering flavor and returns
// its sender, the channel's strong owner. Use Receiver to derive
// consumer handles.
func NewSPMC[T any](f Flavor) *SPMCSender[T] {
	tx := &SPMCSender[T]{s: newShared[T](f)}
	attachFinalizer(tx, tx.s)
	return tx
}

// Receiver derives a new, independent SPMCReceiver for this channel. The
// result is copyable and cheap to clone across any number of consumer
// goroutines.
func (tx *SPMCSender[T]) Receiver() SPMCReceiver[T] {
	return SPMCReceiver[T]{s: tx.s}
}

// Send places v on the channel, suspending the caller per the channel's
// flavor. Send cannot fail: if the sender exists, so does the buffer.
func (tx *SPMCSender[T]) Send(v T) error {
	tx.s.buf.push(v)
	return nil
}

// TrySend places v on the channel without suspending. Returns
// ErrWouldBlock if the value cannot be accepted immediately.
func (tx *SPMCSender[T]) TrySend(v T) error {
	if !tx.s.buf.tryPush(v) {
		return ErrWouldBlock
	}
	return nil
}

// Cap reports the channel's capacity: the bounded capacity, 0 for
// Rendezvous, or a negative sentinel for Unbounded.
func (tx *SPMCSender[T]) Cap() int {
	return tx.s.cap
}

// Close destroys the sender, the channel's strong owner. Expiration is
// checked at the start of every subsequent Recv on any SPMCReceiver
// cloned from this channel, so Recv calls in flight before Close are
// unaffected but every new Recv fails with ErrSenderExpired. Close is
// idempotent.
func (tx *SPMCSender[T]) Close() {
	tx.s.close()
	clearFinalizer(tx)
}

// SPMCReceiver is the copyable, movable endpoint of a single-producer/
// multi-consumer channel. Any number of goroutines may hold and use
// independent clones concurrently; each value is delivered to exactly
// one receiver, with no ordering guarantee across receivers. A single
// SPMCReceiver value is not itself safe for concurrent use by multiple
// goroutines.
type SPMCReceiver[T any] struct {
	s *shared[T]
}

// Recv removes and returns the next value, suspending the caller while
// none is available. Returns ErrSenderExpired if the sender has been
// destroyed.
func (rx SPMCReceiver[T]) Recv() (T, error) {
	if !rx.s.isAlive() {
		var zero T
		return zero, ErrSenderExpired
	}
	return rx.s.buf.pop(), nil
}

// TryRecv removes and returns the next value without suspending.
// Returns ErrSenderExpired if the sender is gone, or ErrWouldBlock if no
// value is immediately available.
func (rx SPMCReceiver[T]) TryRecv() (T, error) {
	if !rx.s.isAlive() {
		var zero T
		return zero, ErrSenderExpired
	}
	v, ok := rx.s.buf.tryPop()
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	return v, nil
}

// Cap reports the channel's capacity, matching SPMCSender.Cap.
func (rx SPMCReceiver[T]) Cap() int {
	return rx.s.cap
}

// SPMCChannel bundles one SPMCSender and its first SPMCReceiver so
// callers that want both ends in one step don't have to construct them
// separately. It cannot be copied but can be moved.
type SPMCChannel[T any] struct {
	_  noCopy
	tx *SPMCSender[T]
	rx SPMCReceiver[T]
}

// NewSPMCChannel creates a channel and returns both endpoints bundled
// together.
func NewSPMCChannel[T any](f Flavor) *SPMCChannel[T] {
	tx := NewSPMC[T](f)
	return &SPMCChannel[T]{tx: tx, rx: tx.Receiver()}
}

// Send delegates to the channel's bundled sender.
func (c *SPMCChannel[T]) Send(v T) error { return c.tx.Send(v) }

// TrySend delegates to the channel's bundled sender.
func (c *SPMCChannel[T]) TrySend(v T) error { return c.tx.TrySend(v) }

// Recv delegates to the channel's bundled receiver.
func (c *SPMCChannel[T]) Recv() (T, error) { return c.rx.Recv() }

// TryRecv delegates to the channel's bundled receiver.
func (c *SPMCChannel[T]) TryRecv() (T, error) { return c.rx.TryRecv() }

// Receiver derives an additional, independent consumer handle.
func (c *SPMCChannel[T]) Receiver() SPMCReceiver[T] { return c.tx.Receiver() }

// Cap reports the channel's capacity.
func (c *SPMCChannel[T]) Cap() int { return c.tx.Cap() }

// Close destroys the channel's sender.
func (c *SPMCChannel[T]) Close() { c.tx.Close() }
