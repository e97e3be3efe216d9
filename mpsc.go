// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

// MPSCReceiver is the strong, non-copyable endpoint of a multi-producer/
// single-consumer channel. Exactly one MPSCReceiver exists per channel;
// its lifetime bounds the channel's buffer. Since only one receiver
// exists, delivery to it is a total FIFO order across all producers that
// send from the same goroutine, and per-producer FIFO across many.
type MPSCReceiver[T any] struct {
	_ noCopy
	s *shared[T]
}

// NewMPSC creates a channel with the given buffering flavor and returns
// its receiver, the channel's strong owner. Use Sender to derive
// producer handles.
func NewMPSC[T any](f Flavor) *MPSCReceiver[T] {
	rx := &MPSCReceiver[T]{s: newShared[T](f)}
	attachFinalizer(rx, rx.s)
	return rx
}

// Sender derives a new, independent MPSCSender for this channel. The
// result is copyable and cheap to clone across any number of producer
// goroutines.
func (r *MPSCReceiver[T]) Sender() MPSCSender[T] {
	return MPSCSender[T]{s: r.s}
}

// Recv removes and returns the next value, suspending the caller while
// the buffer holds none. Recv cannot fail: if the receiver exists, so
// does the buffer.
func (r *MPSCReceiver[T]) Recv() (T, error) {
	return r.s.buf.pop(), nil
}

// TryRecv removes and returns the next value without suspending.
// Returns ErrWouldBlock if none is immediately available.
func (r *MPSCReceiver[T]) TryRecv() (T, error) {
	v, ok := r.s.buf.tryPop()
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	return v, nil
}

// Cap reports the channel's capacity: the bounded capacity, 0 for
// Rendezvous, or a negative sentinel for Unbounded.
func (r *MPSCReceiver[T]) Cap() int {
	return r.s.cap
}

// Close destroys the receiver, the channel's strong owner. Every Send
// on every MPSCSender cloned from this channel subsequently fails with
// ErrReceiverExpired. Close is idempotent.
func (r *MPSCReceiver[T]) Close() {
	r.s.close()
	clearFinalizer(r)
}

// MPSCSender is the copyable, movable endpoint of a multi-producer/
// single-consumer channel. Any number of goroutines may hold and use
// independent clones concurrently; a single MPSCSender value is not
// itself safe for concurrent use by multiple goroutines.
type MPSCSender[T any] struct {
	s *shared[T]
}

// Send places v on the channel, suspending the caller per the channel's
// flavor. Returns ErrReceiverExpired if the receiver has been destroyed.
func (tx MPSCSender[T]) Send(v T) error {
	if !tx.s.isAlive() {
		return ErrReceiverExpired
	}
	tx.s.buf.push(v)
	return nil
}

// TrySend places v on the channel without suspending. Returns
// ErrReceiverExpired if the receiver is gone, or ErrWouldBlock if the
// value cannot be accepted immediately.
func (tx MPSCSender[T]) TrySend(v T) error {
	if !tx.s.isAlive() {
		return ErrReceiverExpired
	}
	if !tx.s.buf.tryPush(v) {
		return ErrWouldBlock
	}
	return nil
}

// Cap reports the channel's capacity, matching MPSCReceiver.Cap.
func (tx MPSCSender[T]) Cap() int {
	return tx.s.cap
}

// MPSCChannel bundles one MPSCReceiver and its first MPSCSender so
// callers that want both ends in one step don't have to construct them
// separately. It cannot be copied but can be moved.
type MPSCChannel[T any] struct {
	_  noCopy
	rx *MPSCReceiver[T]
	tx MPSCSender[T]
}

// NewMPSCChannel creates a channel and returns both endpoints bundled
// together.
func NewMPSCChannel[T any](f Flavor) *MPSCChannel[T] {
	rx := NewMPSC[T](f)
	return &MPSCChannel[T]{rx: rx, tx: rx.Sender()}
}

// Send delegates to the channel's bundled sender.
func (c *MPSCChannel[T]) Send(v T) error { return c.tx.Send(v) }

// TrySend delegates to the channel's bundled sender.
func (c *MPSCChannel[T]) TrySend(v T) error { return c.tx.TrySend(v) }

// Recv delegates to the channel's bundled receiver.
func (c *MPSCChannel[T]) Recv() (T, error) { return c.rx.Recv() }

// TryRecv delegates to the channel's bundled receiver.
func (c *MPSCChannel[T]) TryRecv() (T, error) { return c.rx.TryRecv() }

// Sender derives an additional, independent producer handle.
func (c *MPSCChannel[T]) Sender() MPSCSender[T] { return c.rx.Sender() }

// Cap reports the channel's capacity.
func (c *MPSCChannel[T]) Cap() int { return c.rx.Cap() }

// Close destroys the channel's receiver.
func (c *MPSCChannel[T]) Close() { c.rx.Close() }
