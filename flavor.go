// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

// flavorKind selects which buffer discipline backs a channel.
type flavorKind int8

const (
	flavorUnbounded flavorKind = iota
	flavorBounded
	flavorRendezvous
)

// Flavor selects a channel's buffering discipline at construction time.
//
// This is the enumerated-configuration form of the signed-capacity
// encoding described for the source API (capacity < 0 is unbounded,
// == 0 is rendezvous, > 0 is bounded(capacity)): Unbounded, Bounded(n),
// and Rendezvous are the only three values a Flavor can hold.
type Flavor struct {
	kind     flavorKind
	capacity int
}

// Unbounded selects an unbounded FIFO buffer. Send never suspends;
// memory grows with queue depth.
func Unbounded() Flavor {
	return Flavor{kind: flavorUnbounded}
}

// Bounded selects a fixed-capacity FIFO buffer. Send suspends while the
// buffer holds n values; Recv suspends while it holds none.
//
// Panics if n <= 0.
func Bounded(n int) Flavor {
	if n <= 0 {
		panic("bchan: Bounded capacity must be > 0")
	}
	return Flavor{kind: flavorBounded, capacity: n}
}

// Rendezvous selects a zero-capacity hand-off buffer: Send suspends
// until a matching Recv has taken the value, and Recv suspends until a
// matching Send has placed one.
func Rendezvous() Flavor {
	return Flavor{kind: flavorRendezvous}
}

// cap reports the capacity Cap() should surface for this flavor:
// a negative sentinel for Unbounded, 0 for Rendezvous, and n for
// Bounded(n) — mirroring spec's own k<0/k==0/k>0 encoding.
func (f Flavor) cap() int {
	switch f.kind {
	case flavorBounded:
		return f.capacity
	case flavorRendezvous:
		return 0
	default:
		return -1
	}
}

func newBuffer[T any](f Flavor) buffer[T] {
	switch f.kind {
	case flavorBounded:
		return newBoundedBuffer[T](f.capacity)
	case flavorRendezvous:
		return newRendezvousBuffer[T]()
	default:
		return newUnboundedBuffer[T]()
	}
}
