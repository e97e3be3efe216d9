// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrReceiverExpired is returned by an MPSC Sender's Send once the
// channel's Receiver has been destroyed. It is permanent: once a Sender
// observes it, every later Send through that Sender (or any of its
// clones) observes it too.
var ErrReceiverExpired = errors.New("bchan: receiver expired")

// ErrSenderExpired is returned by an SPMC Receiver's Recv once the
// channel's Sender has been destroyed. It is permanent in the same way
// as ErrReceiverExpired.
var ErrSenderExpired = errors.New("bchan: sender expired")

// IsExpired reports whether err is ErrReceiverExpired or ErrSenderExpired.
func IsExpired(err error) bool {
	return errors.Is(err, ErrReceiverExpired) || errors.Is(err, ErrSenderExpired)
}

// ErrWouldBlock indicates TrySend/TryRecv cannot proceed immediately.
//
// For TrySend: the buffer is full (Bounded), or no consumer is parked
// waiting to take the value right now (Rendezvous). For TryRecv: the
// buffer is empty, or no producer is parked waiting to hand one off
// (Rendezvous).
//
// ErrWouldBlock is a control flow signal, not a failure: the caller
// should retry later rather than propagate it as an error.
//
// This is an alias for [iox.ErrWouldBlock], matching the convention of
// the non-blocking queue package this module's non-blocking entry
// points were adapted from, so callers mixing both packages can use a
// single errors.Is check across the ecosystem.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates a non-blocking operation
// would have blocked. Delegates to [iox.IsWouldBlock] for wrapped-error
// support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
