// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bchan provides typed, in-process, blocking channels for two
// topologies: multi-producer/single-consumer (MPSC) and single-producer/
// multi-consumer (SPMC), each in three buffering flavors.
//
// # Quick Start
//
// Construct the non-copyable (strong) side with a flavor, then derive
// the copyable (observer) side from it:
//
//	rx := bchan.NewMPSC[int](bchan.Unbounded())
//	tx := rx.Sender()
//
//	go func() {
//	    _ = tx.Send(42)
//	}()
//	v, _ := rx.Recv()
//
// Or build both ends at once with a Channel facade:
//
//	ch := bchan.NewMPSCChannel[int](bchan.Bounded(16))
//	go func() { _ = ch.Send(1) }()
//	v, _ := ch.Recv()
//
// # Flavors
//
// Every channel picks one of three buffering flavors at construction:
//
//	bchan.Unbounded()     // unbounded FIFO, Send never blocks
//	bchan.Bounded(n)      // fixed-capacity FIFO, Send blocks while full
//	bchan.Rendezvous()    // zero-capacity hand-off, Send blocks until Recv takes it
//
// # Topologies
//
// MPSC (multi-producer/single-consumer): Receiver is the strong, non-
// copyable endpoint; Sender is copyable and cheap to clone across
// producer goroutines.
//
//	rx := bchan.NewMPSC[Event](bchan.Unbounded())
//	for range 5 {
//	    go func(tx bchan.MPSCSender[Event]) {
//	        _ = tx.Send(Event{})
//	    }(rx.Sender())
//	}
//	for range 5 {
//	    ev, _ := rx.Recv()
//	    _ = ev
//	}
//
// SPMC (single-producer/multi-consumer): Sender is the strong, non-
// copyable endpoint; Receiver is copyable and cheap to clone across
// consumer goroutines.
//
//	tx := bchan.NewSPMC[Task](bchan.Bounded(64))
//	for range 4 {
//	    go func(rx bchan.SPMCReceiver[Task]) {
//	        for {
//	            task, err := rx.Recv()
//	            if err != nil {
//	                return // sender gone
//	            }
//	            task.Run()
//	        }
//	    }(tx.Receiver())
//	}
//
// # Errors
//
// There are exactly two failure modes, both permanent once they start:
// [ErrReceiverExpired] on MPSC Send after the Receiver is gone, and
// [ErrSenderExpired] on SPMC Recv after the Sender is gone. Use
// [IsExpired] to test for either.
//
// # Non-blocking attempts
//
// Every flavor additionally supports TrySend/TryRecv, which never
// suspend and return [ErrWouldBlock] (an alias of
// [code.hybscloud.com/iox.ErrWouldBlock]) when the operation cannot
// complete immediately:
//
//	backoff := iox.Backoff{}
//	for tx.TrySend(item) != nil {
//	    backoff.Wait()
//	}
//
// On a Rendezvous channel, TrySend only succeeds if a Recv is already
// waiting to take the value (and symmetrically for TryRecv): a
// rendezvous hand-off is, by definition, a synchronization point between
// two goroutines, so an unmatched Try always reports ErrWouldBlock.
//
// # Concurrency model
//
// Channels use OS-level goroutines, not cooperative tasks. Every Send/
// Recv call is synchronous from the caller's perspective; the buffer's
// mutex and condition variables are the only synchronization primitives
// involved. There is no lock-free or wait-free path anywhere in this
// package.
package bchan
