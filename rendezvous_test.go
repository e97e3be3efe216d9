// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan_test

import (
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/bchan"
)

// TestRendezvousSynchronization checks that Send on a Rendezvous channel
// does not return until Recv has begun taking the value. We approximate
// "recv observed no later than send returns" by recording a timestamp
// from inside the goroutine driving Recv right before it returns, and
// one from the sender right after Send returns, then asserting the
// ordering holds.
func TestRendezvousSynchronization(t *testing.T) {
	rx := bchan.NewMPSC[int](bchan.Rendezvous())
	tx := rx.Sender()

	var tRecv time.Time
	recvDone := make(chan struct{})
	go func() {
		v, err := rx.Recv()
		tRecv = time.Now()
		close(recvDone)
		if err != nil || v != 42 {
			t.Errorf("Recv: got (%d, %v), want (42, nil)", v, err)
		}
	}()

	// Give the receiver a chance to park on slotFilled before sending,
	// so the hand-off is observed rather than racing the goroutine start.
	time.Sleep(10 * time.Millisecond)

	if err := tx.Send(42); err != nil {
		t.Fatalf("Send: %v", err)
	}
	tSend := time.Now()
	<-recvDone

	if tRecv.After(tSend) {
		t.Fatalf("recv observed at %v, after send returned at %v", tRecv, tSend)
	}
}

// TestRendezvousNoBuffering verifies the zero-capacity property directly:
// a Send must not return while nothing is reading, and completes only
// once a Recv has taken its value.
func TestRendezvousNoBuffering(t *testing.T) {
	rx := bchan.NewMPSC[int](bchan.Rendezvous())
	tx := rx.Sender()

	sent := make(chan struct{})
	go func() {
		_ = tx.Send(1)
		close(sent)
	}()

	select {
	case <-sent:
		t.Fatal("Send on rendezvous returned with no receiver present")
	case <-time.After(20 * time.Millisecond):
	}

	v, err := rx.Recv()
	if err != nil || v != 1 {
		t.Fatalf("Recv: got (%d, %v), want (1, nil)", v, err)
	}
	<-sent
}

// TestRendezvousTryRequiresWaitingPartner checks the Try* semantics
// documented in the package doc: a rendezvous Try only succeeds when a partner is
// already parked waiting.
func TestRendezvousTryRequiresWaitingPartner(t *testing.T) {
	rx := bchan.NewMPSC[int](bchan.Rendezvous())
	tx := rx.Sender()

	if err := tx.TrySend(1); !errors.Is(err, bchan.ErrWouldBlock) {
		t.Fatalf("TrySend with no waiting receiver: got %v, want ErrWouldBlock", err)
	}

	recvResult := make(chan int, 1)
	go func() {
		v, _ := rx.Recv()
		recvResult <- v
	}()
	time.Sleep(10 * time.Millisecond)

	if err := tx.TrySend(7); err != nil {
		t.Fatalf("TrySend with a waiting receiver: %v", err)
	}
	if got := <-recvResult; got != 7 {
		t.Fatalf("Recv matched by TrySend: got %d, want 7", got)
	}

	if _, err := rx.TryRecv(); !errors.Is(err, bchan.ErrWouldBlock) {
		t.Fatalf("TryRecv with no waiting sender: got %v, want ErrWouldBlock", err)
	}
}

func TestRendezvousCap(t *testing.T) {
	if got := bchan.NewMPSC[int](bchan.Rendezvous()).Cap(); got != 0 {
		t.Fatalf("Rendezvous Cap: got %d, want 0", got)
	}
}
