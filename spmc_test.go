// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"code.hybscloud.com/bchan"
)

// TestSPMCOneConsumerOrder checks that a single producer sending 0..4
// and a single consumer reading five values observes them in order.
func TestSPMCOneConsumerOrder(t *testing.T) {
	tx := bchan.NewSPMC[int](bchan.Unbounded())
	rx := tx.Receiver()

	go func() {
		for i := range 5 {
			if err := tx.Send(i); err != nil {
				t.Errorf("Send(%d): %v", i, err)
			}
		}
	}()

	for i := range 5 {
		v, err := rx.Recv()
		if err != nil {
			t.Fatalf("Recv(%d): %v", i, err)
		}
		if v != i {
			t.Fatalf("Recv(%d): got %d, want %d", i, v, i)
		}
	}
}

// TestSPMCFiveConsumersTenValues checks five consumers each reading two
// values out of ten sent: the union of everything received must equal
// {0,...,9} with no value delivered twice.
func TestSPMCFiveConsumersTenValues(t *testing.T) {
	tx := bchan.NewSPMC[int](bchan.Unbounded())

	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func(rx bchan.SPMCReceiver[int]) {
			defer wg.Done()
			for range 2 {
				v, err := rx.Recv()
				if err != nil {
					t.Errorf("Recv: %v", err)
					return
				}
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		}(tx.Receiver())
	}

	for i := range 10 {
		if err := tx.Send(i); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}
	wg.Wait()

	if len(got) != 10 {
		t.Fatalf("total received: got %d, want 10", len(got))
	}
	slices.Sort(got)
	want := make([]int, 10)
	for i := range want {
		want[i] = i
	}
	if !slices.Equal(got, want) {
		t.Fatalf("received values: got %v, want %v", got, want)
	}
}

// TestSPMCExpiration checks that once the sender is destroyed, every
// subsequent Recv fails with ErrSenderExpired.
func TestSPMCExpiration(t *testing.T) {
	tx := bchan.NewSPMC[int](bchan.Unbounded())
	rx := tx.Receiver()
	tx.Close()

	if _, err := rx.Recv(); !errors.Is(err, bchan.ErrSenderExpired) {
		t.Fatalf("Recv after Close: got %v, want ErrSenderExpired", err)
	}
	if _, err := rx.TryRecv(); !errors.Is(err, bchan.ErrSenderExpired) {
		t.Fatalf("TryRecv after Close: got %v, want ErrSenderExpired", err)
	}
	if !bchan.IsExpired(func() error { _, err := rx.Recv(); return err }()) {
		t.Fatalf("IsExpired should report true for a sender-expired Recv")
	}
}

func TestSPMCBoundedBackpressure(t *testing.T) {
	const n = 2
	tx := bchan.NewSPMC[int](bchan.Bounded(n))
	rx := tx.Receiver()

	for i := range n {
		if err := tx.Send(i); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
	}
	if err := tx.TrySend(99); !errors.Is(err, bchan.ErrWouldBlock) {
		t.Fatalf("TrySend on full buffer: got %v, want ErrWouldBlock", err)
	}
	if v, err := rx.Recv(); err != nil || v != 0 {
		t.Fatalf("Recv: got (%d, %v), want (0, nil)", v, err)
	}
	if err := tx.TrySend(99); err != nil {
		t.Fatalf("TrySend after drain: %v", err)
	}
}

func TestSPMCCap(t *testing.T) {
	if got := bchan.NewSPMC[int](bchan.Unbounded()).Cap(); got >= 0 {
		t.Fatalf("Unbounded Cap: got %d, want negative", got)
	}
	if got := bchan.NewSPMC[int](bchan.Bounded(9)).Cap(); got != 9 {
		t.Fatalf("Bounded(9) Cap: got %d, want 9", got)
	}
}
