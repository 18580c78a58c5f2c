package testkit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var (
	greet     = func(name string) string { return "مرحبا " + name }
	swapLimit = 50
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("func", func(t *testing.T) {
		Swap(t, &greet, func(string) string { return "stub" })
		if got := greet("x"); got != "stub" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})
	if got := greet("x"); got != "مرحبا x" {
		t.Fatalf("swap did not restore original, got %q", got)
	}

	t.Run("int", func(t *testing.T) {
		Swap(t, &swapLimit, 5)
		if swapLimit != 5 {
			t.Fatalf("swap failed, got %d", swapLimit)
		}
	})
	if swapLimit != 50 {
		t.Fatalf("swap did not restore original, got %d", swapLimit)
	}
}

func TestSerial_NoOverlap(t *testing.T) {
	var inside, peak int32
	var wg sync.WaitGroup
	wg.Add(3)
	t.Run("group", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			t.Run("worker", func(t *testing.T) {
				t.Parallel()
				defer wg.Done()
				Serial(t)
				n := atomic.AddInt32(&inside, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
			})
		}
	})
	wg.Wait()
	if peak != 1 {
		t.Fatalf("expected serial execution, peak concurrency %d", peak)
	}
}
