package endpoint

import (
	"sync"
	"testing"
)

func TestRoundRobinCyclesInOrder(t *testing.T) {
	addrs := []string{"a:1", "b:2", "c:3"}
	rr := NewRoundRobin()

	want := []string{"a:1", "b:2", "c:3", "a:1", "b:2"}
	for i, w := range want {
		if got := rr.Pick(addrs); got != w {
			t.Errorf("pick %d: got %q, want %q", i, got, w)
		}
	}
}

func TestRoundRobinSingleAddress(t *testing.T) {
	rr := NewRoundRobin()
	for i := 0; i < 5; i++ {
		if got := rr.Pick([]string{"only:1"}); got != "only:1" {
			t.Errorf("got %q, want %q", got, "only:1")
		}
	}
}

func TestRoundRobinConcurrentSafe(t *testing.T) {
	addrs := []string{"a:1", "b:2"}
	rr := NewRoundRobin()
	counts := make(map[string]int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := rr.Pick(addrs)
			mu.Lock()
			counts[got]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counts["a:1"]+counts["b:2"] != 100 {
		t.Errorf("expected 100 total picks, got %+v", counts)
	}
}
