package services

import (
	"sync"
	"testing"
)

func TestDefaultProfileName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"ana@fotostudio.com.br", "ana"},
		{"joao.silva@gmail.com", "joao.silva"},
		{"no-at-sign", "no-at-sign"},
		{"@leading.com", "@leading.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := DefaultProfileName(tt.email); got != tt.want {
				t.Errorf("DefaultProfileName(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestFlightGuard(t *testing.T) {
	g := newFlightGuard()

	if !g.tryAcquire(1) {
		t.Fatal("first acquire should succeed")
	}
	if g.tryAcquire(1) {
		t.Fatal("second acquire for same user should fail while in flight")
	}
	if !g.tryAcquire(2) {
		t.Fatal("other users are not affected")
	}

	g.release(1)
	if !g.tryAcquire(1) {
		t.Fatal("acquire after release should succeed")
	}
}

func TestFlightGuardConcurrent(t *testing.T) {
	g := newFlightGuard()

	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if g.tryAcquire(7) {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if acquired != 1 {
		t.Errorf("exactly one goroutine should win the latch, got %d", acquired)
	}
}
