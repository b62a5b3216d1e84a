package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avasari/GraderAPI/pkg/logger_i"
)

// MockSweeper to track sweep calls
type MockSweeper struct {
	SweepCount int32
}

func (m *MockSweeper) SweepExpired(maxAge time.Duration) int {
	atomic.AddInt32(&m.SweepCount, 1)
	return 0
}

func TestJanitor_StopsOnSignal(t *testing.T) {
	logger_i.Init()

	stopChan := make(chan bool, 1)
	var wg sync.WaitGroup

	InitJanitor(&MockSweeper{}, stopChan, &wg)

	close(stopChan)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// janitor exited cleanly
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after the stop channel closed")
	}
}

func TestJanitor_NilSweeperDisabled(t *testing.T) {
	logger_i.Init()

	stopChan := make(chan bool, 1)
	var wg sync.WaitGroup

	InitJanitor(nil, stopChan, &wg)

	// no goroutine was started, Wait must return immediately
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waitgroup should be empty when the janitor is disabled")
	}
}
