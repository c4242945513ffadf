package events

import (
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.GetSnapshot()
	if snap.EventsSent != 0 || snap.EventsDelivered != 0 || snap.EventsDropped != 0 {
		t.Errorf("Expected zero counters, got %+v", snap)
	}

	// Verify StartTime is set to a recent time (within last second)
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestMetrics_ConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncEventsSent()
				m.IncEventsDropped()
			}
		}()
	}
	wg.Wait()

	if got := m.EventsSent.Load(); got != 1000 {
		t.Errorf("Expected 1000 events sent, got %d", got)
	}
	if got := m.EventsDropped.Load(); got != 1000 {
		t.Errorf("Expected 1000 events dropped, got %d", got)
	}
}

func TestMetrics_SetListeners(t *testing.T) {
	m := NewMetrics()
	m.SetListeners(3)
	if got := m.GetSnapshot().Listeners; got != 3 {
		t.Errorf("Expected 3 listeners, got %d", got)
	}
}
