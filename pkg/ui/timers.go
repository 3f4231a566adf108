package ui

import (
	"sync"
	"time"
)

// TimerSet tracks the timers and tickers one page instance owns. A page
// must never touch a timer owned by another instance; StopAll runs from
// that instance's Cleanup.
type TimerSet struct {
	mu      sync.Mutex
	stopped bool
	timers  map[*time.Timer]struct{}
	stops   []chan struct{}
}

func NewTimerSet() *TimerSet {
	return &TimerSet{timers: make(map[*time.Timer]struct{})}
}

// After schedules fn once after d.
func (s *TimerSet) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, t)
		s.mu.Unlock()
		fn()
	})
	s.timers[t] = struct{}{}
}

// Every runs fn on a fixed interval (clock ticks, polling) until the set
// is stopped.
func (s *TimerSet) Every(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	stop := make(chan struct{})
	s.stops = append(s.stops, stop)
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stop:
				return
			}
		}
	}()
}

// StopAll cancels every pending timer and ticker. Further After/Every
// calls are ignored, so a late-firing handler cannot re-arm a destroyed
// page.
func (s *TimerSet) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
	for _, stop := range s.stops {
		close(stop)
	}
	s.stops = nil
}
