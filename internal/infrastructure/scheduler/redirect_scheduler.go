package scheduler

import (
	"log"
	"sync"
	"time"

	"geds_checkout/internal/usecase/interfaces"
)

// RedirectScheduler fires one delayed redirect per session.
//
// Scheduling the same session again replaces the pending timer. Stop cancels
// everything still pending.
type RedirectScheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	onFire  func(sessionID, target string)
	stopped bool
}

var _ interfaces.IRedirectScheduler = (*RedirectScheduler)(nil)

// NewRedirectScheduler builds a scheduler that calls onFire when a redirect is
// due. A nil onFire only logs.
func NewRedirectScheduler(onFire func(sessionID, target string)) *RedirectScheduler {
	if onFire == nil {
		onFire = func(sessionID, target string) {
			log.Printf("[checkout][redirect] session_id=%s target=%s", sessionID, target)
		}
	}
	return &RedirectScheduler{timers: map[string]*time.Timer{}, onFire: onFire}
}

func (s *RedirectScheduler) Schedule(sessionID, target string, after time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if t, ok := s.timers[sessionID]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(after, func() {
		s.mu.Lock()
		if s.timers[sessionID] != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, sessionID)
		s.mu.Unlock()
		s.onFire(sessionID, target)
	})
	s.timers[sessionID] = timer
}

// Cancel drops a pending redirect. It reports whether one was pending.
func (s *RedirectScheduler) Cancel(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[sessionID]
	if !ok {
		return false
	}
	delete(s.timers, sessionID)
	return t.Stop()
}

// Pending returns the number of redirects not yet fired.
func (s *RedirectScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *RedirectScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
