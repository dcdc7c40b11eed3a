package search

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Session owns the only mutable state in the engine: the pending
// debounce timer and the identity of the most recently issued request.
// Text input re-arms the timer; when the input goes quiet the query is
// issued tagged with a generation number, and a response is applied
// only while its generation is still current. Issuing a newer request
// or clearing the query bumps the generation, so a slow stale response
// can never overwrite fresher results.
type Session struct {
	coord     *Coordinator
	window    time.Duration
	onResults func(Results)

	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	query    string
	category string
	results  Results
}

func newSession(coord *Coordinator, window time.Duration, onResults func(Results)) *Session {
	return &Session{coord: coord, window: window, onResults: onResults}
}

// SetQuery feeds a text-input change into the session. A blank query
// clears the results synchronously, cancels the pending timer and
// invalidates any in-flight request; anything else (re)arms the
// debounce timer. At most one timer is alive per session.
func (s *Session) SetQuery(query, category string) {
	s.mu.Lock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(query) == "" {
		s.gen++
		s.query = ""
		s.category = ""
		s.results = Results{}
		notify := s.onResults
		s.mu.Unlock()
		if notify != nil {
			notify(Results{})
		}
		return
	}

	s.query = query
	s.category = category
	s.timer = time.AfterFunc(s.window, s.fire)
	s.mu.Unlock()
}

// fire runs on the timer goroutine once the input has been quiet for
// the full window.
func (s *Session) fire() {
	s.mu.Lock()
	s.timer = nil
	s.gen++
	gen := s.gen
	query, category := s.query, s.category
	s.mu.Unlock()

	results := s.coord.Search(context.Background(), query, category)

	s.mu.Lock()
	if gen != s.gen {
		// A newer request was issued or the query was cleared while
		// this one was in flight. Discard.
		s.mu.Unlock()
		return
	}
	s.results = results
	notify := s.onResults
	s.mu.Unlock()

	if notify != nil {
		notify(results)
	}
}

// Results returns the session's current result set.
func (s *Session) Results() Results {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Close cancels any pending timer and invalidates in-flight work.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}
