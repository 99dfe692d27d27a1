package ban

import (
	"context"
	"sync"
	"time"
)

type strikes struct {
	count int
	since time.Time
}

type MemoryStore struct {
	mu          sync.Mutex
	failures    map[string]strikes
	bans        map[string]time.Time
	log         []BanLogEntry
	maxFailures int
	ttl         time.Duration
	now         func() time.Time
}

func NewMemoryStore(maxFailures int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		failures:    make(map[string]strikes),
		bans:        make(map[string]time.Time),
		maxFailures: maxFailures,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *MemoryStore) Banned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.bans[target]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.bans, target)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) RecordFailure(_ context.Context, target, route string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	st := s.failures[target]
	if st.count == 0 || now.Sub(st.since) >= s.ttl {
		st = strikes{since: now}
	}
	st.count++

	if st.count < s.maxFailures {
		s.failures[target] = st
		return st.count, false, nil
	}

	delete(s.failures, target)
	s.bans[target] = now.Add(s.ttl)
	s.log = append(s.log, BanLogEntry{Target: target, Route: route, Strikes: st.count, Time: now})
	return st.count, true, nil
}

func (s *MemoryStore) Reset(_ context.Context, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, target)
	return nil
}

func (s *MemoryStore) BanLog(_ context.Context) ([]BanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]BanLogEntry{}, s.log...), nil
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]strikes)
	s.bans = make(map[string]time.Time)
	s.log = nil
}
