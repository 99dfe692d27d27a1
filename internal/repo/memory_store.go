package repo

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation of Store. It honours the same
// filter whitelist as the Postgres store so both behave alike in tests.
type MemoryStore[T any, PT RecordPtr[T]] struct {
	mu      sync.RWMutex
	table   Table[T]
	records []T
	nextID  int
}

func NewMemoryStore[T any, PT RecordPtr[T]](table Table[T]) *MemoryStore[T, PT] {
	return &MemoryStore[T, PT]{
		table:   table,
		records: []T{},
		nextID:  1,
	}
}

func (s *MemoryStore[T, PT]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := PT(&rec)
	p.SetID(s.nextID)
	p.SetActive(true)
	s.nextID++
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *MemoryStore[T, PT]) GetByID(_ context.Context, id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

// Update replaces the writable fields of the stored record; the active flag
// is left as stored.
func (s *MemoryStore[T, PT]) Update(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(PT(&rec).GetID())
	if i < 0 {
		return rec, ErrNotFound
	}
	PT(&rec).SetActive(PT(&s.records[i]).IsActive())
	s.records[i] = rec
	return rec, nil
}

func (s *MemoryStore[T, PT]) List(_ context.Context, active bool) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for i := range s.records {
		if PT(&s.records[i]).IsActive() == active {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *MemoryStore[T, PT]) ListBy(_ context.Context, field string, value any) ([]T, error) {
	f, ok := s.table.Filters[field]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", s.table.Name, field, ErrUnknownFilter)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for i := range s.records {
		rec := &s.records[i]
		if PT(rec).IsActive() && sameValue(f.Value(rec), value) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *MemoryStore[T, PT]) SetActive(_ context.Context, id int, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	PT(&s.records[i]).SetActive(active)
	return nil
}

func (s *MemoryStore[T, PT]) Count(ctx context.Context, active bool) (int, error) {
	records, err := s.List(ctx, active)
	return len(records), err
}

func (s *MemoryStore[T, PT]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []T{}
	s.nextID = 1
}

func (s *MemoryStore[T, PT]) indexOf(id int) int {
	for i := range s.records {
		if PT(&s.records[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// sameValue compares a stored field with a filter argument the way an SQL
// equality would: nil pointers never match and times compare by instant.
func sameValue(stored, want any) bool {
	sv := reflect.ValueOf(stored)
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return false
		}
		stored = sv.Elem().Interface()
	}
	if st, ok := stored.(time.Time); ok {
		wt, ok := want.(time.Time)
		return ok && st.Equal(wt)
	}
	if sv := reflect.ValueOf(stored); sv.Kind() == reflect.String {
		wv := reflect.ValueOf(want)
		return wv.Kind() == reflect.String && sv.String() == wv.String()
	}
	return stored == want
}
