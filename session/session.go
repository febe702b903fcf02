// Package session holds the state of the current extraction run.
package session

import (
	"sync"

	"github.com/clipdrop/clipdrop/media"
)

// State is the candidate set of a run with its items and resolved records.
// The queue runner writes to it; other readers take snapshots after a notification.
type State struct {
	mu         sync.RWMutex
	candidates media.CandidateSet
	items      []*media.Item
	records    []*media.Record
}

// New returns an empty state.
func New() *State {
	return &State{}
}

// Reset discards everything, as when the user clears the input.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = nil
	s.items = nil
	s.records = nil
}

// Begin starts a run over candidates with every item pending and no records.
func (s *State) Begin(candidates media.CandidateSet) []*media.Item {
	items := make([]*media.Item, len(candidates))
	for i, link := range candidates {
		items[i] = media.NewItem(link, i+1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = append(media.CandidateSet(nil), candidates...)
	s.items = items
	s.records = nil
	return items
}

// Resolved appends a record in arrival order.
func (s *State) Resolved(record *media.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
}

// Candidates returns a copy of the run's candidate set.
func (s *State) Candidates() media.CandidateSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(media.CandidateSet(nil), s.candidates...)
}

// Records returns a copy of the resolved records.
func (s *State) Records() []*media.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*media.Record(nil), s.records...)
}

// Items returns a copy of the item list. Items themselves are shared.
func (s *State) Items() []*media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*media.Item(nil), s.items...)
}

// Item returns the item at a 1-based index.
func (s *State) Item(index int) (*media.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 1 || index > len(s.items) {
		return nil, false
	}
	return s.items[index-1], true
}
