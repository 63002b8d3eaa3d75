package store

import (
	"go.uber.org/zap"

	"github.com/zhiqi-health/wellness-client/internal/localstore"
)

// maxSearchHistory caps the number of remembered keywords.
const maxSearchHistory = 10

// AddSearchHistory records a search keyword at the front of the
// history. A keyword already present is moved to the front instead of
// duplicated, and the list never exceeds ten entries.
func (s *Store) AddSearchHistory(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.searchHistory)+1)
	kept = append(kept, keyword)
	for _, k := range s.searchHistory {
		if k == keyword {
			continue
		}
		kept = append(kept, k)
	}
	if len(kept) > maxSearchHistory {
		kept = kept[:maxSearchHistory]
	}
	s.searchHistory = kept

	if err := s.local.SetJSON(localstore.KeySearchHistory, s.searchHistory); err != nil {
		s.log.Error("failed to persist search history", zap.Error(err))
	}
}

// ClearSearchHistory empties the history and removes its persisted
// value.
func (s *Store) ClearSearchHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchHistory = nil
	if err := s.local.Delete(localstore.KeySearchHistory); err != nil {
		s.log.Error("failed to remove persisted search history", zap.Error(err))
	}
}

// LoadSearchHistory hydrates the history from durable storage.
func (s *Store) LoadSearchHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var history []string
	if s.local.GetJSON(localstore.KeySearchHistory, &history) {
		s.searchHistory = history
	}
}

// SearchHistory returns a copy of the history, newest first.
func (s *Store) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.searchHistory))
	copy(out, s.searchHistory)
	return out
}
