// Package store owns the current-summary snapshot. A summary is immutable
// once built; replacing it is a single pointer swap, so readers observe
// either the previous or the next snapshot, never a partial one.
package store

import (
	"sync/atomic"

	"bonepiledash/internal/model"
)

// SummaryStore holds the most recent Summary, if any.
type SummaryStore struct {
	cur atomic.Pointer[model.Summary]
}

func New() *SummaryStore {
	return &SummaryStore{}
}

// Current returns the latest snapshot. ok is false before the first upload.
func (s *SummaryStore) Current() (*model.Summary, bool) {
	sum := s.cur.Load()
	return sum, sum != nil
}

// Swap publishes a new snapshot, replacing any previous one.
func (s *SummaryStore) Swap(sum *model.Summary) {
	s.cur.Store(sum)
}
