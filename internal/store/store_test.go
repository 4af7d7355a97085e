package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"bonepiledash/internal/model"
)

func TestSummaryStore(t *testing.T) {
	s := New()

	_, ok := s.Current()
	assert.False(t, ok)

	first := &model.Summary{TotalTrays: 1}
	s.Swap(first)

	got, ok := s.Current()
	assert.True(t, ok)
	assert.Same(t, first, got)

	second := &model.Summary{TotalTrays: 2}
	s.Swap(second)

	got, _ = s.Current()
	assert.Same(t, second, got)
}

func TestSummaryStore_ConcurrentReaders(t *testing.T) {
	s := New()
	s.Swap(&model.Summary{TotalTrays: 10, FailUnique: 4, PassUnique: 6})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				sum, ok := s.Current()
				if !ok {
					t.Error("summary disappeared")
					return
				}
				// A snapshot is internally consistent regardless of swaps.
				if sum.FailUnique+sum.PassUnique != sum.TotalTrays {
					t.Error("observed inconsistent snapshot")
					return
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		n := i % 7
		s.Swap(&model.Summary{TotalTrays: n * 2, FailUnique: n, PassUnique: n})
	}
	wg.Wait()
}
