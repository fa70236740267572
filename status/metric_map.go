package status

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// MetricMap holds one metric cell of type T per name
// Cells are allocated once and never move, so frame code keeps the pointer and skips the lock
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the cell for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr := m.items[key]
	m.mu.RUnlock()
	if ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr = m.items[key]; ptr == nil {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Lookup returns the cell for key without allocating
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ptr, ok := m.items[key]
	return ptr, ok
}

// All yields cells in key order from a snapshot of the key set
func (m *MetricMap[T]) All() iter.Seq2[string, *T] {
	m.mu.RLock()
	keys := slices.Sorted(maps.Keys(m.items))
	cells := make([]*T, len(keys))
	for i, k := range keys {
		cells[i] = m.items[k]
	}
	m.mu.RUnlock()

	return func(yield func(string, *T) bool) {
		for i, k := range keys {
			if !yield(k, cells[i]) {
				return
			}
		}
	}
}

func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
