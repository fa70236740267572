package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, f.Get())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Empty(t, s.Load())

	s.Store(strings.Repeat("x", MaxStringLen+5))
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("a")
	a.Add(3)

	assert.Same(t, a, m.Get("a"))
	got, ok := m.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, a, got)
	_, ok = m.Lookup("b")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestRegistryFieldsOrdered(t *testing.T) {
	r := NewRegistry()
	f := NewFrame(r)
	f.Ticks.Store(42)
	f.FPS.Set(60)
	f.Outcome.Store("placed")

	fields := r.Fields()
	require.Len(t, fields, r.TotalCount())

	var keys []string
	for _, fld := range fields {
		keys = append(keys, fld.Key)
	}
	assert.Equal(t, KeyChunkUpdates, keys[0])
	assert.Contains(t, keys, KeyFPS)
	assert.Contains(t, keys, KeyOutcome)

	for _, fld := range fields {
		if fld.Key == KeyTicks {
			assert.Equal(t, int64(42), fld.Integer)
		}
	}
}
