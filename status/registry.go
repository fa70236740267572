// Package status holds the lock-free counters shown on the HUD and logged at exit
package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry groups metric maps by value type
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Fields renders every metric as zap fields in key order, ints first
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.TotalCount())
	for k, v := range r.Ints.All() {
		fields = append(fields, zap.Int64(k, v.Load()))
	}
	for k, v := range r.Floats.All() {
		fields = append(fields, zap.Float64(k, v.Get()))
	}
	for k, v := range r.Strings.All() {
		fields = append(fields, zap.String(k, v.Load()))
	}
	return fields
}
