// Package status keeps named session counters shared by the game loops
package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry groups counters and gauges by name
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Int returns the counter for key
func (r *Registry) Int(key string) *atomic.Int64 {
	return r.Ints.Get(key)
}

// Float returns the gauge for key
func (r *Registry) Float(key string) *AtomicFloat {
	return r.Floats.Get(key)
}

// TotalCount returns the number of metrics of every type
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// LogValue renders every metric as one slog group, sorted by name
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(k, v.Get()))
	})
	return slog.GroupValue(attrs...)
}
