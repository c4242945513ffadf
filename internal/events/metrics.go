package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bus statistics using atomic operations for thread-safety
type Metrics struct {
	EventsSent      atomic.Int64
	EventsDelivered atomic.Int64
	EventsDropped   atomic.Int64
	Listeners       atomic.Int32
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncEventsSent increments the events sent counter
func (m *Metrics) IncEventsSent() {
	m.EventsSent.Add(1)
}

// IncEventsDelivered increments the per-listener delivery counter
func (m *Metrics) IncEventsDelivered() {
	m.EventsDelivered.Add(1)
}

// IncEventsDropped increments the counter of deliveries lost to a full buffer
func (m *Metrics) IncEventsDropped() {
	m.EventsDropped.Add(1)
}

// SetListeners sets the current listener count
func (m *Metrics) SetListeners(count int32) {
	m.Listeners.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsSent      int64     `json:"events_sent" yaml:"events_sent"`
	EventsDelivered int64     `json:"events_delivered" yaml:"events_delivered"`
	EventsDropped   int64     `json:"events_dropped" yaml:"events_dropped"`
	Listeners       int32     `json:"listeners" yaml:"listeners"`
	StartTime       time.Time `json:"start_time" yaml:"start_time"`
	Uptime          string    `json:"uptime" yaml:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsSent:      m.EventsSent.Load(),
		EventsDelivered: m.EventsDelivered.Load(),
		EventsDropped:   m.EventsDropped.Load(),
		Listeners:       m.Listeners.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
