package store

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/boardstore/internal/events"
	"github.com/thenoetrevino/boardstore/internal/tables"
)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithPublisher sets where committed changes are announced
func WithPublisher(p events.EventPublisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for CreatedAt and event timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIntegrityCheck verifies every invariant after each transaction and
// rejects the commit if one fails.
func WithIntegrityCheck(enabled bool) Option {
	return func(s *Store) {
		s.verify = enabled
	}
}

// WithState starts the store from an existing state instead of empty tables.
// The store takes ownership of state.
func WithState(state *tables.State) Option {
	return func(s *Store) {
		if state != nil {
			s.initial = state
		}
	}
}
