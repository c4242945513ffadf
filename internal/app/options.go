package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/boardstore/internal/events"
	"github.com/thenoetrevino/boardstore/internal/user"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient     events.EventPublisher
	eventBuffer     int
	logger          *slog.Logger
	fallbackUser    user.CurrentUserProvider
	clock           func() time.Time
	verifyIntegrity bool
}

// WithEventPublisher sets the event publisher for the application.
// Without one the app creates its own in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithEventBuffer sets the per-listener buffer of the app's own bus
func WithEventBuffer(n int) Option {
	return func(cfg *appConfig) {
		cfg.eventBuffer = n
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithCurrentUserProvider sets who acts when nobody has signed in through the app
func WithCurrentUserProvider(p user.CurrentUserProvider) Option {
	return func(cfg *appConfig) {
		cfg.fallbackUser = p
	}
}

// WithClock overrides the store's time source
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithIntegrityCheck verifies every invariant after each commit
func WithIntegrityCheck(enabled bool) Option {
	return func(cfg *appConfig) {
		cfg.verifyIntegrity = enabled
	}
}
