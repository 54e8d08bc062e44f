package session

import (
	"errors"
	"time"

	"weather-hunt/internal/domain/usecase/weather"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// UseCase keeps one lookup controller per client session.
type UseCase interface {
	// Open creates a session with a fresh controller.
	Open() (string, weather.UseCase)

	// Get returns the controller of id and marks the session as active.
	Get(id string) (weather.UseCase, error)

	// Close discards the session state.
	Close(id string) error

	// Sweep removes the sessions idle for longer than the TTL and returns how many were removed.
	Sweep(now time.Time) int

	// Count returns the number of open sessions.
	Count() int
}
