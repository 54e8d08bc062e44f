package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-hunt/internal/domain/entity"
	"weather-hunt/internal/domain/usecase/weather"
)

type nopGateway struct{}

func (nopGateway) ResolveCoordinates(context.Context, string) (entity.Coordinates, error) {
	return entity.Coordinates{}, nil
}

func (nopGateway) ListSuggestions(context.Context, string) ([]entity.Suggestion, error) {
	return nil, nil
}

func (nopGateway) FetchWeather(context.Context, float64, float64) (entity.WeatherResult, error) {
	return entity.WeatherResult{}, nil
}

func newTestRegistry(ttl time.Duration, clock *time.Time) *sessionUseCase {
	uc := NewSessionUseCase(func(id string) weather.UseCase {
		return weather.NewWeatherUseCase(id, nopGateway{})
	}, ttl).(*sessionUseCase)
	uc.now = func() time.Time { return *clock }
	return uc
}

func TestOpenGetClose(t *testing.T) {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestRegistry(time.Minute, &clock)

	id, controller := uc.Open()
	if id == "" || controller == nil {
		t.Fatalf("Open() = %q, %v", id, controller)
	}
	if state := controller.State(); state.SessionID != id {
		t.Errorf("controller session id = %q, want %q", state.SessionID, id)
	}

	got, err := uc.Get(id)
	if err != nil || got != controller {
		t.Fatalf("Get(%q) = %v, %v", id, got, err)
	}

	if err := uc.Close(id); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := uc.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after Close error = %v", err)
	}
	if err := uc.Close(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Close error = %v", err)
	}
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestRegistry(10*time.Minute, &clock)

	idle, _ := uc.Open()
	active, _ := uc.Open()

	clock = clock.Add(8 * time.Minute)
	if _, err := uc.Get(active); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if removed := uc.Sweep(clock.Add(5 * time.Minute)); removed != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", removed)
	}
	if _, err := uc.Get(idle); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session survived the sweep")
	}
	if _, err := uc.Get(active); err != nil {
		t.Errorf("active session swept: %v", err)
	}
	if uc.Count() != 1 {
		t.Errorf("Count() = %d, want 1", uc.Count())
	}
}
