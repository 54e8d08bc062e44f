package api

import (
	"context"

	"weather-hunt/internal/domain/entity"
)

// WeatherGateway defines the calls to the geocoding and weather services.
// Every method performs a single round trip and returns a *failure.Error on failure.
type WeatherGateway interface {
	// ResolveCoordinates geocodes query and returns the first match.
	// Fails with NotFound when the service has no match.
	ResolveCoordinates(ctx context.Context, query string) (entity.Coordinates, error)

	// ListSuggestions geocodes query and returns every candidate in service order.
	// An empty result is not an error.
	ListSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error)

	// FetchWeather returns the current weather at the given position in metric units.
	FetchWeather(ctx context.Context, latitude, longitude float64) (entity.WeatherResult, error)
}

// WeatherGatewayConfig carries the base URLs and credentials of both services.
type WeatherGatewayConfig struct {
	GeocodingBaseURL string
	GeocodingToken   string
	WeatherBaseURL   string
	WeatherToken     string
}
