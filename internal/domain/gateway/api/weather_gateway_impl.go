package api

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"weather-hunt/internal/domain/entity"
	"weather-hunt/internal/domain/failure"
	"weather-hunt/internal/domain/model/external"
	"weather-hunt/pkg/http"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

const (
	opCoordinates = "fetching coordinates"
	opSuggestions = "fetching city suggestions"
	opWeather     = "fetching weather data"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	geocodingClient *http.Client
	weatherClient   *http.Client
	config          WeatherGatewayConfig
}

// NewWeatherGateway creates a WeatherGateway with one HTTP client per service.
func NewWeatherGateway(config WeatherGatewayConfig, clientOptions http.ClientOptions) WeatherGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapHTTPLogger(log.With(zap.String("component", "weather-gateway")), "key", "appid")
	}

	return &weatherGatewayImpl{
		geocodingClient: http.NewHttpClient(config.GeocodingBaseURL, clientOptions),
		weatherClient:   http.NewHttpClient(config.WeatherBaseURL, clientOptions),
		config:          config,
	}
}

// ResolveCoordinates geocodes query and returns the first match
func (w *weatherGatewayImpl) ResolveCoordinates(ctx context.Context, query string) (entity.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.Coordinates{}, failure.NotFound(query)
	}

	response, err := w.geocode(ctx, opCoordinates, query)
	if err != nil {
		return entity.Coordinates{}, err
	}

	if len(response.Results) == 0 {
		log.Info(msg.GetMessage("lookup.geocode.not-found", query))
		return entity.Coordinates{}, failure.NotFound(query)
	}

	geometry := response.Results[0].Geometry
	return entity.Coordinates{Latitude: geometry.Lat, Longitude: geometry.Lng}, nil
}

// ListSuggestions geocodes query and returns every candidate
func (w *weatherGatewayImpl) ListSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Suggestion{}, nil
	}

	response, err := w.geocode(ctx, opSuggestions, query)
	if err != nil {
		return nil, err
	}

	suggestions := make([]entity.Suggestion, 0, len(response.Results))
	for _, result := range response.Results {
		suggestions = append(suggestions, entity.Suggestion{
			DisplayName: result.Formatted,
			Latitude:    result.Geometry.Lat,
			Longitude:   result.Geometry.Lng,
		})
	}

	log.Debug(msg.GetMessage("lookup.geocode.suggestions", len(suggestions), query))
	return suggestions, nil
}

// FetchWeather returns the current weather at the given position
func (w *weatherGatewayImpl) FetchWeather(ctx context.Context, latitude, longitude float64) (entity.WeatherResult, error) {
	lat := strconv.FormatFloat(latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(longitude, 'f', -1, 64)
	log.Debug(msg.GetMessage("lookup.weather.start", lat, lon))

	successResp, _, status, err := w.weatherClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithQueryParams(map[string]string{
			"lat":   lat,
			"lon":   lon,
			"appid": w.config.WeatherToken,
			"units": "metric",
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err != nil {
		return entity.WeatherResult{}, classify(opWeather, status, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	result := entity.WeatherResult{
		LocationName:       response.Name,
		TemperatureCelsius: response.Main.Temp,
	}
	if len(response.Weather) > 0 {
		result.Description = response.Weather[0].Description
		result.IconID = response.Weather[0].Icon
	}

	log.Debug(msg.GetMessage("lookup.weather.done", lat, lon, result.String()))
	return result, nil
}

// geocode issues the geocoding search shared by ResolveCoordinates and ListSuggestions.
func (w *weatherGatewayImpl) geocode(ctx context.Context, op, query string) (*external.GeocodingResponse, error) {
	log.Debug(msg.GetMessage("lookup.geocode.start", query))

	successResp, _, status, err := w.geocodingClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithQueryParams(map[string]string{
			"q":   query,
			"key": w.config.GeocodingToken,
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.GeocodingResponse{}).
		Execute()

	if err != nil {
		return nil, classify(op, status, err)
	}

	return successResp.(*external.GeocodingResponse), nil
}

// classify maps a pkg/http error onto the failure kinds.
func classify(op string, status int, err error) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return failure.Service(op, statusErr.StatusCode, statusErr.Status)
	}

	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) {
		return failure.BadResponse(op, decodeErr)
	}

	var transportErr *http.TransportError
	if errors.As(err, &transportErr) || status == 0 {
		return failure.Network(op, err)
	}

	return failure.BadResponse(op, err)
}
