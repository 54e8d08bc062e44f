package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"weather-hunt/internal/domain/entity"
	"weather-hunt/internal/domain/failure"
	pkghttp "weather-hunt/pkg/http"
)

type stubServers struct {
	geocoding     *httptest.Server
	weather       *httptest.Server
	geocodeCalls  atomic.Int32
	weatherCalls  atomic.Int32
	lastGeoQuery  atomic.Value
	lastWeatherQS atomic.Value
}

func newStubServers(t *testing.T, geoStatus int, geoBody string, weatherStatus int, weatherBody string) *stubServers {
	t.Helper()
	s := &stubServers{}
	s.geocoding = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.geocodeCalls.Add(1)
		s.lastGeoQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(geoStatus)
		_, _ = w.Write([]byte(geoBody))
	}))
	s.weather = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.weatherCalls.Add(1)
		s.lastWeatherQS.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(weatherStatus)
		_, _ = w.Write([]byte(weatherBody))
	}))
	t.Cleanup(func() {
		s.geocoding.Close()
		s.weather.Close()
	})
	return s
}

func (s *stubServers) gateway() WeatherGateway {
	return NewWeatherGateway(WeatherGatewayConfig{
		GeocodingBaseURL: s.geocoding.URL + "/geocode/v1/json",
		GeocodingToken:   "geo-token",
		WeatherBaseURL:   s.weather.URL + "/data/2.5/weather",
		WeatherToken:     "weather-token",
	}, pkghttp.ClientOptions{})
}

const (
	parisGeocoding = `{"results":[{"formatted":"Paris, France","geometry":{"lat":48.85,"lng":2.35}}]}`
	twoResults     = `{"results":[
		{"formatted":"Springfield, Illinois, United States","geometry":{"lat":39.8,"lng":-89.64}},
		{"formatted":"Springfield, Missouri, United States","geometry":{"lat":37.21,"lng":-93.29}}]}`
	noResults    = `{"results":[],"status":{"code":200,"message":"OK"}}`
	parisWeather = `{"name":"Paris","weather":[{"description":"clear sky","icon":"01d"}],"main":{"temp":18.2}}`
)

func TestResolveCoordinates(t *testing.T) {
	s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusOK, parisWeather)

	got, err := s.gateway().ResolveCoordinates(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("ResolveCoordinates returned error: %v", err)
	}
	if want := (entity.Coordinates{Latitude: 48.85, Longitude: 2.35}); got != want {
		t.Errorf("coordinates = %+v, want %+v", got, want)
	}

	query := s.lastGeoQuery.Load().(url.Values)
	if query["q"][0] != "Paris" || query["key"][0] != "geo-token" {
		t.Errorf("geocoding query = %v", query)
	}
}

func TestResolveCoordinatesNotFound(t *testing.T) {
	s := newStubServers(t, http.StatusOK, noResults, http.StatusOK, parisWeather)

	_, err := s.gateway().ResolveCoordinates(context.Background(), "00000")
	if !failure.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("message %q does not contain 'not found'", err.Error())
	}
}

func TestResolveCoordinatesBlankQuery(t *testing.T) {
	s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusOK, parisWeather)

	_, err := s.gateway().ResolveCoordinates(context.Background(), "   ")
	if !failure.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if s.geocodeCalls.Load() != 0 {
		t.Errorf("blank query issued %d geocoding calls", s.geocodeCalls.Load())
	}
}

func TestListSuggestions(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []entity.Suggestion
	}{
		{
			name: "keeps service order",
			body: twoResults,
			want: []entity.Suggestion{
				{DisplayName: "Springfield, Illinois, United States", Latitude: 39.8, Longitude: -89.64},
				{DisplayName: "Springfield, Missouri, United States", Latitude: 37.21, Longitude: -93.29},
			},
		},
		{
			name: "empty result is not an error",
			body: noResults,
			want: []entity.Suggestion{},
		},
		{
			name: "missing results field",
			body: `{}`,
			want: []entity.Suggestion{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStubServers(t, http.StatusOK, tt.body, http.StatusOK, parisWeather)

			got, err := s.gateway().ListSuggestions(context.Background(), "Springfield")
			if err != nil {
				t.Fatalf("ListSuggestions returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("suggestions = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeocodingServiceError(t *testing.T) {
	s := newStubServers(t, http.StatusInternalServerError, `{"status":{"code":500,"message":"boom"}}`, http.StatusOK, parisWeather)
	gateway := s.gateway()

	_, err := gateway.ListSuggestions(context.Background(), "Paris")
	if !failure.IsService(err) {
		t.Fatalf("ListSuggestions: expected Service, got %v", err)
	}
	if !strings.Contains(err.Error(), "Internal Server Error") {
		t.Errorf("message %q does not contain the status text", err.Error())
	}

	_, err = gateway.ResolveCoordinates(context.Background(), "Paris")
	if !failure.IsService(err) {
		t.Fatalf("ResolveCoordinates: expected Service, got %v", err)
	}
}

func TestFetchWeather(t *testing.T) {
	s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusOK, parisWeather)

	got, err := s.gateway().FetchWeather(context.Background(), 48.85, 2.35)
	if err != nil {
		t.Fatalf("FetchWeather returned error: %v", err)
	}

	want := entity.WeatherResult{LocationName: "Paris", Description: "clear sky", TemperatureCelsius: 18.2, IconID: "01d"}
	if got != want {
		t.Errorf("result = %+v, want %+v", got, want)
	}
	if got.String() != "Paris / clear sky / 18.2 °C" {
		t.Errorf("display = %q", got.String())
	}

	query := s.lastWeatherQS.Load().(url.Values)
	expected := map[string]string{"lat": "48.85", "lon": "2.35", "appid": "weather-token", "units": "metric"}
	for key, value := range expected {
		if len(query[key]) == 0 || query[key][0] != value {
			t.Errorf("weather query %s = %v, want %s", key, query[key], value)
		}
	}
}

func TestFetchWeatherErrors(t *testing.T) {
	t.Run("service status", func(t *testing.T) {
		s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`)

		_, err := s.gateway().FetchWeather(context.Background(), 1, 2)
		if !failure.IsService(err) {
			t.Fatalf("expected Service, got %v", err)
		}
		if !strings.Contains(err.Error(), "Unauthorized") {
			t.Errorf("message %q does not contain the status text", err.Error())
		}
	})

	t.Run("unreadable body", func(t *testing.T) {
		s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusOK, `<html>`)

		_, err := s.gateway().FetchWeather(context.Background(), 1, 2)
		if !failure.IsService(err) {
			t.Fatalf("expected Service, got %v", err)
		}
	})

	t.Run("network", func(t *testing.T) {
		s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusOK, parisWeather)
		gateway := s.gateway()
		s.weather.Close()

		_, err := gateway.FetchWeather(context.Background(), 1, 2)
		if !failure.IsNetwork(err) {
			t.Fatalf("expected Network, got %v", err)
		}
		if strings.Contains(err.Error(), "weather-token") {
			t.Errorf("message %q exposes the weather token", err.Error())
		}
	})
}

func TestGeocodingNetworkError(t *testing.T) {
	tests := []struct {
		name string
		call func(WeatherGateway) error
	}{
		{
			name: "resolve coordinates",
			call: func(g WeatherGateway) error {
				_, err := g.ResolveCoordinates(context.Background(), "Paris")
				return err
			},
		},
		{
			name: "list suggestions",
			call: func(g WeatherGateway) error {
				_, err := g.ListSuggestions(context.Background(), "Paris")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStubServers(t, http.StatusOK, parisGeocoding, http.StatusOK, parisWeather)
			gateway := s.gateway()
			s.geocoding.Close()

			err := tt.call(gateway)
			if !failure.IsNetwork(err) {
				t.Fatalf("expected Network, got %v", err)
			}
			if msg := err.Error(); strings.Contains(msg, "geo-token") || strings.Contains(msg, "key=") {
				t.Errorf("message %q exposes the geocoding token", msg)
			}
			if s.weatherCalls.Load() != 0 {
				t.Error("weather service called after a geocoding failure")
			}
		})
	}
}
