package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-hunt/internal/domain/failure"
	"weather-hunt/internal/domain/gateway/api"
	"weather-hunt/internal/domain/model"
	pkghttp "weather-hunt/pkg/http"
)

func TestErrorStateHidesCredentials(t *testing.T) {
	geocoding := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"formatted":"Paris, France","geometry":{"lat":48.85,"lng":2.35}}]}`))
	}))
	defer geocoding.Close()
	weatherServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	weatherServer.Close()

	gateway := api.NewWeatherGateway(api.WeatherGatewayConfig{
		GeocodingBaseURL: geocoding.URL,
		GeocodingToken:   "geo-secret",
		WeatherBaseURL:   weatherServer.URL,
		WeatherToken:     "weather-secret",
	}, pkghttp.ClientOptions{})

	uc := NewWeatherUseCase("s1", gateway)
	uc.SetQuery("Paris")
	state, err := uc.GetWeather(context.Background())

	if !failure.IsNetwork(err) {
		t.Fatalf("expected Network, got %v", err)
	}
	if state.Phase != model.PhaseErrorShown || state.Error == nil {
		t.Fatalf("state = %+v", state)
	}
	for _, secret := range []string{"weather-secret", "geo-secret", "appid=", "key="} {
		if strings.Contains(state.Error.Message, secret) {
			t.Errorf("error message %q contains %q", state.Error.Message, secret)
		}
	}
}
