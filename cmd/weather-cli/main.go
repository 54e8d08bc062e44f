package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"weather-hunt/configs"
	"weather-hunt/internal/domain/gateway/api"
	"weather-hunt/internal/domain/usecase/weather"
	"weather-hunt/pkg/graceful"
	pkghttp "weather-hunt/pkg/http"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

func main() {
	defer log.Sync()

	envFile := pflag.String("env-file", ".env", "dotenv file with the API credentials")
	timeout := pflag.Duration("timeout", 10*time.Second, "timeout of each upstream request")
	pflag.Parse()

	env := configs.Load(*envFile)
	log.Init()
	if missing := env.MissingCredentials(); len(missing) > 0 {
		log.Warn(msg.GetMessage("app.missing-credentials", strings.Join(missing, ", ")))
	}

	gateway := api.NewWeatherGateway(api.WeatherGatewayConfig{
		GeocodingBaseURL: env.GeocodingAPIURL,
		GeocodingToken:   env.GeocodingAPIToken,
		WeatherBaseURL:   env.WeatherAPIURL,
		WeatherToken:     env.WeatherAPIToken,
	}, pkghttp.ClientOptions{ConnectionTimeout: *timeout, ReadTimeout: *timeout})

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	// Positional arguments preset the query.
	console := newConsole(weather.NewWeatherUseCase("", gateway), os.Stdout)
	if query := strings.Join(pflag.Args(), " "); query != "" {
		console.exec(ctx, "query "+query)
	}
	if err := console.run(ctx, os.Stdin); err != nil {
		log.Error("reading input failed", zap.Error(err))
		os.Exit(1)
	}
}
