package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-hunt/configs"
	_ "weather-hunt/docs"
	"weather-hunt/internal/application/controller"
	"weather-hunt/internal/application/middleware"
	"weather-hunt/internal/application/schedule"
	"weather-hunt/internal/domain/gateway/api"
	"weather-hunt/internal/domain/usecase/health"
	"weather-hunt/internal/domain/usecase/session"
	"weather-hunt/internal/domain/usecase/weather"
	"weather-hunt/pkg/graceful"
	pkghttp "weather-hunt/pkg/http"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
	"weather-hunt/pkg/redis"
	"weather-hunt/pkg/resource"
)

// @title Weather Hunt API
// @version 1.0
// @description Current weather lookup by free-text location, with geocoding suggestions.
// @BasePath /weather-hunt
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	env := configs.Load()
	// .env may set LOG_LEVEL and the properties placeholders
	log.Init()
	if err := resource.Init(resource.FilePath()); err != nil {
		log.Warn("properties not reloaded", zap.Error(err))
	}
	if missing := env.MissingCredentials(); len(missing) > 0 {
		log.Warn(msg.GetMessage("app.missing-credentials", strings.Join(missing, ", ")))
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	redisClient, redisConfig := initRedis()
	if redisClient != nil {
		defer redisClient.Close()
		limiter, err := redis.NewRateLimiter(redisClient, redis.NewRateLimiterOptions().
			WithNamespace(resource.GetStringOrDefault("app.rate-limit.namespace", "weather-hunt")).
			WithMaxTransactionsPerSecond(resource.GetIntOrDefault("app.rate-limit.per-second", 0)).
			WithMaxTransactionsPerMinute(resource.GetIntOrDefault("app.rate-limit.per-minute", 0)))
		if err != nil {
			log.Fatal("invalid rate limit configuration", zap.Error(err))
		}
		middleware.SetupRateLimit(e, limiter)
	}

	contextPath := resource.GetStringOrDefault("app.server.context-path", "/weather-hunt")
	routes := e.Group(contextPath)
	routes.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(api.WeatherGatewayConfig{
		GeocodingBaseURL: env.GeocodingAPIURL,
		GeocodingToken:   env.GeocodingAPIToken,
		WeatherBaseURL:   env.WeatherAPIURL,
		WeatherToken:     env.WeatherAPIToken,
	}, pkghttp.ClientOptions{
		ConnectionTimeout:   resource.GetDurationOrDefault("app.http-client.connection-timeout", 10*time.Second),
		ReadTimeout:         resource.GetDurationOrDefault("app.http-client.read-timeout", 30*time.Second),
		MaxIdleConnsPerHost: resource.GetIntOrDefault("app.http-client.max-idle-conns-per-host", 20),
		IdleConnTimeout:     resource.GetDurationOrDefault("app.http-client.idle-conn-timeout", 90*time.Second),
	})

	// Init UseCase
	newLookup := func(id string) weather.UseCase { return weather.NewWeatherUseCase(id, weatherGateway) }
	sessionUseCase := session.NewSessionUseCase(newLookup, resource.GetDurationOrDefault("app.session.ttl", 30*time.Minute))

	var redisChecker health.RedisChecker
	if redisClient != nil {
		redisChecker = redis.NewHealthChecker(redisClient, redisConfig)
	}
	healthUseCase := health.NewHealthUseCase(redisChecker, env, sessionUseCase)

	// Init Controller
	healthController := controller.NewHealthController(routes, healthUseCase)
	weatherController := controller.NewWeatherController(routes, sessionUseCase, newLookup)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(sessionUseCase, resource.GetStringOrDefault("app.session.sweep-cron", "@every 1m"))
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal("invalid session sweep schedule", zap.Error(err))
	}
	defer sessionScheduler.Stop()

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// initRedis returns a nil client when rate limiting is disabled.
func initRedis() (*redis.Client, *redis.Config) {
	if !resource.GetBool("app.redis.enabled") {
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetIntOrDefault("app.redis.database", 0))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("invalid redis configuration", zap.Error(err))
	}
	return client, config
}
