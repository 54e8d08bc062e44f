package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-hunt/internal/domain/model"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

// Limiter decides whether a caller may run one more request
type Limiter interface {
	Allow(ctx context.Context, caller string) (bool, error)
}

// SetupRateLimit installs RateLimit keyed on the connection's address. Forwarding headers are
// ignored, so a caller cannot pick a fresh window per request.
func SetupRateLimit(e *echo.Echo, limiter Limiter) {
	e.IPExtractor = echo.ExtractIPDirect()
	e.Use(RateLimit(limiter))
}

// RateLimit rejects callers over the limiter's window with 429. A failing limiter lets the request through.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.Contains(path, "/health") || strings.Contains(path, "/swagger/") {
				return next(c)
			}

			caller := c.RealIP()
			allowed, err := limiter.Allow(c.Request().Context(), caller)
			if err != nil {
				log.Warn(msg.GetMessage("app.rate-limit-error", err), zap.String("caller", caller))
				return next(c)
			}
			if !allowed {
				log.Info(msg.GetMessage("app.rate-limited", caller), zap.String("caller", caller))
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{Message: "Too many requests"})
			}
			return next(c)
		}
	}
}
