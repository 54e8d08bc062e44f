package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// Pinger is the part of Client the health checker needs
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  Pinger
	config  *Config
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client Pinger, config *Config) *HealthChecker {
	if config == nil {
		config = NewRedisConfig()
	}
	return &HealthChecker{
		client:  client,
		config:  config,
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings Redis and reports the outcome with the connection settings
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := h.client.Ping(ctx)
	latency := time.Since(start)

	details := map[string]string{
		"host":     h.config.Host,
		"port":     strconv.Itoa(h.config.Port),
		"database": strconv.Itoa(h.config.Database),
	}

	if err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	details["latency"] = latency.String()
	return RedisHealthCheck{Status: StatusUp, Details: details}
}
