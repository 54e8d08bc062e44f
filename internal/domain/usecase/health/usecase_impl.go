package health

import (
	"context"
	"strings"

	"weather-hunt/internal/domain/model"
	"weather-hunt/pkg/redis"
)

// RedisChecker reports the state of the Redis connection
type RedisChecker interface {
	HealthCheck(ctx context.Context) redis.RedisHealthCheck
}

// CredentialChecker lists upstream credentials that are not configured
type CredentialChecker interface {
	MissingCredentials() []string
}

// SessionCounter reports how many lookup sessions are open
type SessionCounter interface {
	Count() int
}

type healthUseCase struct {
	redisChecker RedisChecker
	credentials  CredentialChecker
	sessions     SessionCounter
}

// NewHealthUseCase builds the health check. redisChecker is nil when Redis is disabled.
func NewHealthUseCase(redisChecker RedisChecker, credentials CredentialChecker, sessions SessionCounter) UseCase {
	return &healthUseCase{
		redisChecker: redisChecker,
		credentials:  credentials,
		sessions:     sessions,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	redisHealth := useCase.redisHealth(ctx)
	upstreamHealth := useCase.upstreamHealth()

	overallStatus := model.StatusUp
	if redisHealth.Status == model.StatusDown || upstreamHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Redis:    redisHealth,
		Upstream: upstreamHealth,
		Sessions: useCase.sessions.Count(),
	}
}

func (useCase *healthUseCase) redisHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.redisChecker == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDisabled,
			Details: map[string]string{"message": "rate limiting disabled"},
		}
	}

	check := useCase.redisChecker.HealthCheck(ctx)
	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}

// upstreamHealth only checks configuration; probing the APIs would spend quota.
func (useCase *healthUseCase) upstreamHealth() model.ComponentHealthStatus {
	missing := useCase.credentials.MissingCredentials()
	if len(missing) > 0 {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"missing": strings.Join(missing, ",")},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"credentials": "configured"},
	}
}
