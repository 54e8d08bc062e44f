package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxTransactionsPerSecond is the maximum number of transactions per second and key (optional)
	MaxTransactionsPerSecond int
	// MaxTransactionsPerMinute is the maximum number of transactions per minute and key (optional)
	MaxTransactionsPerMinute int
	// Namespace is the namespace for organizing rate limiter keys
	Namespace string
}

// NewRateLimiterOptions creates a new rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxTransactionsPerSecond: 0, // Unlimited by default
		MaxTransactionsPerMinute: 0, // Unlimited by default
		Namespace:                "",
	}
}

// WithMaxTransactionsPerSecond sets the maximum number of transactions per second
func (rlo *RateLimiterOptions) WithMaxTransactionsPerSecond(max int) *RateLimiterOptions {
	rlo.MaxTransactionsPerSecond = max
	return rlo
}

// WithMaxTransactionsPerMinute sets the maximum number of transactions per minute
func (rlo *RateLimiterOptions) WithMaxTransactionsPerMinute(max int) *RateLimiterOptions {
	rlo.MaxTransactionsPerMinute = max
	return rlo
}

// WithNamespace sets the namespace for organizing rate limiters
func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

// Validate validates the rate limiter options
func (rlo *RateLimiterOptions) Validate() error {
	if rlo.MaxTransactionsPerSecond < 0 || rlo.MaxTransactionsPerMinute < 0 {
		return fmt.Errorf("limits must be non-negative")
	}
	if rlo.MaxTransactionsPerSecond == 0 && rlo.MaxTransactionsPerMinute == 0 {
		return fmt.Errorf("at least one limit must be configured (MaxTransactionsPerSecond or MaxTransactionsPerMinute)")
	}
	return nil
}

// RateLimiter is a distributed sliding-window limiter keyed by caller
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
	script *redis.Script
}

// NewRateLimiter creates a new distributed rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &RateLimiter{
		client: client,
		opts:   opts,
		script: redis.NewScript(allowScript),
	}, nil
}

// Keys returns the per-second and per-minute window keys of caller, as Namespace::caller::suffix
func (rl *RateLimiter) Keys(caller string) (string, string) {
	prefix := caller
	if rl.opts.Namespace != "" {
		prefix = rl.opts.Namespace + "::" + caller
	}
	return prefix + "::tps", prefix + "::tpm"
}

// Allow records one transaction for caller and reports whether it is within the limits.
// A rejected transaction is not recorded.
func (rl *RateLimiter) Allow(ctx context.Context, caller string) (bool, error) {
	now := time.Now()
	tpsKey, tpmKey := rl.Keys(caller)

	result, err := rl.script.Run(ctx, rl.client.GetClient(), []string{tpsKey, tpmKey},
		rl.opts.MaxTransactionsPerSecond,
		rl.opts.MaxTransactionsPerMinute,
		strconv.FormatInt(now.UnixNano(), 10),
		now.UnixNano(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limiter: %w", err)
	}

	// 1 = allowed, -1 = TPS limit, -2 = TPM limit
	return result == 1, nil
}

// Both windows are checked before either is written so a rejected call costs nothing.
const allowScript = `
	local tps_key = KEYS[1]
	local tpm_key = KEYS[2]

	local max_tps = tonumber(ARGV[1])
	local max_tpm = tonumber(ARGV[2])
	local transaction_id = ARGV[3]
	local now_nanos = tonumber(ARGV[4])

	if max_tps > 0 then
		local tps_cutoff_time = now_nanos - 1000000000
		redis.call("ZREMRANGEBYSCORE", tps_key, "-inf", tps_cutoff_time)
		if redis.call("ZCARD", tps_key) >= max_tps then
			return -1
		end
	end

	if max_tpm > 0 then
		local tpm_cutoff_time = now_nanos - 60000000000
		redis.call("ZREMRANGEBYSCORE", tpm_key, "-inf", tpm_cutoff_time)
		if redis.call("ZCARD", tpm_key) >= max_tpm then
			return -2
		end
	end

	if max_tps > 0 then
		redis.call("ZADD", tps_key, now_nanos, transaction_id)
		redis.call("EXPIRE", tps_key, 2)
	end

	if max_tpm > 0 then
		redis.call("ZADD", tpm_key, now_nanos, transaction_id)
		redis.call("EXPIRE", tpm_key, 61)
	end

	return 1
`
