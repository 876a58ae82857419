package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"homesec/config"
	"homesec/internal/delivery/api/response"
	deliverycontext "homesec/internal/delivery/context"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// tokenBucketScript refills and takes one token atomically.
// It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = goredis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// RateLimiter throttles unauthenticated endpoints per client IP and route.
// Without Redis, or when disabled, it lets every request through.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	client *goredis.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewRateLimiter is the constructor for RateLimiter.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := &RateLimiter{
		client: params.Redis,
		logger: params.Logger,
		now:    time.Now,
	}
	if params.Config != nil && params.Config.RateLimit != nil {
		rl.cfg = *params.Config.RateLimit
	}
	if rl.cfg.TTL < time.Second {
		rl.cfg.TTL = 10 * time.Minute
	}

	return rl
}

func (rl *RateLimiter) enabled() bool {
	return rl.cfg.Enabled && rl.client != nil && rl.cfg.Capacity > 0
}

// Limit is the echo middleware.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !rl.enabled() {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := rl.key(c)

		vals, err := tokenBucketScript.Run(ctx, rl.client, []string{key},
			rl.now().UnixMilli(),
			rl.cfg.Capacity,
			rl.cfg.RefillTokens,
			rl.cfg.RefillInterval.Milliseconds(),
			int64(rl.cfg.TTL/time.Second),
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			// Fail open: a Redis outage must not lock users out of login.
			deliverycontext.GetLoggerOrDefault(ctx, rl.logger).Warn("Rate limiter unavailable",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]
		c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.cfg.Capacity))
		c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
			deliverycontext.GetLoggerOrDefault(ctx, rl.logger).Info("Rate limit exceeded", slog.String("key", key))

			return response.TooManyRequests(c, secs)
		}

		return next(c)
	}
}

func (rl *RateLimiter) key(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}

	return strings.Join([]string{rl.cfg.Prefix, "ip", ip, "route", c.Request().Method + " " + c.Path()}, ":")
}
