package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

type RateLimitConfig struct {
	// RequestsPerPeriod is the allowed request count per Period.
	RequestsPerPeriod int
	Period            time.Duration
	Store             limiter.Store
}

// NewMemoryStore keeps counters in process memory, suitable for a
// single instance.
func NewMemoryStore() limiter.Store {
	return memory.NewStore()
}

// NewRedisStore shares counters across instances via Redis.
func NewRedisStore(redisURL string) (limiter.Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	return redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "temple-console:ratelimit",
	})
}

// RateLimit applies a global request rate limit keyed by client IP.
func RateLimit(cfg RateLimitConfig) mux.MiddlewareFunc {
	period := cfg.Period
	if period == 0 {
		period = time.Second
	}
	rate := limiter.Rate{
		Period: period,
		Limit:  int64(cfg.RequestsPerPeriod),
	}
	instance := limiter.New(cfg.Store, rate)
	mw := mhttp.NewMiddleware(instance)
	return func(next http.Handler) http.Handler {
		return mw.Handler(next)
	}
}
