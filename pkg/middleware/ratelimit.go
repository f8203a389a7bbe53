package middleware

import (
	"fmt"
	"net/http"

	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// RateLimit throttles a route group per user, or per client IP for anonymous
// requests. Counters live in Redis when a client is given, in process memory otherwise.
// rateStr uses the limiter format, e.g. "30-M".
func RateLimit(rdb *redis.Client, rateStr, routeID string, logger *zap.Logger) (func(http.Handler) http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q for route %s: %w", rateStr, routeID, err)
	}

	options := limiter.StoreOptions{
		Prefix:          "rate_limiter:" + routeID,
		MaxRetry:        3,
		CleanUpInterval: rate.Period,
	}

	var store limiter.Store
	if rdb != nil {
		store, err = redisstore.NewStoreWithOptions(rdb, options)
		if err != nil {
			return nil, fmt.Errorf("create redis rate limit store for route %s: %w", routeID, err)
		}
	} else {
		store = memorystore.NewStoreWithOptions(options)
	}

	instance := limiter.New(store, rate)

	mw := stdlib.NewMiddleware(instance,
		stdlib.WithKeyGetter(func(r *http.Request) string {
			if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
				return "user:" + userID.String()
			}
			return "ip:" + instance.GetIPKey(r)
		}),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("Rate limit reached",
				zap.String("route", routeID),
				zap.String("path", r.URL.Path),
				zap.String("ip", r.RemoteAddr))
			utils.ResponseTooManyRequests(w, "Too many requests, please try again later")
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("Rate limiter failed", zap.Error(err), zap.String("route", routeID))
			utils.ResponseInternalError(w, "Internal server error")
		}),
	)

	return mw.Handler, nil
}
