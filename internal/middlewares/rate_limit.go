package middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/places-api/internal/logger"
)

//go:generate mockgen -source=rate_limit.go -destination=mock_rate_limit.go -package=middlewares

// Limiter counts hits of a key within the current window
type Limiter interface {
	Hit(ctx context.Context, key string) (int64, time.Duration, error)
}

// RateLimitMiddleware allows at most limit requests per client IP and path in each
// window of the limiter. Limiter failures let the request through.
func RateLimitMiddleware(limiter Limiter, limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Path + ":" + clientIP(r)

			count, retryAfter, err := limiter.Hit(r.Context(), key)
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable", "request_id", RequestIDFromContext(r.Context()), "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				logger.Log.Warnw("rate limit exceeded", "request_id", RequestIDFromContext(r.Context()), "key", key, "count", count)
				seconds := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
