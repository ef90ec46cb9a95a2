package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-library/internal/models"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests beyond rps per second, allowing bursts of burst.
// A non-positive rps disables limiting. burst is raised to at least 1.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst = max(burst, 1)
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
