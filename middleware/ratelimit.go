package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"school-stats/models"
	"school-stats/utils"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.WithField("request_id", RequestIDFrom(r.Context())).Warn("rate limit exceeded")
				w.Header().Set("Retry-After", "1")
				utils.RespondWithError(w, http.StatusTooManyRequests, models.Error{Message: "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
