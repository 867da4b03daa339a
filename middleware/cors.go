package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS allows read-only cross-origin access and answers preflight requests
// with 204. It must wrap the router, since mux does not run middleware for
// methods a route does not accept.
func CORS(origin string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}
