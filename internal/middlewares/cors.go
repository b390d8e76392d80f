package middlewares

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func CorsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept", "X-Request-Id"}),
	)
}
