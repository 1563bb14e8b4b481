package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware allows browser clients from origins to call the API.
// A "*" entry allows any origin.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         600,
	}).Handler
}
