package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
)

// CorsMiddleware lets the browser frontend call the API from its own origin.
func CorsMiddleware(s config.CORSSettings) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   s.AllowedOrigins,
		AllowedMethods:   s.AllowedMethods,
		AllowedHeaders:   s.AllowedHeaders,
		AllowCredentials: s.AllowCredentials,
		MaxAge:           s.MaxAge,
	}).Handler
}
