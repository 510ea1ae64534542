package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowCreds   = "Access-Control-Allow-Credentials"
)

var (
	AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	AllowedHeaders = []string{"Content-Type", HeaderRequestID}
)

// CORS allows browser calls from allowedOrigin only. Preflights from any other
// origin get no Access-Control headers and never reach next.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   AllowedMethods,
		AllowedHeaders:   AllowedHeaders,
		ExposedHeaders:   []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler
}
