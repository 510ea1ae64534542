package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/userhub/internal/pkg/message"
	"github.com/ferdiebergado/userhub/internal/pkg/web"
	"github.com/go-chi/httprate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimit allows at most limit requests per client IP within window.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			web.RespondTooManyRequests(w, errRateLimited, message.TooManyReqs, nil)
		}),
	)
}
