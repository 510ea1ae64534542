package middleware

import "net/http"

// InjectWriter wraps the response writer once so LogRequest can report the
// status and size of every response.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := w.(*SafeResponseWriter); ok {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(NewSafeResponseWriter(w), r)
	})
}
