package http

import "net/http"

// Request input limits. JWT tokens stay well under 1KB, so 8KB of
// Authorization header is generous headroom.
const (
	maxAuthHeaderBytes = 8192
	maxPathBytes       = 2048
	maxBodyBytes       = 10 << 20
)

// InputValidation caps the Authorization header, URI path, and body size of
// every request before it reaches a handler.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				rejectJSON(w, http.StatusBadRequest, "authorization header too large")
				return
			}
			if len(r.URL.Path) > maxPathBytes {
				rejectJSON(w, http.StatusRequestURITooLong, "URI too long")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}

func rejectJSON(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
