// Package middleware provides cross-cutting HTTP middleware for the API server.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the whitelist of permitted origins,
	// e.g. ["http://localhost:3000", "https://example.com"].
	AllowedOrigins []string

	// AllowedMethods lists the HTTP methods permitted in cross-origin requests.
	AllowedMethods []string

	// AllowedHeaders lists the request headers permitted in cross-origin requests.
	AllowedHeaders []string

	// MaxAge is how long preflight results may be cached, in seconds.
	MaxAge int

	// Logger receives warnings for rejected origins. Optional.
	Logger *slog.Logger
}

// LoadCORSConfig builds a CORSConfig from environment variables.
// CORS_ALLOWED_ORIGINS is a comma-separated whitelist and is required
// for the middleware to allow any cross-origin request; each entry must
// be a valid absolute origin without path or trailing slash.
func LoadCORSConfig() (*CORSConfig, error) {
	cfg := &CORSConfig{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         86400,
	}

	for _, raw := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		origin := strings.TrimSpace(raw)
		if origin == "" {
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return nil, fmt.Errorf("LoadCORSConfig: %w", err)
		}
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
	}

	if v := os.Getenv("CORS_MAX_AGE"); v != "" {
		maxAge, err := strconv.Atoi(v)
		if err != nil || maxAge < 0 {
			return nil, fmt.Errorf("LoadCORSConfig: invalid CORS_MAX_AGE %q", v)
		}
		cfg.MaxAge = maxAge
	}

	return cfg, nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid origin %q", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin %q must not contain a path", origin)
	}
	return nil
}

func (c *CORSConfig) originAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// CORS returns middleware that handles cross-origin requests against the
// configured whitelist. Same-origin requests (no Origin header) pass
// through untouched. Disallowed origins get no CORS headers so the
// browser blocks the response. Preflight OPTIONS requests are answered
// with 204 without reaching the next handler.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.originAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("cors origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			// Echo the request origin; required when credentials are allowed.
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
