package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsradar/internal/handler/http/requestid"
)

// tokenTTL is how long an issued admin token stays valid.
const tokenTTL = time.Hour

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler authenticates the admin user and issues an HS256-signed JWT.
// Credentials pass through the provider and are never logged.
func TokenHandler(provider Provider, secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		reject := func(reason string, code int, body string) {
			logger.Warn("authentication failed",
				slog.String("reason", reason),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			RecordAuthDuration(time.Since(start).Seconds())
			http.Error(w, body, code)
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reject("invalid_request", http.StatusBadRequest, "invalid request")
			return
		}

		creds := Credentials{Username: req.Username, Password: req.Password}
		if err := provider.Validate(creds); err != nil {
			reject("invalid_credentials", http.StatusUnauthorized, "unauthorized")
			return
		}

		signed, err := signAdminToken(req.Username, secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			RecordAuthDuration(time.Since(start).Seconds())
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("user", req.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("success")
		RecordAuthDuration(time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response", slog.String("error", err.Error()))
		}
	}
}

func signAdminToken(username string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
