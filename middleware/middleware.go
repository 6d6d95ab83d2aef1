// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Weaseltime420/Vote-Bot/auth"
	"github.com/Weaseltime420/Vote-Bot/cliparse"
	"github.com/Weaseltime420/Vote-Bot/models"
)

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		next(w, r)

		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// WithAuth gates a handler on the capability the command requires. Member
// identity arrives as the X-Member-ID header, set by the platform adapter
// after it has authenticated the member. Admin commands additionally need
// a valid X-Admin-Token.
func WithAuth(access auth.Access, cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := r.Header.Get("X-Member-ID")
		if memberID == "" {
			ErrorResponse(w, http.StatusUnauthorized, "X-Member-ID header required")
			return
		}

		if access == auth.Admin {
			token := r.Header.Get("X-Admin-Token")
			if err := auth.ValidateAdminToken(memberID, token, cfg.AdminTokenSalt); err != nil {
				slog.Warn("admin command rejected", "path", r.URL.Path, "member", memberID)
				ErrorResponse(w, http.StatusForbidden, "Administrator permission required.")
				return
			}
		}

		next(w, r)
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}
