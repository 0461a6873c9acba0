package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type contextKey string

// userIDKey carries the authenticated user ID extracted from the bearer
// token.
const userIDKey contextKey = "userID"

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		s.logger.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// requireAuth validates the bearer token and stores the user ID in the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		token, err := validateAndParseJWTToken(strings.TrimPrefix(header, "Bearer "), s.cfg.TokenSignKey, s.cfg.TokenIssuer)
		if err != nil {
			s.logger.Err(err).Msg("token rejected")
			http.Error(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authedUserID returns the user ID requireAuth stored in the context.
func authedUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

func writeJSON(w http.ResponseWriter, value any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
