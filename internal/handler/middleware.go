package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/service"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	requestIDContextKey contextKey = "request_id"
)

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequestIDFromContext returns the id assigned by RequestLogger, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// AuthenticatedHandler is a handler that runs with a resolved caller.
type AuthenticatedHandler func(w http.ResponseWriter, r *http.Request, user *domain.User)

// RequireAuth protects a route. It authenticates the Authorization header,
// then calls next with the resolved user, which is also stored in the
// request context. Every authentication failure is a 401.
func RequireAuth(auth *service.AuthService, next AuthenticatedHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				writeMessage(w, http.StatusUnauthorized, authFailureMessage(err))
				return
			}
			writeInternalError(w, r, "authenticate request", err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx), user)
	})
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedHeader):
		return "Formato de token inválido! Use: Bearer <token>"
	case errors.Is(err, domain.ErrMissingToken):
		return "Token é obrigatório!"
	case errors.Is(err, domain.ErrTokenExpired):
		return "Token expirado!"
	case errors.Is(err, domain.ErrUnknownUser):
		return "Usuário não encontrado!"
	default:
		return "Token inválido!"
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// RequestLogger assigns each request an id, echoes it in X-Request-ID and
// logs the outcome once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(rec, r.WithContext(ctx))

		slog.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// SecurityHeaders sets headers that apply to every JSON response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
