package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/pkg"
)

type SessionCookie struct {
	Name   string
	MaxAge time.Duration
}

type sessionKey struct{}

func withSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func sessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(sessionKey{}).(string)
	if !ok || sessionID == "" {
		return "", apperror.ErrNoSession
	}

	return sessionID, nil
}

func (that SessionCookie) read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(that.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (that SessionCookie) write(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     that.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(that.MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (that SessionCookie) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     that.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ensureSession issues a new session cookie when the request has none.
func (that SessionCookie) ensureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := that.read(r)
		if !ok {
			sessionID = pkg.GenerateNewSessionID()
			that.write(w, sessionID)
		}

		next.ServeHTTP(w, r.WithContext(withSessionID(r.Context(), sessionID)))
	})
}

// requireSession answers 400 when the request carries no session cookie.
func (that SessionCookie) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := that.read(r)
		if !ok {
			http.Error(w, "No session found", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSessionID(r.Context(), sessionID)))
	})
}
