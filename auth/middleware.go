package auth

import (
	"context"
	"log"
	"net/http"

	"github.com/ariel-ams/photos-api-back/models"
)

// CookieName is the cookie carrying the session token.
const CookieName = "auth"

type contextKey string

const (
	userContextKey  contextKey = "auth.user"
	tokenContextKey contextKey = "auth.token"
)

// RequireAuth rejects requests that do not carry a valid session token in
// the auth cookie. On success the resolved user and token are attached to
// the request context for the wrapped handler.
func (m *Manager) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		user, err := m.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			log.Println("unauthorized: session token does not exist")
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, cookie.Value)
		next(w, r.WithContext(ctx))
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"isAuth":false,"message":"unauthorized"}`))
}

// UserFromContext returns the user attached by RequireAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

// TokenFromContext returns the session token attached by RequireAuth.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}
