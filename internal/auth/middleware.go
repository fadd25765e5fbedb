package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/grove-games/armory/internal/logger"
)

const bearerPrefix = "Bearer"

// Middleware authenticates requests and stores the user ID in the request
// context. Require rejects anonymous requests; Optional lets them through
// without an identity so handlers can vary their response by ownership.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware creates auth middleware around a token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Require rejects requests without a valid bearer token.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.authenticate(r)
		if !ok {
			respondUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// Optional authenticates when a token is present but never rejects. A bad
// token is treated as anonymous rather than an error, so stale clients still
// get the public view.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := m.authenticate(r); ok {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) authenticate(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		return "", false
	}

	userID, err := m.tokens.Verify(parts[1])
	if err != nil {
		logger.FromContext(r.Context()).Warn("Token verification failed", "error", err)
		return "", false
	}
	return userID, true
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
}
