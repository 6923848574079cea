package httpd

import (
	"context"
	"net/http"
)

type contextKey string

const contextAccountIDKey contextKey = "account_id"

// WithSession resolves the session cookie, if any, into a request-scoped account id.
// Requests without a valid session pass through unauthenticated.
func (h *Handler) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.sessionCfg.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		accountID, err := h.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to resolve session")
			next.ServeHTTP(w, r)
			return
		}
		if accountID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), contextAccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := AccountIDFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func AccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(contextAccountIDKey).(string)
	return accountID, ok && accountID != ""
}
