package middleware

import (
	"context"
	"net/http"

	"study_tracker/internal/common"
	"study_tracker/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey  contextKey = "userID"
	IsAdminCtxKey contextKey = "isAdmin"
)

// SessionClaims pulls the session out of a request without failing; both
// values are zero for anonymous requests.
func SessionClaims(r *http.Request) (userID string, isAdmin bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return "", false
	}
	userID, _ = security.GetUserIDFromClaims(claims)
	return userID, security.GetIsAdminFromClaims(claims)
}

// Authenticator rejects requests without a logged-in user session.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, isAdmin := SessionClaims(r)
		if userID == "" {
			common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, IsAdminCtxKey, isAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly guards admin-gated endpoints. An anonymous request gets 403,
// not 401, because the admin flag is the thing being checked.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, isAdmin := SessionClaims(r); !isAdmin {
			common.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLoginPage is the server-rendered-page variant of Authenticator:
// anonymous visitors are redirected to /login instead of getting JSON.
func RequireLoginPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, isAdmin := SessionClaims(r)
		if userID == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, IsAdminCtxKey, isAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
