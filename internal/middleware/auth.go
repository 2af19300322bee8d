package middleware

import (
	"net/http"

	"github.com/casefolio/casefolio/internal/ctxkeys"
	"github.com/casefolio/casefolio/internal/service"
)

// AuthMiddleware resolves the session cookie into a caller identity on the
// request context. Requests without a valid token continue as guests.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authService.CookieName())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := authService.VerifyJWT(cookie.Value)
			if err != nil {
				// Invalid or expired token, clear cookie and continue
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the caller is an authenticated user.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := ctxkeys.Identity(r.Context())
		if identity == nil || identity.Email == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireAdmin ensures the caller holds the admin credential.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := ctxkeys.Identity(r.Context())
		if identity == nil || !identity.Admin {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
}
