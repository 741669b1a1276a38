package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/upperhound/academy/pkg/jwtx"
	"github.com/upperhound/academy/pkg/slogx"
)

// AuthnMiddleware verifies the Bearer session token and injects the account
// id and role into the request context.
func AuthnMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "Authentication required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				writeBearerError(w, "Invalid or expired session")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "Invalid or expired session")
				return
			}

			// Inject into context for downstream handlers.
			ctx = context.WithValue(ctx, CtxKeyAccountID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant challenge plus the service's uniform JSON error body.
func writeBearerError(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, msg)
}
