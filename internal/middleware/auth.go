package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

type principalKey struct{}

// APIKey authenticates admin requests via the X-API-Key header and puts
// the resolved principal on the request context.
func APIKey(key string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-API-Key")
			if key == "" || got != key {
				logger.Warn("admin auth rejected", slog.String("remote", r.RemoteAddr))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			p := domain.Principal{Name: "admin"}
			ctx := context.WithValue(r.Context(), principalKey{}, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the principal stored by APIKey. The zero
// principal is returned for unauthenticated requests.
func PrincipalFromContext(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey{}).(domain.Principal)
	return p
}
