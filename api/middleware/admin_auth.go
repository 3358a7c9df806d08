package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/bloomstitch/storefront-backend/api/responses"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
)

const adminKeyHeader = "X-Admin-Key"

// AdminAuth gates the admin surface behind a shared key. The comparison is
// constant-time so the key cannot be probed byte by byte.
func AdminAuth(adminKey string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(adminKeyHeader)
			if adminKey == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(adminKey)) != 1 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin key required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
