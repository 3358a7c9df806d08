package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/bloomstitch/storefront-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// Incoming request ids are opaque strings; anything longer than this is
// truncated before it reaches the logs.
const maxRequestIDLen = 64

// RequestID honors an inbound X-Request-Id, minting one when absent, and
// attaches it to the response headers and the request-scoped logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			switch {
			case reqID == "":
				reqID = uuid.NewString()
			case len(reqID) > maxRequestIDLen:
				reqID = reqID[:maxRequestIDLen]
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
