package controllers

import (
	"net/http"
	"strings"

	"github.com/bloomstitch/storefront-backend/api/responses"
	"github.com/bloomstitch/storefront-backend/internal/orders"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
)

// TrackOrders is the customer-facing lookup: ?order_id=... or ?email=... .
func TrackOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := orders.TrackQuery{
			OrderID: strings.TrimSpace(r.URL.Query().Get("order_id")),
			Email:   strings.TrimSpace(r.URL.Query().Get("email")),
		}

		found, err := svc.Track(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, found)
	}
}
