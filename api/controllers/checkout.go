package controllers

import (
	"net/http"

	"github.com/bloomstitch/storefront-backend/api/middleware"
	"github.com/bloomstitch/storefront-backend/api/responses"
	"github.com/bloomstitch/storefront-backend/api/validators"
	"github.com/bloomstitch/storefront-backend/internal/checkout"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
	"github.com/bloomstitch/storefront-backend/pkg/metrics"
)

// GetCheckoutSummary returns the order preview for the session cart.
func GetCheckoutSummary(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// SubmitCheckout places the order for the session cart.
func SubmitCheckout(svc *checkout.Service, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form checkout.ContactForm
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), middleware.SessionIDFromContext(r.Context()), form)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncOrdersSubmitted()
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
