package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bloomstitch/storefront-backend/api/middleware"
	"github.com/bloomstitch/storefront-backend/api/responses"
	"github.com/bloomstitch/storefront-backend/api/validators"
	"github.com/bloomstitch/storefront-backend/internal/cart"
	"github.com/bloomstitch/storefront-backend/internal/catalog"
	"github.com/bloomstitch/storefront-backend/internal/pricing"
	"github.com/bloomstitch/storefront-backend/internal/session"
	"github.com/bloomstitch/storefront-backend/pkg/config"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
)

type cartView struct {
	Lines                    []cart.Line    `json:"lines"`
	ItemCount                int            `json:"item_count"`
	Totals                   pricing.Totals `json:"totals"`
	RemainingForFreeShipping int            `json:"remaining_for_free_shipping"`
}

func viewOf(c *cart.Cart, shipping config.ShippingConfig) cartView {
	subtotal := c.Subtotal()
	return cartView{
		Lines:                    c.Lines(),
		ItemCount:                c.Count(),
		Totals:                   pricing.ComputeTotals(subtotal, shipping),
		RemainingForFreeShipping: pricing.RemainingForFreeShipping(subtotal, shipping),
	}
}

type addCartItemRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Color    string `json:"color"`
}

type updateCartItemRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

// GetCart returns the session cart with totals applied.
func GetCart(store session.Store, shipping config.ShippingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := store.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}
		responses.WriteSuccess(w, viewOf(state.Cart, shipping))
	}
}

// AddCartItem adds a catalog item to the session cart. Items sold in color
// variants require one of their declared colors; single-variant items reject
// any color.
func AddCartItem(store session.Store, shipping config.ShippingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, ok := catalog.ByID(req.ItemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "item not found"))
			return
		}
		if !item.InStock {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "item is out of stock"))
			return
		}

		color := strings.TrimSpace(req.Color)
		if item.HasColors() {
			if color == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "color is required for this item").
						WithDetails(map[string]any{"colors": item.Colors}))
				return
			}
			if !item.HasColor(color) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "color is not available for this item").
						WithDetails(map[string]any{"colors": item.Colors}))
				return
			}
		} else if color != "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item has no color variants"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}

		state.Cart.Add(cart.SnapshotOf(item), req.Quantity, color)

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, viewOf(state.Cart, shipping))
	}
}

// UpdateCartItem sets the quantity on an existing line. A quantity of zero or
// less removes the line; unknown lines are left untouched.
func UpdateCartItem(store session.Store, shipping config.ShippingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}

		state.Cart.UpdateQuantity(req.ItemID, req.Quantity, strings.TrimSpace(req.Color))

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, viewOf(state.Cart, shipping))
	}
}

// RemoveCartItem drops one line from the cart.
func RemoveCartItem(store session.Store, shipping config.ShippingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")
		color := strings.TrimSpace(r.URL.Query().Get("color"))

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}

		state.Cart.Remove(itemID, color)

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, viewOf(state.Cart, shipping))
	}
}

// ClearCart empties the session cart.
func ClearCart(store session.Store, shipping config.ShippingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}

		state.Cart.Clear()

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, viewOf(state.Cart, shipping))
	}
}
