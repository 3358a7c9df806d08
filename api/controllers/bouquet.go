package controllers

import (
	"net/http"
	"strings"

	"github.com/bloomstitch/storefront-backend/api/middleware"
	"github.com/bloomstitch/storefront-backend/api/responses"
	"github.com/bloomstitch/storefront-backend/api/validators"
	"github.com/bloomstitch/storefront-backend/internal/bouquet"
	"github.com/bloomstitch/storefront-backend/internal/catalog"
	"github.com/bloomstitch/storefront-backend/internal/session"
	"github.com/bloomstitch/storefront-backend/pkg/config"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
)

type bouquetFlowerView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           int      `json:"price"`
	AvailableColors []string `json:"available_colors,omitempty"`
	Quantity        int      `json:"quantity"`
	UnitColors      []string `json:"unit_colors,omitempty"`
}

type bouquetLeafView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type bouquetView struct {
	Flowers        []bouquetFlowerView `json:"flowers"`
	Leaves         []bouquetLeafView   `json:"leaves"`
	FlowerUnits    int                 `json:"flower_units"`
	MinFlowerUnits int                 `json:"min_flower_units"`
	Total          int                 `json:"total"`
	DisplayTotal   string              `json:"display_total"`
	Committable    bool                `json:"committable"`
}

func builderView(b *bouquet.Builder) bouquetView {
	view := bouquetView{
		FlowerUnits:    b.FlowerUnits(),
		MinFlowerUnits: bouquet.MinFlowerUnits,
		Total:          b.Total(),
		DisplayTotal:   catalog.FormatPrice(b.Total()),
	}
	view.Committable = view.FlowerUnits >= bouquet.MinFlowerUnits

	for _, item := range catalog.Flowers() {
		view.Flowers = append(view.Flowers, bouquetFlowerView{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			AvailableColors: item.Colors,
			Quantity:        b.FlowerQuantity(item.ID),
			UnitColors:      b.FlowerColors(item.ID),
		})
	}
	for _, item := range catalog.Leaves() {
		view.Leaves = append(view.Leaves, bouquetLeafView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: b.LeafQuantity(item.ID),
		})
	}
	return view
}

type adjustUnitsRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Delta  int    `json:"delta" validate:"required"`
}

type unitColorRequest struct {
	ItemID    string `json:"item_id" validate:"required"`
	UnitIndex int    `json:"unit_index" validate:"min=0"`
	Color     string `json:"color" validate:"required"`
}

// GetBouquet returns the session's builder selection.
func GetBouquet(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := store.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}
		responses.WriteSuccess(w, builderView(state.Builder))
	}
}

// AdjustBouquetFlower changes a flower's unit count by a signed delta.
func AdjustBouquetFlower(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adjustUnitsRequest
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

		if err := state.Builder.SetFlowerQuantity(req.ItemID, req.Delta); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, builderView(state.Builder))
	}
}

// SetBouquetFlowerColor picks the color for one flower unit.
func SetBouquetFlowerColor(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req unitColorRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, ok := catalog.ByID(req.ItemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "item not found"))
			return
		}
		color := strings.TrimSpace(req.Color)
		if !item.HasColor(color) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "color is not available for this flower").
					WithDetails(map[string]any{"colors": item.Colors}))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}

		if err := state.Builder.SetFlowerUnitColor(req.ItemID, req.UnitIndex, color); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, builderView(state.Builder))
	}
}

// AdjustBouquetLeaf changes a leaf filler count by a signed delta.
func AdjustBouquetLeaf(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adjustUnitsRequest
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

		if err := state.Builder.SetLeafQuantity(req.ItemID, req.Delta); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, builderView(state.Builder))
	}
}

// CommitBouquet turns the current selection into a cart line and resets the
// builder. Selections below the flower minimum are rejected untouched.
func CommitBouquet(store session.Store, shipping config.ShippingConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := store.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session"))
			return
		}

		snapshot, err := state.Builder.Commit(state.Cart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"added":   snapshot,
			"cart":    viewOf(state.Cart, shipping),
			"builder": builderView(state.Builder),
		})
	}
}
