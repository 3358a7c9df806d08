package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bloomstitch/storefront-backend/api/responses"
	"github.com/bloomstitch/storefront-backend/internal/catalog"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
)

type catalogItemView struct {
	catalog.Item
	DisplayPrice string `json:"display_price"`
}

func itemView(item catalog.Item) catalogItemView {
	return catalogItemView{Item: item, DisplayPrice: catalog.FormatPrice(item.Price)}
}

func itemViews(items []catalog.Item) []catalogItemView {
	views := make([]catalogItemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}
	return views
}

// ListCatalog returns the full registry, optionally narrowed to one category.
func ListCatalog(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			responses.WriteSuccess(w, itemViews(catalog.All()))
			return
		}

		if _, ok := catalog.CategoryBySlug(category); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "unknown category"))
			return
		}
		responses.WriteSuccess(w, itemViews(catalog.ByCategory(category)))
	}
}

// GetCatalogItem returns one registry item by id.
func GetCatalogItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")
		item, ok := catalog.ByID(itemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "item not found"))
			return
		}
		responses.WriteSuccess(w, itemView(item))
	}
}

// ListCategories returns the storefront navigation categories.
func ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, catalog.Categories())
	}
}
