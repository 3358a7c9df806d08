package orders

import "github.com/bloomstitch/storefront-backend/pkg/db/models"

// ListFilters narrows the admin order listing.
type ListFilters struct {
	Status string
	Email  string
}

// OrderList is one page of orders plus the cursor for the next page. An empty
// NextCursor means the listing is exhausted.
type OrderList struct {
	Orders     []models.Order
	NextCursor string
}

// TrackQuery looks up orders by id or by customer email. Exactly one field
// must be set.
type TrackQuery struct {
	OrderID string
	Email   string
}

// UpdateOrderInput carries the admin-editable order fields. Nil pointers mean
// "leave unchanged".
type UpdateOrderInput struct {
	Status          *string
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	AdminNotes      *string
}
