package types

// OrderItemKind tags the two closed shapes a persisted line item can take.
type OrderItemKind string

const (
	OrderItemKindStandard OrderItemKind = "standard"
	OrderItemKindCustom   OrderItemKind = "custom"
)

// OrderItem is the persisted snapshot of one cart line. Color is only set for
// items sold in variants; Description only for custom bouquet compositions.
type OrderItem struct {
	ID          string        `json:"id"`
	Kind        OrderItemKind `json:"kind"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Price       int           `json:"price"`
	Quantity    int           `json:"quantity"`
	Color       string        `json:"color,omitempty"`
	Description string        `json:"description,omitempty"`
}

// OrderItems carries the ordered line items of an order, serialized as a
// jsonb column by GORM.
type OrderItems []OrderItem
