package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bloomstitch/storefront-backend/pkg/enums"
	"github.com/bloomstitch/storefront-backend/pkg/types"
)

// Order persists a submitted checkout: the customer contact details plus an
// immutable snapshot of the cart lines and totals at submission time.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName    string              `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerEmail   string              `gorm:"column:customer_email;not null;index" json:"customer_email"`
	CustomerPhone   string              `gorm:"column:customer_phone;not null" json:"customer_phone"`
	CustomerAddress string              `gorm:"column:customer_address;not null" json:"customer_address"`
	OrderItems      types.OrderItems    `gorm:"column:order_items;type:jsonb;serializer:json;not null" json:"order_items"`
	ItemCount       int                 `gorm:"column:item_count;not null" json:"item_count"`
	Subtotal        int                 `gorm:"column:subtotal;not null" json:"subtotal"`
	ShippingFee     int                 `gorm:"column:shipping_fee;not null" json:"shipping_fee"`
	TotalAmount     int                 `gorm:"column:total_amount;not null" json:"total_amount"`
	Status          enums.OrderStatus   `gorm:"column:status;not null;default:'pending'" json:"status"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;not null;default:'cod'" json:"payment_method"`
	CustomerNotes   string              `gorm:"column:customer_notes" json:"customer_notes,omitempty"`
	AdminNotes      string              `gorm:"column:admin_notes" json:"admin_notes,omitempty"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the table name so GORM does not pluralize differently across
// environments.
func (Order) TableName() string { return "orders" }
