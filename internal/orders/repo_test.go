package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bloomstitch/storefront-backend/pkg/db/models"
	"github.com/bloomstitch/storefront-backend/pkg/enums"
	"github.com/bloomstitch/storefront-backend/pkg/pagination"
	"github.com/bloomstitch/storefront-backend/pkg/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_address TEXT NOT NULL,
  order_items TEXT NOT NULL,
  item_count INTEGER NOT NULL,
  subtotal INTEGER NOT NULL,
  shipping_fee INTEGER NOT NULL,
  total_amount INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  payment_method TEXT NOT NULL DEFAULT 'cod',
  customer_notes TEXT,
  admin_notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)

	t.Cleanup(func() {
		db.Exec("DELETE FROM orders")
	})

	return db
}

func seedOrder(t *testing.T, db *gorm.DB, email string, status enums.OrderStatus, createdAt time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:              uuid.New(),
		CustomerName:    "Ayesha Khan",
		CustomerEmail:   email,
		CustomerPhone:   "03001234567",
		CustomerAddress: "House 12, Street 4, Lahore",
		OrderItems: types.OrderItems{
			{
				ID:       "flower-rose",
				Kind:     types.OrderItemKindStandard,
				Name:     "Crochet Rose",
				Category: "flowers",
				Price:    1200,
				Quantity: 2,
				Color:    "Red",
			},
		},
		ItemCount:     2,
		Subtotal:      2400,
		ShippingFee:   250,
		TotalAmount:   2650,
		Status:        status,
		PaymentMethod: enums.PaymentMethodCOD,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryCreateAndFindByID(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	created := seedOrder(t, db, "ayesha@example.com", enums.OrderStatusPending, time.Now().UTC())

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "ayesha@example.com", found.CustomerEmail)
	require.Len(t, found.OrderItems, 1)
	assert.Equal(t, "flower-rose", found.OrderItems[0].ID)
	assert.Equal(t, "Red", found.OrderItems[0].Color)
	assert.Equal(t, 2650, found.TotalAmount)
}

func TestRepositoryFindByID_missing(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindByEmail_newestFirstCaseInsensitive(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	base := time.Now().UTC().Add(-time.Hour)
	older := seedOrder(t, db, "Sana@Example.com", enums.OrderStatusDelivered, base)
	newer := seedOrder(t, db, "sana@example.com", enums.OrderStatusPending, base.Add(30*time.Minute))
	seedOrder(t, db, "someone-else@example.com", enums.OrderStatusPending, base)

	found, err := repo.FindByEmail(context.Background(), "SANA@example.com")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, newer.ID, found[0].ID)
	assert.Equal(t, older.ID, found[1].ID)
}

func TestRepositoryList_pagination(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	base := time.Now().UTC().Add(-time.Hour)
	first := seedOrder(t, db, "a@example.com", enums.OrderStatusPending, base)
	second := seedOrder(t, db, "b@example.com", enums.OrderStatusPending, base.Add(time.Minute))

	page, err := repo.List(context.Background(), pagination.Params{Limit: 1}, ListFilters{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, second.ID, page.Orders[0].ID)
	require.NotEmpty(t, page.NextCursor)

	rest, err := repo.List(context.Background(), pagination.Params{Limit: 1, Cursor: page.NextCursor}, ListFilters{})
	require.NoError(t, err)
	require.Len(t, rest.Orders, 1)
	assert.Equal(t, first.ID, rest.Orders[0].ID)
	assert.Empty(t, rest.NextCursor)
}

func TestRepositoryList_statusFilter(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	now := time.Now().UTC()
	seedOrder(t, db, "a@example.com", enums.OrderStatusPending, now)
	shipped := seedOrder(t, db, "b@example.com", enums.OrderStatusShipped, now.Add(time.Second))

	page, err := repo.List(context.Background(), pagination.Params{Limit: 10}, ListFilters{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, shipped.ID, page.Orders[0].ID)
}

func TestRepositoryUpdate(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := seedOrder(t, db, "a@example.com", enums.OrderStatusPending, time.Now().UTC())

	err := repo.Update(context.Background(), order.ID, map[string]any{
		"status":      enums.OrderStatusConfirmed,
		"admin_notes": "ready to pack",
	})
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, found.Status)
	assert.Equal(t, "ready to pack", found.AdminNotes)
}

func TestRepositoryUpdate_missing(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	err := repo.Update(context.Background(), uuid.New(), map[string]any{"status": enums.OrderStatusConfirmed})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := seedOrder(t, db, "a@example.com", enums.OrderStatusPending, time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), order.ID))

	_, err := repo.FindByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(context.Background(), order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
