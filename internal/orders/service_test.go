package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloomstitch/storefront-backend/pkg/db/models"
	"github.com/bloomstitch/storefront-backend/pkg/enums"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/pagination"
)

type stubOrdersRepo struct {
	orders  map[uuid.UUID]*models.Order
	byEmail map[string][]models.Order
	updates map[string]any
}

func newStubOrdersRepo() *stubOrdersRepo {
	return &stubOrdersRepo{
		orders:  map[uuid.UUID]*models.Order{},
		byEmail: map[string][]models.Order{},
	}
}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubOrdersRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubOrdersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (s *stubOrdersRepo) FindByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.byEmail[email], nil
}

func (s *stubOrdersRepo) List(ctx context.Context, params pagination.Params, filters ListFilters) (*OrderList, error) {
	out := []models.Order{}
	for _, order := range s.orders {
		out = append(out, *order)
	}
	return &OrderList{Orders: out}, nil
}

func (s *stubOrdersRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if _, ok := s.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.updates = updates
	if status, ok := updates["status"].(enums.OrderStatus); ok {
		s.orders[id].Status = status
	}
	return nil
}

func (s *stubOrdersRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.orders, id)
	return nil
}

func seedStubOrder(repo *stubOrdersRepo) *models.Order {
	order := &models.Order{
		ID:            uuid.New(),
		CustomerEmail: "ayesha@example.com",
		Status:        enums.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	repo.orders[order.ID] = order
	return order
}

func TestServiceTrack_byID(t *testing.T) {
	repo := newStubOrdersRepo()
	order := seedStubOrder(repo)
	svc := NewService(repo)

	found, err := svc.Track(context.Background(), TrackQuery{OrderID: order.ID.String()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, order.ID, found[0].ID)
}

func TestServiceTrack_unknownIDIsNotFound(t *testing.T) {
	svc := NewService(newStubOrdersRepo())

	_, err := svc.Track(context.Background(), TrackQuery{OrderID: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestServiceTrack_malformedID(t *testing.T) {
	svc := NewService(newStubOrdersRepo())

	_, err := svc.Track(context.Background(), TrackQuery{OrderID: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestServiceTrack_byEmail(t *testing.T) {
	repo := newStubOrdersRepo()
	repo.byEmail["sana@example.com"] = []models.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	svc := NewService(repo)

	found, err := svc.Track(context.Background(), TrackQuery{Email: "sana@example.com"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestServiceTrack_emailWithNoOrders(t *testing.T) {
	svc := NewService(newStubOrdersRepo())

	_, err := svc.Track(context.Background(), TrackQuery{Email: "nobody@example.com"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestServiceTrack_requiresExactlyOneSelector(t *testing.T) {
	svc := NewService(newStubOrdersRepo())

	_, err := svc.Track(context.Background(), TrackQuery{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Track(context.Background(), TrackQuery{OrderID: uuid.NewString(), Email: "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestServiceUpdateStatus(t *testing.T) {
	repo := newStubOrdersRepo()
	order := seedStubOrder(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusShipped, updated.Status)
}

func TestServiceUpdateStatus_rejectsUnknownStatus(t *testing.T) {
	repo := newStubOrdersRepo()
	order := seedStubOrder(repo)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), order.ID, "teleported")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	assert.Nil(t, repo.updates)
}

func TestServiceUpdate_partialFields(t *testing.T) {
	repo := newStubOrdersRepo()
	order := seedStubOrder(repo)
	svc := NewService(repo)

	notes := "call before delivery"
	_, err := svc.Update(context.Background(), order.ID, UpdateOrderInput{AdminNotes: &notes})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"admin_notes": notes}, repo.updates)
}

func TestServiceUpdate_rejectsEmptyName(t *testing.T) {
	repo := newStubOrdersRepo()
	order := seedStubOrder(repo)
	svc := NewService(repo)

	empty := "   "
	_, err := svc.Update(context.Background(), order.ID, UpdateOrderInput{CustomerName: &empty})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestServiceDelete_missingIsNotFound(t *testing.T) {
	svc := NewService(newStubOrdersRepo())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
