package orders

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomstitch/storefront-backend/pkg/db/models"
	"github.com/bloomstitch/storefront-backend/pkg/enums"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/pagination"
)

type service struct {
	repo Repository
}

// NewService builds the order tracking/management service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Track resolves a customer-facing lookup. An order id returns at most one
// order; an email returns every order placed with it, newest first. Zero
// matches surface as CodeNotFound so the storefront can render its empty
// state.
func (s *service) Track(ctx context.Context, query TrackQuery) ([]models.Order, error) {
	orderID := strings.TrimSpace(query.OrderID)
	email := strings.TrimSpace(query.Email)

	switch {
	case orderID != "" && email != "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "provide an order id or an email, not both")
	case orderID != "":
		id, err := uuid.Parse(orderID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id")
		}
		order, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no order found for that id")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		return []models.Order{*order}, nil
	case email != "":
		found, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders by email")
		}
		if len(found) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no orders found for that email")
		}
		return found, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id or email is required")
	}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters ListFilters) (*OrderList, error) {
	if filters.Status != "" {
		if _, err := enums.ParseOrderStatus(filters.Status); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
		}
	}
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}
	if err := s.repo.Update(ctx, id, map[string]any{"status": parsed}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	return s.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*models.Order, error) {
	updates := map[string]any{}
	if input.Status != nil {
		parsed, err := enums.ParseOrderStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
		}
		updates["status"] = parsed
	}
	if input.CustomerName != nil {
		if strings.TrimSpace(*input.CustomerName) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name cannot be empty")
		}
		updates["customer_name"] = strings.TrimSpace(*input.CustomerName)
	}
	if input.CustomerPhone != nil {
		updates["customer_phone"] = strings.TrimSpace(*input.CustomerPhone)
	}
	if input.CustomerAddress != nil {
		if strings.TrimSpace(*input.CustomerAddress) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer address cannot be empty")
		}
		updates["customer_address"] = strings.TrimSpace(*input.CustomerAddress)
	}
	if input.AdminNotes != nil {
		updates["admin_notes"] = *input.AdminNotes
	}
	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	return nil
}
