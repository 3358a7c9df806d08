package checkout

import (
	"context"
	"strings"

	"github.com/bloomstitch/storefront-backend/internal/cart"
	"github.com/bloomstitch/storefront-backend/internal/orders"
	"github.com/bloomstitch/storefront-backend/internal/pricing"
	"github.com/bloomstitch/storefront-backend/internal/session"
	"github.com/bloomstitch/storefront-backend/pkg/config"
	"github.com/bloomstitch/storefront-backend/pkg/db/models"
	"github.com/bloomstitch/storefront-backend/pkg/enums"
	pkgerrors "github.com/bloomstitch/storefront-backend/pkg/errors"
	"github.com/bloomstitch/storefront-backend/pkg/logger"
	"github.com/bloomstitch/storefront-backend/pkg/types"
)

// Summary is the pre-submission view of the session cart with totals applied.
type Summary struct {
	Lines                    []cart.Line    `json:"lines"`
	ItemCount                int            `json:"item_count"`
	Totals                   pricing.Totals `json:"totals"`
	RemainingForFreeShipping int            `json:"remaining_for_free_shipping"`
}

// Service turns a session cart plus a contact form into a persisted order.
type Service struct {
	sessions session.Store
	repo     orders.Repository
	shipping config.ShippingConfig
	logg     *logger.Logger
}

// NewService wires the checkout flow.
func NewService(sessions session.Store, repo orders.Repository, shipping config.ShippingConfig, logg *logger.Logger) *Service {
	return &Service{
		sessions: sessions,
		repo:     repo,
		shipping: shipping,
		logg:     logg,
	}
}

// Summary computes the order preview for the session's current cart.
func (s *Service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}

	subtotal := state.Cart.Subtotal()
	return &Summary{
		Lines:                    state.Cart.Lines(),
		ItemCount:                state.Cart.Count(),
		Totals:                   pricing.ComputeTotals(subtotal, s.shipping),
		RemainingForFreeShipping: pricing.RemainingForFreeShipping(subtotal, s.shipping),
	}, nil
}

// Submit validates the form, snapshots the cart into an order record, and
// persists it. The cart is cleared only after the insert succeeds; any
// failure leaves the session untouched so the customer can retry.
func (s *Service) Submit(ctx context.Context, sessionID string, form ContactForm) (*models.Order, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}

	if state.Cart.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	if problems := form.Validate(); len(problems) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid checkout form").WithDetails(problems)
	}

	payment := enums.PaymentMethodCOD
	if raw := strings.TrimSpace(form.PaymentMethod); raw != "" {
		parsed, err := enums.ParsePaymentMethod(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
		}
		payment = parsed
	}

	// The snapshot is assembled before the insert so a mid-flight cart
	// mutation can never split an order across two states.
	lines := state.Cart.Lines()
	totals := pricing.ComputeTotals(state.Cart.Subtotal(), s.shipping)

	order := &models.Order{
		CustomerName:    strings.TrimSpace(form.Name),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(form.Email)),
		CustomerPhone:   strings.TrimSpace(form.Phone),
		CustomerAddress: strings.TrimSpace(form.Address),
		OrderItems:      snapshotItems(lines),
		ItemCount:       state.Cart.Count(),
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.Shipping,
		TotalAmount:     totals.Total,
		Status:          enums.OrderStatusPending,
		PaymentMethod:   payment,
		CustomerNotes:   strings.TrimSpace(form.Notes),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	ctx = s.logg.WithOrderID(ctx, created.ID.String())

	state.Cart.Clear()
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		// The order is committed; a stale cart is recoverable, losing the
		// order is not.
		s.logg.Warn(ctx, "clearing cart after checkout failed: "+err.Error())
	}

	s.logg.Info(ctx, "order submitted")
	return created, nil
}

func snapshotItems(lines []cart.Line) types.OrderItems {
	items := make(types.OrderItems, 0, len(lines))
	for _, line := range lines {
		kind := types.OrderItemKindStandard
		if line.Item.Kind == cart.LineKindCustom {
			kind = types.OrderItemKindCustom
		}
		items = append(items, types.OrderItem{
			ID:          line.Item.ID,
			Kind:        kind,
			Name:        line.Item.Name,
			Category:    line.Item.Category,
			Price:       line.Item.Price,
			Quantity:    line.Quantity,
			Color:       line.SelectedColor,
			Description: line.Item.Description,
		})
	}
	return items
}
