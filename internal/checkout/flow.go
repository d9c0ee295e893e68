package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/pkg/errors"
)

// Placer submits a finalized order to whatever fulfils it. The storefront
// treats order persistence as an opaque collaborator behind this seam.
type Placer interface {
	Place(ctx context.Context, order domain.Order) error
}

// Flow drives one checkout attempt from form editing to a submitted order.
//
// States: EDITING -> CARD_CAPTURE -> SUBMITTED when paying by card,
// EDITING -> SUBMITTED directly for cash on delivery. A failed guard leaves
// the state where it was; SUBMITTED is terminal. Flow is not safe for
// concurrent use; callers serialize access the way a UI event loop would.
type Flow struct {
	cart   *cart.Store
	placer Placer
	logger *zap.Logger

	state domain.CheckoutState
	form  domain.CheckoutForm
}

// NewFlow starts a checkout attempt in the EDITING state
func NewFlow(cartStore *cart.Store, placer Placer, logger *zap.Logger) *Flow {
	return &Flow{
		cart:   cartStore,
		placer: placer,
		logger: logger,
		state:  domain.CheckoutStateEditing,
	}
}

// State returns where the flow currently is
func (f *Flow) State() domain.CheckoutState {
	return f.state
}

// SubmitForm validates the main form and advances the flow. Card payments
// move to CARD_CAPTURE; cash on delivery places the order immediately.
// On validation failure the state stays EDITING and nothing is submitted.
func (f *Flow) SubmitForm(ctx context.Context, form domain.CheckoutForm) error {
	target := domain.CheckoutStateSubmitted
	if form.PaymentMethod.RequiresCardCapture() {
		target = domain.CheckoutStateCardCapture
	}

	if f.state != domain.CheckoutStateEditing {
		return &errors.ErrInvalidStateTransition{From: f.state, To: target}
	}

	if err := ValidateMainForm(form); err != nil {
		return err
	}

	f.form = form

	if target == domain.CheckoutStateCardCapture {
		f.state = domain.CheckoutStateCardCapture
		return nil
	}

	return f.place(ctx)
}

// SubmitCard validates the card details and places the order.
// On validation failure the state stays CARD_CAPTURE and the cart is kept.
func (f *Flow) SubmitCard(ctx context.Context, card domain.CardDetails) error {
	if f.state != domain.CheckoutStateCardCapture {
		return &errors.ErrInvalidStateTransition{From: f.state, To: domain.CheckoutStateSubmitted}
	}

	if err := ValidateCard(card); err != nil {
		return err
	}

	return f.place(ctx)
}

func (f *Flow) place(ctx context.Context) error {
	lines := f.cart.Load(ctx)
	if len(lines) == 0 {
		return &errors.ErrValidation{Message: "cart is empty"}
	}

	order := BuildOrder(f.form, lines)

	if err := f.placer.Place(ctx, order); err != nil {
		// Transient: state and cart are untouched so the visitor can retry
		return err
	}

	f.logger.Info("Order placed",
		zap.String("reference", order.Reference.String()),
		zap.Float64("total", order.Total),
		zap.String("payment_method", string(order.PaymentMethod)),
	)

	if err := f.cart.Clear(ctx); err != nil {
		// The order is already placed; a stuck cart is recoverable locally
		f.logger.Warn("Failed to clear cart after order placement", zap.Error(err))
	}

	f.state = domain.CheckoutStateSubmitted
	return nil
}

// BuildOrder snapshots the cart and form into an order with a
// client-generated reference and the computed total
func BuildOrder(form domain.CheckoutForm, lines []domain.CartLine) domain.Order {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return domain.Order{
		Reference:     uuid.New(),
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Address:       form.Address,
		PostalCode:    form.PostalCode,
		Phone:         form.Phone,
		Email:         form.Email,
		Notes:         form.Notes,
		PaymentMethod: form.PaymentMethod,
		Items:         items,
		Total:         cart.TotalOf(lines),
		PlacedAt:      time.Now(),
	}
}
