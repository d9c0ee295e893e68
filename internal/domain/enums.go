package domain

// PaymentMethod represents how the customer pays for an order
type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "CARD"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCashOnDelivery:
		return true
	default:
		return false
	}
}

// RequiresCardCapture reports whether this method needs the card-detail step
func (m PaymentMethod) RequiresCardCapture() bool {
	return m == PaymentMethodCard
}

// CheckoutState represents where the checkout flow currently is
type CheckoutState string

const (
	CheckoutStateEditing     CheckoutState = "EDITING"
	CheckoutStateCardCapture CheckoutState = "CARD_CAPTURE"
	CheckoutStateSubmitted   CheckoutState = "SUBMITTED"
)

// IsValid checks if the checkout state is valid
func (s CheckoutState) IsValid() bool {
	switch s {
	case CheckoutStateEditing, CheckoutStateCardCapture, CheckoutStateSubmitted:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a checkout state transition is valid
func (s CheckoutState) CanTransitionTo(newState CheckoutState) bool {
	switch s {
	case CheckoutStateEditing:
		return newState == CheckoutStateCardCapture ||
			newState == CheckoutStateSubmitted
	case CheckoutStateCardCapture:
		return newState == CheckoutStateSubmitted
	case CheckoutStateSubmitted:
		return false // Terminal state
	default:
		return false
	}
}
