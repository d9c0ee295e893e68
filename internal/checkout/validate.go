package checkout

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/pkg/errors"
)

var validate = validator.New()

// ValidateMainForm checks the shipping/contact/payment form. Checks run in a
// fixed order and the first failure short-circuits the rest: required fields
// first (trimmed), then postal code shape, phone shape, email shape.
func ValidateMainForm(form domain.CheckoutForm) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"address", form.Address},
		{"postalCode", form.PostalCode},
		{"phone", form.Phone},
		{"email", form.Email},
		{"paymentMethod", string(form.PaymentMethod)},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &errors.ErrValidation{Field: r.field, Message: "is required"}
		}
	}

	if !form.PaymentMethod.IsValid() {
		return &errors.ErrValidation{Field: "paymentMethod", Message: "must be CARD or CASH_ON_DELIVERY"}
	}

	// Postal code must be digits only
	if err := validate.Var(form.PostalCode, "number"); err != nil {
		return &errors.ErrValidation{Field: "postalCode", Message: "must be a number"}
	}

	// Phone must be exactly 10 digits
	if err := validate.Var(form.Phone, "number,len=10"); err != nil {
		return &errors.ErrValidation{Field: "phone", Message: "must be a 10-digit number"}
	}

	if err := validate.Var(form.Email, "email"); err != nil {
		return &errors.ErrValidation{Field: "email", Message: "must be a valid email address"}
	}

	return nil
}

// ValidateCard checks the card-detail capture step
func ValidateCard(card domain.CardDetails) error {
	if len(strings.TrimSpace(card.CardNumber)) < 12 {
		return &errors.ErrValidation{Field: "cardNumber", Message: "invalid card number"}
	}
	if strings.TrimSpace(card.Expiry) == "" {
		return &errors.ErrValidation{Field: "expiry", Message: "expiry date required"}
	}
	if len(strings.TrimSpace(card.CVV)) < 3 {
		return &errors.ErrValidation{Field: "cvv", Message: "invalid CVV"}
	}
	return nil
}
