package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/pkg/errors"
)

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		FirstName:     "Amal",
		LastName:      "Perera",
		Address:       "12 Galle Road, Colombo",
		PostalCode:    "10350",
		Phone:         "0771234567",
		Email:         "amal@example.com",
		PaymentMethod: domain.PaymentMethodCashOnDelivery,
	}
}

func TestValidateMainForm(t *testing.T) {
	t.Run("accepts a fully valid form", func(t *testing.T) {
		assert.NoError(t, ValidateMainForm(validForm()))
	})

	t.Run("reports the first missing required field", func(t *testing.T) {
		form := validForm()
		form.LastName = "   "
		form.Email = ""

		err := ValidateMainForm(form)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "lastName", vErr.Field)
	})

	t.Run("requires a payment method", func(t *testing.T) {
		form := validForm()
		form.PaymentMethod = ""

		err := ValidateMainForm(form)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "paymentMethod", vErr.Field)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		form := validForm()
		form.PaymentMethod = "BARTER"

		err := ValidateMainForm(form)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "paymentMethod", vErr.Field)
	})

	t.Run("rejects a non-numeric postal code", func(t *testing.T) {
		form := validForm()
		form.PostalCode = "12A34"

		err := ValidateMainForm(form)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "postalCode", vErr.Field)
	})

	t.Run("rejects a phone that is not exactly 10 digits", func(t *testing.T) {
		for _, phone := range []string{"12345", "077123456789", "07712345ab"} {
			form := validForm()
			form.Phone = phone

			err := ValidateMainForm(form)
			var vErr *errors.ErrValidation
			require.ErrorAs(t, err, &vErr, "phone %q should fail", phone)
			assert.Equal(t, "phone", vErr.Field)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		form := validForm()
		form.Email = "not-an-email"

		err := ValidateMainForm(form)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
	})

	t.Run("is idempotent on the same invalid input", func(t *testing.T) {
		form := validForm()
		form.PostalCode = "12A34"

		first := ValidateMainForm(form)
		second := ValidateMainForm(form)
		require.Error(t, first)
		require.Error(t, second)
		assert.Equal(t, first.Error(), second.Error())
	})
}

func TestValidateCard(t *testing.T) {
	valid := domain.CardDetails{
		CardNumber: "4111111111111111",
		Expiry:     "12/27",
		CVV:        "123",
	}

	t.Run("accepts valid card details", func(t *testing.T) {
		assert.NoError(t, ValidateCard(valid))
	})

	t.Run("rejects a card number shorter than 12 after trimming", func(t *testing.T) {
		card := valid
		card.CardNumber = "  1234  "

		err := ValidateCard(card)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "cardNumber", vErr.Field)
	})

	t.Run("requires an expiry", func(t *testing.T) {
		card := valid
		card.Expiry = "  "

		err := ValidateCard(card)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "expiry", vErr.Field)
	})

	t.Run("rejects a CVV shorter than 3", func(t *testing.T) {
		card := valid
		card.CVV = "12"

		err := ValidateCard(card)
		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "cvv", vErr.Field)
	})
}
