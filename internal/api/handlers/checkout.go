package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/checkout"
	"github.com/medzone/storefront/internal/domain"
)

// CheckoutSession holds the checkout attempt of the current visitor session.
// A submitted attempt is terminal; the next form submission starts a fresh
// flow over the same cart.
type CheckoutSession struct {
	mu     sync.Mutex
	flow   *checkout.Flow
	carts  *cart.Store
	placer checkout.Placer
	logger *zap.Logger
}

// NewCheckoutSession creates the session wrapper the checkout handlers share
func NewCheckoutSession(carts *cart.Store, placer checkout.Placer, logger *zap.Logger) *CheckoutSession {
	return &CheckoutSession{
		carts:  carts,
		placer: placer,
		logger: logger,
	}
}

func (s *CheckoutSession) current() *checkout.Flow {
	if s.flow == nil || s.flow.State() == domain.CheckoutStateSubmitted {
		s.flow = checkout.NewFlow(s.carts, s.placer, s.logger)
	}
	return s.flow
}

// CheckoutResponse reports the flow state after a submit action
type CheckoutResponse struct {
	State        domain.CheckoutState `json:"state"`
	Total        float64              `json:"total"`
	DisplayTotal string               `json:"display_total"`
}

// HandleCheckoutState returns where the current checkout attempt is
func HandleCheckoutState(session *CheckoutSession, locale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.mu.Lock()
		defer session.mu.Unlock()

		state := domain.CheckoutStateEditing
		if session.flow != nil {
			state = session.flow.State()
		}

		total := session.carts.Total(c.Request.Context())
		c.JSON(http.StatusOK, CheckoutResponse{
			State:        state,
			Total:        total,
			DisplayTotal: domain.FormatAmount(total, locale),
		})
	}
}

// HandleCheckoutSubmit drives the main-form submit action
func HandleCheckoutSubmit(session *CheckoutSession, locale string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		session.mu.Lock()
		defer session.mu.Unlock()

		// The total shown to the visitor is the one computed before
		// submission clears the cart
		total := session.carts.Total(c.Request.Context())

		flow := session.current()
		if err := flow.SubmitForm(c.Request.Context(), form); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			State:        flow.State(),
			Total:        total,
			DisplayTotal: domain.FormatAmount(total, locale),
		})
	}
}

// HandleCheckoutCard drives the card-capture submit action
func HandleCheckoutCard(session *CheckoutSession, locale string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var card domain.CardDetails
		if err := c.ShouldBindJSON(&card); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		session.mu.Lock()
		defer session.mu.Unlock()

		if session.flow == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "no checkout in progress"})
			return
		}

		total := session.carts.Total(c.Request.Context())

		if err := session.flow.SubmitCard(c.Request.Context(), card); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			State:        session.flow.State(),
			Total:        total,
			DisplayTotal: domain.FormatAmount(total, locale),
		})
	}
}
