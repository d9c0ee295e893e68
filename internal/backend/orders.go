package backend

import (
	"context"
	"net/http"

	"github.com/medzone/storefront/internal/domain"
)

// Place submits a finalized order to the pharmacy API.
// Implements checkout.Placer.
func (c *Client) Place(ctx context.Context, order domain.Order) error {
	return c.do(ctx, http.MethodPost, "/api/orders/add", order, nil)
}

// MyOrders fetches the visitor's own orders
func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/myorders", nil, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// CancelOrder cancels one of the visitor's own pending orders
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/deletebycustomer/"+id, nil, nil)
}

// AllOrders lists every order in the shop. Requires a shop-owner token.
func (c *Client) AllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/allorders", nil, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// ApproveOrder marks an order as accepted. Requires a shop-owner token.
func (c *Client) ApproveOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/orders/approve/"+id, nil, nil)
}

// DeleteOrder removes any order. Requires a shop-owner token.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/delete/"+id, nil, nil)
}
