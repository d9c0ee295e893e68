package backend

import (
	"context"
	"net/http"

	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/pkg/errors"
)

// ListProducts fetches the full catalog
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/all", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &product)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); ok {
			return nil, &errors.ErrNotFound{Resource: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}

// AddProduct creates a catalog entry. Requires a shop-owner token.
func (c *Client) AddProduct(ctx context.Context, product domain.Product) error {
	return c.do(ctx, http.MethodPost, "/api/products/add", product, nil)
}

// UpdateProduct replaces a catalog entry. Requires a shop-owner token.
func (c *Client) UpdateProduct(ctx context.Context, id string, product domain.Product) error {
	return c.do(ctx, http.MethodPut, "/api/products/update/"+id, product, nil)
}

// DeleteProduct removes a catalog entry. Requires a shop-owner token.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/delete/"+id, nil, nil)
}
