package backend

import (
	"context"
	"net/http"

	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/pkg/errors"
)

// ApprovedReviews fetches the reviews the shop has approved for display
func (c *Client) ApprovedReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/getallapprove", nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// AddReview submits a new review for moderation
func (c *Client) AddReview(ctx context.Context, review domain.Review) error {
	return c.do(ctx, http.MethodPost, "/api/reviews/add", review, nil)
}

// OwnReviews fetches every review the visitor has written, approved or not
func (c *Client) OwnReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/getownreviews", nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// OwnReview fetches a single review the visitor wrote
func (c *Client) OwnReview(ctx context.Context, id string) (*domain.Review, error) {
	var review domain.Review
	err := c.do(ctx, http.MethodGet, "/api/reviews/getOwnOneReview/"+id, nil, &review)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); ok {
			return nil, &errors.ErrNotFound{Resource: "review", ID: id}
		}
		return nil, err
	}
	return &review, nil
}

// UpdateOwnReview edits one of the visitor's reviews, which sends it back
// through moderation
func (c *Client) UpdateOwnReview(ctx context.Context, id string, review domain.Review) error {
	return c.do(ctx, http.MethodPut, "/api/reviews/updatebycustomer/"+id, review, nil)
}

// DeleteOwnReview removes one of the visitor's reviews
func (c *Client) DeleteOwnReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reviews/deletebycustomer/"+id, nil, nil)
}

// AllReviews lists every review, pending ones included. Requires a
// shop-owner token.
func (c *Client) AllReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/getall", nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// ApproveReview publishes a pending review. Requires a shop-owner token.
func (c *Client) ApproveReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/reviews/updatebyadmin/"+id, nil, nil)
}

// DeleteReviewByAdmin removes any review. Requires a shop-owner token.
func (c *Client) DeleteReviewByAdmin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reviews/deletebyadmin/"+id, nil, nil)
}
