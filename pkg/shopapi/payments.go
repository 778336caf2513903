package shopapi

import (
	"context"
	"net/http"
)

// CreatePayment starts a payment for an order. The actual payment widget is
// a third-party concern; the backend only returns a redirect target.
func (c *Client) CreatePayment(ctx context.Context, bearer string, req PaymentRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.doJSON(ctx, http.MethodPost, "/Payment/create", bearer, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
