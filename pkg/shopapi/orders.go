package shopapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListOrders fetches the caller's orders. Requires a valid bearer token.
func (c *Client) ListOrders(ctx context.Context, bearer string, pageNumber, pageSize int) (*Page[Order], error) {
	var page Page[Order]
	path := fmt.Sprintf("/Order/list?pageNumber=%d&pageSize=%d", pageNumber, pageSize)
	if err := c.doJSON(ctx, http.MethodGet, path, bearer, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, bearer, id string) (*Order, error) {
	var o Order
	if err := c.doJSON(ctx, http.MethodGet, "/Order/"+id, bearer, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder places a new order from the given items.
func (c *Client) CreateOrder(ctx context.Context, bearer string, items []OrderItem) (*Order, error) {
	var o Order
	body := struct {
		Items []OrderItem `json:"items"`
	}{Items: items}
	if err := c.doJSON(ctx, http.MethodPost, "/Order/create", bearer, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
