package shopapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListProducts fetches a catalog page. Public: no bearer required.
func (c *Client) ListProducts(ctx context.Context, pageNumber, pageSize int) (*Page[Product], error) {
	var page Page[Product]
	path := fmt.Sprintf("/Product/list?pageNumber=%d&pageSize=%d", pageNumber, pageSize)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := c.doJSON(ctx, http.MethodGet, "/Product/"+id, "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
