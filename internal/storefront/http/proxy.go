package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vitacart/storefront/internal/storefront/session"
	"github.com/vitacart/storefront/pkg/httpx"
	"github.com/vitacart/storefront/pkg/shopapi"
	"github.com/vitacart/storefront/pkg/slogx"
)

func pageParams(r *http.Request) (pageNumber, pageSize int) {
	pageNumber, pageSize = 1, 20
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 0 {
		pageNumber = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && n > 0 && n <= 100 {
		pageSize = n
	}
	return pageNumber, pageSize
}

// ProductsHandler proxies the public catalog. It is a non-critical widget
// feed: backend trouble degrades to an empty list rather than an error page.
type ProductsHandler struct {
	API *shopapi.Client
}

func (h *ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	pageNumber, pageSize := pageParams(r)

	page, err := h.API.ListProducts(r.Context(), pageNumber, pageSize)
	if err != nil {
		log.Warn("catalog fetch failed, serving empty page", "error", err)
		httpx.WriteJSON(w, http.StatusOK, shopapi.Page[shopapi.Product]{
			PageNumber: pageNumber,
			PageSize:   pageSize,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, page)
}

// ProductHandler proxies a single catalog entry for the detail page.
type ProductHandler struct {
	API *shopapi.Client
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	product, err := h.API.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			httpx.WriteJSON(w, http.StatusNotFound, map[string]any{
				"errors": []string{"product not found"},
			})
			return
		}

		slogx.FromContext(r.Context()).Error("product fetch failed", "error", err)
		httpx.WriteJSON(w, http.StatusBadGateway, map[string]any{
			"errors": []string{"could not reach the shop service, please try again"},
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, product)
}

// OrdersHandler proxies the visitor's order history with their bearer
// token. A 401 from the backend forces a local logout.
type OrdersHandler struct {
	Guard *session.Guard
	API   *shopapi.Client
}

func (h *OrdersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorFromCtx(r.Context())

	bearer, ok := h.Guard.Bearer(r.Context(), visitorID)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []string{"not signed in"},
		})
		return
	}

	pageNumber, pageSize := pageParams(r)
	page, err := h.API.ListOrders(r.Context(), bearer, pageNumber, pageSize)
	if err != nil {
		writeProxyError(w, r, h.Guard, visitorID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, page)
}

// OrderHandler proxies a single order for the order-detail page.
type OrderHandler struct {
	Guard *session.Guard
	API   *shopapi.Client
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorFromCtx(r.Context())

	bearer, ok := h.Guard.Bearer(r.Context(), visitorID)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []string{"not signed in"},
		})
		return
	}

	order, err := h.API.GetOrder(r.Context(), bearer, r.PathValue("id"))
	if err != nil {
		writeProxyError(w, r, h.Guard, visitorID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}

// CreateOrderHandler forwards a checkout submission.
type CreateOrderHandler struct {
	Guard *session.Guard
	API   *shopapi.Client
}

func (h *CreateOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorFromCtx(r.Context())

	bearer, ok := h.Guard.Bearer(r.Context(), visitorID)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []string{"not signed in"},
		})
		return
	}

	var req struct {
		Items []shopapi.OrderItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []string{"request body must be JSON"},
		})
		return
	}
	if len(req.Items) == 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []string{"order must contain at least one item"},
		})
		return
	}

	order, err := h.API.CreateOrder(r.Context(), bearer, req.Items)
	if err != nil {
		writeProxyError(w, r, h.Guard, visitorID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}

// PaymentsHandler forwards a checkout payment request.
type PaymentsHandler struct {
	Guard *session.Guard
	API   *shopapi.Client
}

func (h *PaymentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorFromCtx(r.Context())

	bearer, ok := h.Guard.Bearer(r.Context(), visitorID)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []string{"not signed in"},
		})
		return
	}

	var req shopapi.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []string{"request body must be JSON"},
		})
		return
	}

	result, err := h.API.CreatePayment(r.Context(), bearer, req)
	if err != nil {
		writeProxyError(w, r, h.Guard, visitorID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

// writeProxyError maps backend failures onto gateway responses. 401 clears
// the local session; envelope errors pass through; anything else is a
// generic communication error.
func writeProxyError(w http.ResponseWriter, r *http.Request, guard *session.Guard, visitorID string, err error) {
	log := slogx.FromContext(r.Context())

	if errors.Is(err, shopapi.ErrUnauthorized) {
		guard.ForceLogout(r.Context(), visitorID)
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []string{"session expired, please sign in again"},
		})
		return
	}

	var apiErr *shopapi.APIError
	if errors.As(err, &apiErr) {
		httpx.WriteJSON(w, http.StatusBadGateway, map[string]any{
			"errors": apiErr.Messages,
		})
		return
	}

	log.Error("backend call failed", "error", err)
	httpx.WriteJSON(w, http.StatusBadGateway, map[string]any{
		"errors": []string{"could not reach the shop service, please try again"},
	})
}
