package shopapi

import "encoding/json"

// envelope is the uniform response wrapper used by every backend endpoint.
type envelope struct {
	HasSuccess bool            `json:"hasSuccess"`
	Value      json.RawMessage `json:"value,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
}

// LoginRequest is the POST /Auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the value returned by a successful login: the bearer token
// plus the user profile record persisted alongside it.
type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Stock       int     `json:"stock"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is a placed order.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// Page wraps paginated list responses.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// PaymentRequest starts a checkout payment for an order.
type PaymentRequest struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

// PaymentResult is the backend's answer to a payment request.
type PaymentResult struct {
	PaymentID   string `json:"paymentId"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Status      string `json:"status"`
}
