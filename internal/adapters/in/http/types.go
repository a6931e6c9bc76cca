package http

import "time"

// Error is the body of every non-2xx API response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line item.
type NewOrderItem struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// NewOrder is the request body of CreateOrder.
type NewOrder struct {
	CustomerName string         `json:"customerName"`
	CustomerID   string         `json:"customerId"`
	Items        []NewOrderItem `json:"items"`
}

// OrderItem is a line item of an Order response.
type OrderItem struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

// Order is the API representation of an order.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	CustomerID   string      `json:"customerId"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	Total        string      `json:"total"`
	Rendered     string      `json:"rendered"`
}

// MostOrderedProduct is the response of GetMostOrderedProduct.
type MostOrderedProduct struct {
	Product string `json:"product,omitempty"`
	Units   int    `json:"units"`
	Found   bool   `json:"found"`
	Summary string `json:"summary"`
}

// OrderLogSnapshot describes one archived order log.
type OrderLogSnapshot struct {
	ID         string    `json:"id"`
	SavedAt    time.Time `json:"savedAt"`
	OrderCount int       `json:"orderCount"`
}

// GetOrdersParams are the optional filters of GetOrders.
type GetOrdersParams struct {
	Customer *string
	Status   *string
}
