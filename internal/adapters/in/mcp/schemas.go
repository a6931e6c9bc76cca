package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listOrdersTool returns the tool definition for list_orders
func listOrdersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_orders",
		Description: "List every tracked order in submission order",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// ordersByCustomerTool returns the tool definition for orders_by_customer
func ordersByCustomerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "orders_by_customer",
		Description: "List the orders of one customer; the name is matched case-insensitively",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"customer": map[string]interface{}{
					"type":        "string",
					"description": "Customer name",
				},
			},
			Required: []string{"customer"},
		},
	}
}

// ordersByStatusTool returns the tool definition for orders_by_status
func ordersByStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "orders_by_status",
		Description: "List the orders in a status; the status is matched case-insensitively and unknown statuses are rejected",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"status": map[string]interface{}{
					"type":        "string",
					"description": "Order status",
					"enum":        []string{"Completed", "Cancelled"},
				},
			},
			Required: []string{"status"},
		},
	}
}

// mostOrderedProductTool returns the tool definition for most_ordered_product
func mostOrderedProductTool() mcp.Tool {
	return mcp.Tool{
		Name:        "most_ordered_product",
		Description: "Report the product with the largest total ordered quantity across all orders",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// placeOrderTool returns the tool definition for place_order
func placeOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "place_order",
		Description: "Place a new order for a customer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"customer_name": map[string]interface{}{
					"type":        "string",
					"description": "Customer name",
				},
				"customer_id": map[string]interface{}{
					"type":        "string",
					"description": "Customer identifier",
				},
				"items": map[string]interface{}{
					"type":        "array",
					"description": "Line items in entry order",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"product": map[string]interface{}{
								"type": "string",
							},
							"quantity": map[string]interface{}{
								"type":    "integer",
								"minimum": 0,
							},
							"unit_price": map[string]interface{}{
								"type":        "string",
								"description": "Decimal price, e.g. \"9.99\"",
							},
						},
						"required": []string{"product", "quantity", "unit_price"},
					},
				},
			},
			Required: []string{"customer_name", "customer_id"},
		},
	}
}

// refundOrderTool returns the tool definition for refund_order
func refundOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "refund_order",
		Description: "Cancel and refund an order; refunding a cancelled order changes nothing",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"order_id": map[string]interface{}{
					"type":        "string",
					"description": "Order UUID as returned by list_orders",
				},
			},
			Required: []string{"order_id"},
		},
	}
}

// saveOrderLogTool returns the tool definition for save_order_log
func saveOrderLogTool() mcp.Tool {
	return mcp.Tool{
		Name:        "save_order_log",
		Description: "Write the order log to every configured destination",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
