package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeOrderNotFound = -32001 // No order with the given id
)

// handleListOrders handles the list_orders tool invocation
func (s *Server) handleListOrders(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	views, err := s.handlers.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return nil, internalError("failed to list orders", err)
	}
	return mcp.NewToolResultText(formatJSON(ordersResponse(views))), nil
}

// handleOrdersByCustomer handles the orders_by_customer tool invocation
func (s *Server) handleOrdersByCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["customer"].(string)
	if !ok {
		return nil, missingParam("customer")
	}

	views, err := s.handlers.OrdersByCustomer.Handle(ctx, queries.NewGetOrdersByCustomerQuery(name))
	if err != nil {
		return nil, internalError("failed to find orders", err)
	}
	return mcp.NewToolResultText(formatJSON(ordersResponse(views))), nil
}

// handleOrdersByStatus handles the orders_by_status tool invocation
func (s *Server) handleOrdersByStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	raw, ok := args["status"].(string)
	if !ok || raw == "" {
		return nil, missingParam("status")
	}

	status, err := order.ParseStatus(raw)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid status", map[string]interface{}{
			"param":  "status",
			"reason": err.Error(),
		})
	}

	views, err := s.handlers.OrdersByStatus.Handle(ctx, queries.NewGetOrdersByStatusQuery(status.String()))
	if err != nil {
		return nil, internalError("failed to find orders", err)
	}
	return mcp.NewToolResultText(formatJSON(ordersResponse(views))), nil
}

// handleMostOrderedProduct handles the most_ordered_product tool invocation
func (s *Server) handleMostOrderedProduct(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.handlers.MostOrderedProduct.Handle(ctx, queries.NewGetMostOrderedProductQuery())
	if err != nil {
		return nil, internalError("failed to aggregate products", err)
	}

	response := map[string]interface{}{
		"found":   resp.Found,
		"summary": resp.Summary,
	}
	if resp.Found {
		response["product"] = resp.Product
		response["units"] = resp.Units
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handlePlaceOrder handles the place_order tool invocation
func (s *Server) handlePlaceOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["customer_name"].(string)
	if !ok {
		return nil, missingParam("customer_name")
	}
	customerID, ok := args["customer_id"].(string)
	if !ok {
		return nil, missingParam("customer_id")
	}

	items, err := parseItems(args["items"])
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid items", map[string]interface{}{
			"param":  "items",
			"reason": err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customer.NewCustomer(name, customerID), items)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid order", map[string]interface{}{
			"reason": err.Error(),
		})
	}

	if err = s.handlers.PlaceOrder.Handle(ctx, cmd); err != nil {
		return nil, internalError("failed to place order", err)
	}
	return s.orderResult(ctx, orderID)
}

// handleRefundOrder handles the refund_order tool invocation
func (s *Server) handleRefundOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	raw, ok := args["order_id"].(string)
	if !ok || raw == "" {
		return nil, missingParam("order_id")
	}

	orderID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid order_id", map[string]interface{}{
			"param":  "order_id",
			"reason": err.Error(),
		})
	}

	cmd, err := commands.NewRefundOrderCommand(orderID)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid order_id", nil)
	}

	if err = s.handlers.RefundOrder.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, orderNotFound(raw)
		}
		return nil, internalError("failed to refund order", err)
	}
	return s.orderResult(ctx, orderID)
}

// handleSaveOrderLog handles the save_order_log tool invocation
func (s *Server) handleSaveOrderLog(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.handlers.SaveOrderLog.Handle(ctx, commands.NewSaveOrderLogCommand()); err != nil {
		return nil, internalError("failed to save order log", err)
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{"saved": true})), nil
}

func (s *Server) orderResult(ctx context.Context, orderID kernel.UUID) (*mcp.CallToolResult, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, internalError("failed to load order", err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, orderNotFound(orderID.String())
		}
		return nil, internalError("failed to load order", err)
	}
	return mcp.NewToolResultText(formatJSON(orderResponse(view))), nil
}

// parseItems converts the JSON items argument into domain items.
// A missing argument is an order without items.
func parseItems(raw interface{}) ([]order.OrderItem, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, errors.New("items must be an array")
	}

	items := make([]order.OrderItem, 0, len(list))
	var errList []error
	for i, entry := range list {
		item, err := parseItem(entry)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}

	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return items, nil
}

func parseItem(raw interface{}) (order.OrderItem, error) {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return order.OrderItem{}, errors.New("item must be an object")
	}

	product, _ := fields["product"].(string)

	quantity, ok := fields["quantity"].(float64)
	if !ok || quantity != float64(int(quantity)) {
		return order.OrderItem{}, errors.New("quantity must be an integer")
	}

	var (
		price kernel.Money
		err   error
	)
	switch v := fields["unit_price"].(type) {
	case string:
		price, err = kernel.MoneyFromString(v)
		if err != nil {
			return order.OrderItem{}, err
		}
	case float64:
		price = kernel.MoneyFromFloat(v)
	default:
		return order.OrderItem{}, errors.New("unit_price must be a decimal string")
	}

	return order.NewOrderItem(product, int(quantity), price)
}

func orderResponse(view queries.OrderView) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, map[string]interface{}{
			"product":    item.ProductName,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice.Decimal().StringFixed(2),
			"subtotal":   item.Subtotal.Decimal().StringFixed(2),
		})
	}

	return map[string]interface{}{
		"id":            view.ID.String(),
		"customer_name": view.CustomerName,
		"customer_id":   view.CustomerID,
		"status":        view.Status,
		"items":         items,
		"total":         view.Total.Decimal().StringFixed(2),
		"rendered":      view.Rendered,
	}
}

func ordersResponse(views []queries.OrderView) map[string]interface{} {
	orders := make([]map[string]interface{}, 0, len(views))
	for _, view := range views {
		orders = append(orders, orderResponse(view))
	}
	return map[string]interface{}{
		"count":  len(orders),
		"orders": orders,
	}
}

func missingParam(name string) *MCPError {
	return newMCPError(ErrorCodeInvalidParams, name+" parameter is required", map[string]interface{}{
		"param":  name,
		"reason": "missing or empty",
	})
}

func orderNotFound(id string) *MCPError {
	return newMCPError(ErrorCodeOrderNotFound, "order not found", map[string]interface{}{
		"order_id": id,
	})
}

func internalError(message string, err error) *MCPError {
	return newMCPError(ErrorCodeInternalError, message, map[string]interface{}{
		"error": err.Error(),
	})
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// newMCPError creates a new MCP error
func newMCPError(code int, message string, data map[string]interface{}) *MCPError {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// formatJSON formats data as pretty-printed JSON
func formatJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
