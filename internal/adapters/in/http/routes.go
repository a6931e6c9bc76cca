package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// GetOrders handles GET /orders.
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// CreateOrder handles POST /orders.
	CreateOrder(ctx echo.Context) error
	// GetOrder handles GET /orders/{orderId}.
	GetOrder(ctx echo.Context, orderID string) error
	// RefundOrder handles POST /orders/{orderId}/refund.
	RefundOrder(ctx echo.Context, orderID string) error
	// GetMostOrderedProduct handles GET /products/most-ordered.
	GetMostOrderedProduct(ctx echo.Context) error
	// GetOrderLogs handles GET /order-logs.
	GetOrderLogs(ctx echo.Context) error
	// SaveOrderLog handles POST /order-logs.
	SaveOrderLog(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetOrders binds the customer and status query parameters.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "customer", ctx.QueryParams(), &params.Customer); err != nil {
		return badParameter(ctx, "customer", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badParameter(ctx, "status", err)
	}

	return w.Handler.GetOrders(ctx, params)
}

// CreateOrder has no parameters.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder binds the orderId path parameter.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return badParameter(ctx, "orderId", err)
	}
	return w.Handler.GetOrder(ctx, orderID)
}

// RefundOrder binds the orderId path parameter.
func (w *ServerInterfaceWrapper) RefundOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return badParameter(ctx, "orderId", err)
	}
	return w.Handler.RefundOrder(ctx, orderID)
}

// GetMostOrderedProduct has no parameters.
func (w *ServerInterfaceWrapper) GetMostOrderedProduct(ctx echo.Context) error {
	return w.Handler.GetMostOrderedProduct(ctx)
}

// GetOrderLogs has no parameters.
func (w *ServerInterfaceWrapper) GetOrderLogs(ctx echo.Context) error {
	return w.Handler.GetOrderLogs(ctx)
}

// SaveOrderLog has no parameters.
func (w *ServerInterfaceWrapper) SaveOrderLog(ctx echo.Context) error {
	return w.Handler.SaveOrderLog(ctx)
}

// EchoRouter is the part of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts si under BaseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(BaseURL+"/orders", w.GetOrders)
	router.POST(BaseURL+"/orders", w.CreateOrder)
	router.GET(BaseURL+"/orders/:orderId", w.GetOrder)
	router.POST(BaseURL+"/orders/:orderId/refund", w.RefundOrder)
	router.GET(BaseURL+"/products/most-ordered", w.GetMostOrderedProduct)
	router.GET(BaseURL+"/order-logs", w.GetOrderLogs)
	router.POST(BaseURL+"/order-logs", w.SaveOrderLog)
}

func bindOrderID(ctx echo.Context) (string, error) {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return orderID, err
}

func badParameter(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid format for parameter " + name + ": " + err.Error(),
	})
}
