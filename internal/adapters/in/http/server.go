package http

import (
	"errors"
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	refundOrderHandler  commands.RefundOrderCommandHandler
	saveOrderLogHandler commands.SaveOrderLogCommandHandler

	// Query handlers
	listOrdersHandler         queries.ListOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	ordersByCustomerHandler   queries.GetOrdersByCustomerQueryHandler
	ordersByStatusHandler     queries.GetOrdersByStatusQueryHandler
	mostOrderedProductHandler queries.GetMostOrderedProductQueryHandler

	// nil when no archive database is configured
	orderLogSnapshotsHandler *queries.GetOrderLogSnapshotsQueryHandler
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	RefundOrder        commands.RefundOrderCommandHandler
	SaveOrderLog       commands.SaveOrderLogCommandHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	OrdersByCustomer   queries.GetOrdersByCustomerQueryHandler
	OrdersByStatus     queries.GetOrdersByStatusQueryHandler
	MostOrderedProduct queries.GetMostOrderedProductQueryHandler
	OrderLogSnapshots  *queries.GetOrderLogSnapshotsQueryHandler
}

// NewServer creates a Server from its use case handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		placeOrderHandler:         h.PlaceOrder,
		refundOrderHandler:        h.RefundOrder,
		saveOrderLogHandler:       h.SaveOrderLog,
		listOrdersHandler:         h.ListOrders,
		getOrderHandler:           h.GetOrder,
		ordersByCustomerHandler:   h.OrdersByCustomer,
		ordersByStatusHandler:     h.OrdersByStatus,
		mostOrderedProductHandler: h.MostOrderedProduct,
		orderLogSnapshotsHandler:  h.OrderLogSnapshots,
	}
}

var _ ServerInterface = (*Server)(nil)

// GetOrders handles GET /api/v1/orders.
// With both filters set, the customer's orders are narrowed down by status.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	reqCtx := ctx.Request().Context()

	var (
		views []queries.OrderView
		err   error
	)
	switch {
	case params.Customer != nil:
		views, err = s.ordersByCustomerHandler.Handle(reqCtx, queries.NewGetOrdersByCustomerQuery(*params.Customer))
		if err == nil && params.Status != nil {
			views = filterByStatus(views, *params.Status)
		}
	case params.Status != nil:
		views, err = s.ordersByStatusHandler.Handle(reqCtx, queries.NewGetOrdersByStatusQuery(*params.Status))
	default:
		views, err = s.listOrdersHandler.Handle(reqCtx, queries.NewListOrdersQuery())
	}
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toOrderItems(body.Items)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order items")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customer.NewCustomer(body.CustomerName, body.CustomerID), items)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order data")
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to place order")
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err), "Invalid order id")
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// RefundOrder handles POST /api/v1/orders/{orderId}/refund.
func (s *Server) RefundOrder(ctx echo.Context, orderID string) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err), "Invalid order id")
	}

	cmd, err := commands.NewRefundOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order id")
	}

	if err = s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to refund order")
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// GetMostOrderedProduct handles GET /api/v1/products/most-ordered.
func (s *Server) GetMostOrderedProduct(ctx echo.Context) error {
	resp, err := s.mostOrderedProductHandler.Handle(ctx.Request().Context(), queries.NewGetMostOrderedProductQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to aggregate products")
	}

	return ctx.JSON(http.StatusOK, MostOrderedProduct{
		Product: resp.Product,
		Units:   resp.Units,
		Found:   resp.Found,
		Summary: resp.Summary,
	})
}

// GetOrderLogs handles GET /api/v1/order-logs.
func (s *Server) GetOrderLogs(ctx echo.Context) error {
	if s.orderLogSnapshotsHandler == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Order log archive is not configured",
		})
	}

	snapshots, err := s.orderLogSnapshotsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderLogSnapshotsQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve archived order logs")
	}

	response := make([]OrderLogSnapshot, len(snapshots))
	for i, snapshot := range snapshots {
		response[i] = OrderLogSnapshot{
			ID:         snapshot.ID.String(),
			SavedAt:    snapshot.SavedAt,
			OrderCount: snapshot.OrderCount,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SaveOrderLog handles POST /api/v1/order-logs.
func (s *Server) SaveOrderLog(ctx echo.Context) error {
	if err := s.saveOrderLogHandler.Handle(ctx.Request().Context(), commands.NewSaveOrderLogCommand()); err != nil {
		return errorResponse(ctx, err, "Failed to save order log")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order id")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve order")
	}
	return ctx.JSON(status, toOrder(view))
}

// errorResponse maps invalid input to 400, unknown orders to 404 and
// everything else to 500. Client errors carry the error text.
func errorResponse(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidItem):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: message + ": " + err.Error(),
		})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
