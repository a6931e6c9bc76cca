package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	api "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	events []order.RefundProcessedEvent
}

func (n *recordingNotifier) NotifyRefund(_ context.Context, e order.RefundProcessedEvent) error {
	n.events = append(n.events, e)
	return nil
}

type recordingWriter struct {
	entries []string
	err     error
}

func (w *recordingWriter) WriteOrderLog(_ context.Context, entries iter.Seq[string]) error {
	w.entries = slices.Collect(entries)
	return w.err
}

type fixture struct {
	e        *echo.Echo
	manager  *services.OrderManager
	notifier *recordingNotifier
	writer   *recordingWriter
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	manager := services.NewOrderManager()
	notifier := &recordingNotifier{}
	writer := &recordingWriter{}

	server := api.NewServer(api.Handlers{
		PlaceOrder:         commands.NewPlaceOrderCommandHandler(manager),
		RefundOrder:        commands.NewRefundOrderCommandHandler(manager, notifier),
		SaveOrderLog:       commands.NewSaveOrderLogCommandHandler(manager, writer),
		ListOrders:         queries.NewListOrdersQueryHandler(manager),
		GetOrder:           queries.NewGetOrderQueryHandler(manager),
		OrdersByCustomer:   queries.NewGetOrdersByCustomerQueryHandler(manager),
		OrdersByStatus:     queries.NewGetOrdersByStatusQueryHandler(manager),
		MostOrderedProduct: queries.NewGetMostOrderedProductQueryHandler(manager),
	})

	m := metrics.NewServerMetrics()
	m.RegisterOrderCount(manager.Len)

	e, err := api.NewEcho(t.Context(), server, m)
	require.NoError(t, err)

	return fixture{e: e, manager: manager, notifier: notifier, writer: writer}
}

func (f fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f fixture) placeBob(t *testing.T) api.Order {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/v1/orders", `{
		"customerName": "Bob",
		"customerId": "C1",
		"items": [
			{"productName": "Pen", "quantity": 2, "unitPrice": "1.50"},
			{"productName": "Book", "quantity": 1, "unitPrice": "9.99"}
		]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)

	created := f.placeBob(t)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Bob", created.CustomerName)
	assert.Equal(t, "C1", created.CustomerID)
	assert.Equal(t, "Completed", created.Status)
	assert.Equal(t, "12.99", created.Total)
	assert.Equal(t, []api.OrderItem{
		{ProductName: "Pen", Quantity: 2, UnitPrice: "1.5", Subtotal: "3"},
		{ProductName: "Book", Quantity: 1, UnitPrice: "9.99", Subtotal: "9.99"},
	}, created.Items)
	assert.Equal(t,
		"Customer: Bob (ID: C1)\n- Pen x2 @ 1.5\n- Book x1 @ 9.99\nStatus: Completed\nTotal: $12.99\n",
		created.Rendered)
	assert.Equal(t, 1, f.manager.Len())
}

func TestCreateOrder_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative quantity", `{"customerName":"Bob","customerId":"C1","items":[{"productName":"Pen","quantity":-1,"unitPrice":"1"}]}`},
		{"negative price", `{"customerName":"Bob","customerId":"C1","items":[{"productName":"Pen","quantity":1,"unitPrice":"-0.01"}]}`},
		{"price is not a decimal", `{"customerName":"Bob","customerId":"C1","items":[{"productName":"Pen","quantity":1,"unitPrice":"abc"}]}`},
		{"fractional quantity", `{"customerName":"Bob","customerId":"C1","items":[{"productName":"Pen","quantity":1.5,"unitPrice":"1"}]}`},
		{"missing customer", `{"items":[]}`},
		{"malformed json", `{"customerName":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(t, http.MethodPost, "/api/v1/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, http.StatusBadRequest, decode[api.Error](t, rec).Code)
			assert.Zero(t, f.manager.Len())
		})
	}
}

func TestCreateOrder_WithoutItems(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders", `{"customerName":"Ann","customerId":"A1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[api.Order](t, rec)
	assert.Equal(t, "0.00", created.Total)
	assert.Empty(t, created.Items)
}

func TestGetOrder(t *testing.T) {
	f := newFixture(t)
	created := f.placeBob(t)

	t.Run("existing", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/"+created.ID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decode[api.Order](t, rec))
	})

	t.Run("unknown", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/9b2f6f52-1a55-4d52-8d1e-0d1f3c0b7e11", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefundOrder(t *testing.T) {
	f := newFixture(t)
	created := f.placeBob(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/"+created.ID+"/refund", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	refunded := decode[api.Order](t, rec)
	assert.Equal(t, "Cancelled", refunded.Status)
	assert.Equal(t, "12.99", refunded.Total)
	assert.Contains(t, refunded.Rendered, "Status: Cancelled\n")

	rec = f.do(t, http.MethodPost, "/api/v1/orders/"+created.ID+"/refund", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "Refund processed for order of customer: Bob", f.notifier.events[0].Message())
}

func TestRefundOrder_Unknown(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/9b2f6f52-1a55-4d52-8d1e-0d1f3c0b7e11/refund", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, f.notifier.events)
}

func TestGetOrders_Filters(t *testing.T) {
	f := newFixture(t)
	bob := f.placeBob(t)
	rec := f.do(t, http.MethodPost, "/api/v1/orders", `{"customerName":"bob","customerId":"C9"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/v1/orders", `{"customerName":"Ann","customerId":"A1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	f.do(t, http.MethodPost, "/api/v1/orders/"+bob.ID+"/refund", "")

	ids := func(target string) []string {
		rec := f.do(t, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var names []string
		for _, o := range decode[[]api.Order](t, rec) {
			names = append(names, o.CustomerName+"/"+o.Status)
		}
		return names
	}

	assert.Equal(t, []string{"Bob/Cancelled", "bob/Completed", "Ann/Completed"}, ids("/api/v1/orders"))
	assert.Equal(t, []string{"Bob/Cancelled", "bob/Completed"}, ids("/api/v1/orders?customer=BOB"))
	assert.Equal(t, []string{"bob/Completed", "Ann/Completed"}, ids("/api/v1/orders?status=completed"))
	assert.Equal(t, []string{"bob/Completed"}, ids("/api/v1/orders?customer=bob&status=Completed"))
	assert.Nil(t, ids("/api/v1/orders?customer=carol"))
}

func TestGetOrders_EmptyIsArray(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetMostOrderedProduct(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/products/most-ordered", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.MostOrderedProduct{Summary: "No products ordered"}, decode[api.MostOrderedProduct](t, rec))

	f.placeBob(t)
	rec = f.do(t, http.MethodGet, "/api/v1/products/most-ordered", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.MostOrderedProduct{
		Product: "Pen",
		Units:   2,
		Found:   true,
		Summary: "Pen (2 units)",
	}, decode[api.MostOrderedProduct](t, rec))
}

func TestSaveOrderLog(t *testing.T) {
	f := newFixture(t)
	created := f.placeBob(t)

	rec := f.do(t, http.MethodPost, "/api/v1/order-logs", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{created.Rendered + "-------------------------\n"}, f.writer.entries)
}

func TestSaveOrderLog_WriterError(t *testing.T) {
	f := newFixture(t)
	f.writer.err = errors.New("disk full")

	rec := f.do(t, http.MethodPost, "/api/v1/order-logs", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to save order log", decode[api.Error](t, rec).Message)
}

func TestGetOrderLogs_ArchiveDisabled(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/order-logs", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsAndSwagger(t *testing.T) {
	f := newFixture(t)
	f.placeBob(t)

	rec := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ordertracker_orders_tracked 1")
	assert.Contains(t, rec.Body.String(), `handler="/api/v1/orders",status="201"`)

	rec = f.do(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order Tracker API")
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/{orderId}/refund")
}
