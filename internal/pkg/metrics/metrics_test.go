package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordertracker/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMetrics_Middleware(t *testing.T) {
	m := metrics.NewServerMetrics()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/boom", func(echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })

	for _, path := range []string{"/ping", "/ping", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests.WithLabelValues("/ping", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("/boom", "418")), 0)
}

func TestServerMetrics_Handler(t *testing.T) {
	m := metrics.NewServerMetrics()
	orders := 3
	m.RegisterOrderCount(func() int { return orders })
	m.Requests.WithLabelValues("/x", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ordertracker_orders_tracked 3")
	assert.Contains(t, string(body), `ordertracker_http_requests_total{handler="/x",status="200"} 1`)
}
