// Package http serves the order tracker as a JSON REST API described by the
// embedded openapi.yaml.
package http

import (
	"context"
	"net/http"

	"ordertracker/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho assembles the HTTP application: health check, the validated API,
// Prometheus metrics and the Swagger UI.
func NewEcho(ctx context.Context, server ServerInterface, m *metrics.ServerMetrics) (*echo.Echo, error) {
	doc, err := GetSwagger(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(m.Middleware())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server)
	return e, nil
}
