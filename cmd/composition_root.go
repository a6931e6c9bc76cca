package cmd

import (
	"io"
	"log/slog"

	"ordertracker/internal/adapters/in/cli"
	httpin "ordertracker/internal/adapters/in/http"
	mcpin "ordertracker/internal/adapters/in/mcp"
	"ordertracker/internal/adapters/out/amqp"
	"ordertracker/internal/adapters/out/console"
	"ordertracker/internal/adapters/out/fanout"
	"ordertracker/internal/adapters/out/filelog"
	"ordertracker/internal/adapters/out/postgres/orderlogrepo"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/jobs"
	"ordertracker/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs   Config
	orders    *services.OrderManager
	gormDB    *gorm.DB
	publisher amqp.Publisher
	notices   io.Writer
	logger    *slog.Logger
}

// NewCompositionRoot wires the application around one in-memory order store.
// gormDB and publisher are optional; nil disables the archive and the broker.
// Refund notices are written to notices.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher amqp.Publisher,
	notices io.Writer,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		configs:   configs,
		orders:    services.NewOrderManager(),
		gormDB:    gormDB,
		publisher: publisher,
		notices:   notices,
		logger:    logger,
	}
}

func (c *CompositionRoot) Orders() *services.OrderManager {
	return c.orders
}

func (c *CompositionRoot) CreateRefundNotifier() ports.RefundNotifier {
	destinations := []ports.RefundNotifier{console.NewRefundNotifier(c.notices)}
	if c.publisher != nil {
		destinations = append(destinations, amqp.NewRefundNotifier(c.publisher, c.logger))
	}
	return fanout.NewNotifier(destinations...)
}

func (c *CompositionRoot) CreateOrderLogWriter() ports.OrderLogWriter {
	destinations := []ports.OrderLogWriter{filelog.NewWriter(c.configs.OrderLogFile)}
	if c.gormDB != nil {
		destinations = append(destinations, orderlogrepo.NewGormOrderLogRepository(c.gormDB))
	}
	return fanout.NewWriter(destinations...)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orders, c.CreateRefundNotifier())
}

func (c *CompositionRoot) CreateSaveOrderLogCommandHandler() commands.SaveOrderLogCommandHandler {
	return commands.NewSaveOrderLogCommandHandler(c.orders, c.CreateOrderLogWriter())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetMostOrderedProductQueryHandler() queries.GetMostOrderedProductQueryHandler {
	return queries.NewGetMostOrderedProductQueryHandler(c.orders)
}

// CreateGetOrderLogSnapshotsQueryHandler returns nil when the archive is disabled.
func (c *CompositionRoot) CreateGetOrderLogSnapshotsQueryHandler() *queries.GetOrderLogSnapshotsQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	h := queries.NewGetOrderLogSnapshotsQueryHandler(c.gormDB)
	return &h
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		RefundOrder:        c.CreateRefundOrderCommandHandler(),
		SaveOrderLog:       c.CreateSaveOrderLogCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		OrdersByCustomer:   c.CreateGetOrdersByCustomerQueryHandler(),
		OrdersByStatus:     c.CreateGetOrdersByStatusQueryHandler(),
		MostOrderedProduct: c.CreateGetMostOrderedProductQueryHandler(),
		OrderLogSnapshots:  c.CreateGetOrderLogSnapshotsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateMCPServer() *mcpin.Server {
	return mcpin.NewServer(mcpin.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		RefundOrder:        c.CreateRefundOrderCommandHandler(),
		SaveOrderLog:       c.CreateSaveOrderLogCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		OrdersByCustomer:   c.CreateGetOrdersByCustomerQueryHandler(),
		OrdersByStatus:     c.CreateGetOrdersByStatusQueryHandler(),
		MostOrderedProduct: c.CreateGetMostOrderedProductQueryHandler(),
	})
}

func (c *CompositionRoot) CreateMenu(in io.Reader, out io.Writer) *cli.Menu {
	return cli.NewMenu(cli.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		RefundOrder:        c.CreateRefundOrderCommandHandler(),
		SaveOrderLog:       c.CreateSaveOrderLogCommandHandler(),
		OrdersByCustomer:   c.CreateGetOrdersByCustomerQueryHandler(),
		OrdersByStatus:     c.CreateGetOrdersByStatusQueryHandler(),
		MostOrderedProduct: c.CreateGetMostOrderedProductQueryHandler(),
	}, filelog.NewWriter(c.configs.OrderLogFile).Path(), in, out)
}

// CreateServerMetrics returns request metrics with the tracked order count gauge.
func (c *CompositionRoot) CreateServerMetrics() *metrics.ServerMetrics {
	m := metrics.NewServerMetrics()
	m.RegisterOrderCount(c.orders.Len)
	return m
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSaveOrderLogCommandHandler(), c.configs.AutosaveSchedule, c.logger)
}
