// Package mcp exposes the order tracker as Model Context Protocol tools so an
// agent can inspect, place and refund orders over stdio.
package mcp

import (
	"context"
	"io"
	"log"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"

	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the MCP server name
	ServerName = "ordertracker"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Handlers groups the use cases exposed as tools.
type Handlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	RefundOrder        commands.RefundOrderCommandHandler
	SaveOrderLog       commands.SaveOrderLogCommandHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	OrdersByCustomer   queries.GetOrdersByCustomerQueryHandler
	OrdersByStatus     queries.GetOrdersByStatusQueryHandler
	MostOrderedProduct queries.GetMostOrderedProductQueryHandler
}

// Server wraps the MCP server with the application use cases.
type Server struct {
	mcp      *server.MCPServer
	handlers Handlers
}

// NewServer creates the MCP server and registers every tool.
func NewServer(handlers Handlers) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(false)),
		handlers: handlers,
	}
	s.registerTools()
	return s
}

// Serve speaks MCP over in/out until ctx is cancelled or in is closed.
// Protocol errors are logged to errOut; stdout belongs to the protocol.
func (s *Server) Serve(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(errOut, "mcp: ", log.LstdFlags))
	return stdio.Listen(ctx, in, out)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listOrdersTool(), s.handleListOrders)
	s.mcp.AddTool(ordersByCustomerTool(), s.handleOrdersByCustomer)
	s.mcp.AddTool(ordersByStatusTool(), s.handleOrdersByStatus)
	s.mcp.AddTool(mostOrderedProductTool(), s.handleMostOrderedProduct)
	s.mcp.AddTool(placeOrderTool(), s.handlePlaceOrder)
	s.mcp.AddTool(refundOrderTool(), s.handleRefundOrder)
	s.mcp.AddTool(saveOrderLogTool(), s.handleSaveOrderLog)
}
