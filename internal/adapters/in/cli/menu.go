// Package cli drives the order tracker from an interactive text menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
)

// ErrInvalidNumber is returned for malformed numeric input.
var ErrInvalidNumber = errors.New("invalid number")

const doneKeyword = "done"

// Handlers groups the use cases reachable from the menu.
type Handlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	RefundOrder        commands.RefundOrderCommandHandler
	SaveOrderLog       commands.SaveOrderLogCommandHandler
	OrdersByCustomer   queries.GetOrdersByCustomerQueryHandler
	OrdersByStatus     queries.GetOrdersByStatusQueryHandler
	MostOrderedProduct queries.GetMostOrderedProductQueryHandler
}

// Menu reads choices line by line from in and writes prompts to out.
// Input is read on a separate goroutine so a cancelled context stops the
// menu even while it waits for a line.
type Menu struct {
	handlers       Handlers
	logDestination string

	in  *bufio.Scanner
	out io.Writer

	startReader sync.Once
	lines       chan string
	done        chan struct{}
	readErr     error
	stopErr     error
}

// NewMenu creates a menu. logDestination is reported after a successful save.
func NewMenu(handlers Handlers, logDestination string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		handlers:       handlers,
		logDestination: logDestination,
		in:             bufio.NewScanner(in),
		out:            out,
		lines:          make(chan string),
		done:           make(chan struct{}),
	}
}

// Run shows the menu until Exit is chosen, the input ends or ctx is cancelled.
// A Menu runs once.
func (m *Menu) Run(ctx context.Context) error {
	defer close(m.done)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.printMenu()
		choice, ok := m.readLine(ctx)
		if !ok {
			return m.stopErr
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if !m.addOrder(ctx) {
				return m.stopErr
			}
		case "2":
			if !m.refundOrder(ctx) {
				return m.stopErr
			}
		case "3":
			if !m.viewOrdersByCustomer(ctx) {
				return m.stopErr
			}
		case "4":
			if !m.viewOrdersByStatus(ctx) {
				return m.stopErr
			}
		case "5":
			m.mostOrderedProduct(ctx)
		case "6":
			m.saveOrders(ctx)
		case "7":
			return nil
		default:
			m.println("Invalid option.")
		}
	}
}

func (m *Menu) printMenu() {
	m.println("\n--- Customer Order Tracker ---")
	m.println("1. Add New Order")
	m.println("2. Cancel & Refund Order")
	m.println("3. View Customer Orders")
	m.println("4. Filter Orders by Status")
	m.println("5. Most Ordered Product")
	m.println("6. Save Orders to File")
	m.println("7. Exit")
	m.print("Choose an option: ")
}

// addOrder collects a customer and items until "done". Invalid items are
// reported and skipped; the order is placed with the valid ones.
func (m *Menu) addOrder(ctx context.Context) bool {
	name, ok := m.prompt(ctx, "Enter customer name: ")
	if !ok {
		return false
	}
	id, ok := m.prompt(ctx, "Enter customer ID: ")
	if !ok {
		return false
	}

	var items []order.OrderItem
	for {
		product, ok := m.prompt(ctx, "Enter product name (or 'done'): ")
		if !ok {
			return false
		}
		if strings.EqualFold(strings.TrimSpace(product), doneKeyword) {
			break
		}

		item, ok, err := m.readItem(ctx, product)
		if !ok {
			return false
		}
		if err != nil {
			m.println("Invalid input: " + err.Error())
			continue
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customer.NewCustomer(name, id), items)
	if err == nil {
		err = m.handlers.PlaceOrder.Handle(ctx, cmd)
	}
	if err != nil {
		m.println("Error adding order: " + err.Error())
		return true
	}

	m.println("Order added successfully.")
	return true
}

func (m *Menu) readItem(ctx context.Context, product string) (order.OrderItem, bool, error) {
	rawQuantity, ok := m.prompt(ctx, "Quantity: ")
	if !ok {
		return order.OrderItem{}, false, nil
	}
	quantity, err := parseInt(rawQuantity)
	if err != nil {
		return order.OrderItem{}, true, err
	}

	rawPrice, ok := m.prompt(ctx, "Price: ")
	if !ok {
		return order.OrderItem{}, false, nil
	}
	price, err := kernel.MoneyFromString(strings.TrimSpace(rawPrice))
	if err != nil {
		return order.OrderItem{}, true, fmt.Errorf("%w: %q", ErrInvalidNumber, rawPrice)
	}

	item, err := order.NewOrderItem(product, quantity, price)
	return item, true, err
}

func (m *Menu) refundOrder(ctx context.Context) bool {
	name, ok := m.prompt(ctx, "Enter customer name to refund order: ")
	if !ok {
		return false
	}

	views, err := m.handlers.OrdersByCustomer.Handle(ctx, queries.NewGetOrdersByCustomerQuery(name))
	if err != nil {
		m.println("Error: " + err.Error())
		return true
	}
	if len(views) == 0 {
		m.println("No orders found.")
		return true
	}

	for i, view := range views {
		m.println(fmt.Sprintf("\nOrder #%d", i+1))
		m.println(view.Rendered)
	}

	raw, ok := m.prompt(ctx, "Select order number to cancel: ")
	if !ok {
		return false
	}
	index, err := parseInt(raw)
	if err != nil {
		m.println("Invalid input.")
		return true
	}
	if index < 1 || index > len(views) {
		m.println("Invalid order number.")
		return true
	}

	cmd, err := commands.NewRefundOrderCommand(views[index-1].ID)
	if err == nil {
		err = m.handlers.RefundOrder.Handle(ctx, cmd)
	}
	if err != nil {
		m.println("Error refunding order: " + err.Error())
		return true
	}

	m.println("Order cancelled and refunded.")
	return true
}

func (m *Menu) viewOrdersByCustomer(ctx context.Context) bool {
	name, ok := m.prompt(ctx, "Enter customer name: ")
	if !ok {
		return false
	}

	views, err := m.handlers.OrdersByCustomer.Handle(ctx, queries.NewGetOrdersByCustomerQuery(name))
	if err != nil {
		m.println("Error: " + err.Error())
		return true
	}
	if len(views) == 0 {
		m.println("No orders found for this customer.")
		return true
	}
	m.printOrders(views)
	return true
}

func (m *Menu) viewOrdersByStatus(ctx context.Context) bool {
	status, ok := m.prompt(ctx, "Enter status (Completed/Cancelled): ")
	if !ok {
		return false
	}

	views, err := m.handlers.OrdersByStatus.Handle(ctx, queries.NewGetOrdersByStatusQuery(status))
	if err != nil {
		m.println("Error: " + err.Error())
		return true
	}
	if len(views) == 0 {
		m.println("No orders with this status.")
		return true
	}
	m.printOrders(views)
	return true
}

func (m *Menu) mostOrderedProduct(ctx context.Context) {
	resp, err := m.handlers.MostOrderedProduct.Handle(ctx, queries.NewGetMostOrderedProductQuery())
	if err != nil {
		m.println("Error: " + err.Error())
		return
	}
	m.println("Most ordered product: " + resp.Summary)
}

func (m *Menu) saveOrders(ctx context.Context) {
	if err := m.handlers.SaveOrderLog.Handle(ctx, commands.NewSaveOrderLogCommand()); err != nil {
		m.println("Error saving file: " + err.Error())
		return
	}
	m.println("Orders saved to " + m.logDestination)
}

func (m *Menu) printOrders(views []queries.OrderView) {
	for _, view := range views {
		m.println(view.Rendered)
		m.print(services.LogSeparator)
	}
}

func (m *Menu) prompt(ctx context.Context, text string) (string, bool) {
	m.print(text)
	return m.readLine(ctx)
}

// readLine returns the next input line. It reports false at the end of the
// input, leaving the read error in stopErr, or when ctx is cancelled.
func (m *Menu) readLine(ctx context.Context) (string, bool) {
	m.startReader.Do(func() { go m.scan() })

	select {
	case line, ok := <-m.lines:
		if !ok {
			m.stopErr = m.readErr
		}
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

func (m *Menu) scan() {
	defer close(m.lines)

	for m.in.Scan() {
		select {
		case m.lines <- m.in.Text():
		case <-m.done:
			return
		}
	}
	m.readErr = m.in.Err()
}

func (m *Menu) print(text string) {
	_, _ = fmt.Fprint(m.out, text)
}

func (m *Menu) println(text string) {
	_, _ = fmt.Fprintln(m.out, text)
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return n, nil
}
