package http

import (
	"errors"
	"fmt"
	"strings"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// toOrderItems builds domain items and reports every invalid one by position.
func toOrderItems(items []NewOrderItem) ([]order.OrderItem, error) {
	result := make([]order.OrderItem, 0, len(items))
	var errs []error
	for i, item := range items {
		price, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}

		orderItem, err := order.NewOrderItem(item.ProductName, item.Quantity, price)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		result = append(result, orderItem)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return result, nil
}

func toOrder(view queries.OrderView) Order {
	items := make([]OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.Subtotal.String(),
		}
	}

	return Order{
		ID:           view.ID.String(),
		CustomerName: view.CustomerName,
		CustomerID:   view.CustomerID,
		Items:        items,
		Status:       view.Status,
		Total:        view.Total.Decimal().StringFixed(2),
		Rendered:     view.Rendered,
	}
}

func toOrders(views []queries.OrderView) []Order {
	orders := make([]Order, len(views))
	for i, view := range views {
		orders[i] = toOrder(view)
	}
	return orders
}

func filterByStatus(views []queries.OrderView, status string) []queries.OrderView {
	filtered := make([]queries.OrderView, 0, len(views))
	for _, view := range views {
		if strings.EqualFold(view.Status, status) {
			filtered = append(filtered, view)
		}
	}
	return filtered
}
