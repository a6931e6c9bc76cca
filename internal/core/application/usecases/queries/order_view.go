package queries

import (
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderItemView is a read-only copy of one line item.
type OrderItemView struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// OrderView is a read-only copy of an order, including its rendered text.
//
// Example:
//
//	view := views[0]
//	fmt.Printf("%s: %s, %s\n", view.CustomerName, view.Status, view.Total.Format())
//	fmt.Print(view.Rendered)
type OrderView struct {
	ID           kernel.UUID
	CustomerName string
	CustomerID   string
	Items        []OrderItemView
	Status       string
	Total        kernel.Money
	Rendered     string
}

func newOrderView(o *order.Order) OrderView {
	items := o.Items()
	views := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, OrderItemView{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return OrderView{
		ID:           o.ID(),
		CustomerName: o.Customer().Name(),
		CustomerID:   o.Customer().ID(),
		Items:        views,
		Status:       o.Status().String(),
		Total:        o.Total(),
		Rendered:     o.Render(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}
