// Package commands contains the operations that change the tracked orders or
// push them to the outside world. Every command is built by a constructor,
// validated by its handler and handled against narrow collaborator interfaces
// satisfied by ports.OrderStore.
package commands

import (
	"iter"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

type (
	// OrderAdder accepts newly placed orders.
	OrderAdder interface {
		AddOrder(o *order.Order) error
	}

	// OrderFinder looks an order up by identifier.
	OrderFinder interface {
		Get(id kernel.UUID) (*order.Order, error)
	}

	// OrderLogSource renders the order log.
	OrderLogSource interface {
		LogEntries() iter.Seq[string]
	}
)
