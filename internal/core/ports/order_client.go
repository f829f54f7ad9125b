package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrOrderNotFound is returned when the order service has no order with the
// requested id.
var ErrOrderNotFound = errors.New("order not found")

// OrderClient is the contract to the backend order service, the system of
// record for orders. The fulfillment core reads orders through it and writes
// back only the mutations the workflow produces.
type OrderClient interface {
	// Get retrieves one order with its full payload, including the shipping
	// provider record when a push has happened.
	// Returns ErrOrderNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update writes the order's mutated state back to the order service.
	// Used after push, tracking merges and cancel.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateShippingCity replaces the order's destination city. Callers must
	// hold an editable order; the order service enforces its own guard too.
	UpdateShippingCity(ctx context.Context, id kernel.UUID, city string) error

	// GetPendingUnpushed lists orders that are Pending without a pushed
	// shipment, for the operator's work queue.
	GetPendingUnpushed(ctx context.Context) ([]*order.Order, error)

	// GetPushedActive lists orders with a pushed, non-terminal shipment.
	// The tracking refresh job walks this list.
	GetPushedActive(ctx context.Context) ([]*order.Order, error)
}
