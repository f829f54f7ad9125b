package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)

	// ErrCancelNotConfirmed is returned when the cancel was not explicitly
	// confirmed. Cancellation is destructive on the provider side, so the
	// confirmation travels with the command rather than being assumed.
	ErrCancelNotConfirmed = errors.New("cancel requires explicit confirmation")
)

// CancelShipmentCommand requests cancellation of an order's pushed shipment
// with the courier provider.
//
// Example:
//
//	cmd, err := NewCancelShipmentCommand(orderID, confirmed)
//	if errors.Is(err, ErrCancelNotConfirmed) {
//	    // ask the operator to confirm
//	}
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel an order's shipment.
// The confirmed flag must be true; an unconfirmed cancel never constructs.
func NewCancelShipmentCommand(orderID kernel.UUID, confirmed bool) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if !confirmed {
		return CancelShipmentCommand{}, ErrCancelNotConfirmed
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// OrderID returns the order whose shipment to cancel.
func (c CancelShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
