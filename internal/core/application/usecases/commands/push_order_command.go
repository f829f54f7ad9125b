package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrPushOrderCommandIsNotConstructed = errors.New(
	"PushOrderCommand must be created via NewPushOrderCommand constructor",
)

// PushOrderCommand requests the one-time push of an order to a courier
// provider. A second push for the same order is rejected by the handler
// before any network traffic.
//
// Example:
//
//	cmd, err := NewPushOrderCommand(orderID, courier.ProviderPostex)
//	if err != nil {
//	    return fmt.Errorf("invalid push request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrCityResolutionRequired) {
//	    // present result.CityCandidates to the operator
//	}
type PushOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	provider courier.Provider

	guard guard.ConstructorGuard
}

// NewPushOrderCommand creates a command to push an order to the given
// provider. Validates the order ID and the provider name.
func NewPushOrderCommand(orderID kernel.UUID, provider courier.Provider) (PushOrderCommand, error) {
	cmd := PushOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProvider(provider),
	); err != nil {
		return PushOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPushOrderCommandIsNotConstructed if validation fails.
func (c PushOrderCommand) Validate() error {
	return c.guard.Validate(ErrPushOrderCommandIsNotConstructed)
}

// OrderID returns the order to push.
func (c PushOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Provider returns the courier provider to push to.
func (c PushOrderCommand) Provider() courier.Provider {
	return c.provider
}

func (c *PushOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PushOrderCommand) setProvider(provider courier.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	c.provider = provider
	return nil
}
