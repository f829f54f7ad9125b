package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrResolveCityCommandIsNotConstructed = errors.New(
	"ResolveCityCommand must be created via NewResolveCityCommand constructor",
)

// ResolveCityCommand carries the operator's city selection for an order
// whose push was parked on an unsupported city. Handling it rewrites the
// order's city and resumes the parked push.
//
// Example:
//
//	cmd, err := NewResolveCityCommand(orderID, "Multan City")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ResolveCityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	cityName string

	guard guard.ConstructorGuard
}

// NewResolveCityCommand creates a command to resolve a parked push with the
// selected operational city name.
func NewResolveCityCommand(orderID kernel.UUID, cityName string) (ResolveCityCommand, error) {
	cmd := ResolveCityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCityName(cityName),
	); err != nil {
		return ResolveCityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveCityCommandIsNotConstructed if validation fails.
func (c ResolveCityCommand) Validate() error {
	return c.guard.Validate(ErrResolveCityCommandIsNotConstructed)
}

// OrderID returns the order whose push is parked.
func (c ResolveCityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CityName returns the selected operational city name.
func (c ResolveCityCommand) CityName() string {
	return c.cityName
}

func (c *ResolveCityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveCityCommand) setCityName(cityName string) error {
	if strings.TrimSpace(cityName) == "" {
		return errs.NewValueIsRequiredError("cityName")
	}

	c.cityName = cityName
	return nil
}
