package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves the shipment view of one order: the push
// references, the last known raw status and its display classification.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the order's shipment view.
func NewGetShipmentQuery(orderID kernel.UUID) (GetShipmentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// OrderID returns the order whose shipment to view.
func (q GetShipmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetShipmentQueryResponse is the shipment read model. CanonicalStatus is
// derived from RawStatus at read time; it is never stored anywhere.
type GetShipmentQueryResponse struct {
	OrderID          kernel.UUID
	OrderStatus      string
	CanEdit          bool
	Pushed           bool
	Provider         courier.Provider
	OrderRefNumber   string
	TrackingNumber   string
	RawStatus        string
	CanonicalStatus  courier.CanonicalStatus
	LastStatusUpdate time.Time
	LabelURL         string
	Events           []courier.TrackingEvent
}
