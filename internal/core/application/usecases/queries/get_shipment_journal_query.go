package queries

import (
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentJournalQueryIsNotConstructed = errors.New(
	"GetShipmentJournalQuery must be created via NewGetShipmentJournalQuery constructor",
)

// GetShipmentJournalQuery retrieves the audit trail of fulfillment
// operations for one order, oldest first.
//
// Example:
//
//	query, err := NewGetShipmentJournalQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
type GetShipmentJournalQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentJournalQuery creates a query for the order's journal.
func NewGetShipmentJournalQuery(orderID kernel.UUID) (GetShipmentJournalQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentJournalQuery{}, err
	}

	return GetShipmentJournalQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentJournalQueryIsNotConstructed if validation fails.
func (q GetShipmentJournalQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentJournalQueryIsNotConstructed)
}

// OrderID returns the order whose journal to read.
func (q GetShipmentJournalQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetShipmentJournalQueryResponse is one journal line in the read model.
type GetShipmentJournalQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Provider       string
	Action         string
	TrackingNumber string
	Details        json.RawMessage
	CreatedAt      time.Time
}
