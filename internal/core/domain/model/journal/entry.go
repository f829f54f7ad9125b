package journal

import (
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// the NewEntry or RestoreEntry factory methods.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Action identifies what fulfillment operation a journal entry records.
type Action string

const (
	ActionPushed       Action = "pushed"
	ActionTracked      Action = "tracked"
	ActionCancelled    Action = "cancelled"
	ActionCityResolved Action = "city_resolved"
)

// getValidActions returns the set of valid Action values.
func getValidActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionPushed:       {},
		ActionTracked:      {},
		ActionCancelled:    {},
		ActionCityResolved: {},
	}
}

// Validate checks if the Action value is valid.
func (a Action) Validate() error {
	if _, ok := getValidActions()[a]; !ok {
		return errs.NewValueIsInvalidError("action")
	}
	return nil
}

// String returns the wire representation of the action.
func (a Action) String() string {
	return string(a)
}

// Entry is one immutable line of the shipment journal: which fulfillment
// operation ran against which order, with which provider, and what the
// provider returned. Entries are append-only; nothing updates or deletes
// them.
//
// Besides audit, the journal answers one operational question: whether an
// order has ever been pushed, which survives session loss on the order
// service side.
type Entry struct {
	id             kernel.UUID
	orderID        kernel.UUID
	provider       courier.Provider
	action         Action
	trackingNumber string
	details        json.RawMessage
	createdAt      time.Time

	isConstructed bool
}

// NewEntry creates a journal entry for an operation that just ran.
func NewEntry(
	orderID kernel.UUID,
	provider courier.Provider,
	action Action,
	trackingNumber string,
	details json.RawMessage,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setOrderID(orderID),
		e.setProvider(provider),
		e.setAction(action),
	); err != nil {
		return nil, err
	}

	e.trackingNumber = trackingNumber
	e.details = details
	e.createdAt = createdAt
	return e, nil
}

// RestoreEntry reconstructs a journal entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	provider courier.Provider,
	action Action,
	trackingNumber string,
	details json.RawMessage,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setProvider(provider),
		e.setAction(action),
	); err != nil {
		return nil, err
	}

	e.trackingNumber = trackingNumber
	e.details = details
	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the Entry was created via a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Provider returns the courier provider involved in the operation.
func (e *Entry) Provider() courier.Provider {
	return e.provider
}

// Action returns what operation the entry records.
func (e *Entry) Action() Action {
	return e.action
}

// TrackingNumber returns the consignment number involved, when one existed.
func (e *Entry) TrackingNumber() string {
	return e.trackingNumber
}

// Details returns the raw provider payload preserved with the entry.
func (e *Entry) Details() json.RawMessage {
	return e.details
}

// CreatedAt returns when the operation ran.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setProvider(provider courier.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}
	e.provider = provider
	return nil
}

func (e *Entry) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}
