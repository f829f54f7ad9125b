package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrAlreadyPushed is returned when a push is attempted on an order whose
	// shipment has already been pushed. The check happens before any network
	// call is made.
	ErrAlreadyPushed = errors.New("order has already been pushed to a courier provider")

	// ErrNotPushed is returned when a tracking or cancel operation is attempted
	// on an order without a pushed shipment.
	ErrNotPushed = errors.New("order has no pushed shipment")

	// ErrEditingLocked is returned when a shipping-address mutation is attempted
	// on an order that is no longer editable.
	ErrEditingLocked = errors.New("order is not editable")
)

// Order is the aggregate root over the backend order record for the duration
// of one editing session. The backend order service owns the record; this
// aggregate exists to enforce the fulfillment rules locally:
//
//   - a push may only be attempted while no shipment has been pushed
//   - once pushed, the shipping address is frozen (see CanEdit)
//   - tracking merges are idempotent and never touch the push references
//   - cancel requires a tracking number and a non-terminal status
//
// It is reconstructed from the backend payload on every read and never
// persisted by this layer.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// status is the current lifecycle state as reported by the backend
	status Status

	// shippingAddress is the delivery destination
	shippingAddress Address

	// cart is the order's line items with selected variants
	cart []CartLine

	// totalPrice is the order total including delivery charges
	totalPrice decimal.Decimal

	// deliveryCharges is the courier fee portion of the total
	deliveryCharges decimal.Decimal

	// shippingProvider is nil until the first successful push
	shippingProvider *ShippingProviderRecord

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a fresh Pending order without a shipment. Used mostly by
// tests and by flows that build an order before the backend has seen it;
// orders read from the backend go through RestoreOrder.
func NewOrder(
	id kernel.UUID,
	shippingAddress Address,
	cart []CartLine,
	totalPrice decimal.Decimal,
	deliveryCharges decimal.Decimal,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShippingAddress(shippingAddress),
		o.setCart(cart),
		o.setMoney(totalPrice, deliveryCharges),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from the backend payload, including its
// current status and an optional shipping provider record.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	shippingAddress Address,
	cart []CartLine,
	totalPrice decimal.Decimal,
	deliveryCharges decimal.Decimal,
	shippingProvider *ShippingProviderRecord,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setShippingAddress(shippingAddress),
		o.setCart(cart),
		o.setMoney(totalPrice, deliveryCharges),
		o.setShippingProvider(shippingProvider),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Cart returns a copy of the order's line items.
func (o *Order) Cart() []CartLine {
	out := make([]CartLine, len(o.cart))
	copy(out, o.cart)
	return out
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// DeliveryCharges returns the courier fee portion of the total.
func (o *Order) DeliveryCharges() decimal.Decimal {
	return o.deliveryCharges
}

// ShippingProvider returns the shipment sub-record, or nil before the first
// push.
func (o *Order) ShippingProvider() *ShippingProviderRecord {
	return o.shippingProvider
}

// Pushed reports whether a shipment has been pushed for this order.
func (o *Order) Pushed() bool {
	return o.shippingProvider != nil && o.shippingProvider.Pushed()
}

// CanEdit decides whether shipping-address fields may still be mutated and
// whether the order may be deleted.
//
// Both conditions are required: the order must be Pending AND no shipment may
// have been pushed. This is a conjunction, not a fallback chain, and callers
// must re-evaluate it after every order mutation rather than caching it.
func (o *Order) CanEdit() bool {
	return o.status == Pending && !o.Pushed()
}

// ValidatePush checks whether a push may be attempted, without side effects.
// A push attempt on an already-pushed order is rejected here, before any
// network call.
func (o *Order) ValidatePush() error {
	if o.Pushed() {
		return ErrAlreadyPushed
	}
	return o.status.ValidatePush()
}

// MarkPushed records the one-time push transition: it stores the provider
// record and moves the status to whatever the backend reported after the
// push (Pending or Shipped).
//
// Returns ErrAlreadyPushed if a record already exists; the existing record is
// never overwritten.
func (o *Order) MarkPushed(record ShippingProviderRecord, statusAfterPush Status) error {
	if err := o.ValidatePush(); err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AfterPush(statusAfterPush)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shippingProvider = &record
	return nil
}

// TrackingNumber returns the shipment's consignment number, or an error when
// no pushed shipment with a tracking number exists. It is the precondition
// check for track and cancel operations; its failure is local and must not
// produce a network call.
func (o *Order) TrackingNumber() (string, error) {
	if !o.Pushed() {
		return "", ErrNotPushed
	}
	cn := o.shippingProvider.TrackingNumber()
	if cn == "" {
		return "", errs.NewValueIsRequiredError("trackingNumber")
	}
	return cn, nil
}

// ApplyTracking merges a track response into the shipment record.
//
// The merge overwrites the raw status, the event history and the preserved
// raw payload, and refreshes the status timestamp. Applying the same response
// twice produces no observable difference beyond the refreshed timestamp.
// The authoritative order status is never changed by a tracking merge.
func (o *Order) ApplyTracking(info courier.TrackingInfo, checkedAt time.Time) error {
	if !o.Pushed() {
		return ErrNotPushed
	}

	o.shippingProvider.applyTracking(info, checkedAt)
	return nil
}

// MarkCancelled records a successful provider cancel: the order status
// transitions to Cancelled and the shipment sub-status mirrors it.
//
// Preconditions: a pushed shipment with a tracking number must exist and the
// status must not already be terminal.
func (o *Order) MarkCancelled(cancelledAt time.Time) error {
	if _, err := o.TrackingNumber(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shippingProvider.mirrorCancelled(cancelledAt)
	return nil
}

// UpdateShippingCity replaces the destination city, as done by the city
// resolution gate after the operator selects a provider-supported city.
//
// Returns ErrEditingLocked when the order is no longer editable; the guard is
// evaluated at call time, never cached.
func (o *Order) UpdateShippingCity(city string) error {
	if !o.CanEdit() {
		return ErrEditingLocked
	}

	addr, err := o.shippingAddress.WithCity(city)
	if err != nil {
		return err
	}

	o.shippingAddress = addr
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setShippingAddress validates and sets the delivery destination.
// This is a private method used only during construction.
func (o *Order) setShippingAddress(addr Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	o.shippingAddress = addr
	return nil
}

// setCart copies the cart lines. An empty cart is allowed: list endpoints of
// the backend omit line items.
func (o *Order) setCart(cart []CartLine) error {
	o.cart = make([]CartLine, len(cart))
	copy(o.cart, cart)
	return nil
}

// setMoney validates and sets the money fields.
// This is a private method used only during construction.
func (o *Order) setMoney(totalPrice, deliveryCharges decimal.Decimal) error {
	if totalPrice.IsNegative() {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	if deliveryCharges.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryCharges")
	}
	o.totalPrice = totalPrice
	o.deliveryCharges = deliveryCharges
	return nil
}

// setShippingProvider validates and sets the optional shipment record.
// This is a private method used only during construction.
func (o *Order) setShippingProvider(record *ShippingProviderRecord) error {
	if record == nil {
		return nil
	}
	if err := record.Validate(); err != nil {
		return err
	}
	o.shippingProvider = record
	return nil
}
