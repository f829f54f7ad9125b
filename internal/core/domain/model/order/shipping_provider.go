package order

import (
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/pkg/errs"
)

// ErrShippingProviderRecordIsNotConstructed is returned when a
// ShippingProviderRecord was not created through one of its constructors.
var ErrShippingProviderRecordIsNotConstructed = errors.New(
	"ShippingProviderRecord must be created via NewShippingProviderRecord or RestoreShippingProviderRecord",
)

// ShippingProviderRecord is the per-order shipment sub-record created on the
// first successful push.
//
// Immutability rules (a push is a one-time event per order):
//   - provider, pushed, orderRefNumber and trackingNumber are fixed at
//     construction and never change
//   - tracking merges mutate only status, events, lastStatusUpdate and extra
//
// The record keeps the provider's raw status string; the canonical display
// class is recomputed from it on every render and never stored.
type ShippingProviderRecord struct {
	provider         courier.Provider
	pushed           bool
	orderRefNumber   string
	trackingNumber   string
	status           string
	lastStatusUpdate time.Time
	labelURL         string
	events           []courier.TrackingEvent
	extra            json.RawMessage

	isConstructed bool
}

// NewShippingProviderRecord creates the record for a freshly pushed shipment.
// The tracking number is required: without it no subsequent track or cancel
// call is possible.
func NewShippingProviderRecord(
	provider courier.Provider,
	orderRefNumber string,
	trackingNumber string,
	labelURL string,
	extra json.RawMessage,
	pushedAt time.Time,
) (ShippingProviderRecord, error) {
	if err := provider.Validate(); err != nil {
		return ShippingProviderRecord{}, err
	}
	if trackingNumber == "" {
		return ShippingProviderRecord{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return ShippingProviderRecord{
		provider:         provider,
		pushed:           true,
		orderRefNumber:   orderRefNumber,
		trackingNumber:   trackingNumber,
		lastStatusUpdate: pushedAt,
		labelURL:         labelURL,
		extra:            extra,
		isConstructed:    true,
	}, nil
}

// RestoreShippingProviderRecord reconstructs a record from the backend order
// payload. Unlike NewShippingProviderRecord it accepts historical state,
// including the last known raw status.
func RestoreShippingProviderRecord(
	provider courier.Provider,
	pushed bool,
	orderRefNumber string,
	trackingNumber string,
	status string,
	lastStatusUpdate time.Time,
	labelURL string,
	extra json.RawMessage,
) (ShippingProviderRecord, error) {
	if err := provider.Validate(); err != nil {
		return ShippingProviderRecord{}, err
	}
	if pushed && trackingNumber == "" {
		return ShippingProviderRecord{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return ShippingProviderRecord{
		provider:         provider,
		pushed:           pushed,
		orderRefNumber:   orderRefNumber,
		trackingNumber:   trackingNumber,
		status:           status,
		lastStatusUpdate: lastStatusUpdate,
		labelURL:         labelURL,
		extra:            extra,
		isConstructed:    true,
	}, nil
}

// Validate ensures the record was created via a constructor.
func (r *ShippingProviderRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrShippingProviderRecordIsNotConstructed
	}
	return nil
}

// Provider returns the courier provider the shipment was booked with.
func (r *ShippingProviderRecord) Provider() courier.Provider {
	return r.provider
}

// Pushed reports whether the shipment booking exists at the provider.
func (r *ShippingProviderRecord) Pushed() bool {
	return r.pushed
}

// OrderRefNumber returns the provider-side order reference.
func (r *ShippingProviderRecord) OrderRefNumber() string {
	return r.orderRefNumber
}

// TrackingNumber returns the consignment number (CN).
func (r *ShippingProviderRecord) TrackingNumber() string {
	return r.trackingNumber
}

// Status returns the last known raw provider status string.
func (r *ShippingProviderRecord) Status() string {
	return r.status
}

// LastStatusUpdate returns when the status was last refreshed.
func (r *ShippingProviderRecord) LastStatusUpdate() time.Time {
	return r.lastStatusUpdate
}

// LabelURL returns the shipping label URL, when the provider issued one.
func (r *ShippingProviderRecord) LabelURL() string {
	return r.labelURL
}

// Events returns the shipment's scan history, oldest first.
// The returned slice is a copy.
func (r *ShippingProviderRecord) Events() []courier.TrackingEvent {
	out := make([]courier.TrackingEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Extra returns the provider's raw response payload preserved for audit and
// fallback rendering.
func (r *ShippingProviderRecord) Extra() json.RawMessage {
	return r.extra
}

// CanonicalStatus classifies the last known raw status for display.
// The result is derived on every call and never persisted.
func (r *ShippingProviderRecord) CanonicalStatus() courier.CanonicalStatus {
	return courier.ClassifyStatus(r.status)
}

// applyTracking merges a track response into the record. Only status, events,
// extra and the refresh timestamp change; the push references are immutable.
// Merging the same response twice is idempotent apart from the timestamp.
func (r *ShippingProviderRecord) applyTracking(info courier.TrackingInfo, checkedAt time.Time) {
	r.status = info.Status
	r.events = make([]courier.TrackingEvent, len(info.Events))
	copy(r.events, info.Events)
	if len(info.Raw) > 0 {
		r.extra = info.Raw
	}
	r.lastStatusUpdate = checkedAt
}

// mirrorCancelled sets the shipment sub-status after a successful cancel.
func (r *ShippingProviderRecord) mirrorCancelled(cancelledAt time.Time) {
	r.status = Cancelled.String()
	r.lastStatusUpdate = cancelledAt
}
