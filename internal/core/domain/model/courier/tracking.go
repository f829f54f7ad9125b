package courier

import (
	"encoding/json"
	"time"
)

// PushResult is the normalized outcome of a successful push: the references
// the provider issued for the new shipment booking.
type PushResult struct {
	// OrderRefNumber is the provider-side reference for the pushed order.
	OrderRefNumber string

	// TrackingNumber is the consignment number (CN) used for all subsequent
	// track and cancel calls.
	TrackingNumber string

	// OrderStatus is the order lifecycle status the backend reports after the
	// push ("Pending" or "Shipped", depending on the provider flow).
	OrderStatus string

	// LabelURL points at the printable shipping label, when the provider
	// issues one at booking time.
	LabelURL string

	// Raw preserves the provider's response payload for audit and fallback
	// rendering.
	Raw json.RawMessage
}

// TrackingInfo is the normalized result of a track-by-CN call.
type TrackingInfo struct {
	// Status is the raw provider status string. Classification into a
	// CanonicalStatus happens at render time, never here.
	Status string

	// CurrentCity is the city of the latest scan, when the provider reports one.
	CurrentCity string

	// LastEventAt is the timestamp of the latest tracking event, when known.
	LastEventAt *time.Time

	// Events is the provider's scan history, oldest first.
	Events []TrackingEvent

	// Raw preserves the provider's response payload.
	Raw json.RawMessage
}

// TrackingEvent is a single scan in a shipment's history.
type TrackingEvent struct {
	// Status is the raw provider status string of the event.
	Status string

	// Location is the facility or city the event was recorded at.
	Location string

	// Message is the provider's human-readable event description.
	Message string

	// RecordedAt is when the provider recorded the event.
	RecordedAt time.Time
}
