package courier

import "strings"

// CanonicalStatus is the provider-agnostic classification of a raw courier
// status string. It is advisory: it drives badge coloring and decisioning in
// the operator UI, is never persisted, and never overwrites the authoritative
// order status.
//
// The zero value is CanonicalPending, which doubles as the "no match" default.
type CanonicalStatus int

const (
	// CanonicalPending covers booking and pickup-request stages, plus any
	// status string no other class matches.
	CanonicalPending CanonicalStatus = iota

	// CanonicalInTransit covers dispatch, pickup, transit and
	// out-for-delivery stages.
	CanonicalInTransit

	// CanonicalMisrouted covers shipments the provider flagged as missrouted.
	CanonicalMisrouted

	// CanonicalReturn covers return-to-shipper and return-in-progress stages.
	CanonicalReturn

	// CanonicalCancelled covers operator cancellations and provider
	// auto-cancellations after booking timeout.
	CanonicalCancelled

	// CanonicalDelivered is the terminal success class.
	CanonicalDelivered
)

func getCanonicalStatusStrings() map[CanonicalStatus]string {
	return map[CanonicalStatus]string{
		CanonicalPending:   "pending",
		CanonicalInTransit: "in-transit",
		CanonicalMisrouted: "misrouted",
		CanonicalReturn:    "return",
		CanonicalCancelled: "cancelled",
		CanonicalDelivered: "delivered",
	}
}

// String returns the lowercase class name used by the UI for badge styling.
func (s CanonicalStatus) String() string {
	if str, ok := getCanonicalStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// IsTerminal reports whether the class describes a shipment that will not
// move again (delivered or cancelled).
func (s CanonicalStatus) IsTerminal() bool {
	return s == CanonicalDelivered || s == CanonicalCancelled
}

// Marker lists per class. Matching is substring-based over a lowercased,
// trimmed copy of the raw status. "picked" is deliberately used instead of
// "pickup" so that "pickup request" stays in the pending class.
var (
	deliveredMarkers = []string{"delivered"}
	cancelledMarkers = []string{"cancel", "expired", "un-booked"}
	returnMarkers    = []string{"return"}
	inTransitMarkers = []string{"dispatch", "picked", "transit", "out for delivery", "departed", "arrived"}
	misrouteMarkers  = []string{"missroute", "misroute"}
)

// ClassifyStatus maps a raw provider status string onto a CanonicalStatus.
//
// Classes are checked in fixed precedence order
// delivered -> cancelled -> return -> in-transit -> misrouted -> pending,
// because a provider string may satisfy more than one marker (e.g.
// "Delivered after Return") and the more terminal state must win.
// Unmatched and empty input classifies as CanonicalPending.
func ClassifyStatus(raw string) CanonicalStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return CanonicalPending
	}

	switch {
	case containsAny(s, deliveredMarkers):
		return CanonicalDelivered
	case containsAny(s, cancelledMarkers):
		return CanonicalCancelled
	case containsAny(s, returnMarkers):
		return CanonicalReturn
	case containsAny(s, inTransitMarkers):
		return CanonicalInTransit
	case containsAny(s, misrouteMarkers):
		return CanonicalMisrouted
	default:
		return CanonicalPending
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
