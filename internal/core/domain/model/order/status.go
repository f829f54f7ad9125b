package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as owned by the backend
// order service. It implements a state machine with defined transitions so
// that the orchestration layer can never drive an order into an impossible
// state.
//
// State transitions performed by this layer:
//
//	Pending ──push──> Pending|Shipped ──cancel──> Cancelled
//	                        │
//	                        └─────(backend rules)────> Delivered
//
// Delivered and Cancelled are terminal. The Delivered transition itself is
// never performed here; it arrives from the backend and is only restored.
//
// Status is a value object that validates state transitions and provides
// string representations for the wire format and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a confirmed order. Only Pending
	// orders without a pushed shipment may be edited or pushed.
	Pending

	// Shipped indicates a shipment has been created with a courier provider
	// and the parcel is on its way.
	Shipped

	// Delivered indicates the parcel reached the customer.
	// This is a terminal state; only tracking/audit reads remain allowed.
	Delivered

	// Cancelled indicates the order was cancelled.
	// This is a terminal state; cancel is disallowed, tracking reads remain
	// allowed for audit history.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the wire representation used by the backend order
// service. Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions from
// this layer.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidatePush checks if the status allows pushing a shipment without
// performing the transition. Only Pending orders may be pushed; the
// pushed-flag half of the guard lives on the Order aggregate.
func (s Status) ValidatePush() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to push", s.String()),
		)
	}
	return nil
}

// AfterPush returns the status the order holds after a successful push.
//
// Valid transitions:
//   - Pending -> Pending (provider books asynchronously)
//   - Pending -> Shipped (provider confirms dispatch at booking)
//
// The backend response decides which of the two applies; this layer never
// invents a transition of its own.
func (s Status) AfterPush(next Status) (Status, error) {
	if err := s.ValidatePush(); err != nil {
		return 0, err
	}
	if next != Pending && next != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status after push", next.String()),
		)
	}
	return next, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Shipped -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (already terminal)
//   - Delivered -> Cancelled (terminal)
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
