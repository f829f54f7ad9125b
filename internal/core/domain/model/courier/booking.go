package courier

import (
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PushRequest carries everything a provider needs to book a shipment. It is
// assembled from the order aggregate by the push use case; the provider
// clients translate it into their own wire formats.
type PushRequest struct {
	// OrderID is the merchant-side order identifier, sent to the provider as
	// the order reference.
	OrderID string

	// CustomerName is the recipient's full name.
	CustomerName string

	// CustomerPhone is the recipient's mobile number.
	CustomerPhone string

	// DeliveryAddress is the full street address line.
	DeliveryAddress string

	// CityName is the provider's operational city name, already resolved.
	CityName string

	// CityCode is the provider-specific city identifier, where the provider
	// uses one. Empty for providers that key on the name alone.
	CityCode string

	// CODAmount is the cash to collect on delivery.
	CODAmount decimal.Decimal

	// ItemsDescription is a short free-text summary of the parcel contents.
	ItemsDescription string

	// Pieces is the number of packages in the shipment.
	Pieces int

	// Instructions are optional delivery notes for the rider.
	Instructions string
}

// Validate checks the request has the fields every provider requires.
func (r PushRequest) Validate() error {
	if strings.TrimSpace(r.OrderID) == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if strings.TrimSpace(r.CustomerPhone) == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if strings.TrimSpace(r.CityName) == "" {
		return errs.NewValueIsRequiredError("cityName")
	}
	if r.CODAmount.IsNegative() {
		return errs.NewValueIsInvalidError("codAmount")
	}
	if r.Pieces < 1 {
		return errs.NewValueIsOutOfRangeError("pieces", r.Pieces, 1, maxPieces)
	}
	if r.Pieces > maxPieces {
		return errs.NewValueIsOutOfRangeError("pieces", r.Pieces, 1, maxPieces)
	}
	return nil
}

const maxPieces = 100
