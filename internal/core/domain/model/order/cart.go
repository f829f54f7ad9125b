package order

import (
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CartLine is one line item of the order's cart summary: a product at a
// price, a quantity and the variant the customer selected. The cart is
// read-only in this layer; it is carried for display and for the payload of
// a push.
type CartLine struct {
	title     string
	unitPrice decimal.Decimal
	quantity  int
	variant   string
}

// NewCartLine creates a validated cart line. Quantity must be at least 1 and
// the unit price must not be negative; variant is optional.
func NewCartLine(title string, unitPrice decimal.Decimal, quantity int, variant string) (CartLine, error) {
	if strings.TrimSpace(title) == "" {
		return CartLine{}, errs.NewValueIsRequiredError("title")
	}
	if quantity < 1 {
		return CartLine{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxCartLineQuantity)
	}
	if quantity > maxCartLineQuantity {
		return CartLine{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxCartLineQuantity)
	}
	if unitPrice.IsNegative() {
		return CartLine{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return CartLine{
		title:     title,
		unitPrice: unitPrice,
		quantity:  quantity,
		variant:   variant,
	}, nil
}

const maxCartLineQuantity = 10_000

// Title returns the product title.
func (l CartLine) Title() string {
	return l.title
}

// UnitPrice returns the price per unit.
func (l CartLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l CartLine) Quantity() int {
	return l.quantity
}

// Variant returns the selected product variant, when one was chosen.
func (l CartLine) Variant() string {
	return l.variant
}

// LineTotal returns unit price multiplied by quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
