package order

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination of an order. It is a value object:
// changing the city during resolution produces a new Address via WithCity
// rather than mutating the existing one.
type Address struct {
	fullName      string
	mobile        string
	city          string
	streetAddress string
	instructions  string

	isConstructed bool
}

// NewAddress creates a validated shipping address. Full name, mobile, city
// and street address are required; delivery instructions are optional.
func NewAddress(fullName, mobile, city, streetAddress, instructions string) (Address, error) {
	if strings.TrimSpace(fullName) == "" {
		return Address{}, errs.NewValueIsRequiredError("fullName")
	}
	if strings.TrimSpace(mobile) == "" {
		return Address{}, errs.NewValueIsRequiredError("mobile")
	}
	if strings.TrimSpace(city) == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if strings.TrimSpace(streetAddress) == "" {
		return Address{}, errs.NewValueIsRequiredError("streetAddress")
	}

	return Address{
		fullName:      fullName,
		mobile:        mobile,
		city:          city,
		streetAddress: streetAddress,
		instructions:  instructions,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// FullName returns the recipient's full name.
func (a Address) FullName() string {
	return a.fullName
}

// Mobile returns the recipient's mobile number.
func (a Address) Mobile() string {
	return a.mobile
}

// City returns the destination city as entered by the customer. It is not
// guaranteed to match any provider's operational city name; the city
// resolution gate owns that check.
func (a Address) City() string {
	return a.city
}

// StreetAddress returns the street address line.
func (a Address) StreetAddress() string {
	return a.streetAddress
}

// Instructions returns the optional delivery instructions.
func (a Address) Instructions() string {
	return a.instructions
}

// WithCity returns a copy of the address with the city replaced by a
// provider-supported operational city name.
func (a Address) WithCity(city string) (Address, error) {
	return NewAddress(a.fullName, a.mobile, city, a.streetAddress, a.instructions)
}
