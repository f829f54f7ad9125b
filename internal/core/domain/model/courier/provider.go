package courier

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Provider identifies a supported courier provider. It is a closed enum:
// the orchestration layer is written against the shared client interface and
// a provider is selected once per order, never changed after the first push.
type Provider string

const (
	// ProviderPostex is the PostEx courier integration.
	ProviderPostex Provider = "postex"

	// ProviderLCS is the Leopards Courier Service integration.
	ProviderLCS Provider = "lcs"
)

// AllProviders returns every supported provider.
// The slice is a fresh copy on every call.
func AllProviders() []Provider {
	return []Provider{ProviderPostex, ProviderLCS}
}

// ProviderFromString parses a provider code case-insensitively.
// Returns an error for unknown codes.
func ProviderFromString(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderPostex:
		return ProviderPostex, nil
	case ProviderLCS:
		return ProviderLCS, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("provider",
			fmt.Errorf("%q is not a supported courier provider", s))
	}
}

// String returns the provider code.
func (p Provider) String() string {
	return string(p)
}

// Validate checks that the provider is one of the supported codes.
func (p Provider) Validate() error {
	switch p {
	case ProviderPostex, ProviderLCS:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("provider",
			fmt.Errorf("%q is not a supported courier provider", string(p)))
	}
}
