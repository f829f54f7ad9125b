package courier

import (
	"fmt"
	"strings"
)

// invalidCityCodes are the machine-readable error codes the backend courier
// surface uses for the unsupported-destination-city condition.
var invalidCityCodes = map[string]struct{}{
	"INVALID_DELIVERY_CITY": {},
	"CITY_NOT_SERVICEABLE":  {},
}

// invalidCityMarkers classify the condition from the human-readable message
// when a provider returns no usable code.
var invalidCityMarkers = []string{
	"invalid delivery city",
	"city not serviceable",
	"unserviceable city",
	"city is not supported",
}

// ProviderError is the typed error carried by every failed provider call.
// It preserves the provider's machine-readable code and human-readable
// message so the orchestration layer can classify the failure; the client
// itself never retries and never interprets beyond transport concerns.
type ProviderError struct {
	// Provider is the provider the failed call was addressed to.
	Provider Provider

	// Op names the failed operation: push, track, cancel, cities or status.
	Op string

	// Code is the provider's or backend's machine-readable error code, when present.
	Code string

	// Message is the human-readable message to surface to the operator.
	Message string

	// Cause is the underlying transport or decoding error, when present.
	Cause error
}

// NewProviderError creates a ProviderError from a provider error response.
func NewProviderError(provider Provider, op, code, message string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Op:       op,
		Code:     code,
		Message:  message,
	}
}

// NewProviderErrorWithCause creates a ProviderError wrapping a transport or
// decoding failure that produced no provider response.
func NewProviderErrorWithCause(provider Provider, op string, cause error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Op:       op,
		Cause:    cause,
	}
}

// Error formats the error with provider, operation and whichever of
// code/message/cause is available.
func (e *ProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "courier %s: %s failed", e.Provider, e.Op)
	if e.Code != "" {
		fmt.Fprintf(&b, " [%s]", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " (cause: %s)", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause, when present.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// IsInvalidCity reports whether the error is the unsupported-destination-city
// condition, by code first and message inspection second. This condition
// drives the city resolution gate instead of being treated as a hard failure.
func (e *ProviderError) IsInvalidCity() bool {
	if _, ok := invalidCityCodes[strings.ToUpper(e.Code)]; ok {
		return true
	}
	msg := strings.ToLower(e.Message)
	for _, marker := range invalidCityMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
