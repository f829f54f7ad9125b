package courier

// CityRecord is one entry of a provider's serviceable-city list.
// The set is provider-specific and must never be reused across providers;
// the raw provider identifiers are kept for the push payload.
type CityRecord struct {
	// OperationalCityName is the canonical city name the provider services.
	OperationalCityName string

	// CountryName is the country the city belongs to.
	CountryName string

	// ProviderCityID is the provider's opaque identifier for the city.
	ProviderCityID string

	// ProviderCityCode is the provider's short code for the city, when one exists.
	ProviderCityCode string
}

// ServiceStatus carries the service flags of one provider integration.
// When either flag is false, no push/track/cancel calls may be attempted
// against the provider until the status has been re-checked.
type ServiceStatus struct {
	// Enabled reports whether the integration is switched on.
	Enabled bool

	// Configured reports whether the integration has working credentials.
	Configured bool
}

// Available reports whether provider calls may be attempted at all.
func (s ServiceStatus) Available() bool {
	return s.Enabled && s.Configured
}
