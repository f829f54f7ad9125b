// Package courier provides the value objects shared by the fulfillment
// orchestration layer and the per-provider courier clients.
//
// The package includes:
//   - Provider: the closed enum of supported courier providers
//   - CityRecord: a provider-serviceable city as returned by the provider
//   - ServiceStatus: the enabled/configured flags of a provider integration
//   - PushResult, TrackingInfo, TrackingEvent: the normalized results of the
//     provider client operations
//   - CanonicalStatus and ClassifyStatus: the rule-based classifier that maps
//     raw provider status strings onto a small set of display classes
//   - ProviderError: the typed error carried by every failed provider call
//
// Provider status vocabularies are not standardized upstream; every type in
// this package that carries a status keeps the raw provider string alongside
// any derived classification, so the raw value is never lost.
package courier
