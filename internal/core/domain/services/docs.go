// Package services provides domain services that implement business logic
// spanning more than one aggregate or value object.
//
// The package includes:
//   - CityMatcher: reconciles customer-entered city names with a courier
//     provider's operational city list
package services
