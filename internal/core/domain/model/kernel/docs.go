// Package kernel contains the shared building blocks of the domain model.
// It provides value objects that are used across aggregates and have no
// business meaning of their own:
//
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - ConstructorGuard: a defensive flag that detects zero-value domain objects
//
// Kernel types carry their own validation so that aggregates composed from
// them can rely on errors.Join over the setters of their constructors.
package kernel
