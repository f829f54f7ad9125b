// Package session holds the process-local state of the fulfillment
// workflows: the per-order push serialization, pushes parked on a pending
// city resolution, and the per-provider city and service-status caches.
//
// Everything here is in-memory and lost on restart. Durable facts live in
// the shipment journal and the backend order service.
package session
