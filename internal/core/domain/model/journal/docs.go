// Package journal contains the shipment journal Entry aggregate, an
// append-only audit record of every push, track, cancel and city resolution
// performed against the courier providers.
package journal
