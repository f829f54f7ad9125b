package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"
)

// JournalRepository defines the persistence contract for the shipment
// journal. The journal is append-only: entries are added and read, never
// updated or deleted.
type JournalRepository interface {
	// Add persists a new journal entry.
	Add(ctx context.Context, entry *journal.Entry) error

	// GetByOrderID retrieves all entries for an order, oldest first.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*journal.Entry, error)

	// HasPush reports whether a push entry exists for the order. This check
	// backs the one-time-push guard when the order service has lost the
	// pushed flag, e.g. after a session reset.
	HasPush(ctx context.Context, orderID kernel.UUID) (bool, error)
}
