package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentJournalQueryHandler reads the shipment journal directly from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetShipmentJournalQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentJournalQueryHandler creates a handler for journal reads.
// Requires a GORM database connection for query execution.
func NewGetShipmentJournalQueryHandler(db *gorm.DB) GetShipmentJournalQueryHandler {
	return GetShipmentJournalQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's journal entries,
// oldest first.
func (h GetShipmentJournalQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentJournalQuery,
) ([]GetShipmentJournalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetShipmentJournalQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			provider,
			action,
			tracking_number,
			details,
			created_at
		FROM shipment_journal
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetShipmentJournalQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&entry.Provider,
			&entry.Action,
			&entry.TrackingNumber,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = entryOrderID

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
