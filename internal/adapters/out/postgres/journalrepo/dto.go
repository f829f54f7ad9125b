// Package journalrepo provides data transfer objects and mapping functions
// for shipment journal persistence. This package implements the repository
// pattern for the journal Entry aggregate, handling the conversion between
// domain entities and database representations.
package journalrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting journal entries.
// The order_id index serves the per-order reads and the push-existence
// check.
type EntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Provider       string    `gorm:"type:varchar(32)"`
	Action         string    `gorm:"type:varchar(32);index"`
	TrackingNumber string    `gorm:"type:varchar(64)"`
	Details        []byte    `gorm:"type:jsonb"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for journal entries.
// Overrides GORM's default naming convention to use "shipment_journal".
func (EntryDTO) TableName() string {
	return "shipment_journal"
}

// fromDomain converts a journal entry aggregate to its database
// representation.
func fromDomain(entry *journal.Entry) EntryDTO {
	return EntryDTO{
		ID:             entry.ID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		Provider:       string(entry.Provider()),
		Action:         entry.Action().String(),
		TrackingNumber: entry.TrackingNumber(),
		Details:        entry.Details(),
		CreatedAt:      entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a journal entry aggregate using
// RestoreEntry.
func toDomain(dto EntryDTO) (*journal.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return journal.RestoreEntry(
		id,
		orderID,
		courier.Provider(dto.Provider),
		journal.Action(dto.Action),
		dto.TrackingNumber,
		dto.Details,
		dto.CreatedAt,
	)
}
