package journalrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormJournalRepository implements JournalRepository using GORM.
type GormJournalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJournalRepository creates a new GORM journal repository.
func NewGormJournalRepository(db *gorm.DB, tracker aggregateTracker) *GormJournalRepository {
	return &GormJournalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new journal entry. Entries are append-only; there is no
// update path.
func (r *GormJournalRepository) Add(ctx context.Context, entry *journal.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByOrderID retrieves all entries for an order, oldest first.
func (r *GormJournalRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*journal.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	entries := make([]*journal.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// HasPush reports whether a push entry exists for the order.
func (r *GormJournalRepository) HasPush(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("order_id = ? AND action = ?", orderID.Bytes(), journal.ActionPushed.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
