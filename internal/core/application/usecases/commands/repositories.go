// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence of the journal entry.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JournalRepoFactory provides access to the journal repository within a
	// transaction.
	JournalRepoFactory interface {
		JournalRepository() ports.JournalRepository
	}

	// JournalUoW manages transactions over the shipment journal.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.JournalRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	JournalUoW interface {
		TxManager
		JournalRepoFactory
	}

	// JournalUoWFactory creates new journal unit of work instances.
	JournalUoWFactory interface {
		Create() JournalUoW
	}
)
