package usecase

import (
	"context"

	"order-reconciliation/internal/domain"
)

// SnapshotRepository defines the interface for fetching per-user history
// snapshots. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go SnapshotRepository
type SnapshotRepository interface {
	GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error)
	GetOrders(ctx context.Context, path string) ([]domain.Order, error)
}
