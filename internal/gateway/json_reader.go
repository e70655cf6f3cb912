package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"order-reconciliation/internal/domain"
	"order-reconciliation/internal/usecase"
)

// JSONSnapshotRepository implements the SnapshotRepository interface for
// JSON snapshot files, the format the marketplace export produces. Order
// items inside a snapshot may be a JSON array or a string holding an
// encoded array; domain.Order absorbs both during decoding.
type JSONSnapshotRepository struct {
	log *logrus.Logger
}

var _ usecase.SnapshotRepository = (*JSONSnapshotRepository)(nil)

// NewJSONSnapshotRepository creates a new repository instance.
func NewJSONSnapshotRepository(log *logrus.Logger) *JSONSnapshotRepository {
	if log == nil {
		log = logrus.New()
	}
	return &JSONSnapshotRepository{log: log}
}

// GetTransactions reads and parses a transaction snapshot file.
func (r *JSONSnapshotRepository) GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction snapshot %s: %w", path, err)
	}

	var transactions []domain.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transaction snapshot %s: %w", path, err)
	}

	r.log.WithFields(logrus.Fields{
		"path":  path,
		"count": len(transactions),
	}).Debug("loaded transaction snapshot")

	return transactions, nil
}

// GetOrders reads and parses an order snapshot file.
func (r *JSONSnapshotRepository) GetOrders(ctx context.Context, path string) ([]domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order snapshot %s: %w", path, err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode order snapshot %s: %w", path, err)
	}

	for _, order := range orders {
		if len(order.LineItems) == 0 {
			r.log.WithField("order_id", order.ID).Warn("order has no parsable line items")
		}
	}

	r.log.WithFields(logrus.Fields{
		"path":  path,
		"count": len(orders),
	}).Debug("loaded order snapshot")

	return orders, nil
}
