package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"order-reconciliation/internal/domain"
)

// ReconciliationUseCase orchestrates a reconciliation run: it loads the
// user's transaction and order snapshots, infers the transaction→order
// mapping and renders the annotated report.
type ReconciliationUseCase struct {
	repo SnapshotRepository
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo SnapshotRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo}
}

// Reconcile loads both snapshots and produces the annotated report. Rows are
// emitted in the order the transactions arrived, not in matching order.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, transactionsPath, ordersPath, userID string) (*domain.ReconciliationReport, error) {
	transactions, err := uc.repo.GetTransactions(ctx, transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	orders, err := uc.repo.GetOrders(ctx, ordersPath)
	if err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}

	matched := MatchTransactions(transactions, orders, userID)

	report := domain.ReconciliationReport{
		ReconciliationSummary: domain.Summary{
			UserID:            userID,
			TotalTransactions: len(transactions),
			TotalOrders:       len(orders),
		},
		Transactions: make([]domain.TransactionRow, 0, len(transactions)),
	}

	for _, tx := range transactions {
		row := buildTransactionRow(tx, matched[tx.ID])
		if row.Matched {
			report.ReconciliationSummary.MatchedTransactions++
		} else {
			report.ReconciliationSummary.UnmatchedTransactions++
		}
		report.Transactions = append(report.Transactions, row)
	}

	return &report, nil
}

// buildTransactionRow annotates one transaction with its matched order, or
// with display fallbacks when nothing matched. The fallback order code keeps
// history rows presentable for transactions that predate order tracking.
func buildTransactionRow(tx domain.Transaction, order *domain.Order) domain.TransactionRow {
	row := domain.TransactionRow{
		Transaction:      tx,
		OrderCode:        fallbackOrderCode(tx),
		OrderDetailsPath: fallbackOrderDetailsPath(tx),
	}
	if order == nil {
		return row
	}

	row.Matched = true
	row.OrderID = order.ID
	row.OrderStatus = order.Status
	if order.OrderCode != "" {
		row.OrderCode = order.OrderCode
		row.OrderDetailsPath = "/order-details/" + roleSegment(tx.Kind) + "/" + url.PathEscape(order.OrderCode)
	}
	return row
}

func roleSegment(kind domain.TransactionKind) string {
	if kind == domain.KindSale {
		return "SALE"
	}
	return "PURCHASE"
}

func fallbackOrderCode(tx domain.Transaction) string {
	return fmt.Sprintf("ORD-%08d", tx.ID)
}

func fallbackOrderDetailsPath(tx domain.Transaction) string {
	if tx.ProductID == 0 || strings.TrimSpace(tx.SellerID) == "" {
		return "/order-details"
	}
	params := url.Values{}
	params.Set("productId", strconv.Itoa(tx.ProductID))
	params.Set("sellerId", tx.SellerID)
	return "/order-details?" + params.Encode()
}
