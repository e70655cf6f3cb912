package usecase

import (
	"math"
	"sort"
	"time"

	"order-reconciliation/internal/domain"
)

// maxDistance is the time distance assigned to candidates whose timestamps
// cannot be compared (either side malformed). It deprioritizes them without
// removing them from consideration.
const maxDistance int64 = math.MaxInt64

// timestampLayouts covers the formats the snapshots are known to carry.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// MatchTransactions infers which order produced each transaction, for data
// that carries no explicit transaction→order foreign key. The heuristic:
//
//  1. Transactions are processed most-recent first, so recent transactions
//     get first pick of ambiguous orders.
//  2. An order qualifies only if its parties match the transaction's role:
//     for a sale the user must be the order's seller; for a purchase the
//     user must be the buyer and the order's seller must be the
//     transaction's counterparty seller.
//  3. The order must contain at least one line item with exactly the
//     transaction's product and quantity.
//  4. Among qualifying orders the one closest in time to the transaction
//     wins; ties go to the first candidate in input order.
//  5. Each order is assigned to at most one transaction.
//
// The function is pure: it never mutates its inputs and holds no state
// between calls. Returned pointers reference elements of the orders slice.
// Transactions with no qualifying order are simply absent from the result.
func MatchTransactions(transactions []domain.Transaction, orders []domain.Order, userID string) map[int]*domain.Order {
	matched := make(map[int]*domain.Order)
	if userID == "" || len(orders) == 0 || len(transactions) == 0 {
		return matched
	}

	// Sort a shallow copy; the input slice must stay untouched. Malformed
	// dates sort last so they are considered after every datable record.
	sorted := make([]stampedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		when, ok := parseTimestamp(tx.Date)
		sorted = append(sorted, stampedTransaction{tx: tx, when: when, valid: ok})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].valid != sorted[j].valid {
			return sorted[i].valid
		}
		return sorted[i].when > sorted[j].when
	})

	usedOrderIDs := make(map[int]bool, len(orders))

	for _, st := range sorted {
		var best *domain.Order
		var bestDistance int64

		for i := range orders {
			order := &orders[i]
			if usedOrderIDs[order.ID] {
				continue
			}
			if st.tx.Kind == domain.KindSale {
				if order.SellerID != userID {
					continue
				}
			} else {
				if order.BuyerID != userID || order.SellerID != st.tx.SellerID {
					continue
				}
			}
			if !hasLineItem(order.LineItems, st.tx.ProductID, st.tx.Quantity) {
				continue
			}

			distance := timeDistance(order.CreatedAt, st.when, st.valid)
			// Strict < keeps the first candidate on ties.
			if best == nil || distance < bestDistance {
				best = order
				bestDistance = distance
			}
		}

		if best != nil {
			matched[st.tx.ID] = best
			usedOrderIDs[best.ID] = true
		}
	}

	return matched
}

type stampedTransaction struct {
	tx    domain.Transaction
	when  int64 // unix milliseconds, meaningful only when valid
	valid bool
}

func hasLineItem(items []domain.LineItem, productID, quantity int) bool {
	for _, item := range items {
		if item.ProductID == productID && item.Quantity == quantity {
			return true
		}
	}
	return false
}

// timeDistance returns |order time − transaction time| in milliseconds, or
// maxDistance when either timestamp is unusable.
func timeDistance(orderCreatedAt string, txWhen int64, txValid bool) int64 {
	if !txValid {
		return maxDistance
	}
	orderWhen, ok := parseTimestamp(orderCreatedAt)
	if !ok {
		return maxDistance
	}
	diff := orderWhen - txWhen
	if diff < 0 {
		diff = -diff
	}
	return diff
}

func parseTimestamp(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
