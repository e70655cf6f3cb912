package domain

// TransactionRow is one annotated entry of the reconciliation report: the
// transaction itself plus whatever the matcher could infer about the order
// that produced it.
type TransactionRow struct {
	Transaction Transaction `json:"transaction"`

	Matched     bool        `json:"matched"`
	OrderID     int         `json:"order_id,omitempty"`
	OrderCode   string      `json:"order_code"`
	OrderStatus OrderStatus `json:"order_status,omitempty"`

	// OrderDetailsPath is the navigation target for this row: the matched
	// order's details page, or a product/seller lookup when no order matched.
	OrderDetailsPath string `json:"order_details_path"`
}

// Summary provides high-level statistics of the reconciliation run.
type Summary struct {
	UserID                string `json:"user_id"`
	TotalTransactions     int    `json:"total_transactions"`
	TotalOrders           int    `json:"total_orders"`
	MatchedTransactions   int    `json:"matched_transactions"`
	UnmatchedTransactions int    `json:"unmatched_transactions"`
}

// ReconciliationReport is the top-level structure for the final JSON output.
type ReconciliationReport struct {
	ReconciliationSummary Summary          `json:"reconciliation_summary"`
	Transactions          []TransactionRow `json:"transactions"`
}
