package domain

// TransactionKind defines the acting user's role in a transaction.
type TransactionKind string

const (
	KindSale     TransactionKind = "sale"
	KindPurchase TransactionKind = "purchase"
)

// TransactionStatus mirrors the marketplace transaction lifecycle.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction represents a single financial event (one product, one quantity,
// one counterparty) from the user's transaction history. Records come from an
// external snapshot and are read-only: the matcher never mutates them.
//
// Date carries the raw ISO-8601 string the snapshot delivered. Upstream data
// is known to contain malformed timestamps, so parsing is deferred to the
// matcher, which degrades gracefully instead of rejecting the record.
type Transaction struct {
	ID              int             `json:"id"`
	TransactionCode string          `json:"transactionCode,omitempty"`
	Date            string          `json:"date"`
	Kind            TransactionKind `json:"type"`
	ProductID       int             `json:"productId"`
	ProductName     string          `json:"productName,omitempty"`
	Quantity        int             `json:"quantity"`

	// SellerID identifies the counterparty seller. Only meaningful when
	// Kind is KindPurchase; may be empty otherwise.
	SellerID string            `json:"sellerId,omitempty"`
	Status   TransactionStatus `json:"status,omitempty"`
}
