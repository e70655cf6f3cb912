package domain

import "encoding/json"

// OrderStatus mirrors the marketplace order lifecycle.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Order is a purchase request placed by a buyer against a seller, bundling
// one or more product line items. Orders are read-only evidence for the
// matcher; LineItems is never mutated once the order is constructed.
//
// CreatedAt is the raw ISO-8601 string from the snapshot, for the same
// reason Transaction.Date is (see transactions.go).
type Order struct {
	ID        int         `json:"id"`
	OrderCode string      `json:"orderCode,omitempty"`
	Status    OrderStatus `json:"status,omitempty"`
	BuyerID   string      `json:"buyerId"`
	SellerID  string      `json:"sellerId"`
	CreatedAt string      `json:"createdAt"`
	LineItems []LineItem  `json:"items"`
}

// UnmarshalJSON decodes an order whose items column may arrive either as a
// live JSON array or as a JSON string holding an encoded array (the database
// stores items as text, and some code paths hand it over undecoded). Both
// shapes normalize through ParseLineItems.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		Items json.RawMessage `json:"items"`
		*alias
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Items) == 0 {
		o.LineItems = []LineItem{}
		return nil
	}
	var encoded string
	if err := json.Unmarshal(aux.Items, &encoded); err == nil {
		o.LineItems = ParseLineItems(encoded)
		return nil
	}
	o.LineItems = ParseLineItems(aux.Items)
	return nil
}
