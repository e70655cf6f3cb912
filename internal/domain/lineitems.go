package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LineItem is one product+quantity entry within an order. The marketplace
// stores order items as loosely-typed JSON, so unrelated fields written by
// other consumers must survive a decode/encode round trip; they are kept in
// Extra untouched.
type LineItem struct {
	ProductID int
	Quantity  int

	// Extra holds every JSON field other than productId/quantity, raw.
	Extra map[string]json.RawMessage
}

// ParseLineItems normalizes an order's items payload into a uniform slice.
// Depending on the code path that produced the order, the payload may be a
// live slice or a JSON-encoded text column, and either may be malformed.
// This function absorbs that inconsistency: it never fails, it only returns
// an empty slice.
func ParseLineItems(raw any) []LineItem {
	switch v := raw.(type) {
	case nil:
		return []LineItem{}
	case []LineItem:
		return v
	case string:
		return decodeLineItems([]byte(v))
	case []byte:
		return decodeLineItems(v)
	case json.RawMessage:
		return decodeLineItems(v)
	default:
		return []LineItem{}
	}
}

func decodeLineItems(data []byte) []LineItem {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Malformed text or a non-array payload; treat as "no items".
		return []LineItem{}
	}
	if items == nil {
		// JSON "null" decodes into a nil slice.
		return []LineItem{}
	}
	return items
}

// UnmarshalJSON decodes a line item leniently: productId and quantity are
// coerced from any numeric representation (integer, float, numeric string),
// and all other fields are preserved verbatim in Extra.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*li = LineItem{}
	for key, value := range fields {
		switch key {
		case "productId":
			li.ProductID = coerceInt(value)
		case "quantity":
			li.Quantity = coerceInt(value)
		default:
			if li.Extra == nil {
				li.Extra = make(map[string]json.RawMessage)
			}
			li.Extra[key] = value
		}
	}
	return nil
}

// MarshalJSON re-emits the item with pass-through fields included, so a
// normalized order can be serialized back without losing anything another
// consumer wrote.
func (li LineItem) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(li.Extra)+2)
	for key, value := range li.Extra {
		fields[key] = value
	}
	productID, err := json.Marshal(li.ProductID)
	if err != nil {
		return nil, err
	}
	quantity, err := json.Marshal(li.Quantity)
	if err != nil {
		return nil, err
	}
	fields["productId"] = productID
	fields["quantity"] = quantity
	return json.Marshal(fields)
}

// coerceInt extracts an integer from a raw JSON value, accepting 5, 5.0 and
// "5". Fractional values and anything non-numeric yield zero, which simply
// never matches a real product/quantity pair.
func coerceInt(raw json.RawMessage) int {
	text := strings.TrimSpace(string(raw))
	text = strings.Trim(text, `"`)
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == math.Trunc(f) {
		return int(f)
	}
	return 0
}
