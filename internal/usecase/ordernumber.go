package usecase

import (
	"fmt"
	"strings"
)

// orderNumberPrefix brands every order number issued by the store.
const orderNumberPrefix = "MGV"

// orderCounterName is the sequence backing order number allocation.
const orderCounterName = "orders"

// FormatOrderNumber renders a sequence value as a customer-facing order
// number: the brand prefix followed by nine zero-padded digits. Distinct
// sequence values always yield distinct numbers.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("%s%09d", orderNumberPrefix, seq)
}

// NormalizeOrderNumber prepares user-supplied tracking input for lookup.
// Stored numbers are upper case, so lookups are case-insensitive.
func NormalizeOrderNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}
