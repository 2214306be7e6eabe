package utils

import (
	"fmt"
	"math/rand"
)

// GenerateInvoiceNumber produces an invoice number of the form INV-482113956.
// Uniqueness is enforced by the datastore, not here.
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%09d", rand.Intn(1_000_000_000))
}
