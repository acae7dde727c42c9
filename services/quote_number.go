package services

import (
	"fmt"

	"gorm.io/gorm"
)

// Quote numbers are sequential and human readable: COT-000001, COT-000002, …
// The sequence lives in Postgres so concurrent creations never collide.

const quoteNumberPrefix = "COT"

// FormatQuoteNumber renders a sequence value as a quote number
func FormatQuoteNumber(n int64) string {
	return fmt.Sprintf("%s-%06d", quoteNumberPrefix, n)
}

// NextQuoteNumber draws the next value from the quote_number_seq sequence.
// Call it inside the same transaction that inserts the quote.
func NextQuoteNumber(tx *gorm.DB) (string, error) {
	var n int64
	if err := tx.Raw("SELECT nextval('quote_number_seq')").Scan(&n).Error; err != nil {
		return "", fmt.Errorf("failed to generate quote number: %w", err)
	}
	return FormatQuoteNumber(n), nil
}
