package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuoteNumber(t *testing.T) {
	assert.Equal(t, "COT-000001", FormatQuoteNumber(1))
	assert.Equal(t, "COT-000042", FormatQuoteNumber(42))
	assert.Equal(t, "COT-999999", FormatQuoteNumber(999999))
	// Past six digits the number keeps growing instead of wrapping
	assert.Equal(t, "COT-1000000", FormatQuoteNumber(1000000))
}
