package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteItemSubtotal(t *testing.T) {
	// (base + additional) × quantity
	assert.Equal(t, 60.0, QuoteItemSubtotal(10, 2, 5))
	assert.Equal(t, 0.0, QuoteItemSubtotal(0, 0, 100))
	assert.Equal(t, 1500.0, QuoteItemSubtotal(1500, 0, 1))
}

func TestComputeQuoteTotalsSingleItem(t *testing.T) {
	items := []QuoteItem{{BaseCost: 10, AdditionalCosts: 2, Quantity: 5}}

	totals := ComputeQuoteTotals(items, 5, 10)

	assert.Equal(t, 60.0, totals.Subtotal)
	assert.Equal(t, 55.0, totals.Total)
}

func TestComputeQuoteTotals(t *testing.T) {
	items := []QuoteItem{
		{BaseCost: 10, AdditionalCosts: 2, Quantity: 5},  // 60
		{BaseCost: 100, AdditionalCosts: 0, Quantity: 2}, // 200
	}

	totals := ComputeQuoteTotals(items, 5, 10)

	assert.Equal(t, 260.0, totals.Subtotal)
	assert.Equal(t, 5.0, totals.Tax)
	assert.Equal(t, 10.0, totals.Discount)
	assert.Equal(t, 255.0, totals.Total)
}

func TestComputeQuoteTotalsNegativeTotal(t *testing.T) {
	// A discount larger than subtotal + tax is not clamped
	items := []QuoteItem{{BaseCost: 10, AdditionalCosts: 0, Quantity: 1}}

	totals := ComputeQuoteTotals(items, 0, 50)

	assert.Equal(t, 10.0, totals.Subtotal)
	assert.Equal(t, -40.0, totals.Total)
}

func TestComputeQuoteTotalsNoItems(t *testing.T) {
	totals := ComputeQuoteTotals(nil, 0, 0)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestQuoteItemRequestToItem(t *testing.T) {
	req := QuoteItemRequest{
		ProductName:     "Polera estampada",
		Quantity:        30,
		BaseCost:        4.5,
		AdditionalCosts: 0.5,
	}

	item := req.ToItem()

	assert.Equal(t, "Polera estampada", item.ProductName)
	assert.Equal(t, 150.0, item.Subtotal)
}

func TestIsValidQuoteStatus(t *testing.T) {
	for _, s := range QuoteStatuses {
		assert.True(t, IsValidQuoteStatus(s), s)
	}
	assert.False(t, IsValidQuoteStatus("enviado"))
	assert.False(t, IsValidQuoteStatus(""))
	assert.False(t, IsValidQuoteStatus("pending"))
}

func TestCanTransitionQuoteStatus(t *testing.T) {
	allowed := []struct{ from, to string }{
		{QuoteStatusPending, QuoteStatusSent},
		{QuoteStatusPending, QuoteStatusAccepted},
		{QuoteStatusPending, QuoteStatusRejected},
		{QuoteStatusSent, QuoteStatusAccepted},
		{QuoteStatusSent, QuoteStatusRejected},
		{QuoteStatusSent, QuoteStatusPending},
		{QuoteStatusAccepted, QuoteStatusConverted},
		{QuoteStatusAccepted, QuoteStatusRejected},
		{QuoteStatusRejected, QuoteStatusPending},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransitionQuoteStatus(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to string }{
		{QuoteStatusPending, QuoteStatusConverted},
		{QuoteStatusSent, QuoteStatusConverted},
		{QuoteStatusRejected, QuoteStatusAccepted},
		{QuoteStatusRejected, QuoteStatusConverted},
		{QuoteStatusAccepted, QuoteStatusPending},
	}
	for _, tr := range denied {
		assert.False(t, CanTransitionQuoteStatus(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestConvertedIsTerminal(t *testing.T) {
	for _, to := range QuoteStatuses {
		assert.False(t, CanTransitionQuoteStatus(QuoteStatusConverted, to), to)
	}
}
