package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilsonAa123/seriprint-pro/models"
)

func TestQuoteEmailContentPerStatus(t *testing.T) {
	cases := []struct {
		status  string
		subject string
	}{
		{models.QuoteStatusAccepted, "✅ Cotización COT-000007 Aceptada"},
		{models.QuoteStatusRejected, "❌ Cotización COT-000007 - Actualización"},
		{models.QuoteStatusSent, "🚚 Tu pedido COT-000007 está en camino"},
		{models.QuoteStatusConverted, "✨ Pedido COT-000007 Completado"},
		{models.QuoteStatusPending, "⏳ Cotización COT-000007 Recibida"},
	}

	for _, tc := range cases {
		content := QuoteEmailContent(tc.status, "María", "COT-000007")
		assert.Equal(t, tc.subject, content.Subject, tc.status)
		assert.Contains(t, content.HTML, "María", tc.status)
		assert.Contains(t, content.HTML, "COT-000007", tc.status)
	}
}

func TestQuoteEmailContentUnknownStatusFallsBack(t *testing.T) {
	content := QuoteEmailContent("algo_raro", "María", "COT-000001")
	assert.Equal(t, "⏳ Cotización COT-000001 Recibida", content.Subject)
}

func TestSendQuoteNotificationRequiresEmail(t *testing.T) {
	client := &ResendClient{}
	err := client.SendQuoteNotification(QuoteNotificationData{
		CustomerName: "María",
		QuoteNumber:  "COT-000001",
		Status:       models.QuoteStatusAccepted,
	})
	assert.Error(t, err)
}
