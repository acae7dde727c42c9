package services

import (
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/wilsonAa123/seriprint-pro/models"
)

// QuotePDFEmailData holds data for a quote PDF delivery email
type QuotePDFEmailData struct {
	CustomerName  string
	CustomerEmail string
	Quote         *models.Quote
	Items         []models.QuoteItem
	PDFContent    []byte
}

// SendQuotePDFEmail sends the quote with HTML summary + PDF attachment via Resend
func (r *ResendClient) SendQuotePDFEmail(data QuotePDFEmailData) error {
	if data.CustomerEmail == "" {
		return fmt.Errorf("customer email is required")
	}

	// Build line item rows
	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Subtotal))
	}

	// Discount row only when a discount applies
	discountRow := ""
	if data.Quote.DiscountAmount > 0 {
		discountRow = fmt.Sprintf(`
    <tr>
      <td colspan="2" style="padding: 6px 0; font-size: 14px; color: #79776d;">Descuento</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">-$%.2f</td>
    </tr>
    `, data.Quote.DiscountAmount)
	}

	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Cotización %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 700px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 26px; font-weight: bold; color: #262622;">COTIZACIÓN %s</h1>
      </td>
    </tr>
    <tr>
      <td style="padding-top: 16px;">
        <p style="font-size: 15px; color: #262622;">Hola %s,</p>
        <p style="font-size: 14px; color: #79776d;">Adjuntamos tu cotización en PDF. Aquí va un resumen:</p>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <th style="text-align: left; font-size: 12px; color: #79776d; padding-bottom: 6px;">Producto</th>
            <th style="text-align: right; font-size: 12px; color: #79776d; padding-bottom: 6px;">Cantidad</th>
            <th style="text-align: right; font-size: 12px; color: #79776d; padding-bottom: 6px;">Subtotal</th>
          </tr>
          %s
          <tr>
            <td colspan="2" style="padding: 6px 0; font-size: 14px; color: #79776d; border-top: 1px solid #e5e5e0;">Subtotal</td>
            <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622; border-top: 1px solid #e5e5e0;">$%.2f</td>
          </tr>
          <tr>
            <td colspan="2" style="padding: 6px 0; font-size: 14px; color: #79776d;">Impuesto</td>
            <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">$%.2f</td>
          </tr>
          %s
          <tr>
            <td colspan="2" style="padding: 8px 0; font-size: 15px; font-weight: bold; color: #262622;">TOTAL</td>
            <td style="padding: 8px 0; font-size: 15px; text-align: right; font-weight: bold; color: #262622;">$%.2f</td>
          </tr>
        </table>
        <p style="font-size: 13px; color: #79776d; margin-top: 24px;">Saludos cordiales,<br>El Equipo</p>
      </td>
    </tr>
  </table>
</body>
</html>`,
		data.Quote.QuoteNumber,
		data.Quote.QuoteNumber,
		data.CustomerName,
		itemsRows.String(),
		data.Quote.Subtotal,
		data.Quote.TaxAmount,
		discountRow,
		data.Quote.TotalAmount,
	))

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": fmt.Sprintf("📄 Cotización %s", data.Quote.QuoteNumber),
		"html":    html.String(),
		"attachments": []map[string]interface{}{
			{
				"filename": fmt.Sprintf("cotizacion-%s.pdf", data.Quote.QuoteNumber),
				"content":  base64.StdEncoding.EncodeToString(data.PDFContent),
			},
		},
	}

	if err := r.post(payload); err != nil {
		return err
	}

	log.Printf("[resend] quote PDF emailed to %s (quote=%s)", data.CustomerEmail, data.Quote.QuoteNumber)
	return nil
}
