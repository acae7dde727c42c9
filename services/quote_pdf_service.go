package services

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/wilsonAa123/seriprint-pro/models"
)

// GenerateQuotePDF renders a printable quote document in memory
func GenerateQuotePDF(quote *models.Quote, items []models.QuoteItem) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("COTIZACIÓN", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Company Info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("SERIPRINT PRO", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("cotizaciones@seriprint.cl", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Customer + quote details
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("CLIENTE", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("DETALLE", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(quote.CustomerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Cotización #%s", quote.QuoteNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(quote.CustomerPhone, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Fecha: %s", quote.CreatedAt.Format("02-01-2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	if quote.ValidUntil != nil {
		m.Row(5, func() {
			m.Col(6, func() {})
			m.Col(6, func() {
				m.Text(fmt.Sprintf("Válida hasta: %s", quote.ValidUntil.Format("02-01-2006")), props.Text{
					Size:  9,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Items table header
	m.Row(7, func() {
		m.Col(5, func() {
			m.Text("Producto", props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text("Técnica", props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
		})
		m.Col(1, func() {
			m.Text("Cant.", props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(3, func() {
			m.Text("Subtotal", props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for _, item := range items {
		technique := ""
		if item.PrintingTechnique != nil {
			technique = *item.PrintingTechnique
		}
		m.Row(6, func() {
			m.Col(5, func() {
				m.Text(item.ProductName, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(technique, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(1, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Subtotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	// Totals
	totalRow := func(label string, amount float64, bold bool) {
		style := consts.Normal
		if bold {
			style = consts.Bold
		}
		m.Row(6, func() {
			m.Col(9, func() {
				m.Text(label, props.Text{Size: 9, Style: style, Color: mediumGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", amount), props.Text{Size: 10, Style: style, Color: darkGray, Align: consts.Right})
			})
		})
	}

	totalRow("Subtotal", quote.Subtotal, false)
	totalRow("Impuesto", quote.TaxAmount, false)
	if quote.DiscountAmount > 0 {
		totalRow("Descuento", -quote.DiscountAmount, false)
	}
	totalRow("TOTAL", quote.TotalAmount, true)

	// Terms
	if quote.PaymentTerms != nil || quote.DeliveryTime != nil {
		m.Row(8, func() {})
		if quote.PaymentTerms != nil {
			m.Row(5, func() {
				m.Col(12, func() {
					m.Text(fmt.Sprintf("Condiciones de pago: %s", *quote.PaymentTerms), props.Text{Size: 9, Color: mediumGray})
				})
			})
		}
		if quote.DeliveryTime != nil {
			m.Row(5, func() {
				m.Col(12, func() {
					m.Text(fmt.Sprintf("Plazo de entrega: %s", *quote.DeliveryTime), props.Text{Size: 9, Color: mediumGray})
				})
			})
		}
	}

	// Footer
	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generado el %s", time.Now().Format("02-01-2006 15:04")), props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[quote-pdf] failed to render PDF for %s: %v", quote.QuoteNumber, err)
		return &bytes.Buffer{}
	}
	out := buf
	return &out
}
