package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Quote Status
// ═══════════════════════════════════════════════════════════

const (
	QuoteStatusPending   = "pendiente"
	QuoteStatusSent      = "enviada"
	QuoteStatusAccepted  = "aceptada"
	QuoteStatusRejected  = "rechazada"
	QuoteStatusConverted = "convertida"
)

// QuoteStatuses lists every valid status value.
var QuoteStatuses = []string{
	QuoteStatusPending,
	QuoteStatusSent,
	QuoteStatusAccepted,
	QuoteStatusRejected,
	QuoteStatusConverted,
}

// quoteTransitions is the allowed source → targets table. Converted is terminal.
var quoteTransitions = map[string][]string{
	QuoteStatusPending:   {QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected},
	QuoteStatusSent:      {QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusPending},
	QuoteStatusAccepted:  {QuoteStatusConverted, QuoteStatusRejected},
	QuoteStatusRejected:  {QuoteStatusPending},
	QuoteStatusConverted: {},
}

// IsValidQuoteStatus reports whether s is one of the enumerated statuses.
func IsValidQuoteStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionQuoteStatus reports whether a quote may move from one status to another.
func CanTransitionQuoteStatus(from, to string) bool {
	for _, v := range quoteTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Pricing
// ═══════════════════════════════════════════════════════════

// QuoteItemSubtotal computes (base_cost + additional_costs) × quantity.
func QuoteItemSubtotal(baseCost, additionalCosts float64, quantity int) float64 {
	return (baseCost + additionalCosts) * float64(quantity)
}

// QuoteTotals holds the aggregated amounts of a quote.
type QuoteTotals struct {
	Subtotal float64
	Tax      float64
	Discount float64
	Total    float64
}

// ComputeQuoteTotals aggregates item subtotals and applies the flat tax and
// discount amounts. Total = subtotal + tax − discount; a discount larger than
// subtotal+tax yields a negative total.
func ComputeQuoteTotals(items []QuoteItem, taxAmount, discountAmount float64) QuoteTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += QuoteItemSubtotal(item.BaseCost, item.AdditionalCosts, item.Quantity)
	}
	return QuoteTotals{
		Subtotal: subtotal,
		Tax:      taxAmount,
		Discount: discountAmount,
		Total:    subtotal + taxAmount - discountAmount,
	}
}

// ═══════════════════════════════════════════════════════════
// Main Quote Models (GORM)
// ═══════════════════════════════════════════════════════════

type Quote struct {
	ID               uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	QuoteNumber      string            `json:"quote_number" gorm:"not null;uniqueIndex"`
	CustomerID       *uuid.UUID        `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	CustomerName     string            `json:"customer_name" gorm:"not null"`
	CustomerPhone    string            `json:"customer_phone" gorm:"not null"`
	CustomerEmail    *string           `json:"customer_email,omitempty"`
	CustomerLocation *string           `json:"customer_location,omitempty"`
	Status           string            `json:"status" gorm:"not null;default:'pendiente';check:status IN ('pendiente', 'enviada', 'aceptada', 'rechazada', 'convertida');index"`
	Subtotal         float64           `json:"subtotal" gorm:"type:numeric(12,2);default:0"`
	TaxAmount        float64           `json:"tax_amount" gorm:"type:numeric(12,2);default:0"`
	DiscountAmount   float64           `json:"discount_amount" gorm:"type:numeric(12,2);default:0"`
	TotalAmount      float64           `json:"total_amount" gorm:"type:numeric(12,2);default:0"`
	ValidUntil       *time.Time        `json:"valid_until,omitempty"`
	PaymentTerms     *string           `json:"payment_terms,omitempty"`
	DeliveryTime     *string           `json:"delivery_time,omitempty"`
	Notes            *string           `json:"notes,omitempty"`
	InternalNotes    *string           `json:"internal_notes,omitempty"`
	CreatedBy        *uuid.UUID        `json:"created_by,omitempty" gorm:"type:uuid"`
	Items            []QuoteItem       `json:"items,omitempty" gorm:"foreignKey:QuoteID"`
	Attachments      []QuoteAttachment `json:"attachments,omitempty" gorm:"foreignKey:QuoteID"`
	CreatedAt        time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem is one product configuration within a quote. ProductID is nullable
// so back-office staff can quote free-text line items.
type QuoteItem struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	QuoteID           uuid.UUID  `json:"quote_id" gorm:"type:uuid;not null;index"`
	ProductID         *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid"`
	ProductName       string     `json:"product_name" gorm:"not null"`
	Quantity          int        `json:"quantity" gorm:"not null;default:1;check:quantity > 0"`
	VariantSize       *string    `json:"variant_size,omitempty"`
	VariantColor      *string    `json:"variant_color,omitempty"`
	PrintingTechnique *string    `json:"printing_technique,omitempty"`
	NumberOfColors    *int       `json:"number_of_colors,omitempty"`
	PrintAreaSize     *string    `json:"print_area_size,omitempty"`
	UnitPrice         float64    `json:"unit_price" gorm:"type:numeric(12,2);default:0"`
	BaseCost          float64    `json:"base_cost" gorm:"type:numeric(12,2);default:0"`
	AdditionalCosts   float64    `json:"additional_costs" gorm:"type:numeric(12,2);default:0"`
	Subtotal          float64    `json:"subtotal" gorm:"type:numeric(12,2);default:0"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (QuoteItem) TableName() string {
	return "quote_items"
}

// QuoteAttachment is uploaded reference material linked to a quote
type QuoteAttachment struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	QuoteID    uuid.UUID `json:"quote_id" gorm:"type:uuid;not null;index"`
	FileName   string    `json:"file_name" gorm:"not null"`
	FileURL    string    `json:"file_url" gorm:"not null"`
	FileType   string    `json:"file_type" gorm:"not null"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (qa *QuoteAttachment) BeforeCreate(tx *gorm.DB) error {
	if qa.ID == uuid.Nil {
		qa.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (QuoteAttachment) TableName() string {
	return "quote_attachments"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// QuoteItemRequest is a line item as supplied by back-office staff.
// Subtotal is never accepted from the client; it is recomputed on every write.
type QuoteItemRequest struct {
	ProductID         *uuid.UUID `json:"product_id"`
	ProductName       string     `json:"product_name" binding:"required"`
	Quantity          int        `json:"quantity" binding:"required,min=1"`
	VariantSize       *string    `json:"variant_size"`
	VariantColor      *string    `json:"variant_color"`
	PrintingTechnique *string    `json:"printing_technique"`
	NumberOfColors    *int       `json:"number_of_colors" binding:"omitempty,min=1"`
	PrintAreaSize     *string    `json:"print_area_size"`
	UnitPrice         float64    `json:"unit_price" binding:"omitempty,min=0"`
	BaseCost          float64    `json:"base_cost" binding:"omitempty,min=0"`
	AdditionalCosts   float64    `json:"additional_costs" binding:"omitempty,min=0"`
	Notes             *string    `json:"notes"`
}

// ToItem converts the request into a QuoteItem with its computed subtotal.
func (r QuoteItemRequest) ToItem() QuoteItem {
	return QuoteItem{
		ProductID:         r.ProductID,
		ProductName:       r.ProductName,
		Quantity:          r.Quantity,
		VariantSize:       r.VariantSize,
		VariantColor:      r.VariantColor,
		PrintingTechnique: r.PrintingTechnique,
		NumberOfColors:    r.NumberOfColors,
		PrintAreaSize:     r.PrintAreaSize,
		UnitPrice:         r.UnitPrice,
		BaseCost:          r.BaseCost,
		AdditionalCosts:   r.AdditionalCosts,
		Subtotal:          QuoteItemSubtotal(r.BaseCost, r.AdditionalCosts, r.Quantity),
		Notes:             r.Notes,
	}
}

// QuoteRequest creates or replaces a back-office quote
type QuoteRequest struct {
	CustomerName     string             `json:"customer_name" binding:"required"`
	CustomerPhone    string             `json:"customer_phone" binding:"required"`
	CustomerEmail    *string            `json:"customer_email" binding:"omitempty,email"`
	CustomerLocation *string            `json:"customer_location"`
	Status           string             `json:"status" binding:"omitempty,oneof=pendiente enviada aceptada rechazada convertida"`
	ValidUntil       *time.Time         `json:"valid_until"`
	PaymentTerms     *string            `json:"payment_terms"`
	DeliveryTime     *string            `json:"delivery_time"`
	TaxAmount        float64            `json:"tax_amount" binding:"omitempty,min=0"`
	DiscountAmount   float64            `json:"discount_amount" binding:"omitempty,min=0"`
	Notes            *string            `json:"notes"`
	InternalNotes    *string            `json:"internal_notes"`
	Items            []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PublicQuoteItemRequest is a line item from the public request form.
// The public form carries no pricing inputs; costing happens in the back office.
type PublicQuoteItemRequest struct {
	ProductID         uuid.UUID `json:"product_id" binding:"required"`
	ProductName       string    `json:"product_name" binding:"required"`
	Quantity          int       `json:"quantity" binding:"required,min=1"`
	VariantSize       *string   `json:"variant_size"`
	VariantColor      *string   `json:"variant_color"`
	PrintingTechnique *string   `json:"printing_technique"`
	NumberOfColors    *int      `json:"number_of_colors" binding:"omitempty,min=1"`
	PrintAreaSize     *string   `json:"print_area_size"`
	Notes             *string   `json:"notes"`
}

// PublicQuoteRequest is the storefront quote submission payload
type PublicQuoteRequest struct {
	CustomerName     string                   `json:"customer_name" binding:"required"`
	CustomerPhone    string                   `json:"customer_phone" binding:"required"`
	CustomerEmail    *string                  `json:"customer_email" binding:"omitempty,email"`
	CustomerLocation *string                  `json:"customer_location"`
	Notes            *string                  `json:"notes"`
	Items            []PublicQuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateQuoteStatusRequest reassigns the workflow status
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pendiente enviada aceptada rechazada convertida"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type QuoteStatsResponseItem struct {
	TotalQuotes     int     `json:"total_quotes"`
	PendingQuotes   int     `json:"pending_quotes"`
	SentQuotes      int     `json:"sent_quotes"`
	AcceptedQuotes  int     `json:"accepted_quotes"`
	RejectedQuotes  int     `json:"rejected_quotes"`
	ConvertedQuotes int     `json:"converted_quotes"`
	TotalQuoted     float64 `json:"total_quoted"`
	ConversionRate  float64 `json:"conversion_rate"`
}
