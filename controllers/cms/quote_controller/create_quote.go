package quote_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/middleware"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"

	"github.com/google/uuid"
)

// CreateQuote godoc
// @Summary Create a new quote
// @Description Create a quote with its line items in a single transaction. Totals are computed server-side.
// @Tags CMS - Quotes
// @Accept json
// @Produce json
// @Param quote body models.QuoteRequest true "Quote details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/quotes [post]
func CreateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Status == "" {
		req.Status = models.QuoteStatusPending
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Build items with computed subtotals
	items := make([]models.QuoteItem, len(req.Items))
	for i, itemReq := range req.Items {
		items[i] = itemReq.ToItem()
	}

	// Totals are always recomputed from the items; client amounts are ignored
	totals := models.ComputeQuoteTotals(items, req.TaxAmount, req.DiscountAmount)

	var createdBy *uuid.UUID
	if staffID, ok := middleware.GetStaffIDFromContext(c); ok {
		if id, err := uuid.Parse(staffID); err == nil {
			createdBy = &id
		}
	}

	quote := models.Quote{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		CustomerLocation: req.CustomerLocation,
		Status:           req.Status,
		Subtotal:         totals.Subtotal,
		TaxAmount:        totals.Tax,
		DiscountAmount:   totals.Discount,
		TotalAmount:      totals.Total,
		ValidUntil:       req.ValidUntil,
		PaymentTerms:     req.PaymentTerms,
		DeliveryTime:     req.DeliveryTime,
		Notes:            req.Notes,
		InternalNotes:    req.InternalNotes,
		CreatedBy:        createdBy,
	}

	// Quote number, quote row and item rows commit or roll back together
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quoteNumber, err := services.NextQuoteNumber(tx)
		if err != nil {
			return err
		}
		quote.QuoteNumber = quoteNumber

		if err := tx.Create(&quote).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].QuoteID = quote.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		log.Printf("[ERROR] Failed to create quote: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create quote: "+err.Error()))
		return
	}

	quote.Items = items
	log.Printf("✅ Quote created: %s (%d items, total %.2f)", quote.QuoteNumber, len(items), quote.TotalAmount)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Quote created successfully", quote))
}
