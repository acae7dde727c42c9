package quote_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// UpdateQuote godoc
// @Summary Update an existing quote
// @Description Replace a quote's details and line items. Totals are recomputed server-side.
// @Tags CMS - Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param quote body models.QuoteRequest true "Quote details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotes/{id} [put]
func UpdateQuote(c *gin.Context) {
	idParam := c.Param("id")
	quoteID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quote ID"))
		return
	}

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var quote models.Quote
	if err := config.DB.WithContext(ctx).
		First(&quote, "id = ?", quoteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quote not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Status changes go through the dedicated status endpoint; here only the
	// same status (or none) is accepted.
	if req.Status != "" && req.Status != quote.Status {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Use the status endpoint to change the quote status"))
		return
	}

	items := make([]models.QuoteItem, len(req.Items))
	for i, itemReq := range req.Items {
		items[i] = itemReq.ToItem()
		items[i].QuoteID = quoteID
	}

	totals := models.ComputeQuoteTotals(items, req.TaxAmount, req.DiscountAmount)

	// Replace items and update header in one transaction
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quoteID).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"customer_name":     req.CustomerName,
			"customer_phone":    req.CustomerPhone,
			"customer_email":    req.CustomerEmail,
			"customer_location": req.CustomerLocation,
			"valid_until":       req.ValidUntil,
			"payment_terms":     req.PaymentTerms,
			"delivery_time":     req.DeliveryTime,
			"notes":             req.Notes,
			"internal_notes":    req.InternalNotes,
			"subtotal":          totals.Subtotal,
			"tax_amount":        totals.Tax,
			"discount_amount":   totals.Discount,
			"total_amount":      totals.Total,
		}
		return tx.Model(&quote).Updates(updates).Error
	})
	if err != nil {
		log.Printf("[ERROR] Failed to update quote %s: %v", quote.QuoteNumber, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update quote: "+err.Error()))
		return
	}

	// Reload with fresh items
	if err := config.DB.WithContext(ctx).
		Preload("Items").
		Preload("Attachments").
		First(&quote, "id = ?", quoteID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload quote"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote updated successfully", quote))
}
