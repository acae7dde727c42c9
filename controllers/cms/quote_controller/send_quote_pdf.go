package quote_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// SendQuotePDF godoc
// @Summary Email the quote PDF to the customer
// @Description Generate the quote PDF and send it to the customer's email with an HTML summary
// @Tags CMS - Quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotes/{id}/send-pdf [post]
func SendQuotePDF(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[quote.send-pdf] request for quote: %s", quoteID)

	if _, err := uuid.Parse(quoteID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quote ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var quote models.Quote
	if err := config.DB.WithContext(ctx).
		Where("id = ?", quoteID).
		First(&quote).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quote not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if quote.CustomerEmail == nil || *quote.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quote has no customer email"))
		return
	}

	var items []models.QuoteItem
	if err := config.DB.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("[quote.send-pdf] failed to fetch quote items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBuffer := services.GenerateQuotePDF(&quote, items)

	if err := services.GetResendClient().SendQuotePDFEmail(services.QuotePDFEmailData{
		CustomerName:  quote.CustomerName,
		CustomerEmail: *quote.CustomerEmail,
		Quote:         &quote,
		Items:         items,
		PDFContent:    pdfBuffer.Bytes(),
	}); err != nil {
		log.Printf("[quote.send-pdf] failed to send PDF email: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send quote email"))
		return
	}

	log.Printf("✅ Quote PDF sent: %s → %s", quote.QuoteNumber, *quote.CustomerEmail)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote PDF sent successfully", gin.H{
		"quote_number": quote.QuoteNumber,
		"sent_to":      *quote.CustomerEmail,
	}))
}
