package quote_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// DownloadQuotePDF godoc
// @Summary Download quote PDF
// @Description Generate and download a PDF document for the quote
// @Tags CMS - Quotes
// @Produce octet-stream
// @Param id path string true "Quote ID (UUID)"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid quote ID"
// @Failure 404 {object} models.ApiResponse "Quote not found"
// @Router /api/v1/admin/quotes/{id}/pdf [get]
func DownloadQuotePDF(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[quote.download-pdf] request for quote: %s", quoteID)

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
			log.Printf("[quote.download-pdf] quote not found: %s", quoteID)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quote not found"))
			return
		}
		log.Printf("[quote.download-pdf] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var items []models.QuoteItem
	if err := config.DB.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("[quote.download-pdf] failed to fetch quote items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Generate PDF in memory
	pdfBuffer := services.GenerateQuotePDF(&quote, items)

	// Set response headers for file download
	filename := fmt.Sprintf("cotizacion-%s.pdf", quote.QuoteNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[quote.download-pdf] PDF downloaded for quote %s", quote.QuoteNumber)
}
