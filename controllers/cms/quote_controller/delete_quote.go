package quote_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// DeleteQuote godoc
// @Summary Delete a quote
// @Description Delete a quote by ID together with its items and attachments
// @Tags CMS - Quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotes/{id} [delete]
func DeleteQuote(c *gin.Context) {
	idParam := c.Param("id")
	quoteID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quote ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var quote models.Quote
	if err := config.DB.WithContext(ctx).
		Preload("Attachments").
		First(&quote, "id = ?", quoteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quote not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Quote, items and attachment rows go together
	if err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quoteID).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quote_id = ?", quoteID).Delete(&models.QuoteAttachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quote).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete quote: "+err.Error()))
		return
	}

	// Remove uploaded files in background (don't block response)
	if len(quote.Attachments) > 0 && services.GetCloudinaryService() != nil {
		attachments := quote.Attachments
		go func() {
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			for _, att := range attachments {
				publicID := services.ExtractPublicIDFromURL(att.FileURL)
				if publicID == "" {
					continue
				}
				if err := services.GetCloudinaryService().DeleteFile(deleteCtx, publicID); err != nil {
					log.Printf("⚠️  Failed to delete quote attachment %s: %v", att.ID, err)
				}
			}
		}()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote deleted successfully", map[string]string{
		"id":           quoteID.String(),
		"quote_number": quote.QuoteNumber,
	}))
}
