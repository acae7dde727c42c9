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

// UpdateQuoteStatus godoc
// @Summary Update quote status
// @Description Move a quote through its workflow. Invalid transitions are rejected. When the quote carries a customer email, a status notification is sent; email failure does not roll back the change.
// @Tags CMS - Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param status body models.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/quotes/{id}/status [patch]
func UpdateQuoteStatus(c *gin.Context) {
	idParam := c.Param("id")
	quoteID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quote ID"))
		return
	}

	var req models.UpdateQuoteStatusRequest
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

	if req.Status == quote.Status {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote already in this status", quote))
		return
	}

	if !models.CanTransitionQuoteStatus(quote.Status, req.Status) {
		log.Printf("[quote.status] rejected transition %s → %s for %s", quote.Status, req.Status, quote.QuoteNumber)
		c.JSON(http.StatusConflict, models.ErrorResponse(c,
			fmt.Sprintf("No se puede cambiar el estado de '%s' a '%s'", quote.Status, req.Status)))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&quote).
		Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update quote status"))
		return
	}
	quote.Status = req.Status

	log.Printf("✅ Quote %s status: %s", quote.QuoteNumber, req.Status)

	// Notify the customer when we have an email. The status change already
	// committed; a failed send only softens the confirmation message.
	emailSent := false
	if quote.CustomerEmail != nil && *quote.CustomerEmail != "" {
		err := services.GetResendClient().SendQuoteNotification(services.QuoteNotificationData{
			CustomerEmail: *quote.CustomerEmail,
			CustomerName:  quote.CustomerName,
			QuoteNumber:   quote.QuoteNumber,
			Status:        quote.Status,
		})
		if err != nil {
			log.Printf("⚠️  Failed to send status notification for %s: %v", quote.QuoteNumber, err)
		} else {
			emailSent = true
		}
	}

	message := "Estado actualizado correctamente"
	if quote.CustomerEmail != nil && *quote.CustomerEmail != "" {
		if emailSent {
			message = "Estado actualizado y notificación enviada al cliente"
		} else {
			message = "Estado actualizado (la notificación por email no pudo enviarse)"
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"quote":      quote,
		"email_sent": emailSent,
	}))
}
