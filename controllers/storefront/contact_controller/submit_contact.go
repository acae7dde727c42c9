package contact_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// ContactRequest is the storefront contact-form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Description Relays a contact-form message from the storefront to the business inbox
// @Tags Storefront - Contact
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Contact message"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/contact [post]
func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if err := services.GetResendClient().SendContactMessage(services.ContactMessageData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}); err != nil {
		log.Printf("[ERROR] Failed to relay contact message from %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "No pudimos enviar tu mensaje, intenta nuevamente"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Mensaje enviado correctamente", nil))
}
