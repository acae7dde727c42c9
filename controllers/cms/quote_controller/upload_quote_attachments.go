package quote_controller

import (
	"fmt"
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

// UploadQuoteAttachments godoc
// @Summary Upload quote attachments
// @Description Upload reference files (JPEG, PNG, PDF, SVG; max 10MB each) for a quote. Files are processed in order; a failure aborts the remaining files but keeps the ones already stored.
// @Tags CMS - Quotes
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param files formData file true "Attachment files"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/quotes/{id}/attachments [post]
func UploadQuoteAttachments(c *gin.Context) {
	idParam := c.Param("id")
	quoteID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quote ID"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(120 * time.Second)
	defer cancel()

	var quote models.Quote
	if err := config.DB.WithContext(ctx).
		Select("id, quote_number").
		First(&quote, "id = ?", quoteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quote not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to parse form data"))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one file is required"))
		return
	}

	// Validate every file up front so an invalid file rejects the batch
	// before any bytes are uploaded.
	for _, fileHeader := range files {
		contentType := fileHeader.Header.Get("Content-Type")
		if err := services.AllowedQuoteAttachment(contentType, fileHeader.Size); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
				fmt.Sprintf("%s: %s", fileHeader.Filename, err.Error())))
			return
		}
	}

	folder := fmt.Sprintf("seriprint/quotes/%s", quoteID.String())
	uploaded := make([]models.QuoteAttachment, 0, len(files))

	// Files are processed sequentially. A failure mid-batch aborts the rest
	// but keeps what already succeeded; the response reports both.
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[ERROR] Failed to open attachment %s: %v", fileHeader.Filename, err)
			break
		}

		key := services.BuildObjectKey(quoteID.String(), fileHeader.Filename)
		fileURL, err := services.GetCloudinaryService().UploadFile(ctx, file, key, folder)
		file.Close()
		if err != nil {
			log.Printf("[ERROR] Failed to upload attachment %s: %v", fileHeader.Filename, err)
			break
		}

		attachment := models.QuoteAttachment{
			QuoteID:  quoteID,
			FileName: fileHeader.Filename,
			FileURL:  fileURL,
			FileType: fileHeader.Header.Get("Content-Type"),
			FileSize: fileHeader.Size,
		}

		if err := config.DB.WithContext(ctx).Create(&attachment).Error; err != nil {
			log.Printf("[ERROR] Failed to save attachment metadata %s: %v", fileHeader.Filename, err)
			break
		}

		uploaded = append(uploaded, attachment)
	}

	if len(uploaded) == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload attachments"))
		return
	}

	message := "Attachments uploaded successfully"
	if len(uploaded) < len(files) {
		message = fmt.Sprintf("Uploaded %d of %d files; the rest failed", len(uploaded), len(files))
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, gin.H{
		"uploaded": uploaded,
		"total":    len(files),
	}))
}
