package quote_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// SubmitQuote godoc
// @Summary Submit a quote request
// @Description Public quote submission from the storefront. Line items carry no pricing; costing happens in the back office. The quote starts as 'pendiente'. Accepts plain JSON, or multipart/form-data with a 'payload' JSON field plus optional reference 'files' (JPEG, PNG, PDF, SVG; max 10MB each).
// @Tags Storefront - Quotes
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param quote body models.PublicQuoteRequest true "Quote request"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/quotes [post]
func SubmitQuote(c *gin.Context) {
	var req models.PublicQuoteRequest
	var files []*multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to parse form data"))
			return
		}
		payload := c.PostForm("payload")
		if payload == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing 'payload' field"))
			return
		}
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
			return
		}
		if err := validatePublicQuote(req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		files = form.File["files"]
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
			return
		}
	}

	// Reference files are validated before anything is persisted, so an
	// oversized or disallowed file rejects the whole submission.
	for _, fileHeader := range files {
		contentType := fileHeader.Header.Get("Content-Type")
		if err := services.AllowedQuoteAttachment(contentType, fileHeader.Size); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
				fmt.Sprintf("%s: %s", fileHeader.Filename, err.Error())))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The referenced products must exist and be published
	for _, item := range req.Items {
		var count int64
		if err := config.DB.WithContext(ctx).
			Model(&models.Product{}).
			Where("id = ? AND status = ?", item.ProductID, models.ProductStatusPublished).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "El producto '"+item.ProductName+"' no está disponible"))
			return
		}
	}

	items := make([]models.QuoteItem, len(req.Items))
	for i, itemReq := range req.Items {
		productID := itemReq.ProductID
		items[i] = models.QuoteItem{
			ProductID:         &productID,
			ProductName:       itemReq.ProductName,
			Quantity:          itemReq.Quantity,
			VariantSize:       itemReq.VariantSize,
			VariantColor:      itemReq.VariantColor,
			PrintingTechnique: itemReq.PrintingTechnique,
			NumberOfColors:    itemReq.NumberOfColors,
			PrintAreaSize:     itemReq.PrintAreaSize,
			Notes:             itemReq.Notes,
		}
	}

	quote := models.Quote{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		CustomerLocation: req.CustomerLocation,
		Status:           models.QuoteStatusPending,
		Notes:            req.Notes,
	}

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
		log.Printf("[ERROR] Failed to submit quote: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "No pudimos registrar tu cotización, intenta nuevamente"))
		return
	}

	quote.Items = items
	log.Printf("✅ Public quote submitted: %s (%s)", quote.QuoteNumber, req.CustomerName)

	// Reference files are stored after the quote exists. A failure mid-batch
	// aborts the remaining files; the quote itself is already registered.
	attached := storeReferenceFiles(quote.ID, files)

	// Confirmation email is best effort; the quote is already registered
	if req.CustomerEmail != nil && *req.CustomerEmail != "" {
		if err := services.GetResendClient().SendQuoteNotification(services.QuoteNotificationData{
			CustomerEmail: *req.CustomerEmail,
			CustomerName:  req.CustomerName,
			QuoteNumber:   quote.QuoteNumber,
			Status:        models.QuoteStatusPending,
		}); err != nil {
			log.Printf("⚠️  Failed to send quote confirmation for %s: %v", quote.QuoteNumber, err)
		}
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Cotización recibida correctamente", gin.H{
		"quote_number": quote.QuoteNumber,
		"status":       quote.Status,
		"attachments":  attached,
	}))
}

// validatePublicQuote applies the binding rules to a payload decoded from a
// multipart field, where gin's binding tags are not evaluated.
func validatePublicQuote(req models.PublicQuoteRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("customer_name is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("customer_phone is required")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return fmt.Errorf("items[%d].product_name is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d].quantity must be at least 1", i)
		}
	}
	return nil
}

// storeReferenceFiles uploads the already-validated files and records their
// metadata, stopping at the first failure.
func storeReferenceFiles(quoteID uuid.UUID, files []*multipart.FileHeader) int {
	if len(files) == 0 {
		return 0
	}

	ctx, cancel := config.WithCustomTimeout(120 * time.Second)
	defer cancel()

	folder := fmt.Sprintf("seriprint/quotes/%s", quoteID.String())
	stored := 0
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[ERROR] Failed to open reference file %s: %v", fileHeader.Filename, err)
			break
		}

		key := services.BuildObjectKey(quoteID.String(), fileHeader.Filename)
		fileURL, err := services.GetCloudinaryService().UploadFile(ctx, file, key, folder)
		file.Close()
		if err != nil {
			log.Printf("[ERROR] Failed to upload reference file %s: %v", fileHeader.Filename, err)
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
			log.Printf("[ERROR] Failed to save reference file metadata %s: %v", fileHeader.Filename, err)
			break
		}
		stored++
	}
	return stored
}
