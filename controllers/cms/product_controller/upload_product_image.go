package product_controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/wilsonAa123/seriprint-pro/cache"
	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// UploadProductImage godoc
// @Summary Upload a product image
// @Description Upload a PNG/JPEG image for a product and store its metadata
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param image formData file true "Image file (PNG or JPEG)"
// @Param alt_text formData string false "Alt text"
// @Param is_primary formData bool false "Mark as primary image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/images [post]
func UploadProductImage(c *gin.Context) {
	idParam := c.Param("id")
	productID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	// Step 1: Product must exist
	var product models.Product
	if err := config.DB.WithContext(ctx).
		Select("id, status").
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 2: Validate the file
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !services.AllowedProductImage(contentType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Only PNG and JPEG images are allowed"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read file"))
		return
	}
	defer file.Close()

	// Step 3: Upload under a collision-resistant key
	key := services.BuildObjectKey(productID.String(), fileHeader.Filename)
	folder := fmt.Sprintf("seriprint/products/%s", productID.String())

	imageURL, err := services.GetCloudinaryService().UploadFile(ctx, file, key, folder)
	if err != nil {
		log.Printf("[ERROR] Failed to upload product image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image: "+err.Error()))
		return
	}

	// Step 4: Persist metadata
	isPrimary, _ := strconv.ParseBool(c.PostForm("is_primary"))
	var altText *string
	if v := c.PostForm("alt_text"); v != "" {
		altText = &v
	}

	var displayOrder int64
	if err := config.DB.WithContext(ctx).
		Model(&models.ProductImage{}).
		Where("product_id = ?", productID).
		Count(&displayOrder).Error; err != nil {
		log.Printf("[ERROR] Failed to count product images: %v", err)
	}

	image := models.ProductImage{
		ProductID:    productID,
		ImageURL:     imageURL,
		AltText:      altText,
		IsPrimary:    isPrimary,
		DisplayOrder: int(displayOrder),
	}

	if err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isPrimary {
			// Only one primary image per product
			if err := tx.Model(&models.ProductImage{}).
				Where("product_id = ?", productID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&image).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image metadata: "+err.Error()))
		return
	}

	if product.Status == models.ProductStatusPublished {
		catalog_cache.Invalidate()
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", image))
}
