package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/wilsonAa123/seriprint-pro/cache"
	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID together with its images
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	idParam := c.Param("id")
	productID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Find product and collect its images
	var product models.Product
	if err := config.DB.WithContext(ctx).
		Preload("Images").
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 2: Delete product and image rows in one transaction
	if err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product: "+err.Error()))
		return
	}

	// Step 3: Remove uploaded files in background (don't block response)
	if len(product.Images) > 0 && services.GetCloudinaryService() != nil {
		images := product.Images
		go func() {
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			for _, img := range images {
				publicID := services.ExtractPublicIDFromURL(img.ImageURL)
				if publicID == "" {
					continue
				}
				if err := services.GetCloudinaryService().DeleteFile(deleteCtx, publicID); err != nil {
					log.Printf("⚠️  Failed to delete product image %s: %v", img.ID, err)
				}
			}
		}()
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]string{
		"id": productID.String(),
	}))
}
