package storefront_routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/wilsonAa123/seriprint-pro/controllers/storefront/category_controller"
	store_contact "github.com/wilsonAa123/seriprint-pro/controllers/storefront/contact_controller"
	store_product "github.com/wilsonAa123/seriprint-pro/controllers/storefront/product_controller"
	store_quote "github.com/wilsonAa123/seriprint-pro/controllers/storefront/quote_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)

	// Catalog routes
	catalog := router.Group("/catalog")
	{
		catalog.GET("", store_product.GetCatalog)         // List with filters
		catalog.GET("/:id", store_product.GetProductByID) // Single published product
	}

	// Category routes
	router.GET("/categories", store_category.GetCategories) // Active category tree

	// Quote submission
	router.POST("/quotes", store_quote.SubmitQuote)

	// Contact form
	router.POST("/contact", store_contact.SubmitContact)
}
