package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

// Publication status of a product.
const (
	ProductStatusPublished = "publicado"
	ProductStatusDraft     = "borrador"
	ProductStatusArchived  = "archivado"
)

// Availability of a product.
const (
	StockStatusInStock  = "en_stock"
	StockStatusLowStock = "bajo_stock"
	StockStatusOnOrder  = "a_pedido"
	StockStatusOutStock = "sin_stock"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string          `json:"name" gorm:"not null;index"`
	SKU           string          `json:"sku" gorm:"not null;uniqueIndex"`
	Description   *string         `json:"description,omitempty"`
	Price         *float64        `json:"price,omitempty" gorm:"type:numeric(12,2);check:price >= 0"`
	InternalCost  *float64        `json:"internal_cost,omitempty" gorm:"type:numeric(12,2)"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty" gorm:"type:uuid;index:idx_products_category"`
	Category      *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Status        string          `json:"status" gorm:"not null;default:'borrador';check:status IN ('publicado', 'borrador', 'archivado');index"`
	StockStatus   string          `json:"stock_status" gorm:"not null;default:'a_pedido';check:stock_status IN ('en_stock', 'bajo_stock', 'a_pedido', 'sin_stock');index"`
	StockQuantity int             `json:"stock_quantity" gorm:"default:0"`
	MinStockAlert int             `json:"min_stock_alert" gorm:"default:0"`
	Images        []ProductImage  `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ProductImage is an uploaded image linked to a product
type ProductImage struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ImageURL     string    `json:"image_url" gorm:"not null"`
	AltText      *string   `json:"alt_text,omitempty"`
	IsPrimary    bool      `json:"is_primary" gorm:"default:false"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductImage) TableName() string {
	return "product_images"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name          string     `json:"name" binding:"required" example:"Polera Algodón Premium"`
	SKU           string     `json:"sku" binding:"required" example:"POL-001"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price" binding:"omitempty,min=0" example:"8990"`
	InternalCost  *float64   `json:"internal_cost" binding:"omitempty,min=0"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Status        string     `json:"status" binding:"omitempty,oneof=publicado borrador archivado" example:"borrador"`
	StockStatus   string     `json:"stock_status" binding:"omitempty,oneof=en_stock bajo_stock a_pedido sin_stock" example:"a_pedido"`
	StockQuantity int        `json:"stock_quantity" binding:"omitempty,min=0"`
	MinStockAlert int        `json:"min_stock_alert" binding:"omitempty,min=0"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name"`
	SKU           *string    `json:"sku"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	InternalCost  *float64   `json:"internal_cost" binding:"omitempty,min=0"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Status        *string    `json:"status" binding:"omitempty,oneof=publicado borrador archivado"`
	StockStatus   *string    `json:"stock_status" binding:"omitempty,oneof=en_stock bajo_stock a_pedido sin_stock"`
	StockQuantity *int       `json:"stock_quantity" binding:"omitempty,min=0"`
	MinStockAlert *int       `json:"min_stock_alert" binding:"omitempty,min=0"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductStatsResponseItem struct {
	TotalProducts      int     `json:"total_products"`
	PublishedProducts  int     `json:"published_products"`
	DraftProducts      int     `json:"draft_products"`
	ArchivedProducts   int     `json:"archived_products"`
	PercentagePublished float64 `json:"percentage_published"`
	AveragePrice       float64 `json:"average_price"`
	LowStockProducts   int     `json:"low_stock_products"`
	OutOfStockProducts int     `json:"out_of_stock_products"`
}
