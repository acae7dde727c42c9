package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a catalog category (self-referential tree)
type Category struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Slug         string     `json:"slug" gorm:"not null;uniqueIndex"`
	Description  *string    `json:"description,omitempty"`
	ParentID     *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	DisplayOrder int        `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships (GORM will handle these automatically)
	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithProducts extends Category with product count
type CategoryWithProducts struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug"`
	Description  *string                `json:"description,omitempty"`
	ParentID     *uuid.UUID             `json:"parent_id"`
	IsActive     bool                   `json:"is_active"`
	DisplayOrder int                    `json:"display_order"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Products     int                    `json:"products"`
	Children     []CategoryWithProducts `json:"children,omitempty"`
}

// CategoryRequest is used when creating a category or subcategory
type CategoryRequest struct {
	Name         string     `json:"name" binding:"required" example:"Poleras"`
	Slug         string     `json:"slug" binding:"required" example:"poleras"`
	Description  *string    `json:"description"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty" example:"null"`
	DisplayOrder int        `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Name         *string    `json:"name"`
	Slug         *string    `json:"slug"`
	Description  *string    `json:"description"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty"`
	DisplayOrder *int       `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateCategoryStatusRequest toggles soft activation
type UpdateCategoryStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
