package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a quoting contact. Quotes reference customers loosely; public
// submissions only carry the contact fields, back-office staff can promote
// them into a customer record.
type Customer struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	Email        *string   `json:"email,omitempty" gorm:"index"`
	Company      *string   `json:"company,omitempty"`
	TaxID        *string   `json:"tax_id,omitempty"`
	Location     *string   `json:"location,omitempty"`
	CustomerType *string   `json:"customer_type,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerRequest creates a customer record
type CustomerRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Company      *string `json:"company"`
	TaxID        *string `json:"tax_id"`
	Location     *string `json:"location"`
	CustomerType *string `json:"customer_type"`
	Notes        *string `json:"notes"`
}

// UpdateCustomerRequest is used when staff update customer info
type UpdateCustomerRequest struct {
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Company      *string `json:"company"`
	TaxID        *string `json:"tax_id"`
	Location     *string `json:"location"`
	CustomerType *string `json:"customer_type"`
	Notes        *string `json:"notes"`
}

// CustomerWithQuotes is the list row including quoting activity
type CustomerWithQuotes struct {
	Customer
	Quotes      int     `json:"quotes"`
	TotalQuoted float64 `json:"total_quoted"`
}
