package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents a staff action log entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	StaffID      uuid.UUID      `json:"staff_id" gorm:"type:uuid;not null;index:idx_activity_staff_date,sort:desc"`
	StaffEmail   string         `json:"staff_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_product, updated_quote, deleted_category, etc.
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // product, category, quote, customer, user
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_staff_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = "success"
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// Resource types recorded by the activity logger
const (
	ResourceTypeCategory = "category"
	ResourceTypeProduct  = "product"
	ResourceTypeQuote    = "quote"
	ResourceTypeCustomer = "customer"
	ResourceTypeUser     = "user"
)

// Activity outcome
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Action Constants
// Keep these consistent - the admin dashboard filters on them.
const (
	// Product Actions
	ActionCreateProduct = "created_product"
	ActionUpdateProduct = "updated_product"
	ActionDeleteProduct = "deleted_product"
	ActionUploadImage   = "uploaded_product_image"

	// Category Actions
	ActionCreateCategory = "created_category"
	ActionUpdateCategory = "updated_category"
	ActionDeleteCategory = "deleted_category"

	// Quote Actions
	ActionCreateQuote       = "created_quote"
	ActionUpdateQuote       = "updated_quote"
	ActionDeleteQuote       = "deleted_quote"
	ActionUpdateQuoteStatus = "updated_quote_status"
	ActionUploadAttachment  = "uploaded_quote_attachment"
	ActionSendQuotePDF      = "sent_quote_pdf"

	// Customer Actions
	ActionUpdateCustomer = "updated_customer"
	ActionDeleteCustomer = "deleted_customer"

	// User Actions
	ActionUpdateUserRole = "updated_user_role"
)

// ActivityChanges represents the before/after changes
type ActivityChanges struct {
	Before map[string]interface{} `json:"before"`
	After  map[string]interface{} `json:"after"`
}

func (ac ActivityChanges) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"before": ac.Before,
		"after":  ac.After,
	})
}

func (ac *ActivityChanges) UnmarshalJSON(data []byte) error {
	var m map[string]map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	ac.Before = m["before"]
	ac.After = m["after"]
	return nil
}
