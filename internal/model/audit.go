package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateQuotation    = "CREATE_QUOTATION"
	ActionUpdateQuotation    = "UPDATE_QUOTATION"
	ActionDeleteQuotation    = "DELETE_QUOTATION"
	ActionChangeQuotation    = "CHANGE_QUOTATION_STATUS"
	ActionCreateContainer    = "CREATE_CONTAINER"
	ActionUpdateContainer    = "UPDATE_CONTAINER"
	ActionDeleteContainer    = "DELETE_CONTAINER"
	ActionRegisterPayment    = "REGISTER_PAYMENT"
	ActionCreateTariffRow    = "CREATE_TARIFF_BRACKET"
	ActionUpdateTariffRow    = "UPDATE_TARIFF_BRACKET"
	ActionDeleteTariffRow    = "DELETE_TARIFF_BRACKET"
	ActionCreateSurchargeRow = "CREATE_SURCHARGE_BRACKET"
	ActionDeleteSurchargeRow = "DELETE_SURCHARGE_BRACKET"
	ActionPublishNews        = "PUBLISH_NEWS"
)

// AuditLog tracks Who, What, and When for critical system changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable gracefully if automated job
	User       *User      `gorm:"foreignKey:UserID" json:"user"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`        // Reference string (uuid/code)
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
