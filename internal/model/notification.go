package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enum constants
const (
	NotifyQuotationCreated  = "QUOTATION_CREATED"
	NotifyQuotationAccepted = "QUOTATION_ACCEPTED"
	NotifyPaymentRegistered = "PAYMENT_REGISTERED"
	NotifyContainerStatus   = "CONTAINER_STATUS"
)

// Notification is one per-user inbox entry; the same event is also pushed
// over the websocket hub to connected clients.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"type:varchar(30);not null" json:"type"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	EntityID  string    `gorm:"type:varchar(50)" json:"entity_id"` // quotation/container id the event refers to
	Read      bool      `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
