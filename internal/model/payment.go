package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod enum constants
const (
	PaymentCash     = "CASH"
	PaymentTransfer = "TRANSFER"
	PaymentCard     = "CARD"
)

// Payment is one payment registered against a quotation. The outstanding
// balance is the quotation grand total minus the sum of its payments.
type Payment struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuotationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Quotation   *Quotation      `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	Method      string          `gorm:"type:varchar(20);not null" json:"method"` // CASH, TRANSFER, CARD
	Reference   string          `gorm:"type:varchar(100)" json:"reference"`      // bank operation number
	PaidAt      time.Time       `gorm:"not null" json:"paid_at"`
	RegisteredBy *uuid.UUID     `gorm:"type:uuid" json:"registered_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
