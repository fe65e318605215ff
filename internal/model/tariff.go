package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TariffBracket is one row of the base-tariff lookup table: the service fee
// for shipments of a client category whose total CBM falls in [min, max).
type TariffBracket struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientCategory string          `gorm:"type:varchar(20);not null;index" json:"client_category"` // NEW, RETURNING, PARTNER
	MinCBM         decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"min_cbm"`             // inclusive
	MaxCBM         decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"max_cbm"`             // exclusive
	TariffMode     string          `gorm:"type:varchar(20);not null" json:"tariff_mode"`           // FLAT or PER_VOLUME
	TariffValue    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tariff_value"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ItemSurchargeBracket is one row of the item-overage table keyed by CBM
// range. Shipments outside every bracket pay no item surcharge.
type ItemSurchargeBracket struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MinCBM        decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"min_cbm"` // inclusive
	MaxCBM        decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"max_cbm"` // exclusive
	BaseAllowance int             `gorm:"not null" json:"base_allowance"`             // items covered by the base tariff
	ExtraAllowed  int             `gorm:"not null" json:"extra_allowed"`              // billable items beyond the allowance
	PerItemFee    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"per_item_fee"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
