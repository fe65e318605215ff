package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContainerStatus enum constants
const (
	ContainerLoading   = "LOADING"
	ContainerInTransit = "IN_TRANSIT"
	ContainerInCustoms = "IN_CUSTOMS"
	ContainerDelivered = "DELIVERED"
)

// Container represents one consolidation container on the route
type Container struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code          string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"code"` // e.g. booking or container number
	Status        string          `gorm:"type:varchar(20);not null;default:'LOADING';index" json:"status"`
	CapacityCBM   decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"capacity_cbm"`
	DepartureDate *time.Time      `gorm:"type:date" json:"departure_date"`
	ArrivalDate   *time.Time      `gorm:"type:date" json:"arrival_date"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
