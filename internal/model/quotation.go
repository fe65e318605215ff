package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationStatus enum constants
const (
	QuotationDraft    = "DRAFT"
	QuotationSent     = "SENT"
	QuotationAccepted = "ACCEPTED"
	QuotationRejected = "REJECTED"
)

// Quotation is one import-cost calculation for a client shipment: the raw
// input (suppliers and products), the resolved tariff and the engine's
// output totals. Lines carry the per-product breakdown. Editing a quotation
// re-runs the whole calculation.
type Quotation struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuotationNo    string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"quotation_no"`
	ClientName     string     `gorm:"type:varchar(255);not null" json:"client_name"`
	ClientCategory string     `gorm:"type:varchar(20);not null" json:"client_category"` // NEW, RETURNING, PARTNER
	Status         string     `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	ContainerID    *uuid.UUID `gorm:"type:uuid;index" json:"container_id"` // container the shipment travels in, once assigned
	Container      *Container `gorm:"foreignKey:ContainerID" json:"container,omitempty"`

	TotalCBM     decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"total_cbm"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(18,6);not null;default:1" json:"exchange_rate"`
	Discount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	TariffMode   string          `gorm:"type:varchar(20);not null" json:"tariff_mode"`
	TariffValue  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tariff_value"`

	// Engine output (shipment totals)
	TotalFOB     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_fob"`
	TotalDuties  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_duties"`
	Freight      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"freight"`
	Insurance    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"insurance"`
	Destination  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"destination"`
	ExtraCharges decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"extra_charges"`
	GrandTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"grand_total"`

	Suppliers []QuotationSupplier `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"suppliers,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	Creator   *User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// QuotationSupplier is one consignor within a quotation's shipment
type QuotationSupplier struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuotationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Position    int             `gorm:"not null" json:"position"` // order within the shipment
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Volume      decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"volume"` // CBM
	Weight      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"weight"` // kg
	Boxes       int             `gorm:"not null;default:0" json:"boxes"`

	Products []QuotationProduct `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuotationProduct is one product line: the submitted input columns plus the
// computed breakdown columns the engine fills on every (re)calculation.
type QuotationProduct struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Position   int       `gorm:"not null" json:"position"` // order within the supplier

	// Input
	Name           string           `gorm:"type:varchar(255);not null" json:"name"`
	UnitPrice      decimal.Decimal  `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	UnitValuation  decimal.Decimal  `gorm:"type:decimal(18,4);not null" json:"unit_valuation"`
	Quantity       int64            `gorm:"not null" json:"quantity"`
	AdValoremRate  decimal.Decimal  `gorm:"type:decimal(10,4);not null;default:0" json:"ad_valorem_rate"`
	AntidumpingFee decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"antidumping_fee"`
	PerceptionRate *decimal.Decimal `gorm:"type:decimal(10,4)" json:"perception_rate"` // NULL = default rate

	// Computed breakdown
	FOB             decimal.Decimal `gorm:"column:fob;type:decimal(18,6);not null;default:0" json:"fob"`
	FOBValor        decimal.Decimal `gorm:"column:fob_valor;type:decimal(18,6);not null;default:0" json:"fob_valor"`
	Freight         decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"freight"`
	Insurance       decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"insurance"`
	CFR             decimal.Decimal `gorm:"column:cfr;type:decimal(18,6);not null;default:0" json:"cfr"`
	CFRValor        decimal.Decimal `gorm:"column:cfr_valor;type:decimal(18,6);not null;default:0" json:"cfr_valor"`
	CIF             decimal.Decimal `gorm:"column:cif;type:decimal(18,6);not null;default:0" json:"cif"`
	CIFValor        decimal.Decimal `gorm:"column:cif_valor;type:decimal(18,6);not null;default:0" json:"cif_valor"`
	AdValorem       decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"ad_valorem"`
	GeneralSalesTax decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"general_sales_tax"`
	MunicipalTax    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"municipal_tax"`
	Perception      decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"perception"`
	Antidumping     decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"antidumping"`
	TotalDuties     decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"total_duties"`
	Destination     decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"destination"`
	TotalCost       decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"total_cost"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"unit_cost"`
	UnitCostLocal   decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"unit_cost_local"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
