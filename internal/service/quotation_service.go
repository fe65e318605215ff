package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/calculator"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type QuotationProductRequest struct {
	Name           string `json:"name" binding:"required"`
	UnitPrice      string `json:"unit_price" binding:"required"`     // Decimal string
	UnitValuation  string `json:"unit_valuation"`                    // Decimal string, defaults to unit_price
	Quantity       int64  `json:"quantity" binding:"required,min=1"`
	AdValoremRate  string `json:"ad_valorem_rate"`                   // fraction, e.g. "0.06"
	AntidumpingFee string `json:"antidumping_fee"`                   // flat per-unit duty
	PerceptionRate string `json:"perception_rate"`                   // fraction; empty = default rate
}

type QuotationSupplierRequest struct {
	Name     string                    `json:"name" binding:"required"`
	Volume   string                    `json:"volume" binding:"required"` // CBM
	Weight   string                    `json:"weight"`
	Boxes    int                       `json:"boxes"`
	Products []QuotationProductRequest `json:"products" binding:"required,min=1,dive"`
}

type CreateQuotationRequest struct {
	ClientName     string                     `json:"client_name" binding:"required"`
	ClientCategory string                     `json:"client_category" binding:"required,oneof=NEW RETURNING PARTNER"`
	ExchangeRate   string                     `json:"exchange_rate" binding:"required"`
	Discount       string                     `json:"discount"`
	Suppliers      []QuotationSupplierRequest `json:"suppliers" binding:"required,min=1,dive"`
}

// UpdateQuotationRequest resubmits the full shipment; the engine is re-run
// end-to-end (there is no partial recalculation).
type UpdateQuotationRequest = CreateQuotationRequest

type QuotationFilter struct {
	Status      string
	ClientName  string
	QuotationNo string
	Page        int
	Limit       int
}

type QuotationLineResponse struct {
	Supplier        string `json:"supplier"`
	Name            string `json:"name"`
	Quantity        int64  `json:"quantity"`
	FOB             string `json:"fob"`
	FOBValor        string `json:"fob_valor"`
	Freight         string `json:"freight"`
	Insurance       string `json:"insurance"`
	CFR             string `json:"cfr"`
	CFRValor        string `json:"cfr_valor"`
	CIF             string `json:"cif"`
	CIFValor        string `json:"cif_valor"`
	AdValorem       string `json:"ad_valorem"`
	GeneralSalesTax string `json:"general_sales_tax"`
	MunicipalTax    string `json:"municipal_tax"`
	Perception      string `json:"perception"`
	Antidumping     string `json:"antidumping"`
	TotalDuties     string `json:"total_duties"`
	Destination     string `json:"destination"`
	TotalCost       string `json:"total_cost"`
	UnitCost        string `json:"unit_cost"`
	UnitCostLocal   string `json:"unit_cost_local"`
}

type QuotationResponse struct {
	ID             string  `json:"id"`
	QuotationNo    string  `json:"quotation_no"`
	ClientName     string  `json:"client_name"`
	ClientCategory string  `json:"client_category"`
	Status         string  `json:"status"`
	ContainerID    *string `json:"container_id"`
	TotalCBM       string  `json:"total_cbm"`
	ExchangeRate   string  `json:"exchange_rate"`
	Discount       string  `json:"discount"`
	TariffMode     string  `json:"tariff_mode"`
	TariffValue    string  `json:"tariff_value"`

	TotalFOB     string `json:"total_fob"`
	TotalDuties  string `json:"total_duties"`
	Freight      string `json:"freight"`
	Insurance    string `json:"insurance"`
	Destination  string `json:"destination"`
	ExtraCharges string `json:"extra_charges"`
	GrandTotal   string `json:"grand_total"`

	Lines     []QuotationLineResponse `json:"lines,omitempty"`
	CreatedAt string                  `json:"created_at"`
	UpdatedAt string                  `json:"updated_at"`
}

// --- Interface ---

type QuotationService interface {
	CreateQuotation(ctx context.Context, userID string, req CreateQuotationRequest) (QuotationResponse, error)
	GetQuotation(ctx context.Context, id string) (QuotationResponse, error)
	ListQuotations(ctx context.Context, filter QuotationFilter) ([]QuotationResponse, int64, error)
	UpdateQuotation(ctx context.Context, id string, userID string, req UpdateQuotationRequest) (QuotationResponse, error)
	DeleteQuotation(ctx context.Context, id string, userID string) error
	ChangeStatus(ctx context.Context, id string, userID string, status string) (QuotationResponse, error)
	AssignContainer(ctx context.Context, id string, containerID string) (QuotationResponse, error)
}

type quotationService struct {
	quotationRepo repository.QuotationRepository
	containerRepo repository.ContainerRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
	tariffService TariffService
	notifier      *NotificationService
}

func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	containerRepo repository.ContainerRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	tariffService TariffService,
	notifier *NotificationService,
) QuotationService {
	return &quotationService{
		quotationRepo: quotationRepo,
		containerRepo: containerRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		tariffService: tariffService,
		notifier:      notifier,
	}
}

// --- Implementation ---

func (s *quotationService) CreateQuotation(ctx context.Context, userID string, req CreateQuotationRequest) (QuotationResponse, error) {
	shipment, err := s.assembleShipment(ctx, req)
	if err != nil {
		return QuotationResponse{}, err
	}

	result, err := s.runEngine(ctx, shipment)
	if err != nil {
		return QuotationResponse{}, err
	}

	quotationNo, err := s.generateQuotationNo(ctx)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("failed to generate quotation number: %w", err)
	}

	quotation := buildQuotationModel(req, *shipment, result)
	quotation.QuotationNo = quotationNo
	quotation.Status = model.QuotationDraft
	if parsed, err := uuid.Parse(userID); err == nil {
		quotation.CreatedBy = &parsed
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.quotationRepo.Create(txCtx, &quotation)
	})
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("failed to create quotation: %w", err)
	}

	s.writeAuditLog(ctx, userID, model.ActionCreateQuotation, quotation.ID.String(), quotation.QuotationNo, req)
	s.notifier.NotifyManagers(ctx, model.NotifyQuotationCreated,
		"New quotation "+quotation.QuotationNo,
		fmt.Sprintf("Quotation for %s, grand total %s", quotation.ClientName, quotation.GrandTotal.StringFixed(2)),
		quotation.ID.String())

	return s.reload(ctx, quotation.ID)
}

func (s *quotationService) GetQuotation(ctx context.Context, id string) (QuotationResponse, error) {
	quotationID, err := uuid.Parse(id)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("invalid quotation id: %w", err)
	}
	return s.reload(ctx, quotationID)
}

func (s *quotationService) ListQuotations(ctx context.Context, filter QuotationFilter) ([]QuotationResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	quotations, total, err := s.quotationRepo.List(ctx, repository.QuotationListFilter{
		Status:      filter.Status,
		ClientName:  filter.ClientName,
		QuotationNo: filter.QuotationNo,
		Page:        filter.Page,
		Limit:       filter.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch quotations: %w", err)
	}

	result := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		result = append(result, toQuotationResponse(q, false))
	}
	return result, total, nil
}

func (s *quotationService) UpdateQuotation(ctx context.Context, id string, userID string, req UpdateQuotationRequest) (QuotationResponse, error) {
	quotationID, err := uuid.Parse(id)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("invalid quotation id: %w", err)
	}

	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuotationResponse{}, fmt.Errorf("quotation not found")
		}
		return QuotationResponse{}, fmt.Errorf("failed to fetch quotation: %w", err)
	}

	if quotation.Status == model.QuotationAccepted {
		return QuotationResponse{}, fmt.Errorf("cannot edit an accepted quotation")
	}

	shipment, err := s.assembleShipment(ctx, req)
	if err != nil {
		return QuotationResponse{}, err
	}

	result, err := s.runEngine(ctx, shipment)
	if err != nil {
		return QuotationResponse{}, err
	}

	updated := buildQuotationModel(req, *shipment, result)

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		quotation.ClientName = updated.ClientName
		quotation.ClientCategory = updated.ClientCategory
		quotation.TotalCBM = updated.TotalCBM
		quotation.ExchangeRate = updated.ExchangeRate
		quotation.Discount = updated.Discount
		quotation.TariffMode = updated.TariffMode
		quotation.TariffValue = updated.TariffValue
		quotation.TotalFOB = updated.TotalFOB
		quotation.TotalDuties = updated.TotalDuties
		quotation.Freight = updated.Freight
		quotation.Insurance = updated.Insurance
		quotation.Destination = updated.Destination
		quotation.ExtraCharges = updated.ExtraCharges
		quotation.GrandTotal = updated.GrandTotal

		if err := s.quotationRepo.Update(txCtx, quotation); err != nil {
			return fmt.Errorf("failed to update quotation: %w", err)
		}
		return s.quotationRepo.ReplaceSuppliers(txCtx, quotation.ID, updated.Suppliers)
	})
	if err != nil {
		return QuotationResponse{}, err
	}

	s.writeAuditLog(ctx, userID, model.ActionUpdateQuotation, quotation.ID.String(), quotation.QuotationNo, req)

	return s.reload(ctx, quotation.ID)
}

func (s *quotationService) DeleteQuotation(ctx context.Context, id string, userID string) error {
	quotationID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid quotation id: %w", err)
	}

	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("quotation not found")
		}
		return fmt.Errorf("failed to fetch quotation: %w", err)
	}

	if err := s.quotationRepo.Delete(ctx, quotationID); err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}

	s.writeAuditLog(ctx, userID, model.ActionDeleteQuotation, id, quotation.QuotationNo, map[string]string{"deleted_id": id})
	return nil
}

func (s *quotationService) ChangeStatus(ctx context.Context, id string, userID string, status string) (QuotationResponse, error) {
	if status != model.QuotationDraft && status != model.QuotationSent &&
		status != model.QuotationAccepted && status != model.QuotationRejected {
		return QuotationResponse{}, fmt.Errorf("invalid status %q", status)
	}

	quotationID, err := uuid.Parse(id)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("invalid quotation id: %w", err)
	}

	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuotationResponse{}, fmt.Errorf("quotation not found")
		}
		return QuotationResponse{}, fmt.Errorf("failed to fetch quotation: %w", err)
	}

	quotation.Status = status
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return QuotationResponse{}, fmt.Errorf("failed to update quotation status: %w", err)
	}

	s.writeAuditLog(ctx, userID, model.ActionChangeQuotation, id, quotation.QuotationNo, map[string]string{"status": status})
	if status == model.QuotationAccepted {
		s.notifier.NotifyManagers(ctx, model.NotifyQuotationAccepted,
			"Quotation "+quotation.QuotationNo+" accepted",
			"Client "+quotation.ClientName+" accepted the quotation",
			quotation.ID.String())
	}

	return s.reload(ctx, quotation.ID)
}

func (s *quotationService) AssignContainer(ctx context.Context, id string, containerID string) (QuotationResponse, error) {
	quotationID, err := uuid.Parse(id)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("invalid quotation id: %w", err)
	}
	cID, err := uuid.Parse(containerID)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("invalid container id: %w", err)
	}

	if _, err := s.containerRepo.FindByID(ctx, cID); err != nil {
		return QuotationResponse{}, fmt.Errorf("container not found: %w", err)
	}

	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return QuotationResponse{}, fmt.Errorf("quotation not found: %w", err)
	}

	quotation.ContainerID = &cID
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return QuotationResponse{}, fmt.Errorf("failed to assign container: %w", err)
	}

	return s.reload(ctx, quotation.ID)
}

// --- Helpers ---

// assembleShipment parses the request into an engine shipment. Total CBM is
// derived from supplier volumes.
func (s *quotationService) assembleShipment(_ context.Context, req CreateQuotationRequest) (*calculator.Shipment, error) {
	exchangeRate, err := decimal.NewFromString(req.ExchangeRate)
	if err != nil {
		return nil, fmt.Errorf("invalid exchange_rate: %w", err)
	}
	if exchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("exchange_rate must be greater than 0")
	}

	discount := decimal.Zero
	if req.Discount != "" {
		discount, err = decimal.NewFromString(req.Discount)
		if err != nil {
			return nil, fmt.Errorf("invalid discount: %w", err)
		}
		if discount.IsNegative() {
			return nil, fmt.Errorf("discount must not be negative")
		}
	}

	shipment := calculator.Shipment{
		ClientCategory: req.ClientCategory,
		ExchangeRate:   exchangeRate,
		Discount:       discount,
	}

	totalCBM := decimal.Zero
	for i, supReq := range req.Suppliers {
		volume, err := decimal.NewFromString(supReq.Volume)
		if err != nil {
			return nil, fmt.Errorf("invalid volume for supplier %d: %w", i+1, err)
		}
		if volume.IsNegative() {
			return nil, fmt.Errorf("volume must not be negative for supplier %d", i+1)
		}
		totalCBM = totalCBM.Add(volume)

		weight := decimal.Zero
		if supReq.Weight != "" {
			weight, err = decimal.NewFromString(supReq.Weight)
			if err != nil {
				return nil, fmt.Errorf("invalid weight for supplier %d: %w", i+1, err)
			}
		}

		supplier := calculator.Supplier{
			Name:   supReq.Name,
			Volume: volume,
			Weight: weight,
			Boxes:  supReq.Boxes,
		}

		for j, prodReq := range supReq.Products {
			product, err := parseProduct(prodReq)
			if err != nil {
				return nil, fmt.Errorf("supplier %d product %d: %w", i+1, j+1, err)
			}
			supplier.Products = append(supplier.Products, product)
		}
		shipment.Suppliers = append(shipment.Suppliers, supplier)
	}
	shipment.TotalCBM = totalCBM

	return &shipment, nil
}

func parseProduct(req QuotationProductRequest) (calculator.Product, error) {
	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return calculator.Product{}, fmt.Errorf("invalid unit_price: %w", err)
	}
	if price.IsNegative() {
		return calculator.Product{}, fmt.Errorf("unit_price must not be negative")
	}

	valuation := price
	if req.UnitValuation != "" {
		valuation, err = decimal.NewFromString(req.UnitValuation)
		if err != nil {
			return calculator.Product{}, fmt.Errorf("invalid unit_valuation: %w", err)
		}
		if valuation.IsNegative() {
			return calculator.Product{}, fmt.Errorf("unit_valuation must not be negative")
		}
	}

	product := calculator.Product{
		Name:          req.Name,
		UnitPrice:     price,
		UnitValuation: valuation,
		Quantity:      req.Quantity,
	}

	if req.AdValoremRate != "" {
		product.AdValoremRate, err = decimal.NewFromString(req.AdValoremRate)
		if err != nil {
			return calculator.Product{}, fmt.Errorf("invalid ad_valorem_rate: %w", err)
		}
	}
	if req.AntidumpingFee != "" {
		product.AntidumpingFee, err = decimal.NewFromString(req.AntidumpingFee)
		if err != nil {
			return calculator.Product{}, fmt.Errorf("invalid antidumping_fee: %w", err)
		}
	}
	if req.PerceptionRate != "" {
		rate, err := decimal.NewFromString(req.PerceptionRate)
		if err != nil {
			return calculator.Product{}, fmt.Errorf("invalid perception_rate: %w", err)
		}
		product.PerceptionRate = &rate
	}

	return product, nil
}

// runEngine resolves the tariff for the shipment and runs the calculation.
func (s *quotationService) runEngine(ctx context.Context, shipment *calculator.Shipment) (*calculator.Result, error) {
	tariffTable, surchargeTable, err := s.tariffService.LoadTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tariff tables: %w", err)
	}

	tariff, err := tariffTable.Resolve(shipment.ClientCategory, shipment.TotalCBM)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tariff: %w", err)
	}
	shipment.Tariff = tariff

	engine := calculator.NewEngine(calculator.DefaultConfig(), surchargeTable)
	result, err := engine.Calculate(*shipment)
	if err != nil {
		return nil, fmt.Errorf("calculation failed: %w", err)
	}
	return result, nil
}

func (s *quotationService) generateQuotationNo(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "COT-" + today + "-"

	count, err := s.quotationRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

func (s *quotationService) reload(ctx context.Context, id uuid.UUID) (QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuotationResponse{}, fmt.Errorf("quotation not found")
		}
		return QuotationResponse{}, fmt.Errorf("failed to reload quotation: %w", err)
	}
	return toQuotationResponse(*quotation, true), nil
}

func (s *quotationService) writeAuditLog(ctx context.Context, userID, action, entityID, entityName string, details interface{}) {
	detailsJSON, _ := json.Marshal(details)

	entry := model.AuditLog{
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}
	if userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			entry.UserID = &parsed
		}
	}

	// Best-effort audit log, the operation does not fail when logging fails
	_ = s.auditRepo.Log(ctx, &entry)
}

// --- Mapping ---

// buildQuotationModel converts the validated request plus engine output into
// a persistable quotation with its supplier and product rows.
func buildQuotationModel(req CreateQuotationRequest, shipment calculator.Shipment, result *calculator.Result) model.Quotation {
	quotation := model.Quotation{
		ClientName:     req.ClientName,
		ClientCategory: req.ClientCategory,
		TotalCBM:       shipment.TotalCBM,
		ExchangeRate:   shipment.ExchangeRate,
		Discount:       shipment.Discount,
		TariffMode:     shipment.Tariff.Mode,
		TariffValue:    shipment.Tariff.Value,
		TotalFOB:       result.Totals.FOB,
		TotalDuties:    result.Totals.Duties,
		Freight:        result.Totals.Freight,
		Insurance:      result.Totals.Insurance,
		Destination:    result.Totals.Destination,
		ExtraCharges:   result.Totals.ExtraCharges,
		GrandTotal:     result.Totals.GrandTotal,
	}

	lineIdx := 0
	for i, sup := range shipment.Suppliers {
		supplierRow := model.QuotationSupplier{
			Position: i,
			Name:     sup.Name,
			Volume:   sup.Volume,
			Weight:   sup.Weight,
			Boxes:    sup.Boxes,
		}
		for j, p := range sup.Products {
			line := result.Lines[lineIdx]
			lineIdx++
			supplierRow.Products = append(supplierRow.Products, model.QuotationProduct{
				Position:        j,
				Name:            p.Name,
				UnitPrice:       p.UnitPrice,
				UnitValuation:   p.UnitValuation,
				Quantity:        p.Quantity,
				AdValoremRate:   p.AdValoremRate,
				AntidumpingFee:  p.AntidumpingFee,
				PerceptionRate:  p.PerceptionRate,
				FOB:             line.FOB,
				FOBValor:        line.FOBValor,
				Freight:         line.Freight,
				Insurance:       line.Insurance,
				CFR:             line.CFR,
				CFRValor:        line.CFRValor,
				CIF:             line.CIF,
				CIFValor:        line.CIFValor,
				AdValorem:       line.AdValorem,
				GeneralSalesTax: line.GeneralSalesTax,
				MunicipalTax:    line.MunicipalTax,
				Perception:      line.Perception,
				Antidumping:     line.Antidumping,
				TotalDuties:     line.TotalDuties,
				Destination:     line.Destination,
				TotalCost:       line.TotalCost,
				UnitCost:        line.UnitCost,
				UnitCostLocal:   line.UnitCostLocal,
			})
		}
		quotation.Suppliers = append(quotation.Suppliers, supplierRow)
	}

	return quotation
}

func toQuotationResponse(q model.Quotation, withLines bool) QuotationResponse {
	resp := QuotationResponse{
		ID:             q.ID.String(),
		QuotationNo:    q.QuotationNo,
		ClientName:     q.ClientName,
		ClientCategory: q.ClientCategory,
		Status:         q.Status,
		TotalCBM:       q.TotalCBM.StringFixed(3),
		ExchangeRate:   q.ExchangeRate.StringFixed(4),
		Discount:       q.Discount.StringFixed(2),
		TariffMode:     q.TariffMode,
		TariffValue:    q.TariffValue.StringFixed(2),
		TotalFOB:       q.TotalFOB.StringFixed(2),
		TotalDuties:    q.TotalDuties.StringFixed(2),
		Freight:        q.Freight.StringFixed(2),
		Insurance:      q.Insurance.StringFixed(2),
		Destination:    q.Destination.StringFixed(2),
		ExtraCharges:   q.ExtraCharges.StringFixed(2),
		GrandTotal:     q.GrandTotal.StringFixed(2),
		CreatedAt:      q.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      q.UpdatedAt.Format(time.RFC3339),
	}
	if q.ContainerID != nil {
		s := q.ContainerID.String()
		resp.ContainerID = &s
	}

	if withLines {
		for _, sup := range q.Suppliers {
			for _, p := range sup.Products {
				resp.Lines = append(resp.Lines, QuotationLineResponse{
					Supplier:        sup.Name,
					Name:            p.Name,
					Quantity:        p.Quantity,
					FOB:             p.FOB.StringFixed(2),
					FOBValor:        p.FOBValor.StringFixed(2),
					Freight:         p.Freight.StringFixed(2),
					Insurance:       p.Insurance.StringFixed(2),
					CFR:             p.CFR.StringFixed(2),
					CFRValor:        p.CFRValor.StringFixed(2),
					CIF:             p.CIF.StringFixed(2),
					CIFValor:        p.CIFValor.StringFixed(2),
					AdValorem:       p.AdValorem.StringFixed(2),
					GeneralSalesTax: p.GeneralSalesTax.StringFixed(2),
					MunicipalTax:    p.MunicipalTax.StringFixed(2),
					Perception:      p.Perception.StringFixed(2),
					Antidumping:     p.Antidumping.StringFixed(2),
					TotalDuties:     p.TotalDuties.StringFixed(2),
					Destination:     p.Destination.StringFixed(2),
					TotalCost:       p.TotalCost.StringFixed(2),
					UnitCost:        p.UnitCost.StringFixed(4),
					UnitCostLocal:   p.UnitCostLocal.StringFixed(4),
				})
			}
		}
	}

	return resp
}
