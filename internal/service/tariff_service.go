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

type CreateTariffBracketRequest struct {
	ClientCategory string `json:"client_category" binding:"required,oneof=NEW RETURNING PARTNER"`
	MinCBM         string `json:"min_cbm" binding:"required"` // Decimal string, inclusive
	MaxCBM         string `json:"max_cbm" binding:"required"` // Decimal string, exclusive
	TariffMode     string `json:"tariff_mode" binding:"required,oneof=FLAT PER_VOLUME"`
	TariffValue    string `json:"tariff_value" binding:"required"`
}

type TariffBracketResponse struct {
	ID             string `json:"id"`
	ClientCategory string `json:"client_category"`
	MinCBM         string `json:"min_cbm"`
	MaxCBM         string `json:"max_cbm"`
	TariffMode     string `json:"tariff_mode"`
	TariffValue    string `json:"tariff_value"`
	CreatedAt      string `json:"created_at"`
}

type CreateSurchargeBracketRequest struct {
	MinCBM        string `json:"min_cbm" binding:"required"`
	MaxCBM        string `json:"max_cbm" binding:"required"`
	BaseAllowance int    `json:"base_allowance" binding:"required,min=0"`
	ExtraAllowed  int    `json:"extra_allowed" binding:"required,min=0"`
	PerItemFee    string `json:"per_item_fee" binding:"required"`
}

type SurchargeBracketResponse struct {
	ID            string `json:"id"`
	MinCBM        string `json:"min_cbm"`
	MaxCBM        string `json:"max_cbm"`
	BaseAllowance int    `json:"base_allowance"`
	ExtraAllowed  int    `json:"extra_allowed"`
	PerItemFee    string `json:"per_item_fee"`
	CreatedAt     string `json:"created_at"`
}

// --- Interface ---

// TariffService administers the two lookup tables and loads them into the
// engine's in-memory representation.
type TariffService interface {
	ListTariffBrackets(ctx context.Context, category string) ([]TariffBracketResponse, error)
	CreateTariffBracket(ctx context.Context, req CreateTariffBracketRequest, userID string) (TariffBracketResponse, error)
	UpdateTariffBracket(ctx context.Context, id string, req CreateTariffBracketRequest, userID string) (TariffBracketResponse, error)
	DeleteTariffBracket(ctx context.Context, id string, userID string) error

	ListSurchargeBrackets(ctx context.Context) ([]SurchargeBracketResponse, error)
	CreateSurchargeBracket(ctx context.Context, req CreateSurchargeBracketRequest, userID string) (SurchargeBracketResponse, error)
	DeleteSurchargeBracket(ctx context.Context, id string, userID string) error

	LoadTables(ctx context.Context) (*calculator.TariffTable, *calculator.SurchargeTable, error)
}

type tariffService struct {
	tariffRepo repository.TariffRepository
	auditRepo  repository.AuditRepository
}

func NewTariffService(tariffRepo repository.TariffRepository, auditRepo repository.AuditRepository) TariffService {
	return &tariffService{tariffRepo: tariffRepo, auditRepo: auditRepo}
}

// --- Implementation ---

func (s *tariffService) ListTariffBrackets(ctx context.Context, category string) ([]TariffBracketResponse, error) {
	brackets, err := s.tariffRepo.ListBrackets(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tariff brackets: %w", err)
	}

	res := make([]TariffBracketResponse, 0, len(brackets))
	for _, b := range brackets {
		res = append(res, toTariffBracketResponse(b))
	}
	return res, nil
}

func (s *tariffService) CreateTariffBracket(ctx context.Context, req CreateTariffBracketRequest, userID string) (TariffBracketResponse, error) {
	minCBM, maxCBM, err := parseRange(req.MinCBM, req.MaxCBM)
	if err != nil {
		return TariffBracketResponse{}, err
	}

	value, err := decimal.NewFromString(req.TariffValue)
	if err != nil {
		return TariffBracketResponse{}, fmt.Errorf("invalid tariff_value: %w", err)
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return TariffBracketResponse{}, fmt.Errorf("tariff_value must be greater than 0")
	}

	count, err := s.tariffRepo.CountOverlappingBrackets(ctx, req.ClientCategory, minCBM, maxCBM, nil)
	if err != nil {
		return TariffBracketResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if count > 0 {
		return TariffBracketResponse{}, fmt.Errorf("a tariff bracket for %q already covers part of [%s, %s)", req.ClientCategory, req.MinCBM, req.MaxCBM)
	}

	bracket := model.TariffBracket{
		ClientCategory: req.ClientCategory,
		MinCBM:         minCBM,
		MaxCBM:         maxCBM,
		TariffMode:     req.TariffMode,
		TariffValue:    value,
	}
	if err := s.tariffRepo.CreateBracket(ctx, &bracket); err != nil {
		return TariffBracketResponse{}, fmt.Errorf("failed to create tariff bracket: %w", err)
	}

	s.audit(ctx, userID, model.ActionCreateTariffRow, bracket.ID.String(), req.ClientCategory, req)
	return toTariffBracketResponse(bracket), nil
}

func (s *tariffService) UpdateTariffBracket(ctx context.Context, id string, req CreateTariffBracketRequest, userID string) (TariffBracketResponse, error) {
	bracketID, err := uuid.Parse(id)
	if err != nil {
		return TariffBracketResponse{}, fmt.Errorf("invalid tariff bracket id: %w", err)
	}

	bracket, err := s.tariffRepo.FindBracketByID(ctx, bracketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TariffBracketResponse{}, fmt.Errorf("tariff bracket not found")
		}
		return TariffBracketResponse{}, fmt.Errorf("failed to fetch tariff bracket: %w", err)
	}

	minCBM, maxCBM, err := parseRange(req.MinCBM, req.MaxCBM)
	if err != nil {
		return TariffBracketResponse{}, err
	}

	value, err := decimal.NewFromString(req.TariffValue)
	if err != nil {
		return TariffBracketResponse{}, fmt.Errorf("invalid tariff_value: %w", err)
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return TariffBracketResponse{}, fmt.Errorf("tariff_value must be greater than 0")
	}

	count, err := s.tariffRepo.CountOverlappingBrackets(ctx, req.ClientCategory, minCBM, maxCBM, &bracketID)
	if err != nil {
		return TariffBracketResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if count > 0 {
		return TariffBracketResponse{}, fmt.Errorf("a tariff bracket for %q already covers part of [%s, %s)", req.ClientCategory, req.MinCBM, req.MaxCBM)
	}

	bracket.ClientCategory = req.ClientCategory
	bracket.MinCBM = minCBM
	bracket.MaxCBM = maxCBM
	bracket.TariffMode = req.TariffMode
	bracket.TariffValue = value

	if err := s.tariffRepo.UpdateBracket(ctx, bracket); err != nil {
		return TariffBracketResponse{}, fmt.Errorf("failed to update tariff bracket: %w", err)
	}

	s.audit(ctx, userID, model.ActionUpdateTariffRow, id, req.ClientCategory, req)
	return toTariffBracketResponse(*bracket), nil
}

func (s *tariffService) DeleteTariffBracket(ctx context.Context, id string, userID string) error {
	bracketID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid tariff bracket id: %w", err)
	}

	bracket, err := s.tariffRepo.FindBracketByID(ctx, bracketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("tariff bracket not found")
		}
		return fmt.Errorf("failed to fetch tariff bracket: %w", err)
	}

	if err := s.tariffRepo.DeleteBracket(ctx, bracketID); err != nil {
		return fmt.Errorf("failed to delete tariff bracket: %w", err)
	}

	s.audit(ctx, userID, model.ActionDeleteTariffRow, id, bracket.ClientCategory, map[string]string{"deleted_id": id})
	return nil
}

func (s *tariffService) ListSurchargeBrackets(ctx context.Context) ([]SurchargeBracketResponse, error) {
	brackets, err := s.tariffRepo.ListSurchargeBrackets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch surcharge brackets: %w", err)
	}

	res := make([]SurchargeBracketResponse, 0, len(brackets))
	for _, b := range brackets {
		res = append(res, toSurchargeBracketResponse(b))
	}
	return res, nil
}

func (s *tariffService) CreateSurchargeBracket(ctx context.Context, req CreateSurchargeBracketRequest, userID string) (SurchargeBracketResponse, error) {
	minCBM, maxCBM, err := parseRange(req.MinCBM, req.MaxCBM)
	if err != nil {
		return SurchargeBracketResponse{}, err
	}

	fee, err := decimal.NewFromString(req.PerItemFee)
	if err != nil {
		return SurchargeBracketResponse{}, fmt.Errorf("invalid per_item_fee: %w", err)
	}
	if fee.IsNegative() {
		return SurchargeBracketResponse{}, fmt.Errorf("per_item_fee must not be negative")
	}

	count, err := s.tariffRepo.CountOverlappingSurchargeBrackets(ctx, minCBM, maxCBM, nil)
	if err != nil {
		return SurchargeBracketResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if count > 0 {
		return SurchargeBracketResponse{}, fmt.Errorf("a surcharge bracket already covers part of [%s, %s)", req.MinCBM, req.MaxCBM)
	}

	bracket := model.ItemSurchargeBracket{
		MinCBM:        minCBM,
		MaxCBM:        maxCBM,
		BaseAllowance: req.BaseAllowance,
		ExtraAllowed:  req.ExtraAllowed,
		PerItemFee:    fee,
	}
	if err := s.tariffRepo.CreateSurchargeBracket(ctx, &bracket); err != nil {
		return SurchargeBracketResponse{}, fmt.Errorf("failed to create surcharge bracket: %w", err)
	}

	s.audit(ctx, userID, model.ActionCreateSurchargeRow, bracket.ID.String(), "", req)
	return toSurchargeBracketResponse(bracket), nil
}

func (s *tariffService) DeleteSurchargeBracket(ctx context.Context, id string, userID string) error {
	bracketID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid surcharge bracket id: %w", err)
	}

	if err := s.tariffRepo.DeleteSurchargeBracket(ctx, bracketID); err != nil {
		return fmt.Errorf("failed to delete surcharge bracket: %w", err)
	}

	s.audit(ctx, userID, model.ActionDeleteSurchargeRow, id, "", map[string]string{"deleted_id": id})
	return nil
}

// LoadTables converts the stored rows into the engine's lookup tables.
func (s *tariffService) LoadTables(ctx context.Context) (*calculator.TariffTable, *calculator.SurchargeTable, error) {
	bracketRows, err := s.tariffRepo.ListBrackets(ctx, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tariff brackets: %w", err)
	}
	surchargeRows, err := s.tariffRepo.ListSurchargeBrackets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load surcharge brackets: %w", err)
	}

	tariffBrackets := make([]calculator.TariffBracket, 0, len(bracketRows))
	for _, row := range bracketRows {
		tariffBrackets = append(tariffBrackets, calculator.TariffBracket{
			Category: row.ClientCategory,
			MinCBM:   row.MinCBM,
			MaxCBM:   row.MaxCBM,
			Mode:     row.TariffMode,
			Value:    row.TariffValue,
		})
	}

	surchargeBrackets := make([]calculator.ItemSurchargeBracket, 0, len(surchargeRows))
	for _, row := range surchargeRows {
		surchargeBrackets = append(surchargeBrackets, calculator.ItemSurchargeBracket{
			MinCBM:        row.MinCBM,
			MaxCBM:        row.MaxCBM,
			BaseAllowance: row.BaseAllowance,
			ExtraAllowed:  row.ExtraAllowed,
			PerItemFee:    row.PerItemFee,
		})
	}

	cfg := calculator.DefaultConfig()
	return calculator.NewTariffTable(tariffBrackets), calculator.NewSurchargeTable(cfg, surchargeBrackets), nil
}

// --- Helpers ---

func parseRange(minStr, maxStr string) (decimal.Decimal, decimal.Decimal, error) {
	minCBM, err := decimal.NewFromString(minStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid min_cbm: %w", err)
	}
	maxCBM, err := decimal.NewFromString(maxStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid max_cbm: %w", err)
	}
	if minCBM.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("min_cbm must not be negative")
	}
	if maxCBM.LessThanOrEqual(minCBM) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("max_cbm must be greater than min_cbm")
	}
	return minCBM, maxCBM, nil
}

func (s *tariffService) audit(ctx context.Context, userID, action, entityID, entityName string, details interface{}) {
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

	_ = s.auditRepo.Log(ctx, &entry)
}

// --- Mapping ---

func toTariffBracketResponse(b model.TariffBracket) TariffBracketResponse {
	return TariffBracketResponse{
		ID:             b.ID.String(),
		ClientCategory: b.ClientCategory,
		MinCBM:         b.MinCBM.StringFixed(3),
		MaxCBM:         b.MaxCBM.StringFixed(3),
		TariffMode:     b.TariffMode,
		TariffValue:    b.TariffValue.StringFixed(2),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func toSurchargeBracketResponse(b model.ItemSurchargeBracket) SurchargeBracketResponse {
	return SurchargeBracketResponse{
		ID:            b.ID.String(),
		MinCBM:        b.MinCBM.StringFixed(3),
		MaxCBM:        b.MaxCBM.StringFixed(3),
		BaseAllowance: b.BaseAllowance,
		ExtraAllowed:  b.ExtraAllowed,
		PerItemFee:    b.PerItemFee.StringFixed(2),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
