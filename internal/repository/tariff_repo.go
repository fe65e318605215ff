package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TariffRepository owns the two lookup tables the calculation engine reads:
// per-category tariff brackets and item-surcharge brackets.
type TariffRepository interface {
	CreateBracket(ctx context.Context, bracket *model.TariffBracket) error
	UpdateBracket(ctx context.Context, bracket *model.TariffBracket) error
	DeleteBracket(ctx context.Context, id uuid.UUID) error
	FindBracketByID(ctx context.Context, id uuid.UUID) (*model.TariffBracket, error)
	ListBrackets(ctx context.Context, category string) ([]model.TariffBracket, error)
	CountOverlappingBrackets(ctx context.Context, category string, minCBM, maxCBM decimal.Decimal, excludeID *uuid.UUID) (int64, error)

	CreateSurchargeBracket(ctx context.Context, bracket *model.ItemSurchargeBracket) error
	DeleteSurchargeBracket(ctx context.Context, id uuid.UUID) error
	ListSurchargeBrackets(ctx context.Context) ([]model.ItemSurchargeBracket, error)
	CountOverlappingSurchargeBrackets(ctx context.Context, minCBM, maxCBM decimal.Decimal, excludeID *uuid.UUID) (int64, error)
}

type tariffRepository struct {
	db *gorm.DB
}

func NewTariffRepository(db *gorm.DB) TariffRepository {
	return &tariffRepository{db: db}
}

func (r *tariffRepository) CreateBracket(ctx context.Context, bracket *model.TariffBracket) error {
	return GetDB(ctx, r.db).Create(bracket).Error
}

func (r *tariffRepository) UpdateBracket(ctx context.Context, bracket *model.TariffBracket) error {
	return GetDB(ctx, r.db).Save(bracket).Error
}

func (r *tariffRepository) DeleteBracket(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.TariffBracket{}).Error
}

func (r *tariffRepository) FindBracketByID(ctx context.Context, id uuid.UUID) (*model.TariffBracket, error) {
	var bracket model.TariffBracket
	if err := GetDB(ctx, r.db).First(&bracket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bracket, nil
}

func (r *tariffRepository) ListBrackets(ctx context.Context, category string) ([]model.TariffBracket, error) {
	var brackets []model.TariffBracket
	query := GetDB(ctx, r.db).Order("client_category asc, min_cbm asc")
	if category != "" {
		query = query.Where("client_category = ?", category)
	}
	if err := query.Find(&brackets).Error; err != nil {
		return nil, err
	}
	return brackets, nil
}

// CountOverlappingBrackets counts brackets of the category whose [min, max)
// range intersects the given one. Ranges are half-open, so touching bounds
// do not overlap.
func (r *tariffRepository) CountOverlappingBrackets(ctx context.Context, category string, minCBM, maxCBM decimal.Decimal, excludeID *uuid.UUID) (int64, error) {
	var count int64
	query := GetDB(ctx, r.db).Model(&model.TariffBracket{}).
		Where("client_category = ?", category).
		Where("min_cbm < ? AND max_cbm > ?", maxCBM, minCBM)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *tariffRepository) CreateSurchargeBracket(ctx context.Context, bracket *model.ItemSurchargeBracket) error {
	return GetDB(ctx, r.db).Create(bracket).Error
}

func (r *tariffRepository) DeleteSurchargeBracket(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.ItemSurchargeBracket{}).Error
}

func (r *tariffRepository) ListSurchargeBrackets(ctx context.Context) ([]model.ItemSurchargeBracket, error) {
	var brackets []model.ItemSurchargeBracket
	if err := GetDB(ctx, r.db).Order("min_cbm asc").Find(&brackets).Error; err != nil {
		return nil, err
	}
	return brackets, nil
}

func (r *tariffRepository) CountOverlappingSurchargeBrackets(ctx context.Context, minCBM, maxCBM decimal.Decimal, excludeID *uuid.UUID) (int64, error) {
	var count int64
	query := GetDB(ctx, r.db).Model(&model.ItemSurchargeBracket{}).
		Where("min_cbm < ? AND max_cbm > ?", maxCBM, minCBM)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
