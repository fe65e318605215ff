package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotationListFilter narrows List queries
type QuotationListFilter struct {
	Status      string // DRAFT, SENT, ACCEPTED, REJECTED or empty for all
	ClientName  string // partial match
	QuotationNo string // partial match
	Page        int
	Limit       int
}

type QuotationRepository interface {
	Create(ctx context.Context, q *model.Quotation) error
	Update(ctx context.Context, q *model.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error)
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Quotation, error)
	List(ctx context.Context, filter QuotationListFilter) ([]model.Quotation, int64, error)
	ReplaceSuppliers(ctx context.Context, quotationID uuid.UUID, suppliers []model.QuotationSupplier) error
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}

type quotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, q *model.Quotation) error {
	return GetDB(ctx, r.db).Create(q).Error
}

func (r *quotationRepository) Update(ctx context.Context, q *model.Quotation) error {
	return GetDB(ctx, r.db).Save(q).Error
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Select("Suppliers", "Suppliers.Products").Delete(&model.Quotation{ID: id}).Error
}

func (r *quotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error) {
	var q model.Quotation
	if err := GetDB(ctx, r.db).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quotationRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Quotation, error) {
	var q model.Quotation
	err := GetDB(ctx, r.db).
		Preload("Suppliers", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Suppliers.Products", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Container").
		First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quotationRepository) List(ctx context.Context, filter QuotationListFilter) ([]model.Quotation, int64, error) {
	var quotations []model.Quotation
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Quotation{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientName != "" {
		query = query.Where("client_name ILIKE ?", "%"+filter.ClientName+"%")
	}
	if filter.QuotationNo != "" {
		query = query.Where("quotation_no ILIKE ?", "%"+filter.QuotationNo+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Offset(offset).Limit(filter.Limit).Find(&quotations).Error; err != nil {
		return nil, 0, err
	}

	return quotations, total, nil
}

// ReplaceSuppliers deletes the quotation's supplier/product rows and inserts
// the given set. Used by the edit workflow, which always resubmits the full
// shipment and recalculates.
func (r *quotationRepository) ReplaceSuppliers(ctx context.Context, quotationID uuid.UUID, suppliers []model.QuotationSupplier) error {
	db := GetDB(ctx, r.db)

	var old []model.QuotationSupplier
	if err := db.Where("quotation_id = ?", quotationID).Find(&old).Error; err != nil {
		return err
	}
	for _, sup := range old {
		if err := db.Where("supplier_id = ?", sup.ID).Delete(&model.QuotationProduct{}).Error; err != nil {
			return err
		}
	}
	if err := db.Where("quotation_id = ?", quotationID).Delete(&model.QuotationSupplier{}).Error; err != nil {
		return err
	}

	for i := range suppliers {
		suppliers[i].QuotationID = quotationID
	}
	if len(suppliers) == 0 {
		return nil
	}
	return db.Create(&suppliers).Error
}

func (r *quotationRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Quotation{}).
		Where("quotation_no LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}
