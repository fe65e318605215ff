package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]model.Payment, error)
	SumByQuotation(ctx context.Context, quotationID uuid.UUID) (decimal.Decimal, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return GetDB(ctx, r.db).Create(payment).Error
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Payment{}).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := GetDB(ctx, r.db).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	if err := GetDB(ctx, r.db).
		Where("quotation_id = ?", quotationID).
		Order("paid_at asc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) SumByQuotation(ctx context.Context, quotationID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := GetDB(ctx, r.db).Model(&model.Payment{}).
		Where("quotation_id = ?", quotationID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
