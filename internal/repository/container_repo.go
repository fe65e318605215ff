package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContainerRepository interface {
	Create(ctx context.Context, container *model.Container) error
	Update(ctx context.Context, container *model.Container) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Container, error)
	FindByCode(ctx context.Context, code string) (*model.Container, error)
	List(ctx context.Context, status string, page, limit int) ([]model.Container, int64, error)
}

type containerRepository struct {
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &containerRepository{db: db}
}

func (r *containerRepository) Create(ctx context.Context, container *model.Container) error {
	return GetDB(ctx, r.db).Create(container).Error
}

func (r *containerRepository) Update(ctx context.Context, container *model.Container) error {
	return GetDB(ctx, r.db).Save(container).Error
}

func (r *containerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Container{}).Error
}

func (r *containerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Container, error) {
	var container model.Container
	if err := GetDB(ctx, r.db).First(&container, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *containerRepository) FindByCode(ctx context.Context, code string) (*model.Container, error) {
	var container model.Container
	if err := GetDB(ctx, r.db).First(&container, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *containerRepository) List(ctx context.Context, status string, page, limit int) ([]model.Container, int64, error) {
	var containers []model.Container
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Container{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&containers).Error; err != nil {
		return nil, 0, err
	}

	return containers, total, nil
}
