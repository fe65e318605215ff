package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(ctx context.Context, post *model.NewsPost) error
	Update(ctx context.Context, post *model.NewsPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NewsPost, error)
	List(ctx context.Context, publishedOnly bool, page, limit int) ([]model.NewsPost, int64, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, post *model.NewsPost) error {
	return GetDB(ctx, r.db).Create(post).Error
}

func (r *newsRepository) Update(ctx context.Context, post *model.NewsPost) error {
	return GetDB(ctx, r.db).Save(post).Error
}

func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.NewsPost{}).Error
}

func (r *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.NewsPost, error) {
	var post model.NewsPost
	if err := GetDB(ctx, r.db).Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *newsRepository) List(ctx context.Context, publishedOnly bool, page, limit int) ([]model.NewsPost, int64, error) {
	var posts []model.NewsPost
	var total int64

	query := GetDB(ctx, r.db).Model(&model.NewsPost{})
	if publishedOnly {
		query = query.Where("published = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Author").Order("created_at desc").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}
