package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateNewsRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

type NewsResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Published  bool   `json:"published"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// --- Interface ---

type NewsService interface {
	CreateNews(ctx context.Context, authorID string, req CreateNewsRequest) (NewsResponse, error)
	UpdateNews(ctx context.Context, id string, req UpdateNewsRequest) (NewsResponse, error)
	DeleteNews(ctx context.Context, id string) error
	GetNews(ctx context.Context, id string) (NewsResponse, error)
	ListNews(ctx context.Context, publishedOnly bool, page, limit int) ([]NewsResponse, int64, error)
}

type newsService struct {
	newsRepo  repository.NewsRepository
	auditRepo repository.AuditRepository
}

func NewNewsService(newsRepo repository.NewsRepository, auditRepo repository.AuditRepository) NewsService {
	return &newsService{newsRepo: newsRepo, auditRepo: auditRepo}
}

// --- Implementation ---

func (s *newsService) CreateNews(ctx context.Context, authorID string, req CreateNewsRequest) (NewsResponse, error) {
	post := model.NewsPost{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	}
	if parsed, err := uuid.Parse(authorID); err == nil {
		post.AuthorID = &parsed
	}

	if err := s.newsRepo.Create(ctx, &post); err != nil {
		return NewsResponse{}, fmt.Errorf("failed to create news post: %w", err)
	}

	if post.Published {
		s.audit(ctx, authorID, model.ActionPublishNews, post.ID.String(), post.Title)
	}
	return toNewsResponse(post), nil
}

func (s *newsService) UpdateNews(ctx context.Context, id string, req UpdateNewsRequest) (NewsResponse, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return NewsResponse{}, fmt.Errorf("invalid news id: %w", err)
	}

	post, err := s.newsRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewsResponse{}, fmt.Errorf("news post not found")
		}
		return NewsResponse{}, fmt.Errorf("failed to fetch news post: %w", err)
	}

	wasPublished := post.Published
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := s.newsRepo.Update(ctx, post); err != nil {
		return NewsResponse{}, fmt.Errorf("failed to update news post: %w", err)
	}

	if !wasPublished && post.Published {
		authorID := ""
		if post.AuthorID != nil {
			authorID = post.AuthorID.String()
		}
		s.audit(ctx, authorID, model.ActionPublishNews, post.ID.String(), post.Title)
	}
	return toNewsResponse(*post), nil
}

func (s *newsService) DeleteNews(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid news id: %w", err)
	}
	if _, err := s.newsRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("news post not found")
		}
		return fmt.Errorf("failed to fetch news post: %w", err)
	}
	if err := s.newsRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete news post: %w", err)
	}
	return nil
}

func (s *newsService) GetNews(ctx context.Context, id string) (NewsResponse, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return NewsResponse{}, fmt.Errorf("invalid news id: %w", err)
	}
	post, err := s.newsRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewsResponse{}, fmt.Errorf("news post not found")
		}
		return NewsResponse{}, fmt.Errorf("failed to fetch news post: %w", err)
	}
	return toNewsResponse(*post), nil
}

func (s *newsService) ListNews(ctx context.Context, publishedOnly bool, page, limit int) ([]NewsResponse, int64, error) {
	posts, total, err := s.newsRepo.List(ctx, publishedOnly, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news posts: %w", err)
	}
	res := make([]NewsResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, toNewsResponse(p))
	}
	return res, total, nil
}

// --- Helpers ---

func (s *newsService) audit(ctx context.Context, userID, action, entityID, entityName string) {
	entry := model.AuditLog{
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
	}
	if userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			entry.UserID = &parsed
		}
	}

	_ = s.auditRepo.Log(ctx, &entry)
}

// --- Mapping ---

func toNewsResponse(p model.NewsPost) NewsResponse {
	res := NewsResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Author != nil {
		res.AuthorName = p.Author.Username
	}
	return res
}
