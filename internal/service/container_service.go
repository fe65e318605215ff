package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateContainerRequest struct {
	Code          string `json:"code" binding:"required"`
	CapacityCBM   string `json:"capacity_cbm"`
	DepartureDate string `json:"departure_date"` // YYYY-MM-DD
	ArrivalDate   string `json:"arrival_date"`   // YYYY-MM-DD
	Notes         string `json:"notes"`
}

type UpdateContainerRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=LOADING IN_TRANSIT IN_CUSTOMS DELIVERED"`
	CapacityCBM   *string `json:"capacity_cbm"`
	DepartureDate *string `json:"departure_date"`
	ArrivalDate   *string `json:"arrival_date"`
	Notes         *string `json:"notes"`
}

type ContainerResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Status        string  `json:"status"`
	CapacityCBM   string  `json:"capacity_cbm"`
	DepartureDate *string `json:"departure_date"`
	ArrivalDate   *string `json:"arrival_date"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"created_at"`
}

// --- Interface ---

type ContainerService interface {
	CreateContainer(ctx context.Context, req CreateContainerRequest, userID string) (ContainerResponse, error)
	GetContainer(ctx context.Context, id string) (ContainerResponse, error)
	ListContainers(ctx context.Context, status string, page, limit int) ([]ContainerResponse, int64, error)
	UpdateContainer(ctx context.Context, id string, req UpdateContainerRequest, userID string) (ContainerResponse, error)
	DeleteContainer(ctx context.Context, id string, userID string) error
}

type containerService struct {
	containerRepo repository.ContainerRepository
	auditRepo     repository.AuditRepository
	notifier      *NotificationService
}

func NewContainerService(containerRepo repository.ContainerRepository, auditRepo repository.AuditRepository, notifier *NotificationService) ContainerService {
	return &containerService{containerRepo: containerRepo, auditRepo: auditRepo, notifier: notifier}
}

// --- Implementation ---

func (s *containerService) CreateContainer(ctx context.Context, req CreateContainerRequest, userID string) (ContainerResponse, error) {
	if _, err := s.containerRepo.FindByCode(ctx, req.Code); err == nil {
		return ContainerResponse{}, fmt.Errorf("container code %q already exists", req.Code)
	}

	capacity := decimal.Zero
	if req.CapacityCBM != "" {
		var err error
		capacity, err = decimal.NewFromString(req.CapacityCBM)
		if err != nil {
			return ContainerResponse{}, fmt.Errorf("invalid capacity_cbm: %w", err)
		}
	}

	departure, err := parseOptionalDate(req.DepartureDate)
	if err != nil {
		return ContainerResponse{}, fmt.Errorf("invalid departure_date: %w", err)
	}
	arrival, err := parseOptionalDate(req.ArrivalDate)
	if err != nil {
		return ContainerResponse{}, fmt.Errorf("invalid arrival_date: %w", err)
	}

	container := model.Container{
		Code:          req.Code,
		Status:        model.ContainerLoading,
		CapacityCBM:   capacity,
		DepartureDate: departure,
		ArrivalDate:   arrival,
		Notes:         req.Notes,
	}
	if err := s.containerRepo.Create(ctx, &container); err != nil {
		return ContainerResponse{}, fmt.Errorf("failed to create container: %w", err)
	}

	s.audit(ctx, userID, model.ActionCreateContainer, container.ID.String(), container.Code, req)
	return toContainerResponse(container), nil
}

func (s *containerService) GetContainer(ctx context.Context, id string) (ContainerResponse, error) {
	containerID, err := uuid.Parse(id)
	if err != nil {
		return ContainerResponse{}, fmt.Errorf("invalid container id: %w", err)
	}

	container, err := s.containerRepo.FindByID(ctx, containerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContainerResponse{}, fmt.Errorf("container not found")
		}
		return ContainerResponse{}, fmt.Errorf("failed to fetch container: %w", err)
	}
	return toContainerResponse(*container), nil
}

func (s *containerService) ListContainers(ctx context.Context, status string, page, limit int) ([]ContainerResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	containers, total, err := s.containerRepo.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch containers: %w", err)
	}

	res := make([]ContainerResponse, 0, len(containers))
	for _, c := range containers {
		res = append(res, toContainerResponse(c))
	}
	return res, total, nil
}

func (s *containerService) UpdateContainer(ctx context.Context, id string, req UpdateContainerRequest, userID string) (ContainerResponse, error) {
	containerID, err := uuid.Parse(id)
	if err != nil {
		return ContainerResponse{}, fmt.Errorf("invalid container id: %w", err)
	}

	container, err := s.containerRepo.FindByID(ctx, containerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContainerResponse{}, fmt.Errorf("container not found")
		}
		return ContainerResponse{}, fmt.Errorf("failed to fetch container: %w", err)
	}

	statusChanged := false
	if req.Status != nil && *req.Status != container.Status {
		container.Status = *req.Status
		statusChanged = true
	}
	if req.CapacityCBM != nil {
		capacity, err := decimal.NewFromString(*req.CapacityCBM)
		if err != nil {
			return ContainerResponse{}, fmt.Errorf("invalid capacity_cbm: %w", err)
		}
		container.CapacityCBM = capacity
	}
	if req.DepartureDate != nil {
		departure, err := parseOptionalDate(*req.DepartureDate)
		if err != nil {
			return ContainerResponse{}, fmt.Errorf("invalid departure_date: %w", err)
		}
		container.DepartureDate = departure
	}
	if req.ArrivalDate != nil {
		arrival, err := parseOptionalDate(*req.ArrivalDate)
		if err != nil {
			return ContainerResponse{}, fmt.Errorf("invalid arrival_date: %w", err)
		}
		container.ArrivalDate = arrival
	}
	if req.Notes != nil {
		container.Notes = *req.Notes
	}

	if err := s.containerRepo.Update(ctx, container); err != nil {
		return ContainerResponse{}, fmt.Errorf("failed to update container: %w", err)
	}

	s.audit(ctx, userID, model.ActionUpdateContainer, container.ID.String(), container.Code, req)
	if statusChanged {
		s.notifier.NotifyManagers(ctx, model.NotifyContainerStatus,
			"Container "+container.Code+" is now "+container.Status,
			"", container.ID.String())
	}

	return toContainerResponse(*container), nil
}

func (s *containerService) DeleteContainer(ctx context.Context, id string, userID string) error {
	containerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid container id: %w", err)
	}

	container, err := s.containerRepo.FindByID(ctx, containerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("container not found")
		}
		return fmt.Errorf("failed to fetch container: %w", err)
	}

	if err := s.containerRepo.Delete(ctx, containerID); err != nil {
		return fmt.Errorf("failed to delete container: %w", err)
	}

	s.audit(ctx, userID, model.ActionDeleteContainer, id, container.Code, map[string]string{"deleted_id": id})
	return nil
}

// --- Helpers ---

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *containerService) audit(ctx context.Context, userID, action, entityID, entityName string, details interface{}) {
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

func toContainerResponse(c model.Container) ContainerResponse {
	resp := ContainerResponse{
		ID:          c.ID.String(),
		Code:        c.Code,
		Status:      c.Status,
		CapacityCBM: c.CapacityCBM.StringFixed(3),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.DepartureDate != nil {
		s := c.DepartureDate.Format("2006-01-02")
		resp.DepartureDate = &s
	}
	if c.ArrivalDate != nil {
		s := c.ArrivalDate.Format("2006-01-02")
		resp.ArrivalDate = &s
	}
	return resp
}
