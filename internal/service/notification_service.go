package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"

	"github.com/google/uuid"
)

// --- DTOs ---

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	EntityID  string `json:"entity_id"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// notificationEvent is the payload pushed over the websocket hub
type notificationEvent struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	EntityID string `json:"entity_id"`
}

// NotificationService persists per-user inbox rows and pushes the same
// events to connected websocket clients.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	hub              *websocket.Hub
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	hub *websocket.Hub,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		hub:              hub,
	}
}

// NotifyManagers fans one event out to every admin and manager account and
// broadcasts it over the hub. Best-effort: a failure is logged, never
// propagated to the triggering operation.
func (s *NotificationService) NotifyManagers(ctx context.Context, notifType, title, body, entityID string) {
	users, err := s.userRepo.ListByRoles(ctx, model.RoleAdmin, model.RoleManager)
	if err != nil {
		log.Printf("notification fan-out skipped: %v", err)
		return
	}

	rows := make([]model.Notification, 0, len(users))
	for _, u := range users {
		rows = append(rows, model.Notification{
			UserID:   u.ID,
			Type:     notifType,
			Title:    title,
			Body:     body,
			EntityID: entityID,
		})
	}
	if err := s.notificationRepo.CreateBatch(ctx, rows); err != nil {
		log.Printf("failed to persist notifications: %v", err)
	}

	if s.hub != nil {
		payload, _ := json.Marshal(notificationEvent{
			Type:     notifType,
			Title:    title,
			Body:     body,
			EntityID: entityID,
		})
		s.hub.Broadcast <- payload
	}
}

// ListNotifications returns the user's inbox, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]NotificationResponse, int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid user id: %w", err)
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	rows, total, err := s.notificationRepo.ListByUser(ctx, uid, unreadOnly, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	res := make([]NotificationResponse, 0, len(rows))
	for _, n := range rows {
		res = append(res, NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			EntityID:  n.EntityID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, total, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	nid, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification id: %w", err)
	}
	return s.notificationRepo.MarkRead(ctx, nid, uid)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	return s.notificationRepo.MarkAllRead(ctx, uid)
}
