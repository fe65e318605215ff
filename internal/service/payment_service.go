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

type RegisterPaymentRequest struct {
	QuotationID string `json:"quotation_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Method      string `json:"method" binding:"required,oneof=CASH TRANSFER CARD"`
	Reference   string `json:"reference"`
	PaidAt      string `json:"paid_at"` // YYYY-MM-DD, defaults to today
}

type PaymentResponse struct {
	ID          string `json:"id"`
	QuotationID string `json:"quotation_id"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	Reference   string `json:"reference"`
	PaidAt      string `json:"paid_at"`
	CreatedAt   string `json:"created_at"`
}

// QuotationBalanceResponse reports how much of a quotation remains unpaid
type QuotationBalanceResponse struct {
	QuotationID string            `json:"quotation_id"`
	GrandTotal  string            `json:"grand_total"`
	Paid        string            `json:"paid"`
	Balance     string            `json:"balance"`
	Payments    []PaymentResponse `json:"payments"`
}

// --- Interface ---

type PaymentService interface {
	RegisterPayment(ctx context.Context, userID string, req RegisterPaymentRequest) (PaymentResponse, error)
	GetQuotationBalance(ctx context.Context, quotationID string) (QuotationBalanceResponse, error)
	DeletePayment(ctx context.Context, id string, userID string) error
}

type paymentService struct {
	paymentRepo   repository.PaymentRepository
	quotationRepo repository.QuotationRepository
	auditRepo     repository.AuditRepository
	notifier      *NotificationService
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	quotationRepo repository.QuotationRepository,
	auditRepo repository.AuditRepository,
	notifier *NotificationService,
) PaymentService {
	return &paymentService{
		paymentRepo:   paymentRepo,
		quotationRepo: quotationRepo,
		auditRepo:     auditRepo,
		notifier:      notifier,
	}
}

// --- Implementation ---

func (s *paymentService) RegisterPayment(ctx context.Context, userID string, req RegisterPaymentRequest) (PaymentResponse, error) {
	quotationID, err := uuid.Parse(req.QuotationID)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("invalid quotation_id: %w", err)
	}

	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentResponse{}, fmt.Errorf("quotation not found")
		}
		return PaymentResponse{}, fmt.Errorf("failed to fetch quotation: %w", err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return PaymentResponse{}, fmt.Errorf("amount must be greater than 0")
	}

	paidAt := time.Now()
	if req.PaidAt != "" {
		paidAt, err = time.Parse("2006-01-02", req.PaidAt)
		if err != nil {
			return PaymentResponse{}, fmt.Errorf("invalid paid_at date format (expected YYYY-MM-DD): %w", err)
		}
	}

	payment := model.Payment{
		QuotationID: quotationID,
		Amount:      amount,
		Method:      req.Method,
		Reference:   req.Reference,
		PaidAt:      paidAt,
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		payment.RegisteredBy = &parsed
	}

	if err := s.paymentRepo.Create(ctx, &payment); err != nil {
		return PaymentResponse{}, fmt.Errorf("failed to register payment: %w", err)
	}

	s.audit(ctx, userID, model.ActionRegisterPayment, payment.ID.String(), quotation.QuotationNo, req)
	s.notifier.NotifyManagers(ctx, model.NotifyPaymentRegistered,
		"Payment on "+quotation.QuotationNo,
		fmt.Sprintf("%s received via %s", amount.StringFixed(2), req.Method),
		quotation.ID.String())

	return toPaymentResponse(payment), nil
}

func (s *paymentService) GetQuotationBalance(ctx context.Context, quotationID string) (QuotationBalanceResponse, error) {
	qID, err := uuid.Parse(quotationID)
	if err != nil {
		return QuotationBalanceResponse{}, fmt.Errorf("invalid quotation id: %w", err)
	}

	quotation, err := s.quotationRepo.FindByID(ctx, qID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuotationBalanceResponse{}, fmt.Errorf("quotation not found")
		}
		return QuotationBalanceResponse{}, fmt.Errorf("failed to fetch quotation: %w", err)
	}

	payments, err := s.paymentRepo.ListByQuotation(ctx, qID)
	if err != nil {
		return QuotationBalanceResponse{}, fmt.Errorf("failed to fetch payments: %w", err)
	}

	paid, err := s.paymentRepo.SumByQuotation(ctx, qID)
	if err != nil {
		return QuotationBalanceResponse{}, fmt.Errorf("failed to sum payments: %w", err)
	}

	res := QuotationBalanceResponse{
		QuotationID: quotationID,
		GrandTotal:  quotation.GrandTotal.StringFixed(2),
		Paid:        paid.StringFixed(2),
		Balance:     quotation.GrandTotal.Sub(paid).StringFixed(2),
	}
	for _, p := range payments {
		res.Payments = append(res.Payments, toPaymentResponse(p))
	}
	return res, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string, userID string) error {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid payment id: %w", err)
	}

	if _, err := s.paymentRepo.FindByID(ctx, paymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment not found")
		}
		return fmt.Errorf("failed to fetch payment: %w", err)
	}

	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

// --- Helpers ---

func (s *paymentService) audit(ctx context.Context, userID, action, entityID, entityName string, details interface{}) {
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

func toPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		QuotationID: p.QuotationID.String(),
		Amount:      p.Amount.StringFixed(2),
		Method:      p.Method,
		Reference:   p.Reference,
		PaidAt:      p.PaidAt.Format("2006-01-02"),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
