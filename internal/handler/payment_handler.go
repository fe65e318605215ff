package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/api/payments")
	{
		payments.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.RegisterPayment)
		payments.DELETE("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.DeletePayment)
	}

	router.GET("/api/quotations/:id/balance",
		middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetQuotationBalance)
}

// RegisterPayment records a payment against a quotation
// @Summary      Register payment
// @Description  Records a payment against a quotation and notifies managers
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterPaymentRequest  true  "Register Payment Payload"
// @Success      201      {object}  response.Response{data=service.PaymentResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/payments [post]
func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	var req service.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	payment, err := h.paymentService.RegisterPayment(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, payment))
}

// GetQuotationBalance returns payment history and outstanding balance
// @Summary      Get quotation balance
// @Description  Returns the payments registered against a quotation and the outstanding balance
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.Response{data=service.QuotationBalanceResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/quotations/{id}/balance [get]
func (h *PaymentHandler) GetQuotationBalance(c *gin.Context) {
	balance, err := h.paymentService.GetQuotationBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, balance))
}

// DeletePayment removes a mistakenly registered payment
// @Summary      Delete payment
// @Description  Deletes a payment by ID
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "payment deleted"))
}
