package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type QuotationHandler struct {
	quotationService service.QuotationService
}

func NewQuotationHandler(quotationService service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

func (h *QuotationHandler) RegisterRoutes(router *gin.RouterGroup) {
	quotations := router.Group("/api/quotations")
	{
		quotations.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.CreateQuotation)
		quotations.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListQuotations)
		quotations.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetQuotation)
		quotations.PUT("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.UpdateQuotation)
		quotations.DELETE("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.DeleteQuotation)
		quotations.PUT("/:id/status", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.ChangeStatus)
		quotations.PUT("/:id/container", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.AssignContainer)
	}
}

// CreateQuotation creates a quotation and runs the landed-cost calculation
// @Summary      Create quotation
// @Description  Creates a quotation from a shipment payload; all landed costs are computed server-side
// @Tags         quotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateQuotationRequest  true  "Create Quotation Payload"
// @Success      201      {object}  response.Response{data=service.QuotationResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req service.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, quotation))
}

// ListQuotations returns a paginated quotation list
// @Summary      List quotations
// @Description  Retrieves a paginated list of quotations, filterable by status, client, and number
// @Tags         quotations
// @Security     BearerAuth
// @Produce      json
// @Param        status        query     string  false  "Filter by status (DRAFT, SENT, ACCEPTED, REJECTED)"
// @Param        client        query     string  false  "Filter by client name (partial match)"
// @Param        quotation_no  query     string  false  "Filter by quotation number"
// @Param        page          query     int     false  "Page number (default 1)"
// @Param        limit         query     int     false  "Number of items per page (default 20)"
// @Success      200           {object}  response.Response{data=object}
// @Failure      500           {object}  response.Response
// @Router       /api/quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	p := pagination.Parse(c)

	filter := service.QuotationFilter{
		Status:      c.Query("status"),
		ClientName:  c.Query("client"),
		QuotationNo: c.Query("quotation_no"),
		Page:        p.Page,
		Limit:       p.Limit,
	}

	quotations, total, err := h.quotationService.ListQuotations(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"quotations": quotations,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
	}))
}

// GetQuotation returns a quotation with its full cost breakdown
// @Summary      Get quotation
// @Description  Retrieves a quotation by ID including the per-product cost breakdown
// @Tags         quotations
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.Response{data=service.QuotationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quotation))
}

// UpdateQuotation resubmits a quotation and recalculates all costs
// @Summary      Update quotation
// @Description  Replaces the quotation's shipment data and re-runs the cost calculation
// @Tags         quotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Quotation ID"
// @Param        payload  body      service.UpdateQuotationRequest  true  "Update Quotation Payload"
// @Success      200      {object}  response.Response{data=service.QuotationResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	var req service.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), c.Param("id"), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quotation))
}

// DeleteQuotation removes a quotation
// @Summary      Delete quotation
// @Description  Deletes a quotation and its suppliers/products
// @Tags         quotations
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.quotationService.DeleteQuotation(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "quotation deleted"))
}

// ChangeStatus transitions a quotation through its lifecycle
// @Summary      Change quotation status
// @Description  Moves a quotation between DRAFT, SENT, ACCEPTED, and REJECTED
// @Tags         quotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Quotation ID"
// @Param        payload  body      ChangeStatusRequest  true  "New Status"
// @Success      200      {object}  response.Response{data=service.QuotationResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/quotations/{id}/status [put]
func (h *QuotationHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quotation, err := h.quotationService.ChangeStatus(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quotation))
}

// AssignContainer links a quotation to a shipping container
// @Summary      Assign container
// @Description  Assigns an accepted quotation's cargo to a container
// @Tags         quotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Quotation ID"
// @Param        payload  body      AssignContainerRequest  true  "Container Assignment"
// @Success      200      {object}  response.Response{data=service.QuotationResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/quotations/{id}/container [put]
func (h *QuotationHandler) AssignContainer(c *gin.Context) {
	var req AssignContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quotation, err := h.quotationService.AssignContainer(c.Request.Context(), c.Param("id"), req.ContainerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quotation))
}

// --- Request bodies ---

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT SENT ACCEPTED REJECTED"`
}

type AssignContainerRequest struct {
	ContainerID string `json:"container_id" binding:"required"`
}
