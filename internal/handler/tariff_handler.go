package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TariffHandler struct {
	tariffService service.TariffService
}

func NewTariffHandler(tariffService service.TariffService) *TariffHandler {
	return &TariffHandler{tariffService: tariffService}
}

func (h *TariffHandler) RegisterRoutes(router *gin.RouterGroup) {
	tariffs := router.Group("/api/tariffs")
	{
		tariffs.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListTariffBrackets)
		tariffs.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateTariffBracket)
		tariffs.PUT("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.UpdateTariffBracket)
		tariffs.DELETE("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.DeleteTariffBracket)
	}

	surcharges := router.Group("/api/surcharges")
	{
		surcharges.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListSurchargeBrackets)
		surcharges.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateSurchargeBracket)
		surcharges.DELETE("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.DeleteSurchargeBracket)
	}
}

// ListTariffBrackets returns the tariff table
// @Summary      List tariff brackets
// @Description  Retrieves tariff brackets, optionally filtered by client category
// @Tags         tariffs
// @Security     BearerAuth
// @Produce      json
// @Param        category  query     string  false  "Client category (NEW, RETURNING, PARTNER)"
// @Success      200       {object}  response.Response{data=[]service.TariffBracketResponse}
// @Failure      500       {object}  response.Response
// @Router       /api/tariffs [get]
func (h *TariffHandler) ListTariffBrackets(c *gin.Context) {
	brackets, err := h.tariffService.ListTariffBrackets(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, brackets))
}

// CreateTariffBracket adds a tariff bracket
// @Summary      Create tariff bracket
// @Description  Adds a volume bracket to the tariff table; overlapping ranges for the same category are rejected
// @Tags         tariffs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTariffBracketRequest  true  "Create Tariff Bracket Payload"
// @Success      201      {object}  response.Response{data=service.TariffBracketResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tariffs [post]
func (h *TariffHandler) CreateTariffBracket(c *gin.Context) {
	var req service.CreateTariffBracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	bracket, err := h.tariffService.CreateTariffBracket(c.Request.Context(), req, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, bracket))
}

// UpdateTariffBracket replaces a tariff bracket's range and rate
// @Summary      Update tariff bracket
// @Description  Updates a tariff bracket; the new range must not overlap other brackets of the same category
// @Tags         tariffs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Bracket ID"
// @Param        payload  body      service.CreateTariffBracketRequest  true  "Update Tariff Bracket Payload"
// @Success      200      {object}  response.Response{data=service.TariffBracketResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tariffs/{id} [put]
func (h *TariffHandler) UpdateTariffBracket(c *gin.Context) {
	var req service.CreateTariffBracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	bracket, err := h.tariffService.UpdateTariffBracket(c.Request.Context(), c.Param("id"), req, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, bracket))
}

// DeleteTariffBracket removes a tariff bracket
// @Summary      Delete tariff bracket
// @Description  Deletes a tariff bracket by ID
// @Tags         tariffs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Bracket ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/tariffs/{id} [delete]
func (h *TariffHandler) DeleteTariffBracket(c *gin.Context) {
	if err := h.tariffService.DeleteTariffBracket(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "tariff bracket deleted"))
}

// ListSurchargeBrackets returns the item surcharge table
// @Summary      List surcharge brackets
// @Description  Retrieves the per-item surcharge brackets
// @Tags         surcharges
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.SurchargeBracketResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/surcharges [get]
func (h *TariffHandler) ListSurchargeBrackets(c *gin.Context) {
	brackets, err := h.tariffService.ListSurchargeBrackets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, brackets))
}

// CreateSurchargeBracket adds a surcharge bracket
// @Summary      Create surcharge bracket
// @Description  Adds a volume bracket to the item surcharge table; overlapping ranges are rejected
// @Tags         surcharges
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateSurchargeBracketRequest  true  "Create Surcharge Bracket Payload"
// @Success      201      {object}  response.Response{data=service.SurchargeBracketResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/surcharges [post]
func (h *TariffHandler) CreateSurchargeBracket(c *gin.Context) {
	var req service.CreateSurchargeBracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	bracket, err := h.tariffService.CreateSurchargeBracket(c.Request.Context(), req, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, bracket))
}

// DeleteSurchargeBracket removes a surcharge bracket
// @Summary      Delete surcharge bracket
// @Description  Deletes a surcharge bracket by ID
// @Tags         surcharges
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Bracket ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/surcharges/{id} [delete]
func (h *TariffHandler) DeleteSurchargeBracket(c *gin.Context) {
	if err := h.tariffService.DeleteSurchargeBracket(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "surcharge bracket deleted"))
}
