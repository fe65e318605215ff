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

type ContainerHandler struct {
	containerService service.ContainerService
}

func NewContainerHandler(containerService service.ContainerService) *ContainerHandler {
	return &ContainerHandler{containerService: containerService}
}

func (h *ContainerHandler) RegisterRoutes(router *gin.RouterGroup) {
	containers := router.Group("/api/containers")
	{
		containers.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateContainer)
		containers.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListContainers)
		containers.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetContainer)
		containers.PUT("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.UpdateContainer)
		containers.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteContainer)
	}
}

// CreateContainer registers a shipping container
// @Summary      Create container
// @Description  Registers a new shipping container for cargo consolidation
// @Tags         containers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateContainerRequest  true  "Create Container Payload"
// @Success      201      {object}  response.Response{data=service.ContainerResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/containers [post]
func (h *ContainerHandler) CreateContainer(c *gin.Context) {
	var req service.CreateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	container, err := h.containerService.CreateContainer(c.Request.Context(), req, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, container))
}

// ListContainers returns a paginated container list
// @Summary      List containers
// @Description  Retrieves a paginated list of containers, optionally filtered by status
// @Tags         containers
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status (LOADING, IN_TRANSIT, IN_CUSTOMS, DELIVERED)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /api/containers [get]
func (h *ContainerHandler) ListContainers(c *gin.Context) {
	p := pagination.Parse(c)

	containers, total, err := h.containerService.ListContainers(c.Request.Context(), c.Query("status"), p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"containers": containers,
		"total":      total,
		"page":       p.Page,
		"limit":      p.Limit,
	}))
}

// GetContainer returns a single container
// @Summary      Get container
// @Description  Retrieves a container by ID
// @Tags         containers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Container ID"
// @Success      200  {object}  response.Response{data=service.ContainerResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/containers/{id} [get]
func (h *ContainerHandler) GetContainer(c *gin.Context) {
	container, err := h.containerService.GetContainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, container))
}

// UpdateContainer modifies a container
// @Summary      Update container
// @Description  Updates container details; a status change notifies managers
// @Tags         containers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Container ID"
// @Param        payload  body      service.UpdateContainerRequest  true  "Update Container Payload"
// @Success      200      {object}  response.Response{data=service.ContainerResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/containers/{id} [put]
func (h *ContainerHandler) UpdateContainer(c *gin.Context) {
	var req service.UpdateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	container, err := h.containerService.UpdateContainer(c.Request.Context(), c.Param("id"), req, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, container))
}

// DeleteContainer removes a container
// @Summary      Delete container
// @Description  Deletes a container by ID
// @Tags         containers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Container ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/containers/{id} [delete]
func (h *ContainerHandler) DeleteContainer(c *gin.Context) {
	if err := h.containerService.DeleteContainer(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "container deleted"))
}
