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

type NewsHandler struct {
	newsService service.NewsService
}

func NewNewsHandler(newsService service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) RegisterRoutes(router *gin.RouterGroup) {
	news := router.Group("/api/news")
	{
		news.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListNews)
		news.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetNews)
		news.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateNews)
		news.PUT("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.UpdateNews)
		news.DELETE("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.DeleteNews)
	}
}

// CreateNews publishes an intranet announcement
// @Summary      Create news post
// @Description  Creates an intranet announcement, optionally published immediately
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateNewsRequest  true  "Create News Payload"
// @Success      201      {object}  response.Response{data=service.NewsResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/news [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req service.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	post, err := h.newsService.CreateNews(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, post))
}

// ListNews returns a paginated announcement list
// @Summary      List news posts
// @Description  Retrieves announcements; staff only see published posts
// @Tags         news
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 10)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	p := pagination.Parse(c)

	// Staff only see published posts; admins and managers see drafts too
	publishedOnly := c.GetString("userRole") == model.RoleStaff

	posts, total, err := h.newsService.ListNews(c.Request.Context(), publishedOnly, p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"news":  posts,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	}))
}

// GetNews returns a single announcement
// @Summary      Get news post
// @Description  Retrieves an announcement by ID
// @Tags         news
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "News Post ID"
// @Success      200  {object}  response.Response{data=service.NewsResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/news/{id} [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	post, err := h.newsService.GetNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, post))
}

// UpdateNews edits an announcement
// @Summary      Update news post
// @Description  Updates an announcement's title, body, or published flag
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "News Post ID"
// @Param        payload  body      service.UpdateNewsRequest  true  "Update News Payload"
// @Success      200      {object}  response.Response{data=service.NewsResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/news/{id} [put]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	var req service.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	post, err := h.newsService.UpdateNews(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, post))
}

// DeleteNews removes an announcement
// @Summary      Delete news post
// @Description  Deletes an announcement by ID
// @Tags         news
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "News Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	if err := h.newsService.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "news post deleted"))
}
