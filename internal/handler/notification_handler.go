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

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/api/notifications")
	notifications.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff))
	{
		notifications.GET("", h.ListNotifications)
		notifications.PUT("/:id/read", h.MarkRead)
		notifications.PUT("/read-all", h.MarkAllRead)
	}
}

// ListNotifications returns the user's notifications
// @Summary      List notifications
// @Description  Retrieves the authenticated user's notifications, newest first
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        unread  query     bool  false  "Only unread notifications"
// @Param        page    query     int   false  "Page number (default 1)"
// @Param        limit   query     int   false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /api/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	p := pagination.Parse(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, total, err := h.notificationService.ListNotifications(
		c.Request.Context(), c.GetString("userID"), unreadOnly, p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"total":         total,
		"page":          p.Page,
		"limit":         p.Limit,
	}))
}

// MarkRead marks one notification as read
// @Summary      Mark notification read
// @Description  Marks a notification belonging to the authenticated user as read
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "notification marked read"))
}

// MarkAllRead marks all of the user's notifications as read
// @Summary      Mark all notifications read
// @Description  Marks every notification belonging to the authenticated user as read
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(c.Request.Context(), c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "all notifications marked read"))
}
