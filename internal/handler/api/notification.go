package api

import (
	"net/http"

	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/handler/middleware"
	"fleet-workflow/internal/usecase/commands"
	"fleet-workflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary Unread notifications
// @Description Unread notifications of a channel, the caller's own by default
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param channel query string false "admin or tecnico"
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {array} queries.NotificationView
// @Failure 400 {object} httperr.Response
// @Router /api/notifications/unread [get]
func (h *NotificationHandler) Unread(c *gin.Context) {
	channel := c.Query("channel")
	if channel == "" {
		if role, ok := middleware.GetUserRole(c); ok {
			channel = role.Channel().String()
		}
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		httperr.Abort(c, err, "Invalid limit")
		return
	}
	items, err := h.q.Unread(c.Request.Context(), channel, limit)
	if err != nil {
		httperr.Abort(c, err, "Notifications failed")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid id")
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Mark read failed")
		return
	}
	c.Status(http.StatusNoContent)
}
