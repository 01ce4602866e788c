package api

import (
	"io"
	"net/http"
	"time"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/domain/user"
	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/handler/middleware"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

var (
	errUnknownTopic   = errs.NotFound("unknown topic")
	errForeignChannel = errs.New("channel belongs to another role")
)

type SubscriptionHandler struct {
	source    shared.MessageSource
	keepAlive time.Duration
}

func NewSubscriptionHandler(source shared.MessageSource) *SubscriptionHandler {
	return &SubscriptionHandler{source: source, keepAlive: keepAliveInterval}
}

// WithKeepAlive changes how often an idle stream sends a comment line.
func (h *SubscriptionHandler) WithKeepAlive(d time.Duration) *SubscriptionHandler {
	h.keepAlive = d
	return h
}

// @Summary Subscribe to a live topic
// @Description Server-Sent Events stream of calendarTecnico, Actividades, admin or tecnico
// @Tags subscriptions
// @Produce text/event-stream
// @Security BearerAuth
// @Param topic path string true "Topic"
// @Success 200 {string} string "event stream"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/subscriptions/{topic} [get]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	topic := c.Param("topic")
	if !isTopic(topic) {
		httperr.Abort(c, errs.WithDetail(errUnknownTopic, "topic "+topic), "Unknown topic")
		return
	}
	if role, _ := middleware.GetUserRole(c); !mayFollow(role, topic) {
		httperr.AbortWithError(c, http.StatusForbidden, errForeignChannel, "Insufficient permissions", nil)
		return
	}

	sub := h.source.Subscribe(topic)
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-sub.Events:
			if !ok {
				return false
			}
			c.SSEvent(msg.Topic, string(msg.Payload))
			return true
		case <-ticker.C:
			_, err := io.WriteString(w, ": keep-alive\n\n")
			return err == nil
		}
	})
}

func isTopic(topic string) bool {
	switch topic {
	case shared.TopicCalendar, shared.TopicActivities:
		return true
	}
	_, err := notification.NewChannel(topic)
	return err == nil
}

// Role channels are private to their role. Administrators may follow both.
func mayFollow(role user.Role, topic string) bool {
	ch, err := notification.NewChannel(topic)
	if err != nil {
		return true
	}
	return role == user.RoleAdmin || role.Channel() == ch
}
