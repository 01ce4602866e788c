package api

import (
	"net/http"

	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/handler/middleware"
	"fleet-workflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("request is not authenticated")

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// @Summary Current user
// @Description Identity and notification channel of the token holder
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id": userID.String(),
		"role":    role.String(),
		"channel": role.Channel().String(),
	})
}
