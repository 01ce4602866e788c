package httperr

import (
	"net/http"
	"strings"

	"fleet-workflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:        http.StatusBadRequest,
	errs.KindNotFound:          http.StatusNotFound,
	errs.KindInsufficientStock: http.StatusConflict,
	errs.KindConflict:          http.StatusConflict,
}

// StatusOf maps an error kind onto the HTTP status the API answers with.
func StatusOf(err error) int {
	if status, ok := kindStatus[errs.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Abort answers with the status matching err's kind. Internal errors keep
// their cause out of the response; other kinds expose the attached details.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}

	var detail any
	if details := errs.Details(err); len(details) > 0 {
		detail = strings.Join(details, "; ")
	}
	AbortWithError(c, status, err, msg, detail)
}
