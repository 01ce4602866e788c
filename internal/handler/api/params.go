package api

import (
	"strconv"
	"strings"
	"time"

	"fleet-workflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = time.DateOnly

var (
	errInvalidID   = errs.Validation("invalid id")
	errInvalidDate = errs.Validation("dates must use the YYYY-MM-DD format")
	errInvalidInt  = errs.Validation("expected an integer")
)

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errs.WithDetail(errInvalidID, "id "+c.Param("id"))
	}
	return id, nil
}

// queryDate parses key as a calendar date in loc. A missing key yields nil.
func queryDate(c *gin.Context, key string, loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return nil, errs.WithDetail(errInvalidDate, key+"="+raw)
	}
	return &t, nil
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.WithDetail(errInvalidInt, key+"="+raw)
	}
	return n, nil
}
