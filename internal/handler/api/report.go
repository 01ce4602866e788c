package api

import (
	"net/http"
	"time"

	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultConsumptionMonths = 6

type ReportHandler struct {
	q     queries.ReportQueries
	clock clock.Clock
}

func NewReportHandler(q queries.ReportQueries, clk clock.Clock) *ReportHandler {
	return &ReportHandler{q: q, clock: clk}
}

// @Summary Vehicle report
// @Description Kilometers, costs, top parts, counts and uptime of one vehicle
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Plate"
// @Param at query string false "Reference day (YYYY-MM-DD), today by default"
// @Success 200 {object} queries.VehicleReport
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reports/vehicles/{plate} [get]
func (h *ReportHandler) Vehicle(c *gin.Context) {
	at, ok := h.referenceDay(c)
	if !ok {
		return
	}
	report, err := h.q.VehicleReport(c.Request.Context(), c.Param("plate"), at)
	if err != nil {
		httperr.Abort(c, err, "Vehicle report failed")
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Fleet report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param at query string false "Reference day (YYYY-MM-DD), today by default"
// @Param months query int false "Months of part consumption (0-24, default 6)"
// @Success 200 {object} queries.FleetReport
// @Failure 400 {object} httperr.Response
// @Router /api/reports/fleet [get]
func (h *ReportHandler) Fleet(c *gin.Context) {
	at, ok := h.referenceDay(c)
	if !ok {
		return
	}
	months, err := queryInt(c, "months", defaultConsumptionMonths)
	if err != nil {
		httperr.Abort(c, err, "Invalid months")
		return
	}
	report, err := h.q.FleetReport(c.Request.Context(), at, months)
	if err != nil {
		httperr.Abort(c, err, "Fleet report failed")
		return
	}
	c.JSON(http.StatusOK, report)
}

// referenceDay returns the zero time when no day was asked for, which the
// reports read as now.
func (h *ReportHandler) referenceDay(c *gin.Context) (time.Time, bool) {
	day, err := queryDate(c, "at", h.clock.Now().Location())
	if err != nil {
		httperr.Abort(c, err, "Invalid date")
		return time.Time{}, false
	}
	if day == nil {
		return time.Time{}, true
	}
	return day.Add(24*time.Hour - time.Nanosecond), true
}
