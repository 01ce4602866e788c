package api

import (
	"net/http"
	"strings"

	reqdto "fleet-workflow/internal/handler/dto/request"
	resdto "fleet-workflow/internal/handler/dto/response"
	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/usecase/commands"
	"fleet-workflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	cmds  commands.WorkOrderCommands
	q     queries.WorkOrderQueries
	clock clock.Clock
}

func NewWorkOrderHandler(cmds commands.WorkOrderCommands, q queries.WorkOrderQueries, clk clock.Clock) *WorkOrderHandler {
	return &WorkOrderHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Schedule work order
// @Description Schedule a maintenance for a registered vehicle
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleWorkOrderRequest true "Schedule request"
// @Success 201 {object} commands.TransitionResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/work-orders [post]
func (h *WorkOrderHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Schedule(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Schedule failed")
		return
	}
	h.created(c, result)
}

// @Summary Register work order
// @Description Register an executed maintenance that was not scheduled, reserving its parts
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterWorkOrderRequest true "Registration"
// @Success 201 {object} commands.TransitionResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-orders/register [post]
func (h *WorkOrderHandler) RegisterNew(c *gin.Context) {
	var req reqdto.RegisterWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(h.clock.Now())
	if err != nil {
		httperr.Abort(c, err, "Invalid parts")
		return
	}
	result, err := h.cmds.RegisterNew(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err, "Registration failed")
		return
	}
	h.created(c, result)
}

// @Summary Register scheduled work order
// @Description Register the execution of a scheduled order, or resubmit one sent back for revision
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param request body reqdto.RegisterScheduledRequest true "Registration"
// @Success 200 {object} commands.TransitionResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-orders/{id}/register [post]
func (h *WorkOrderHandler) RegisterScheduled(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid id")
		return
	}
	var req reqdto.RegisterScheduledRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(h.clock.Now())
	if err != nil {
		httperr.Abort(c, err, "Invalid parts")
		return
	}
	result, err := h.cmds.RegisterScheduled(c.Request.Context(), id, cmd)
	if err != nil {
		httperr.Abort(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Review work order
// @Description Deny, send back for revision, or approve a pending order
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param request body reqdto.DecisionRequest true "Decision"
// @Success 200 {object} commands.TransitionResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-orders/{id}/decision [post]
func (h *WorkOrderHandler) Decide(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid id")
		return
	}
	var req reqdto.DecisionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	decision, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err, "Invalid decision")
		return
	}
	result, err := h.cmds.ReviewDecision(c.Request.Context(), id, decision)
	if err != nil {
		httperr.Abort(c, err, "Decision failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Complete work order
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param request body reqdto.CompleteRequest true "Completion"
// @Success 200 {object} commands.TransitionResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-orders/{id}/complete [post]
func (h *WorkOrderHandler) Complete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid id")
		return
	}
	var req reqdto.CompleteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Complete(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Completion failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Expire work order
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} commands.TransitionResult
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-orders/{id}/expire [post]
func (h *WorkOrderHandler) Expire(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid id")
		return
	}
	result, err := h.cmds.Expire(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Expiry failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get work order
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} resdto.WorkOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Work order not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkOrderView(view))
}

// @Summary Completed work orders
// @Description Search completed orders, six per page
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param plate query string false "Plate"
// @Param kind query string false "preventivo or correctivo"
// @Param from query string false "End date from (YYYY-MM-DD)"
// @Param to query string false "End date until, exclusive (YYYY-MM-DD)"
// @Param page query int false "Page, from 1"
// @Success 200 {object} queries.HistoryPage
// @Failure 400 {object} httperr.Response
// @Router /api/work-orders/history [get]
func (h *WorkOrderHandler) History(c *gin.Context) {
	loc := h.clock.Now().Location()
	from, err := queryDate(c, "from", loc)
	if err != nil {
		httperr.Abort(c, err, "Invalid filter")
		return
	}
	to, err := queryDate(c, "to", loc)
	if err != nil {
		httperr.Abort(c, err, "Invalid filter")
		return
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		httperr.Abort(c, err, "Invalid page")
		return
	}

	filter := queries.HistoryFilter{
		Plate: strings.ToUpper(c.Query("plate")),
		Kind:  c.Query("kind"),
		From:  from,
		To:    to,
	}
	result, err := h.q.History(c.Request.Context(), filter, page)
	if err != nil {
		httperr.Abort(c, err, "History failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Technicians' calendar
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CalendarResponse
// @Router /api/work-orders/calendar [get]
func (h *WorkOrderHandler) Calendar(c *gin.Context) {
	payload, err := h.q.Calendar(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Calendar failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(payload))
}

// @Summary Active work feed
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WorkOrderResponse
// @Router /api/work-orders/activities [get]
func (h *WorkOrderHandler) Activities(c *gin.Context) {
	feed, err := h.q.Activities(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Activities failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkOrderList(feed))
}

// @Summary Day overview
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), today by default"
// @Success 200 {object} resdto.DayOverviewResponse
// @Failure 400 {object} httperr.Response
// @Router /api/work-orders/day [get]
func (h *WorkOrderHandler) Day(c *gin.Context) {
	now := h.clock.Now()
	date, err := queryDate(c, "date", now.Location())
	if err != nil {
		httperr.Abort(c, err, "Invalid date")
		return
	}
	if date == nil {
		date = &now
	}
	overview, err := h.q.DayOverview(c.Request.Context(), *date)
	if err != nil {
		httperr.Abort(c, err, "Day overview failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayOverview(overview))
}

func (h *WorkOrderHandler) created(c *gin.Context, result *commands.TransitionResult) {
	c.Header("Location", "/api/work-orders/"+result.ID.String())
	c.JSON(http.StatusCreated, result)
}
