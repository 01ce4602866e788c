package api

import (
	"net/http"

	reqdto "fleet-workflow/internal/handler/dto/request"
	resdto "fleet-workflow/internal/handler/dto/response"
	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/usecase/commands"
	"fleet-workflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.WorkOrderQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.WorkOrderQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary Register vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	v, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Vehicle registration failed")
		return
	}
	c.Header("Location", "/api/vehicles/"+v.Plate)
	c.JSON(http.StatusCreated, resdto.FromVehicle(v))
}

// @Summary Vehicle with its work orders
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Plate"
// @Success 200 {object} resdto.VehicleHistoryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/vehicles/{plate} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	history, err := h.q.VehicleHistory(c.Request.Context(), c.Param("plate"))
	if err != nil {
		httperr.Abort(c, err, "Vehicle not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleHistory(history))
}
