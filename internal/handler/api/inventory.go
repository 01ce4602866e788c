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

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Create part
// @Description Add a SKU to the parts catalogue with its initial stock
// @Tags parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePartRequest true "Part"
// @Success 201 {object} resdto.PartStockResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/parts [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	stock, err := h.cmds.CreatePart(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create part failed")
		return
	}
	c.Header("Location", "/api/parts/"+stock.ID())
	c.JSON(http.StatusCreated, resdto.FromStock(stock))
}

// @Summary Restock part
// @Tags parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "SKU"
// @Param request body reqdto.RestockRequest true "Units received"
// @Success 200 {object} resdto.PartStockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/parts/{id}/restock [post]
func (h *InventoryHandler) Restock(c *gin.Context) {
	var req reqdto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	stock, err := h.cmds.Restock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		httperr.Abort(c, err, "Restock failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStock(stock))
}

// @Summary Get part
// @Tags parts
// @Produce json
// @Security BearerAuth
// @Param id path string true "SKU"
// @Success 200 {object} resdto.PartStockResponse
// @Failure 404 {object} httperr.Response
// @Router /api/parts/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	view, err := h.q.GetPart(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Part not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartStockView(view))
}

// @Summary List parts
// @Tags parts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PartStockResponse
// @Router /api/parts [get]
func (h *InventoryHandler) List(c *gin.Context) {
	views, err := h.q.ListParts(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "List parts failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartStockList(views))
}
