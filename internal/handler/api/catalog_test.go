//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/domain/user"
	"fleet-workflow/internal/handler/api"
	resdto "fleet-workflow/internal/handler/dto/response"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/commands"
	"fleet-workflow/internal/usecase/queries"
	"fleet-workflow/internal/usecase/shared"
	"fleet-workflow/tests/common/httptest"
	commandsmock "fleet-workflow/tests/mock/commands"
	queriesmock "fleet-workflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestInventoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockInventoryCommands(ctrl)
	q := queriesmock.NewMockInventoryQueries(ctrl)
	h := api.NewInventoryHandler(cmds, q)

	r := newRouter()
	g := r.Group("/api/parts", fakeAuth)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("/:id/restock", h.Restock)

	t.Run("create answers 201 with the new stock", func(t *testing.T) {
		stock, err := inventory.NewStock("P1", "Bosch", "Filtro de aceite", 10)
		require.NoError(t, err)
		cmds.EXPECT().CreatePart(gomock.Any(), commands.CreatePartRequest{
			ID: "P1", Brand: "Bosch", Product: "Filtro de aceite", Available: 10,
		}).Return(stock, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/parts", map[string]any{
			"id": "P1", "brand": "Bosch", "product": "Filtro de aceite", "available": 10,
		}, "token")

		var res resdto.PartStockResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
		assert.Equal(t, 10, res.Available)
		assert.Equal(t, 10, res.Total)
		httptest.AssertHeaders(t, rec, map[string]string{"Location": "/api/parts/P1"})
	})

	t.Run("create rejects a duplicate SKU", func(t *testing.T) {
		cmds.EXPECT().CreatePart(gomock.Any(), gomock.Any()).Return(inventory.Stock{}, errs.Conflict("part P1 exists"))

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/parts", map[string]any{
			"id": "P1", "product": "Filtro de aceite",
		}, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Create part failed")
	})

	t.Run("restock requires a positive quantity", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/parts/P1/restock", map[string]any{"quantity": 0}, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("restock beyond the column range is rejected at binding", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/parts/P1/restock", map[string]any{"quantity": int64(1) << 31}, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("restock", func(t *testing.T) {
		stock, _ := inventory.NewStock("P1", "Bosch", "Filtro de aceite", 15)
		cmds.EXPECT().Restock(gomock.Any(), "P1", 5).Return(stock, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/parts/P1/restock", map[string]any{"quantity": 5}, "token")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("get and list", func(t *testing.T) {
		view := &queries.PartStockView{ID: "P1", Product: "Filtro", Available: 3, Reserved: 2, Consumed: 1, Total: 6}
		q.EXPECT().GetPart(gomock.Any(), "P1").Return(view, nil)
		q.EXPECT().ListParts(gomock.Any()).Return([]*queries.PartStockView{view}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/parts/P1", nil, "token")
		var one resdto.PartStockResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &one)
		assert.Equal(t, resdto.PartStockResponse{ID: "P1", Product: "Filtro", Available: 3, Reserved: 2, Consumed: 1, Total: 6}, one)

		rec = httptest.PerformRequest(t, r, http.MethodGet, "/api/parts", nil, "token")
		var all []resdto.PartStockResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &all)
		assert.Len(t, all, 1)
	})

	t.Run("get unknown SKU", func(t *testing.T) {
		q.EXPECT().GetPart(gomock.Any(), "P9").Return(nil, errs.NotFound("part P9"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/parts/P9", nil, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Part not found")
	})
}

func TestVehicleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockVehicleCommands(ctrl)
	q := queriesmock.NewMockWorkOrderQueries(ctrl)
	h := api.NewVehicleHandler(cmds, q)

	r := newRouter()
	g := r.Group("/api/vehicles", fakeAuth)
	g.POST("", h.Register)
	g.GET("/:plate", h.Get)

	t.Run("register", func(t *testing.T) {
		cmds.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.RegisterVehicleRequest) (*shared.Vehicle, error) {
				assert.Equal(t, "ABC-123", req.Plate)
				assert.Equal(t, int64(14000), req.Odometer)
				return &shared.Vehicle{Plate: "ABC-123", Client: "Transportes Andinos", Odometer: 14000}, nil
			})

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/vehicles", map[string]any{
			"plate": "ABC-123", "client": "Transportes Andinos", "odometer": 14000,
		}, "token")

		var res resdto.VehicleResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
		assert.Equal(t, "Transportes Andinos", res.Client)
		httptest.AssertHeaders(t, rec, map[string]string{"Location": "/api/vehicles/ABC-123"})
	})

	t.Run("register without client", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/vehicles", map[string]any{"plate": "ABC-123"}, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("history of an unknown plate", func(t *testing.T) {
		q.EXPECT().VehicleHistory(gomock.Any(), "ZZZ-999").Return(nil, commands.ErrVehicleNotFound)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/vehicles/ZZZ-999", nil, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Vehicle not found")
	})

	t.Run("history", func(t *testing.T) {
		q.EXPECT().VehicleHistory(gomock.Any(), "ABC-123").Return(&queries.VehicleHistory{
			Vehicle:    queries.VehicleView{Plate: "ABC-123", Odometer: 15000},
			WorkOrders: []*queries.WorkOrderView{{ID: uuid.New(), Status: "completado"}},
		}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/vehicles/ABC-123", nil, "token")

		var res resdto.VehicleHistoryResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, int64(15000), res.Vehicle.Odometer)
		assert.Len(t, res.WorkOrders, 1)
	})
}

func TestReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockReportQueries(ctrl)
	h := api.NewReportHandler(q, clock.NewMockClock(time.Date(2024, time.March, 15, 10, 0, 0, 0, lima)))

	r := newRouter()
	g := r.Group("/api/reports", fakeAuth)
	g.GET("/vehicles/:plate", h.Vehicle)
	g.GET("/fleet", h.Fleet)

	t.Run("vehicle report without a day asks for now", func(t *testing.T) {
		q.EXPECT().VehicleReport(gomock.Any(), "ABC-123", time.Time{}).Return(&queries.VehicleReport{Plate: "ABC-123"}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/reports/vehicles/ABC-123", nil, "token")

		var res queries.VehicleReport
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, "ABC-123", res.Plate)
	})

	t.Run("fleet report covers the whole requested day", func(t *testing.T) {
		q.EXPECT().FleetReport(gomock.Any(), gomock.Any(), 3).DoAndReturn(
			func(_ context.Context, at time.Time, _ int) (*queries.FleetReport, error) {
				y, m, d := at.Date()
				assert.Equal(t, 2024, y)
				assert.Equal(t, time.February, m)
				assert.Equal(t, 29, d)
				assert.Equal(t, 23, at.Hour())
				return &queries.FleetReport{}, nil
			})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/reports/fleet?at=2024-02-29&months=3", nil, "token")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("fleet report rejects a non-numeric month count", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/reports/fleet?months=six", nil, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid months")
	})
}

func TestNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockNotificationCommands(ctrl)
	q := queriesmock.NewMockNotificationQueries(ctrl)
	h := api.NewNotificationHandler(cmds, q)

	r := newRouter()
	g := r.Group("/api/notifications", fakeAuth)
	g.GET("/unread", h.Unread)
	g.POST("/:id/read", h.MarkRead)

	t.Run("unread defaults to the caller's channel", func(t *testing.T) {
		q.EXPECT().Unread(gomock.Any(), "admin", 0).Return([]*queries.NotificationView{{ID: uuid.New(), Channel: "admin"}}, nil)

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/notifications/unread", nil, "token",
			map[string]string{"X-Test-Role": string(user.RoleAdmin)})

		var res []queries.NotificationView
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Len(t, res, 1)
	})

	t.Run("unread with explicit channel and limit", func(t *testing.T) {
		q.EXPECT().Unread(gomock.Any(), "tecnico", 5).Return([]*queries.NotificationView{}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/notifications/unread?channel=tecnico&limit=5", nil, "token")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("mark read", func(t *testing.T) {
		id := uuid.New()
		cmds.EXPECT().MarkRead(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/notifications/"+id.String()+"/read", nil, "token")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("mark read of an unknown notification", func(t *testing.T) {
		id := uuid.New()
		cmds.EXPECT().MarkRead(gomock.Any(), id).Return(errs.NotFound("notification missing"))

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/notifications/"+id.String()+"/read", nil, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Mark read failed")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h := api.NewAuthHandler()
	r := newRouter()
	r.GET("/api/auth/me", fakeAuth, h.Me)
	r.GET("/unguarded/me", h.Me)

	rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/auth/me", nil, "token",
		map[string]string{"X-Test-Role": string(user.RoleAdmin)})
	var res map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
	assert.Equal(t, "admin", res["role"])
	assert.Equal(t, "admin", res["channel"])
	assert.NotEmpty(t, res["user_id"])

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/unguarded/me", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
}
