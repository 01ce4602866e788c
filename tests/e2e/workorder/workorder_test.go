//go:build e2e

package workorder_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "fleet-workflow/internal/handler/dto/response"
	"fleet-workflow/internal/usecase/commands"
	"fleet-workflow/internal/usecase/queries"
	"fleet-workflow/tests/common/authtest"
	"fleet-workflow/tests/common/dbtest"
	"fleet-workflow/tests/common/httptest"
	"fleet-workflow/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	workOrdersURL = "/api/work-orders"
	registerURL   = "/api/work-orders/register"
	orderURL      = "/api/work-orders/%s"
	decisionURL   = "/api/work-orders/%s/decision"
	completeURL   = "/api/work-orders/%s/complete"
	expireURL     = "/api/work-orders/%s/expire"
	vehicleURL    = "/api/vehicles/%s"
	unreadURL     = "/api/notifications/unread"
)

type WorkOrderSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *WorkOrderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *WorkOrderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestWorkOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WorkOrderSuite))
}

func (s *WorkOrderSuite) registerNew(token string, parts ...map[string]any) *commands.TransitionResult {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, map[string]any{
		"plate":             "ABC-123",
		"kind":              "correctivo",
		"measured_odometer": 15000,
		"parts":             parts,
	}, token)
	var res commands.TransitionResult
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
	return &res
}

func part(id string, qty int) map[string]any {
	return map[string]any{"id": id, "brand": "Bosch", "product": "Repuesto " + id, "quantity": qty}
}

// =============================================================================
// Full lifecycle: register, approve, complete
// =============================================================================

func (s *WorkOrderSuite) TestLifecycle() {
	s.Run("Normal case: parts move reserved, then consumed or released", func() {
		t := s.T()
		dbtest.CreateTestVehicle(t, s.DB, "ABC-123", "Transportes Andinos", 14000)
		dbtest.CreateTestPart(t, s.DB, "P1", "Filtro de aceite", 10)
		dbtest.CreateTestPart(t, s.DB, "P2", "Pastillas de freno", 5)
		tecnico := s.jwt.TecnicoToken(t)
		admin := s.jwt.AdminToken(t)

		created := s.registerNew(tecnico, part("P1", 2), part("P2", 1))
		require.Equal(t, "pendiente", created.Status.String())

		available, reserved, _ := dbtest.PartQuantities(t, s.DB, "P1")
		require.Equal(t, 8, available)
		require.Equal(t, 2, reserved)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(vehicleURL, "ABC-123"), nil, tecnico)
		var history resdto.VehicleHistoryResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &history)
		require.Equal(t, int64(15000), history.Vehicle.Odometer)

		// technicians cannot review
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(decisionURL, created.ID), map[string]any{"outcome": "approve"}, tecnico)
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(decisionURL, created.ID), map[string]any{
			"outcome": "approve",
			"adjustments": []map[string]any{
				{"id": "P1", "brand": "Bosch", "product": "Repuesto P1", "quantity": 1, "unit_price": "12.50"},
			},
		}, admin)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(completeURL, created.ID), map[string]any{
			"final_diagnosis": "  cambio de filtro  ",
		}, tecnico)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, created.ID), nil, tecnico)
		var actual resdto.WorkOrderResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &actual)

		price := decimal.RequireFromString("12.50")
		expected := resdto.WorkOrderResponse{
			ID:         created.ID,
			Plate:      "ABC-123",
			Kind:       "correctivo",
			Status:     "completado",
			Diagnosis:  "cambio de filtro",
			MeasuredKm: 15000,
			PreviousKm: 14000,
			Distance:   1000,
			Requested: []resdto.PartResponse{
				{ID: "P1", Brand: "Bosch", Product: "Repuesto P1", Quantity: 2},
				{ID: "P2", Brand: "Bosch", Product: "Repuesto P2", Quantity: 1},
			},
			Adjusted: []resdto.PartResponse{
				{ID: "P1", Brand: "Bosch", Product: "Repuesto P1", Quantity: 1, UnitPrice: &price},
			},
			Cost: decimal.RequireFromString("12.5"),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.WorkOrderResponse{}, "ScheduledAt", "StartedAt", "EndedAt", "UpdatedAt"),
			cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("work order mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, actual.EndedAt)

		available, reserved, consumed := dbtest.PartQuantities(t, s.DB, "P1")
		require.Equal(t, [3]int{9, 0, 1}, [3]int{available, reserved, consumed})
		available, reserved, consumed = dbtest.PartQuantities(t, s.DB, "P2")
		require.Equal(t, [3]int{5, 0, 0}, [3]int{available, reserved, consumed})

		// pendiente and completado notify admins; aprobado notifies technicians
		require.Equal(t, 2, dbtest.CountNotifications(t, s.DB, "admin"))
		require.Equal(t, 1, dbtest.CountNotifications(t, s.DB, "tecnico"))
	})

	s.Run("Error case: shortfall reserves nothing", func() {
		t := s.T()
		dbtest.CreateTestVehicle(t, s.DB, "ABC-123", "Transportes Andinos", 14000)
		dbtest.CreateTestPart(t, s.DB, "P1", "Filtro de aceite", 10)
		dbtest.CreateTestPart(t, s.DB, "P2", "Pastillas de freno", 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, map[string]any{
			"plate":             "ABC-123",
			"kind":              "preventivo",
			"measured_odometer": 15000,
			"parts":             []map[string]any{part("P1", 2), part("P2", 3)},
		}, s.jwt.TecnicoToken(t))

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")
		available, reserved, _ := dbtest.PartQuantities(t, s.DB, "P1")
		require.Equal(t, 10, available)
		require.Equal(t, 0, reserved)
	})

	s.Run("Error case: decision on a completed order conflicts", func() {
		t := s.T()
		dbtest.CreateTestVehicle(t, s.DB, "ABC-123", "Transportes Andinos", 14000)
		dbtest.CreateTestPart(t, s.DB, "P1", "Filtro de aceite", 10)
		admin := s.jwt.AdminToken(t)

		created := s.registerNew(s.jwt.TecnicoToken(t), part("P1", 1))
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(decisionURL, created.ID), map[string]any{"outcome": "deny"}, admin)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(decisionURL, created.ID), map[string]any{"outcome": "deny"}, admin)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")

		available, reserved, _ := dbtest.PartQuantities(t, s.DB, "P1")
		require.Equal(t, 10, available)
		require.Equal(t, 0, reserved)
	})
}

// =============================================================================
// Concurrent registrations competing for one SKU
// =============================================================================

func (s *WorkOrderSuite) TestConcurrentRegistrations() {
	s.Run("Normal case: only the registrations stock can cover succeed", func() {
		t := s.T()
		const (
			available = 10
			perOrder  = 3
			attempts  = 8
		)
		dbtest.CreateTestVehicle(t, s.DB, "ABC-123", "Transportes Andinos", 14000)
		dbtest.CreateTestPart(t, s.DB, "P1", "Filtro de aceite", available)
		token := s.jwt.TecnicoToken(t)
		body := map[string]any{
			"plate":             "ABC-123",
			"kind":              "correctivo",
			"measured_odometer": 15000,
			"parts":             []map[string]any{part("P1", perOrder)},
		}

		codes := make([]int, attempts)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, token).Code
			}()
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		require.Equal(t, available/perOrder, created)
		require.Equal(t, attempts-available/perOrder, conflicts)

		free, reserved, consumed := dbtest.PartQuantities(t, s.DB, "P1")
		require.Equal(t, available, free+reserved+consumed)
		require.Equal(t, created*perOrder, reserved)
		require.Zero(t, consumed)

		var orders int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM work_orders WHERE status = 'pendiente'").Scan(&orders)
		require.NoError(t, err)
		require.Equal(t, created, orders)
	})
}

// =============================================================================
// Scheduling and expiry
// =============================================================================

func (s *WorkOrderSuite) TestScheduleAndExpire() {
	s.Run("Normal case: scheduled order shows up and can be expired", func() {
		t := s.T()
		dbtest.CreateTestVehicle(t, s.DB, "XYZ-789", "Minera Sur", 5000)
		admin := s.jwt.AdminToken(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, workOrdersURL, map[string]any{
			"plate":        "XYZ-789",
			"kind":         "preventivo",
			"scheduled_at": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		}, admin)
		var created commands.TransitionResult
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.Equal(t, "programado", created.Status.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(expireURL, created.ID), nil, admin)
		var expired commands.TransitionResult
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &expired)
		require.Equal(t, "expirado", expired.Status.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, unreadURL, nil, admin)
		var unread []queries.NotificationView
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &unread)
		require.Len(t, unread, 2)
	})

	s.Run("Error case: unknown plate", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, workOrdersURL, map[string]any{
			"plate":        "NOPE-000",
			"kind":         "preventivo",
			"scheduled_at": time.Now().Add(time.Hour).Format(time.RFC3339),
		}, s.jwt.AdminToken(t))
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "")
	})
}
