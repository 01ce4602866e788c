//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/queries"
	"fleet-workflow/internal/usecase/shared"
	queriesmock "fleet-workflow/tests/mock/queries"
	sharedmock "fleet-workflow/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type workOrderQueriesFixture struct {
	store    *queriesmock.MockWorkOrderReadStore
	vehicles *queriesmock.MockVehicleReader
	clock    *clock.MockClock
	queries  queries.WorkOrderQueries
}

func newWorkOrderQueriesFixture(t *testing.T) *workOrderQueriesFixture {
	ctrl := gomock.NewController(t)
	f := &workOrderQueriesFixture{
		store:    queriesmock.NewMockWorkOrderReadStore(ctrl),
		vehicles: queriesmock.NewMockVehicleReader(ctrl),
		clock:    clock.NewMockClock(limaTime(2024, time.March, 15, 10)),
	}
	f.queries = queries.NewWorkOrderQueries(f.store, f.vehicles, f.clock)
	return f
}

func TestWorkOrderQueries_History(t *testing.T) {
	ctx := context.Background()

	t.Run("pages completed orders and resolves clients once per plate", func(t *testing.T) {
		f := newWorkOrderQueriesFixture(t)
		filter := queries.HistoryFilter{Plate: " ABC-123 "}
		trimmed := queries.HistoryFilter{Plate: "ABC-123"}

		rows := []*queries.WorkOrderView{
			view("completado", "preventivo", limaTime(2024, time.March, 1, 8), withAdjusted(pricedPart("A", 2, 10))),
			view("completado", "correctivo", limaTime(2024, time.March, 2, 8), withAdjusted(pricedPart("B", 1, 5), pricedPart("C", 1, 5))),
		}
		f.store.EXPECT().CountCompleted(ctx, trimmed).Return(8, nil)
		f.store.EXPECT().SearchCompleted(ctx, trimmed, queries.HistoryPageSize, queries.HistoryPageSize).Return(rows, nil)
		f.vehicles.EXPECT().FindByPlate(ctx, "ABC-123").Return(&shared.Vehicle{Plate: "ABC-123", Client: "Transportes Lima"}, nil).Times(1)

		page, err := f.queries.History(ctx, filter, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Transportes Lima", page.Items[0].Client)
		assert.Equal(t, 1, page.Items[0].PartsUsed)
		assert.Equal(t, "20", page.Items[0].PartsCost.String())
		assert.Equal(t, 2, page.Items[1].PartsUsed)
		assert.Equal(t, "10", page.Items[1].PartsCost.String())
	})

	t.Run("page zero is the first page", func(t *testing.T) {
		f := newWorkOrderQueriesFixture(t)
		f.store.EXPECT().CountCompleted(ctx, gomock.Any()).Return(0, nil)
		f.store.EXPECT().SearchCompleted(ctx, gomock.Any(), queries.HistoryPageSize, 0).Return(nil, nil)

		page, err := f.queries.History(ctx, queries.HistoryFilter{}, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Zero(t, page.TotalPages)
		assert.Empty(t, page.Items)
	})

	t.Run("negative page", func(t *testing.T) {
		f := newWorkOrderQueriesFixture(t)

		_, err := f.queries.History(ctx, queries.HistoryFilter{}, -1)

		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("unknown vehicle leaves the client empty", func(t *testing.T) {
		f := newWorkOrderQueriesFixture(t)
		f.store.EXPECT().CountCompleted(ctx, gomock.Any()).Return(1, nil)
		f.store.EXPECT().SearchCompleted(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.WorkOrderView{view("completado", "preventivo", limaTime(2024, time.March, 1, 8))}, nil)
		f.vehicles.EXPECT().FindByPlate(ctx, "ABC-123").Return(nil, errs.NotFound("vehicle not found"))

		page, err := f.queries.History(ctx, queries.HistoryFilter{}, 1)

		require.NoError(t, err)
		assert.Empty(t, page.Items[0].Client)
	})
}

func TestWorkOrderQueries_Calendar(t *testing.T) {
	ctx := context.Background()
	f := newWorkOrderQueriesFixture(t)
	today := limaTime(2024, time.March, 15, 0)

	scheduled := []*queries.WorkOrderView{
		view("programado", "preventivo", limaTime(2024, time.March, 20, 9)),
		view("programado", "preventivo", limaTime(2024, time.March, 20, 14)),
		view("programado", "correctivo", limaTime(2024, time.April, 2, 9)),
	}
	recent := []*queries.WorkOrderView{
		view("pendiente", "preventivo", limaTime(2024, time.March, 12, 9)),
		view("programado", "preventivo", limaTime(2024, time.March, 10, 9)),
	}

	f.store.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter queries.WorkOrderFilter) ([]*queries.WorkOrderView, error) {
			assert.Equal(t, []string{"programado"}, filter.Statuses)
			assert.True(t, filter.From.Equal(today))
			assert.True(t, filter.To.Equal(today.AddDate(0, 2, 0)))
			return scheduled, nil
		})
	f.store.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter queries.WorkOrderFilter) ([]*queries.WorkOrderView, error) {
			assert.NotContains(t, filter.Statuses, "expirado")
			assert.True(t, filter.From.Equal(today.AddDate(0, 0, -7)))
			return recent, nil
		})

	payload, err := f.queries.Calendar(ctx)

	require.NoError(t, err)
	assert.Equal(t, []queries.CalendarDay{
		{Day: "20/03/2024", Count: 2},
		{Day: "02/04/2024", Count: 1},
	}, payload.Calendar)
	require.Len(t, payload.WorkOrders, 2)
	assert.Equal(t, "programado", payload.WorkOrders[0].Status)
	assert.Equal(t, "pendiente", payload.WorkOrders[1].Status)
}

func TestWorkOrderQueries_DayOverview(t *testing.T) {
	ctx := context.Background()
	f := newWorkOrderQueriesFixture(t)
	day := limaTime(2024, time.March, 20, 0)

	f.store.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter queries.WorkOrderFilter) ([]*queries.WorkOrderView, error) {
			assert.True(t, filter.From.Equal(day))
			assert.True(t, filter.To.Equal(day.AddDate(0, 0, 1)))
			return []*queries.WorkOrderView{
				view("programado", "preventivo", day.Add(9*time.Hour)),
				view("programado", "preventivo", day.Add(10*time.Hour)),
				view("completado", "preventivo", day.Add(11*time.Hour)),
				view("aprobado", "preventivo", day.Add(12*time.Hour)),
				view("expirado", "preventivo", day.Add(13*time.Hour)),
			}, nil
		})

	overview, err := f.queries.DayOverview(ctx, day.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "20/03/2024", overview.Date)
	assert.Equal(t, 2, overview.Scheduled)
	assert.Equal(t, 3, overview.Total)
	assert.Equal(t, 1, overview.Counts["expirado"])
	assert.Len(t, overview.WorkOrders, 5)
}

func TestWorkOrderQueries_VehicleHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every order of the vehicle", func(t *testing.T) {
		f := newWorkOrderQueriesFixture(t)
		f.vehicles.EXPECT().FindByPlate(ctx, "abc-123").Return(&shared.Vehicle{Plate: "ABC-123", Client: "Transportes Lima", Odometer: 1500}, nil)
		f.store.EXPECT().List(ctx, queries.WorkOrderFilter{Plate: "ABC-123"}).
			Return([]*queries.WorkOrderView{view("completado", "preventivo", limaTime(2024, time.March, 1, 8))}, nil)

		history, err := f.queries.VehicleHistory(ctx, "abc-123")

		require.NoError(t, err)
		assert.Equal(t, "ABC-123", history.Vehicle.Plate)
		assert.Equal(t, int64(1500), history.Vehicle.Odometer)
		assert.Len(t, history.WorkOrders, 1)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		f := newWorkOrderQueriesFixture(t)
		f.vehicles.EXPECT().FindByPlate(ctx, "ZZZ-999").Return(nil, errs.NotFound("vehicle not found"))

		_, err := f.queries.VehicleHistory(ctx, "ZZZ-999")

		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestReportQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("vehicle report reads completed and denied orders of the plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWorkOrderReadStore(ctrl)
		vehicles := queriesmock.NewMockVehicleReader(ctrl)
		q := queries.NewReportQueries(store, vehicles, clock.NewMockClock(reportAt))

		vehicles.EXPECT().FindByPlate(ctx, "ABC-123").Return(&shared.Vehicle{Plate: "ABC-123"}, nil)
		store.EXPECT().List(ctx, queries.WorkOrderFilter{
			Plate:    "ABC-123",
			Statuses: []string{"completado", "denegado"},
		}).Return(reportFixture(), nil)

		report, err := q.VehicleReport(ctx, "ABC-123", time.Time{})

		require.NoError(t, err)
		assert.Equal(t, "ABC-123", report.Plate)
		assert.Len(t, report.Kilometers, 12)
		assert.Equal(t, 3, report.Counts.Completed)
		assert.Equal(t, "3/2024", report.TopParts.Month)
	})

	t.Run("fleet report rejects out of range months", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewReportQueries(queriesmock.NewMockWorkOrderReadStore(ctrl), queriesmock.NewMockVehicleReader(ctrl), clock.NewMockClock(reportAt))

		_, err := q.FleetReport(ctx, reportAt, 25)

		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("fleet report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWorkOrderReadStore(ctrl)
		q := queries.NewReportQueries(store, queriesmock.NewMockVehicleReader(ctrl), clock.NewMockClock(reportAt))

		store.EXPECT().List(ctx, gomock.Any()).Return(reportFixture(), nil)

		report, err := q.FleetReport(ctx, reportAt, 2)

		require.NoError(t, err)
		assert.Len(t, report.ConsumedParts, 3)
		assert.Len(t, report.TopParts, 3)
		assert.Equal(t, 1, report.Counts.Denied)
	})
}

func TestNotificationQueries_Unread(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockNotificationStore(ctrl)
		q := queries.NewNotificationQueries(store)

		n, err := notification.ForTransition(uuid.New(), "ABC-123", "pendiente", reportAt)
		require.NoError(t, err)
		store.EXPECT().Unread(ctx, notification.ChannelAdmin, 100).Return([]*notification.Notification{n}, nil)

		views, err := q.Unread(ctx, "admin", 1000)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "admin", views[0].Channel)
		assert.Equal(t, n.ID(), views[0].ID)
	})

	t.Run("unknown channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewNotificationQueries(sharedmock.NewMockNotificationStore(ctrl))

		_, err := q.Unread(ctx, "cliente", 10)

		assert.ErrorIs(t, err, notification.ErrInvalidChannel)
	})
}
