//go:build unit

package queries_test

import (
	"testing"
	"time"

	"fleet-workflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lima = time.FixedZone("PET", -5*60*60)

func limaTime(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, lima)
}

func pricedPart(product string, quantity int, price int64) queries.PartView {
	p := decimal.NewFromInt(price)
	return queries.PartView{ID: "SKU-" + product, Brand: "Bosch", Product: product, Quantity: quantity, UnitPrice: &p}
}

type viewOpt func(*queries.WorkOrderView)

func withWindow(start time.Time, hours int) viewOpt {
	return func(v *queries.WorkOrderView) {
		end := start.Add(time.Duration(hours) * time.Hour)
		v.StartedAt = &start
		v.EndedAt = &end
	}
}

func withKm(previous, measured int64) viewOpt {
	return func(v *queries.WorkOrderView) {
		v.PreviousKm = previous
		v.MeasuredKm = measured
	}
}

func withAdjusted(parts ...queries.PartView) viewOpt {
	return func(v *queries.WorkOrderView) { v.Adjusted = parts }
}

func view(status, kind string, scheduledAt time.Time, opts ...viewOpt) *queries.WorkOrderView {
	v := &queries.WorkOrderView{
		ID:          uuid.New(),
		Plate:       "ABC-123",
		Kind:        kind,
		Status:      status,
		ScheduledAt: scheduledAt,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// reportFixture: two completed orders and one denied in March 2024 before the
// report date, one completed later in March and one completed in February.
func reportFixture() []*queries.WorkOrderView {
	return []*queries.WorkOrderView{
		view("completado", "preventivo", limaTime(2024, time.March, 5, 8),
			withWindow(limaTime(2024, time.March, 5, 8), 4),
			withKm(1000, 1500),
			withAdjusted(pricedPart("A", 2, 10), pricedPart("B", 1, 50))),
		view("completado", "correctivo", limaTime(2024, time.March, 10, 9),
			withWindow(limaTime(2024, time.March, 10, 9), 2),
			withKm(1500, 2000),
			withAdjusted(pricedPart("C", 1, 100), pricedPart("D", 3, 5), pricedPart("E", 1, 1), pricedPart("A", 1, 10))),
		view("denegado", "correctivo", limaTime(2024, time.March, 12, 8)),
		view("completado", "correctivo", limaTime(2024, time.March, 20, 8),
			withAdjusted(pricedPart("F", 1, 1000))),
		view("completado", "preventivo", limaTime(2024, time.February, 20, 8),
			withWindow(limaTime(2024, time.February, 20, 8), 1),
			withKm(700, 1000),
			withAdjusted(pricedPart("B", 1, 50))),
	}
}

var reportAt = limaTime(2024, time.March, 15, 12)

func TestKilometersByMonth(t *testing.T) {
	km := queries.KilometersByMonth(reportFixture(), reportAt)

	require.Len(t, km, 12)
	assert.Equal(t, "4/2023", km[0].Month)
	assert.Equal(t, queries.MonthlyKilometers{Month: "2/2024", Kilometers: 300}, km[10])
	assert.Equal(t, queries.MonthlyKilometers{Month: "3/2024", Kilometers: 1000}, km[11])
	assert.Zero(t, km[5].Kilometers)
}

func TestCostsOf(t *testing.T) {
	costs := queries.CostsOf(reportFixture(), reportAt)

	assert.True(t, decimal.NewFromInt(1196).Equal(costs.Total), "total: %s", costs.Total)
	assert.True(t, decimal.NewFromInt(70).Equal(costs.Preventive), "preventive: %s", costs.Preventive)
	assert.True(t, decimal.NewFromInt(1126).Equal(costs.Corrective), "corrective: %s", costs.Corrective)
	assert.True(t, decimal.NewFromInt(50).Equal(costs.LastMonth), "last month: %s", costs.LastMonth)
}

func TestTopPartsByCost(t *testing.T) {
	t.Run("ranks products up to the report date", func(t *testing.T) {
		top := queries.TopPartsByCost(reportFixture(), reportAt)

		assert.Equal(t, "3/2024", top.Month)
		require.Len(t, top.Parts, 4)
		products := make([]string, len(top.Parts))
		for i, p := range top.Parts {
			products[i] = p.Product
		}
		assert.Equal(t, []string{"C", "B", "A", "D"}, products)
		assert.True(t, decimal.NewFromInt(30).Equal(top.Parts[2].Cost))
		assert.True(t, decimal.NewFromInt(1).Equal(top.Others))
	})

	t.Run("pads missing places", func(t *testing.T) {
		orders := []*queries.WorkOrderView{
			view("completado", "preventivo", limaTime(2024, time.March, 1, 8), withAdjusted(pricedPart("A", 1, 10))),
		}

		top := queries.TopPartsByCost(orders, reportAt)

		require.Len(t, top.Parts, 4)
		assert.Equal(t, "A", top.Parts[0].Product)
		for _, p := range top.Parts[1:] {
			assert.Equal(t, "-", p.Product)
			assert.True(t, p.Cost.IsZero())
		}
		assert.True(t, top.Others.IsZero())
	})
}

func TestCountsInMonth(t *testing.T) {
	counts := queries.CountsInMonth(reportFixture(), reportAt)

	assert.Equal(t, queries.MonthlyCounts{Month: "3/2024", Completed: 3, Denied: 1}, counts)
}

func TestUptimeByMonth(t *testing.T) {
	uptime := queries.UptimeByMonth(reportFixture(), reportAt)

	require.Len(t, uptime, 12)
	assert.Equal(t, queries.MonthlyUptime{Month: "3/2024", Hours: 738}, uptime[11])
	assert.Equal(t, queries.MonthlyUptime{Month: "2/2024", Hours: 695}, uptime[10])
	assert.Equal(t, queries.MonthlyUptime{Month: "4/2023", Hours: 720}, uptime[0])
}

func TestUptimePercentage(t *testing.T) {
	start := limaTime(2024, time.January, 1, 0)

	t.Run("share of time outside maintenance", func(t *testing.T) {
		orders := []*queries.WorkOrderView{
			view("completado", "preventivo", start, withWindow(start, 6)),
			view("completado", "preventivo", start.Add(50*time.Hour), withWindow(start.Add(50*time.Hour), 4)),
			view("denegado", "preventivo", start.Add(-24*time.Hour), withWindow(start.Add(-24*time.Hour), 4)),
		}

		got := queries.UptimePercentage(orders, start.Add(100*time.Hour))

		assert.InDelta(t, 0.9, got, 1e-9)
	})

	t.Run("zero without history", func(t *testing.T) {
		assert.Zero(t, queries.UptimePercentage(nil, start))
	})
}

func TestFleetTopParts(t *testing.T) {
	top := queries.FleetTopParts(reportFixture(), reportAt)

	require.Len(t, top, 3)
	assert.Equal(t, "F", top[0].Product)
	assert.Equal(t, "C", top[1].Product)
	assert.Equal(t, "B", top[2].Product)
}

func TestScheduledChart(t *testing.T) {
	orders := []*queries.WorkOrderView{
		view("programado", "preventivo", limaTime(2024, time.April, 1, 9)),
		view("programado", "preventivo", limaTime(2024, time.May, 1, 9)),
		view("programado", "correctivo", limaTime(2024, time.April, 1, 15)),
		view("programado", "preventivo", limaTime(2025, time.January, 1, 9)),
		view("completado", "preventivo", limaTime(2024, time.April, 2, 9)),
	}

	chart := queries.ScheduledChart(orders, reportAt)

	require.Len(t, chart, 2)
	assert.True(t, chart[0].Date.Equal(limaTime(2024, time.April, 1, 0)))
	assert.Equal(t, 2, chart[0].Count)
	assert.True(t, chart[1].Date.Equal(limaTime(2024, time.May, 1, 0)))
	assert.Equal(t, 1, chart[1].Count)
}

func TestConsumedPartsByMonth(t *testing.T) {
	consumed := queries.ConsumedPartsByMonth(reportFixture(), reportAt, 1)

	require.Len(t, consumed, 2)

	feb := consumed[0]
	assert.Equal(t, "2/2024", feb.Month)
	assert.Equal(t, []queries.ProductQuantity{{Product: "B", Quantity: 1}}, feb.Top)
	assert.Equal(t, queries.ProductQuantity{Product: "otros", Quantity: 0}, feb.Others)

	mar := consumed[1]
	assert.Equal(t, "3/2024", mar.Month)
	assert.Equal(t, []queries.ProductQuantity{
		{Product: "A", Quantity: 3},
		{Product: "D", Quantity: 3},
		{Product: "B", Quantity: 1},
		{Product: "C", Quantity: 1},
		{Product: "E", Quantity: 1},
	}, mar.Top)
	assert.Equal(t, queries.ProductQuantity{Product: "otros", Quantity: 1}, mar.Others)
}
