package queries

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/report.go -package=queriesmock

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	reportMonths        = 12
	vehicleTopParts     = 4
	fleetTopParts       = 3
	consumedTopParts    = 5
	scheduledChartRange = 6
	othersBucket        = "otros"
	emptyProduct        = "-"
)

var ErrInvalidMonths = errs.Validation("months must be between 0 and 24")

type MonthlyKilometers struct {
	Month      string `json:"month"`
	Kilometers int64  `json:"kilometers"`
}

type Costs struct {
	Total      decimal.Decimal `json:"total"`
	Preventive decimal.Decimal `json:"preventive"`
	Corrective decimal.Decimal `json:"corrective"`
	LastMonth  decimal.Decimal `json:"last_month"`
}

type ProductCost struct {
	Product string          `json:"product"`
	Cost    decimal.Decimal `json:"cost"`
}

type TopParts struct {
	Month  string          `json:"month"`
	Parts  []ProductCost   `json:"parts"`
	Others decimal.Decimal `json:"others"`
}

type MonthlyCounts struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Denied    int    `json:"denied"`
}

type MonthlyUptime struct {
	Month string  `json:"month"`
	Hours float64 `json:"hours"`
}

type ScheduledDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type ProductQuantity struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type MonthlyConsumption struct {
	Month  string            `json:"month"`
	Top    []ProductQuantity `json:"top"`
	Others ProductQuantity   `json:"others"`
}

type VehicleReport struct {
	Plate            string              `json:"plate"`
	Kilometers       []MonthlyKilometers `json:"kilometers"`
	Costs            Costs               `json:"costs"`
	TopParts         TopParts            `json:"top_parts"`
	Counts           MonthlyCounts       `json:"counts"`
	Uptime           []MonthlyUptime     `json:"uptime"`
	UptimePercentage float64             `json:"uptime_percentage"`
}

type FleetReport struct {
	Counts         MonthlyCounts        `json:"counts"`
	TopParts       []ProductCost        `json:"top_parts"`
	ScheduledChart []ScheduledDay       `json:"scheduled_chart"`
	ConsumedParts  []MonthlyConsumption `json:"consumed_parts"`
}

type ReportQueries interface {
	VehicleReport(ctx context.Context, plate string, at time.Time) (*VehicleReport, error)
	FleetReport(ctx context.Context, at time.Time, months int) (*FleetReport, error)
}

type reportQueriesImpl struct {
	store    WorkOrderReadStore
	vehicles VehicleReader
	clock    clock.Clock
}

func NewReportQueries(store WorkOrderReadStore, vehicles VehicleReader, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{store: store, vehicles: vehicles, clock: clk}
}

func (q *reportQueriesImpl) VehicleReport(ctx context.Context, plate string, at time.Time) (*VehicleReport, error) {
	v, err := q.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	at = q.normalize(at, now)

	orders, err := q.store.List(ctx, WorkOrderFilter{
		Plate:    v.Plate,
		Statuses: []string{workorder.StatusCompletado.String(), workorder.StatusDenegado.String()},
	})
	if err != nil {
		return nil, err
	}

	return &VehicleReport{
		Plate:            v.Plate,
		Kilometers:       KilometersByMonth(orders, at),
		Costs:            CostsOf(orders, at),
		TopParts:         TopPartsByCost(orders, at),
		Counts:           CountsInMonth(orders, at),
		Uptime:           UptimeByMonth(orders, at),
		UptimePercentage: UptimePercentage(orders, now),
	}, nil
}

func (q *reportQueriesImpl) FleetReport(ctx context.Context, at time.Time, months int) (*FleetReport, error) {
	if months < 0 || months > 24 {
		return nil, ErrInvalidMonths
	}
	at = q.normalize(at, q.clock.Now())

	from := clock.StartOfMonth(at).AddDate(0, -max(months, scheduledChartRange), 0)
	to := clock.StartOfMonth(at).AddDate(0, scheduledChartRange+1, 0)
	orders, err := q.store.List(ctx, WorkOrderFilter{
		Statuses: []string{
			workorder.StatusCompletado.String(),
			workorder.StatusDenegado.String(),
			workorder.StatusProgramado.String(),
		},
		From: &from,
		To:   &to,
	})
	if err != nil {
		return nil, err
	}

	return &FleetReport{
		Counts:         CountsInMonth(orders, at),
		TopParts:       FleetTopParts(orders, at),
		ScheduledChart: ScheduledChart(orders, at),
		ConsumedParts:  ConsumedPartsByMonth(orders, at, months),
	}, nil
}

// normalize defaults a zero date to now and moves it to the reporting location.
func (q *reportQueriesImpl) normalize(at, now time.Time) time.Time {
	if at.IsZero() {
		return now
	}
	return at.In(now.Location())
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

// trailingMonths returns the first instant of each of the n months ending with at's month.
func trailingMonths(at time.Time, n int) []time.Time {
	start := clock.StartOfMonth(at)
	out := make([]time.Time, n)
	for i := range n {
		out[i] = start.AddDate(0, i-n+1, 0)
	}
	return out
}

func inMonth(t, month time.Time) bool {
	t = t.In(month.Location())
	return !t.Before(month) && t.Before(month.AddDate(0, 1, 0))
}

func completedIn(orders []*WorkOrderView, month time.Time) []*WorkOrderView {
	var out []*WorkOrderView
	for _, o := range orders {
		if o.Status == workorder.StatusCompletado.String() && inMonth(o.ScheduledAt, month) {
			out = append(out, o)
		}
	}
	return out
}

func sumCost(orders []*WorkOrderView) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Cost())
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// KilometersByMonth sums the distance of completed orders over the twelve
// months ending with at's month.
func KilometersByMonth(orders []*WorkOrderView, at time.Time) []MonthlyKilometers {
	months := trailingMonths(at, reportMonths)
	out := make([]MonthlyKilometers, len(months))
	for i, m := range months {
		var km int64
		for _, o := range completedIn(orders, m) {
			km += o.Distance()
		}
		out[i] = MonthlyKilometers{Month: monthLabel(m), Kilometers: km}
	}
	return out
}

// CostsOf prices the adjusted parts of completed orders in at's month,
// split by kind, next to the previous month's total.
func CostsOf(orders []*WorkOrderView, at time.Time) Costs {
	month := clock.StartOfMonth(at)
	current := completedIn(orders, month)

	var preventive, corrective []*WorkOrderView
	for _, o := range current {
		switch o.Kind {
		case workorder.KindPreventivo.String():
			preventive = append(preventive, o)
		case workorder.KindCorrectivo.String():
			corrective = append(corrective, o)
		}
	}

	return Costs{
		Total:      sumCost(current),
		Preventive: sumCost(preventive),
		Corrective: sumCost(corrective),
		LastMonth:  sumCost(completedIn(orders, month.AddDate(0, -1, 0))),
	}
}

// rankByCost groups adjusted parts by product and orders them by descending cost.
func rankByCost(orders []*WorkOrderView) []ProductCost {
	byProduct := map[string]decimal.Decimal{}
	for _, o := range orders {
		for _, p := range o.Adjusted {
			byProduct[p.Product] = byProduct[p.Product].Add(p.Cost())
		}
	}
	ranked := make([]ProductCost, 0, len(byProduct))
	for product, cost := range byProduct {
		ranked = append(ranked, ProductCost{Product: product, Cost: cost})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Cost.Cmp(ranked[j].Cost); c != 0 {
			return c > 0
		}
		return ranked[i].Product < ranked[j].Product
	})
	return ranked
}

// TopPartsByCost ranks the products of the month up to at; the four most
// expensive are listed and the rest are summed into others. Missing places are
// filled with "-".
func TopPartsByCost(orders []*WorkOrderView, at time.Time) TopParts {
	var current []*WorkOrderView
	for _, o := range completedIn(orders, clock.StartOfMonth(at)) {
		if !o.ScheduledAt.After(at) {
			current = append(current, o)
		}
	}
	ranked := rankByCost(current)

	top := TopParts{Month: monthLabel(at), Others: decimal.Zero}
	for i := range vehicleTopParts {
		if i < len(ranked) {
			top.Parts = append(top.Parts, ranked[i])
		} else {
			top.Parts = append(top.Parts, ProductCost{Product: emptyProduct, Cost: decimal.Zero})
		}
	}
	for _, rest := range ranked[min(vehicleTopParts, len(ranked)):] {
		top.Others = top.Others.Add(rest.Cost)
	}
	return top
}

// CountsInMonth counts completed and denied orders scheduled in at's month.
func CountsInMonth(orders []*WorkOrderView, at time.Time) MonthlyCounts {
	month := clock.StartOfMonth(at)
	counts := MonthlyCounts{Month: monthLabel(at)}
	for _, o := range orders {
		if !inMonth(o.ScheduledAt, month) {
			continue
		}
		switch o.Status {
		case workorder.StatusCompletado.String():
			counts.Completed++
		case workorder.StatusDenegado.String():
			counts.Denied++
		}
	}
	return counts
}

// UptimeByMonth is, for each of the twelve months ending with at's month, the
// hours of the month minus the hours spent in completed maintenance.
func UptimeByMonth(orders []*WorkOrderView, at time.Time) []MonthlyUptime {
	months := trailingMonths(at, reportMonths)
	out := make([]MonthlyUptime, len(months))
	for i, m := range months {
		down := 0.0
		for _, o := range completedIn(orders, m) {
			down += o.DowntimeHours()
		}
		hours := float64(clock.DaysInMonth(m) * 24)
		out[i] = MonthlyUptime{Month: monthLabel(m), Hours: round2(hours - down)}
	}
	return out
}

// UptimePercentage is the share of time since the first completed maintenance
// started that the vehicle was not in the shop. Zero without history.
func UptimePercentage(orders []*WorkOrderView, now time.Time) float64 {
	var first *time.Time
	down := 0.0
	for _, o := range orders {
		if o.Status != workorder.StatusCompletado.String() || o.StartedAt == nil {
			continue
		}
		if first == nil || o.StartedAt.Before(*first) {
			first = o.StartedAt
		}
		down += o.DowntimeHours()
	}
	if first == nil {
		return 0
	}
	total := now.Sub(*first).Hours()
	if total <= 0 {
		return 0
	}
	return (total - down) / total
}

// FleetTopParts is the three products with the highest cost across the fleet in at's month.
func FleetTopParts(orders []*WorkOrderView, at time.Time) []ProductCost {
	ranked := rankByCost(completedIn(orders, clock.StartOfMonth(at)))
	return ranked[:min(fleetTopParts, len(ranked))]
}

// ScheduledChart counts programado orders per day within six months either side of at.
func ScheduledChart(orders []*WorkOrderView, at time.Time) []ScheduledDay {
	from := at.AddDate(0, -scheduledChartRange, 0)
	to := at.AddDate(0, scheduledChartRange, 0)
	loc := at.Location()

	counts := map[time.Time]int{}
	for _, o := range orders {
		if o.Status != workorder.StatusProgramado.String() {
			continue
		}
		t := o.ScheduledAt.In(loc)
		if t.Before(from) || t.After(to) {
			continue
		}
		counts[clock.StartOfDay(t)]++
	}

	out := make([]ScheduledDay, 0, len(counts))
	for day, n := range counts {
		out = append(out, ScheduledDay{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ConsumedPartsByMonth lists, for at's month and the months before it, the five
// products consumed in the largest quantity plus the rest as "otros".
func ConsumedPartsByMonth(orders []*WorkOrderView, at time.Time, months int) []MonthlyConsumption {
	out := make([]MonthlyConsumption, 0, months+1)
	for _, m := range trailingMonths(at, months+1) {
		byProduct := map[string]int{}
		for _, o := range completedIn(orders, m) {
			for _, p := range o.Adjusted {
				byProduct[p.Product] += p.Quantity
			}
		}
		ranked := make([]ProductQuantity, 0, len(byProduct))
		for product, q := range byProduct {
			ranked = append(ranked, ProductQuantity{Product: product, Quantity: q})
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].Quantity != ranked[j].Quantity {
				return ranked[i].Quantity > ranked[j].Quantity
			}
			return strings.Compare(ranked[i].Product, ranked[j].Product) < 0
		})

		entry := MonthlyConsumption{
			Month:  monthLabel(m),
			Top:    ranked[:min(consumedTopParts, len(ranked))],
			Others: ProductQuantity{Product: othersBucket},
		}
		for _, rest := range ranked[min(consumedTopParts, len(ranked)):] {
			entry.Others.Quantity += rest.Quantity
		}
		out = append(out, entry)
	}
	return out
}
