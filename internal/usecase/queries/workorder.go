package queries

//go:generate mockgen -source=workorder.go -destination=../../../tests/mock/queries/workorder.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/shared"

	"github.com/google/uuid"
)

// HistoryPageSize is the number of completed orders per history page.
const HistoryPageSize = 6

var ErrInvalidPage = errs.Validation("page must be positive")

type WorkOrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WorkOrderView, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]*WorkOrderView, error)
	SearchCompleted(ctx context.Context, filter HistoryFilter, limit, offset int) ([]*WorkOrderView, error)
	CountCompleted(ctx context.Context, filter HistoryFilter) (int, error)
}

// VehicleReader is the part of the vehicle registry the read side needs.
type VehicleReader interface {
	FindByPlate(ctx context.Context, plate string) (*shared.Vehicle, error)
}

type WorkOrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WorkOrderView, error)
	History(ctx context.Context, filter HistoryFilter, page int) (*HistoryPage, error)
	// Calendar is the payload of the calendarTecnico topic.
	Calendar(ctx context.Context) (*CalendarPayload, error)
	// Activities is the payload of the Actividades topic.
	Activities(ctx context.Context) ([]*WorkOrderView, error)
	DayOverview(ctx context.Context, date time.Time) (*DayOverview, error)
	VehicleHistory(ctx context.Context, plate string) (*VehicleHistory, error)
}

type workOrderQueriesImpl struct {
	store    WorkOrderReadStore
	vehicles VehicleReader
	clock    clock.Clock
}

func NewWorkOrderQueries(store WorkOrderReadStore, vehicles VehicleReader, clk clock.Clock) WorkOrderQueries {
	return &workOrderQueriesImpl{store: store, vehicles: vehicles, clock: clk}
}

func (q *workOrderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WorkOrderView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *workOrderQueriesImpl) History(ctx context.Context, filter HistoryFilter, page int) (*HistoryPage, error) {
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return nil, ErrInvalidPage
	}
	filter.Plate = strings.TrimSpace(filter.Plate)

	total, err := q.store.CountCompleted(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows, err := q.store.SearchCompleted(ctx, filter, HistoryPageSize, (page-1)*HistoryPageSize)
	if err != nil {
		return nil, err
	}

	clients := map[string]string{}
	items := make([]HistoryItem, 0, len(rows))
	for _, o := range rows {
		client, ok := clients[o.Plate]
		if !ok {
			client = q.clientOf(ctx, o.Plate)
			clients[o.Plate] = client
		}
		items = append(items, HistoryItem{
			ID:        o.ID,
			Plate:     o.Plate,
			Client:    client,
			Kind:      o.Kind,
			StartedAt: o.StartedAt,
			EndedAt:   o.EndedAt,
			PartsUsed: len(o.Adjusted),
			PartsCost: o.Cost(),
		})
	}

	return &HistoryPage{
		Page:       page,
		TotalPages: (total + HistoryPageSize - 1) / HistoryPageSize,
		Items:      items,
	}, nil
}

// clientOf tolerates vehicles removed from the registry after the order closed.
func (q *workOrderQueriesImpl) clientOf(ctx context.Context, plate string) string {
	v, err := q.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		return ""
	}
	return v.Client
}

func (q *workOrderQueriesImpl) Calendar(ctx context.Context) (*CalendarPayload, error) {
	now := q.clock.Now()

	from, to := CalendarWindow(now)
	scheduled, err := q.store.List(ctx, WorkOrderFilter{
		Statuses: []string{workorder.StatusProgramado.String()},
		From:     &from,
		To:       &to,
	})
	if err != nil {
		return nil, err
	}

	since := FeedSince(now, calendarLookbackDays)
	recent, err := q.store.List(ctx, WorkOrderFilter{Statuses: feedStatuses(), From: &since})
	if err != nil {
		return nil, err
	}

	return &CalendarPayload{
		Calendar:   CalendarCounts(scheduled, now),
		WorkOrders: ActiveFeed(recent, since),
	}, nil
}

func (q *workOrderQueriesImpl) Activities(ctx context.Context) ([]*WorkOrderView, error) {
	since := FeedSince(q.clock.Now(), 0)
	orders, err := q.store.List(ctx, WorkOrderFilter{Statuses: feedStatuses(), From: &since})
	if err != nil {
		return nil, err
	}
	return ActiveFeed(orders, since), nil
}

func (q *workOrderQueriesImpl) DayOverview(ctx context.Context, date time.Time) (*DayOverview, error) {
	from := clock.StartOfDay(date.In(q.clock.Now().Location()))
	to := from.AddDate(0, 0, 1)

	orders, err := q.store.List(ctx, WorkOrderFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	total := 0
	for _, s := range []workorder.Status{
		workorder.StatusProgramado,
		workorder.StatusPendiente,
		workorder.StatusRevision,
		workorder.StatusCompletado,
	} {
		total += counts[s.String()]
	}

	return &DayOverview{
		Date:       from.Format(calendarDayLayout),
		Counts:     counts,
		Scheduled:  counts[workorder.StatusProgramado.String()],
		Total:      total,
		WorkOrders: orders,
	}, nil
}

func (q *workOrderQueriesImpl) VehicleHistory(ctx context.Context, plate string) (*VehicleHistory, error) {
	v, err := q.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	orders, err := q.store.List(ctx, WorkOrderFilter{Plate: v.Plate})
	if err != nil {
		return nil, err
	}
	return &VehicleHistory{
		Vehicle: VehicleView{
			Plate:        v.Plate,
			Client:       v.Client,
			Brand:        v.Brand,
			Model:        v.Model,
			ContractType: v.ContractType,
			Odometer:     v.Odometer,
			CreatedAt:    v.CreatedAt,
		},
		WorkOrders: orders,
	}, nil
}
