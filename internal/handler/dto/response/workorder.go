package response

import (
	"time"

	"fleet-workflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PartResponse struct {
	ID        string           `json:"id"`
	Brand     string           `json:"brand"`
	Product   string           `json:"product"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

type WorkOrderResponse struct {
	ID               uuid.UUID       `json:"id"`
	Plate            string          `json:"plate"`
	Kind             string          `json:"kind"`
	Status           string          `json:"status"`
	ScheduledAt      time.Time       `json:"scheduled_at"`
	StartedAt        *time.Time      `json:"started_at,omitempty"`
	EndedAt          *time.Time      `json:"ended_at,omitempty"`
	Diagnosis        string          `json:"diagnosis,omitempty"`
	RequestedChanges string          `json:"requested_changes,omitempty"`
	MeasuredKm       int64           `json:"measured_km"`
	PreviousKm       int64           `json:"previous_km"`
	Distance         int64           `json:"distance"`
	Requested        []PartResponse  `json:"requested_parts"`
	Adjusted         []PartResponse  `json:"adjusted_parts"`
	Cost             decimal.Decimal `json:"cost"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromWorkOrderView(v *queries.WorkOrderView) *WorkOrderResponse {
	res := &WorkOrderResponse{}
	_ = copier.Copy(res, v)
	if res.Requested == nil {
		res.Requested = []PartResponse{}
	}
	if res.Adjusted == nil {
		res.Adjusted = []PartResponse{}
	}
	res.Distance = v.Distance()
	res.Cost = v.Cost()
	return res
}

func FromWorkOrderList(views []*queries.WorkOrderView) []*WorkOrderResponse {
	res := make([]*WorkOrderResponse, len(views))
	for i, v := range views {
		res[i] = FromWorkOrderView(v)
	}
	return res
}

type CalendarResponse struct {
	Calendar   []queries.CalendarDay `json:"calendar"`
	WorkOrders []*WorkOrderResponse  `json:"work_orders"`
}

func FromCalendar(p *queries.CalendarPayload) *CalendarResponse {
	calendar := p.Calendar
	if calendar == nil {
		calendar = []queries.CalendarDay{}
	}
	return &CalendarResponse{Calendar: calendar, WorkOrders: FromWorkOrderList(p.WorkOrders)}
}

type DayOverviewResponse struct {
	Date       string               `json:"date"`
	Counts     map[string]int       `json:"counts"`
	Scheduled  int                  `json:"scheduled"`
	Total      int                  `json:"total"`
	WorkOrders []*WorkOrderResponse `json:"work_orders"`
}

func FromDayOverview(d *queries.DayOverview) *DayOverviewResponse {
	return &DayOverviewResponse{
		Date:       d.Date,
		Counts:     d.Counts,
		Scheduled:  d.Scheduled,
		Total:      d.Total,
		WorkOrders: FromWorkOrderList(d.WorkOrders),
	}
}

type VehicleResponse struct {
	Plate        string    `json:"plate"`
	Client       string    `json:"client"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	ContractType string    `json:"contract_type"`
	Odometer     int64     `json:"odometer"`
	CreatedAt    time.Time `json:"created_at"`
}

type VehicleHistoryResponse struct {
	Vehicle    VehicleResponse      `json:"vehicle"`
	WorkOrders []*WorkOrderResponse `json:"work_orders"`
}

func FromVehicleHistory(h *queries.VehicleHistory) *VehicleHistoryResponse {
	res := &VehicleHistoryResponse{WorkOrders: FromWorkOrderList(h.WorkOrders)}
	_ = copier.Copy(&res.Vehicle, &h.Vehicle)
	return res
}

// FromVehicle maps any value with the vehicle's field names, the registry
// record as well as its read view.
func FromVehicle(v any) *VehicleResponse {
	res := &VehicleResponse{}
	_ = copier.Copy(res, v)
	return res
}
