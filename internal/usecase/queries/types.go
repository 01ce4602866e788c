package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartView is one line of a work order as stored.
type PartView struct {
	ID        string           `json:"id"`
	Brand     string           `json:"brand"`
	Product   string           `json:"product"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// Cost is zero for unpriced lines.
func (p PartView) Cost() decimal.Decimal {
	if p.UnitPrice == nil {
		return decimal.Zero
	}
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Read models (DTO for read side)
type WorkOrderView struct {
	ID               uuid.UUID  `json:"id"`
	Plate            string     `json:"plate"`
	Kind             string     `json:"kind"`
	Status           string     `json:"status"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	Diagnosis        string     `json:"diagnosis,omitempty"`
	RequestedChanges string     `json:"requested_changes,omitempty"`
	MeasuredKm       int64      `json:"measured_km"`
	PreviousKm       int64      `json:"previous_km"`
	Requested        []PartView `json:"requested_parts"`
	Adjusted         []PartView `json:"adjusted_parts"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Cost is the price of the approved parts.
func (v *WorkOrderView) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, p := range v.Adjusted {
		total = total.Add(p.Cost())
	}
	return total
}

// DowntimeHours is the time between start and end of the maintenance.
func (v *WorkOrderView) DowntimeHours() float64 {
	if v.StartedAt == nil || v.EndedAt == nil {
		return 0
	}
	return v.EndedAt.Sub(*v.StartedAt).Hours()
}

func (v *WorkOrderView) Distance() int64 {
	return v.MeasuredKm - v.PreviousKm
}

// WorkOrderFilter narrows List. Zero values mean no restriction; To is exclusive.
type WorkOrderFilter struct {
	Plate    string
	Statuses []string
	From     *time.Time
	To       *time.Time
}

// HistoryFilter narrows the completed-orders search. From and To apply to the end date.
type HistoryFilter struct {
	Plate string
	Kind  string
	From  *time.Time
	To    *time.Time
}

type HistoryItem struct {
	ID        uuid.UUID       `json:"id"`
	Plate     string          `json:"plate"`
	Client    string          `json:"client"`
	Kind      string          `json:"kind"`
	StartedAt *time.Time      `json:"started_at"`
	EndedAt   *time.Time      `json:"ended_at"`
	PartsUsed int             `json:"parts_used"`
	PartsCost decimal.Decimal `json:"parts_cost"`
}

type HistoryPage struct {
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Items      []HistoryItem `json:"items"`
}

// CalendarDay counts the orders scheduled on one day, formatted DD/MM/YYYY.
type CalendarDay struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// CalendarPayload is what the technicians' calendar shows.
type CalendarPayload struct {
	Calendar   []CalendarDay    `json:"calendar"`
	WorkOrders []*WorkOrderView `json:"work_orders"`
}

type DayOverview struct {
	Date       string           `json:"date"`
	Counts     map[string]int   `json:"counts"`
	Scheduled  int              `json:"scheduled"`
	Total      int              `json:"total"`
	WorkOrders []*WorkOrderView `json:"work_orders"`
}

type VehicleView struct {
	Plate        string    `json:"plate"`
	Client       string    `json:"client"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	ContractType string    `json:"contract_type"`
	Odometer     int64     `json:"odometer"`
	CreatedAt    time.Time `json:"created_at"`
}

type VehicleHistory struct {
	Vehicle    VehicleView      `json:"vehicle"`
	WorkOrders []*WorkOrderView `json:"work_orders"`
}

type PartStockView struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Product   string    `json:"product"`
	Available int       `json:"available"`
	Reserved  int       `json:"reserved"`
	Consumed  int       `json:"consumed"`
	Total     int       `json:"total"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Channel   string    `json:"channel"`
	Kind      string    `json:"kind"`
	SubjectID uuid.UUID `json:"subject_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
