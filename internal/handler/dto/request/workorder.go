package request

import (
	"strings"
	"time"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/pkg/patch"
	"fleet-workflow/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

var ErrUnknownOutcome = errs.Validation("outcome must be deny, revise or approve")

type PartRequest struct {
	ID        string           `json:"id" binding:"required"`
	Brand     string           `json:"brand"`
	Product   string           `json:"product" binding:"required"`
	Quantity  int              `json:"quantity" binding:"min=0,max=2147483647"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

func (p PartRequest) toDomain() (workorder.Part, error) {
	if p.UnitPrice != nil {
		return workorder.NewPricedPart(p.ID, p.Brand, p.Product, p.Quantity, *p.UnitPrice)
	}
	return workorder.NewPart(p.ID, p.Brand, p.Product, p.Quantity)
}

// toPartList converts each line. Emptiness and duplicates are left to the
// command so they surface with the domain's own errors.
func toPartList(parts []PartRequest) (workorder.PartList, error) {
	out := make(workorder.PartList, 0, len(parts))
	for _, p := range parts {
		part, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, part)
	}
	return out, nil
}

type ScheduleWorkOrderRequest struct {
	Plate       string    `json:"plate" binding:"required"`
	Kind        string    `json:"kind" binding:"required,oneof=preventivo correctivo"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

func (r ScheduleWorkOrderRequest) ToCommand() commands.ScheduleRequest {
	return commands.ScheduleRequest{Plate: r.Plate, Kind: r.Kind, ScheduledAt: r.ScheduledAt}
}

type RegisterWorkOrderRequest struct {
	Plate            string        `json:"plate" binding:"required"`
	Kind             string        `json:"kind" binding:"required,oneof=preventivo correctivo"`
	StartedAt        *time.Time    `json:"started_at"`
	MeasuredOdometer int64         `json:"measured_odometer" binding:"min=0"`
	Parts            []PartRequest `json:"parts" binding:"dive"`
}

func (r RegisterWorkOrderRequest) ToCommand(now time.Time) (commands.RegisterNewRequest, error) {
	parts, err := toPartList(r.Parts)
	if err != nil {
		return commands.RegisterNewRequest{}, err
	}
	return commands.RegisterNewRequest{
		Plate:            r.Plate,
		Kind:             r.Kind,
		StartedAt:        patch.Coalesce(r.StartedAt, now),
		MeasuredOdometer: r.MeasuredOdometer,
		Parts:            parts,
	}, nil
}

type RegisterScheduledRequest struct {
	StartedAt        *time.Time    `json:"started_at"`
	MeasuredOdometer int64         `json:"measured_odometer" binding:"min=0"`
	Parts            []PartRequest `json:"parts" binding:"dive"`
}

func (r RegisterScheduledRequest) ToCommand(now time.Time) (commands.RegisterScheduledRequest, error) {
	parts, err := toPartList(r.Parts)
	if err != nil {
		return commands.RegisterScheduledRequest{}, err
	}
	return commands.RegisterScheduledRequest{
		StartedAt:        patch.Coalesce(r.StartedAt, now),
		MeasuredOdometer: r.MeasuredOdometer,
		Parts:            parts,
	}, nil
}

type DecisionRequest struct {
	Outcome          string        `json:"outcome" binding:"required"`
	RequestedChanges string        `json:"requested_changes" binding:"max=2000"`
	Adjustments      []PartRequest `json:"adjustments" binding:"dive"`
}

func (r DecisionRequest) ToDomain() (workorder.Decision, error) {
	switch workorder.Outcome(strings.ToLower(strings.TrimSpace(r.Outcome))) {
	case workorder.OutcomeDeny:
		return workorder.Deny{RequestedChanges: r.RequestedChanges}, nil
	case workorder.OutcomeRevise:
		return workorder.Revise{RequestedChanges: r.RequestedChanges}, nil
	case workorder.OutcomeApprove:
		adjustments, err := toPartList(r.Adjustments)
		if err != nil {
			return nil, err
		}
		return workorder.Approve{Adjustments: adjustments}, nil
	default:
		return nil, errs.WithDetail(ErrUnknownOutcome, "outcome "+r.Outcome)
	}
}

type CompleteRequest struct {
	FinalDiagnosis string     `json:"final_diagnosis" binding:"required,max=2000"`
	EndedAt        *time.Time `json:"ended_at"`
}

func (r CompleteRequest) ToCommand() commands.CompleteRequest {
	return commands.CompleteRequest{
		FinalDiagnosis: r.FinalDiagnosis,
		EndedAt:        patch.Coalesce(r.EndedAt, time.Time{}),
	}
}
