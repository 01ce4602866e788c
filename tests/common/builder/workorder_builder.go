//go:build unit || e2e

package builder

import (
	"time"

	"fleet-workflow/internal/domain/workorder"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PartSpec struct {
	ID       string
	Brand    string
	Product  string
	Quantity int
	Price    *decimal.Decimal
}

type WorkOrderBuilder struct {
	ID               uuid.UUID
	Plate            string
	Kind             workorder.Kind
	Status           workorder.Status
	ScheduledAt      time.Time
	StartedAt        *time.Time
	EndedAt          *time.Time
	Requested        []PartSpec
	Adjusted         []PartSpec
	Diagnosis        string
	RequestedChanges string
	MeasuredKm       int64
	PreviousKm       int64
	Version          int32
	Now              time.Time
}

func NewWorkOrderBuilder() *WorkOrderBuilder {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	return &WorkOrderBuilder{
		ID:          uuid.New(),
		Plate:       "ABC-123",
		Kind:        workorder.KindPreventivo,
		Status:      workorder.StatusProgramado,
		ScheduledAt: now,
		Requested:   []PartSpec{{ID: "P1", Brand: "Bosch", Product: "Filtro de aceite", Quantity: 2}},
		MeasuredKm:  15000,
		PreviousKm:  14000,
		Version:     1,
		Now:         now,
	}
}

func (b *WorkOrderBuilder) With(mutate func(*WorkOrderBuilder)) *WorkOrderBuilder {
	mutate(b)
	return b
}

func (b *WorkOrderBuilder) WithStatus(s workorder.Status) *WorkOrderBuilder {
	b.Status = s
	return b
}

func (b *WorkOrderBuilder) WithRequested(parts ...PartSpec) *WorkOrderBuilder {
	b.Requested = parts
	return b
}

func (b *WorkOrderBuilder) WithAdjusted(parts ...PartSpec) *WorkOrderBuilder {
	b.Adjusted = parts
	return b
}

func (b *WorkOrderBuilder) WithScheduledAt(t time.Time) *WorkOrderBuilder {
	b.ScheduledAt = t
	return b
}

// Build methods
func (b *WorkOrderBuilder) BuildDomain() *workorder.WorkOrder {
	started := b.StartedAt
	if started == nil && b.Status != workorder.StatusProgramado {
		s := b.ScheduledAt
		started = &s
	}
	return workorder.ReconstructWorkOrder(workorder.Snapshot{
		ID:               b.ID,
		Plate:            b.Plate,
		Kind:             b.Kind,
		ScheduledAt:      b.ScheduledAt,
		StartedAt:        started,
		EndedAt:          b.EndedAt,
		Status:           b.Status,
		Requested:        BuildParts(b.Requested...),
		Adjusted:         BuildParts(b.Adjusted...),
		Diagnosis:        b.Diagnosis,
		RequestedChanges: b.RequestedChanges,
		MeasuredKm:       b.MeasuredKm,
		PreviousKm:       b.PreviousKm,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
		Version:          b.Version,
	})
}

// BuildInfra returns the row and part lines the repository would read back.
func (b *WorkOrderBuilder) BuildInfra() (sqlc.WorkOrders, []sqlc.WorkOrderParts) {
	w := b.BuildDomain()
	row := sqlc.WorkOrders{
		ID:               w.ID(),
		Plate:            w.Plate(),
		Kind:             w.Kind().String(),
		Status:           w.Status().String(),
		ScheduledAt:      pgconv.TimeToPgtype(w.ScheduledAt()),
		StartedAt:        pgconv.TimePtrToPgtype(w.StartedAt()),
		EndedAt:          pgconv.TimePtrToPgtype(w.EndedAt()),
		Diagnosis:        pgconv.OptionalStringToPgtype(w.Diagnosis()),
		RequestedChanges: pgconv.OptionalStringToPgtype(w.RequestedChanges()),
		MeasuredKm:       w.MeasuredOdometer(),
		PreviousKm:       w.PreviousOdometer(),
		Version:          w.Version(),
		CreatedAt:        pgconv.TimeToPgtype(w.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(w.UpdatedAt()),
	}

	var lines []sqlc.WorkOrderParts
	for _, l := range []struct {
		name  string
		specs []PartSpec
	}{{"requested", b.Requested}, {"adjusted", b.Adjusted}} {
		for i, spec := range l.specs {
			price := decimal.NullDecimal{}
			if spec.Price != nil {
				price = decimal.NullDecimal{Decimal: *spec.Price, Valid: true}
			}
			lines = append(lines, sqlc.WorkOrderParts{
				WorkOrderID: w.ID(),
				Line:        l.name,
				PartID:      spec.ID,
				Brand:       spec.Brand,
				Product:     spec.Product,
				Quantity:    int32(spec.Quantity),
				UnitPrice:   price,
				Position:    int32(i),
			})
		}
	}
	return row, lines
}

func (b *WorkOrderBuilder) BuildRegistration() workorder.Registration {
	return workorder.Registration{
		StartedAt:        b.ScheduledAt,
		MeasuredOdometer: b.MeasuredKm,
		PreviousOdometer: b.PreviousKm,
		Parts:            BuildParts(b.Requested...),
	}
}

// BuildParts turns specs into domain parts without list validation, so tests
// can also build invalid lists.
func BuildParts(specs ...PartSpec) workorder.PartList {
	if len(specs) == 0 {
		return nil
	}
	out := make(workorder.PartList, 0, len(specs))
	for _, s := range specs {
		p, err := workorder.NewPart(s.ID, s.Brand, s.Product, s.Quantity)
		if err != nil {
			panic(err)
		}
		if s.Price != nil {
			if p, err = p.WithPrice(*s.Price); err != nil {
				panic(err)
			}
		}
		out = append(out, p)
	}
	return out
}

func Price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
