package workorder

import (
	"strings"
	"time"

	"fleet-workflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorkOrder struct {
	id               uuid.UUID
	plate            string
	kind             Kind
	scheduledAt      time.Time
	startedAt        *time.Time
	endedAt          *time.Time
	status           Status
	requested        PartList
	adjusted         PartList
	diagnosis        string
	requestedChanges string
	measuredKm       int64
	previousKm       int64
	createdAt        time.Time
	updatedAt        time.Time
	version          int32
}

// Registration is what a technician reports after executing the maintenance.
type Registration struct {
	StartedAt        time.Time
	MeasuredOdometer int64
	PreviousOdometer int64
	Parts            PartList
}

func (r Registration) validate() error {
	if _, err := NewPartList(r.Parts...); err != nil {
		return err
	}
	if r.MeasuredOdometer < r.PreviousOdometer {
		return errs.WithDetail(ErrInvalidOdometer, "measured odometer is below the previous reading")
	}
	return nil
}

// InventoryEffect is the stock movement a transition requires. It is applied
// in the same transaction that persists the transition.
type InventoryEffect struct {
	Reserve  PartList
	Release  PartList
	Finalize PartList
}

func (e InventoryEffect) IsZero() bool {
	return len(e.Reserve) == 0 && len(e.Release) == 0 && len(e.Finalize) == 0
}

// NewScheduled creates an order in programado.
func NewScheduled(plate string, kind Kind, scheduledAt, now time.Time) (*WorkOrder, error) {
	w, err := newWorkOrder(plate, kind, scheduledAt, now)
	if err != nil {
		return nil, err
	}
	w.status = StatusProgramado
	return w, nil
}

// NewRegistered creates an order that was executed without being scheduled.
// It enters pendiente directly and reserves the reported parts.
func NewRegistered(plate string, kind Kind, reg Registration, now time.Time) (*WorkOrder, InventoryEffect, error) {
	if err := reg.validate(); err != nil {
		return nil, InventoryEffect{}, err
	}
	w, err := newWorkOrder(plate, kind, reg.StartedAt, now)
	if err != nil {
		return nil, InventoryEffect{}, err
	}
	w.applyRegistration(reg)
	w.status = StatusPendiente
	return w, InventoryEffect{Reserve: w.requested}, nil
}

func newWorkOrder(plate string, kind Kind, scheduledAt, now time.Time) (*WorkOrder, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &WorkOrder{
		id:          uuid.New(),
		plate:       plate,
		kind:        kind,
		scheduledAt: scheduledAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Snapshot is the persisted form of a work order.
type Snapshot struct {
	ID               uuid.UUID
	Plate            string
	Kind             Kind
	ScheduledAt      time.Time
	StartedAt        *time.Time
	EndedAt          *time.Time
	Status           Status
	Requested        PartList
	Adjusted         PartList
	Diagnosis        string
	RequestedChanges string
	MeasuredKm       int64
	PreviousKm       int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int32
}

func ReconstructWorkOrder(s Snapshot) *WorkOrder {
	return &WorkOrder{
		id:               s.ID,
		plate:            s.Plate,
		kind:             s.Kind,
		scheduledAt:      s.ScheduledAt,
		startedAt:        s.StartedAt,
		endedAt:          s.EndedAt,
		status:           s.Status,
		requested:        s.Requested,
		adjusted:         s.Adjusted,
		diagnosis:        s.Diagnosis,
		requestedChanges: s.RequestedChanges,
		measuredKm:       s.MeasuredKm,
		previousKm:       s.PreviousKm,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		version:          s.Version,
	}
}

func (w *WorkOrder) Snapshot() Snapshot {
	return Snapshot{
		ID:               w.id,
		Plate:            w.plate,
		Kind:             w.kind,
		ScheduledAt:      w.scheduledAt,
		StartedAt:        w.startedAt,
		EndedAt:          w.endedAt,
		Status:           w.status,
		Requested:        w.requested,
		Adjusted:         w.adjusted,
		Diagnosis:        w.diagnosis,
		RequestedChanges: w.requestedChanges,
		MeasuredKm:       w.measuredKm,
		PreviousKm:       w.previousKm,
		CreatedAt:        w.createdAt,
		UpdatedAt:        w.updatedAt,
		Version:          w.version,
	}
}

// Register moves a scheduled order, or one sent back for revision, into pendiente.
func (w *WorkOrder) Register(reg Registration, now time.Time) (InventoryEffect, error) {
	if err := w.checkTransition(StatusPendiente); err != nil {
		return InventoryEffect{}, err
	}
	// A resubmission is measured against the reading the order was first
	// registered on. The registry already carries the earlier measured value.
	if w.status == StatusRevision {
		reg.PreviousOdometer = w.previousKm
	}
	if err := reg.validate(); err != nil {
		return InventoryEffect{}, err
	}
	w.applyRegistration(reg)
	w.requestedChanges = ""
	w.moveTo(StatusPendiente, now)
	return InventoryEffect{Reserve: w.requested}, nil
}

func (w *WorkOrder) applyRegistration(reg Registration) {
	started := reg.StartedAt
	w.startedAt = &started
	w.measuredKm = reg.MeasuredOdometer
	w.previousKm = reg.PreviousOdometer
	w.requested = reg.Parts
}

// Decide applies the administrator's verdict on a pending order.
func (w *WorkOrder) Decide(d Decision, now time.Time) (InventoryEffect, error) {
	if d == nil {
		return InventoryEffect{}, errs.Validation("decision is required")
	}
	if err := w.checkTransition(d.target()); err != nil {
		return InventoryEffect{}, err
	}

	var effect InventoryEffect
	switch v := d.(type) {
	case Deny:
		w.requestedChanges = strings.TrimSpace(v.RequestedChanges)
		effect.Release = w.requested
	case Revise:
		w.requestedChanges = strings.TrimSpace(v.RequestedChanges)
		effect.Release = w.requested
	case Approve:
		if err := v.ValidateAgainst(w.requested); err != nil {
			return InventoryEffect{}, err
		}
		w.adjusted = v.Adjustments
	}
	w.moveTo(d.target(), now)
	return effect, nil
}

// Complete closes an approved order. The adjusted quantities are consumed and
// whatever was reserved beyond them goes back to available stock.
func (w *WorkOrder) Complete(diagnosis string, endedAt, now time.Time) (InventoryEffect, error) {
	if err := w.checkTransition(StatusCompletado); err != nil {
		return InventoryEffect{}, err
	}
	if w.startedAt != nil && endedAt.Before(*w.startedAt) {
		return InventoryEffect{}, ErrInvalidEndTime
	}
	effect := InventoryEffect{
		Finalize: w.adjusted.NonZero(),
		Release:  w.requested.Minus(w.adjusted),
	}
	ended := endedAt
	w.endedAt = &ended
	w.diagnosis = strings.TrimSpace(diagnosis)
	w.moveTo(StatusCompletado, now)
	return effect, nil
}

// Expire retires a stale order, returning any reservation it still holds.
func (w *WorkOrder) Expire(now time.Time) (InventoryEffect, error) {
	if err := w.checkTransition(StatusExpirado); err != nil {
		return InventoryEffect{}, err
	}
	var effect InventoryEffect
	if w.status.HoldsReservation() {
		effect.Release = w.requested
	}
	w.moveTo(StatusExpirado, now)
	return effect, nil
}

// IsStale reports whether the order sat past its scheduled date for longer than threshold.
func (w *WorkOrder) IsStale(now time.Time, threshold time.Duration) bool {
	return !w.status.IsTerminal() && w.scheduledAt.Before(now.Add(-threshold))
}

func (w *WorkOrder) checkTransition(next Status) error {
	if !w.status.CanTransitionTo(next) {
		return transitionError(w.status, next)
	}
	return nil
}

func (w *WorkOrder) moveTo(next Status, now time.Time) {
	w.status = next
	w.updatedAt = now
}

// Cost is the price of the approved parts.
func (w *WorkOrder) Cost() decimal.Decimal {
	return w.adjusted.Cost()
}

// DistanceTraveled is the distance between the previous and the measured reading.
func (w *WorkOrder) DistanceTraveled() int64 {
	return w.measuredKm - w.previousKm
}

// Downtime is how long the vehicle was in the shop.
func (w *WorkOrder) Downtime() time.Duration {
	if w.startedAt == nil || w.endedAt == nil {
		return 0
	}
	return w.endedAt.Sub(*w.startedAt)
}

func (w *WorkOrder) ID() uuid.UUID            { return w.id }
func (w *WorkOrder) Plate() string            { return w.plate }
func (w *WorkOrder) Kind() Kind               { return w.kind }
func (w *WorkOrder) ScheduledAt() time.Time   { return w.scheduledAt }
func (w *WorkOrder) StartedAt() *time.Time    { return w.startedAt }
func (w *WorkOrder) EndedAt() *time.Time      { return w.endedAt }
func (w *WorkOrder) Status() Status           { return w.status }
func (w *WorkOrder) Requested() PartList      { return w.requested }
func (w *WorkOrder) Adjusted() PartList       { return w.adjusted }
func (w *WorkOrder) Diagnosis() string        { return w.diagnosis }
func (w *WorkOrder) RequestedChanges() string { return w.requestedChanges }
func (w *WorkOrder) MeasuredOdometer() int64  { return w.measuredKm }
func (w *WorkOrder) PreviousOdometer() int64  { return w.previousKm }
func (w *WorkOrder) CreatedAt() time.Time     { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time     { return w.updatedAt }
func (w *WorkOrder) Version() int32           { return w.version }
