package commands

//go:generate mockgen -source=workorder.go -destination=../../../tests/mock/commands/workorder.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.NotFound("vehicle is not registered")

// TransitionResult is the outcome of a successful workflow command.
type TransitionResult struct {
	ID     uuid.UUID        `json:"id"`
	Status workorder.Status `json:"status"`
}

// ExpiryPolicy is how long an order may sit past its scheduled date before
// the expiry job retires it.
type ExpiryPolicy struct {
	Threshold time.Duration
}

type ScheduleRequest struct {
	Plate       string
	Kind        string
	ScheduledAt time.Time
}

type RegisterNewRequest struct {
	Plate            string
	Kind             string
	StartedAt        time.Time
	MeasuredOdometer int64
	Parts            workorder.PartList
}

type RegisterScheduledRequest struct {
	StartedAt        time.Time
	MeasuredOdometer int64
	Parts            workorder.PartList
}

type CompleteRequest struct {
	FinalDiagnosis string
	EndedAt        time.Time
}

type WorkOrderCommands interface {
	Schedule(ctx context.Context, req ScheduleRequest) (*TransitionResult, error)
	RegisterNew(ctx context.Context, req RegisterNewRequest) (*TransitionResult, error)
	RegisterScheduled(ctx context.Context, id uuid.UUID, req RegisterScheduledRequest) (*TransitionResult, error)
	ReviewDecision(ctx context.Context, id uuid.UUID, decision workorder.Decision) (*TransitionResult, error)
	Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*TransitionResult, error)
	Expire(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
	// ExpireStale expires every open order scheduled longer ago than the
	// policy threshold, one transaction per order, and returns how many it expired.
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}

type workOrderUseCaseImpl struct {
	uow       shared.UnitOfWork
	vehicles  shared.VehicleRegistry
	publisher shared.TransitionPublisher
	clock     clock.Clock
	policy    ExpiryPolicy
}

func NewWorkOrderUseCase(
	uow shared.UnitOfWork,
	vehicles shared.VehicleRegistry,
	publisher shared.TransitionPublisher,
	clk clock.Clock,
	policy ExpiryPolicy,
) WorkOrderCommands {
	return &workOrderUseCaseImpl{
		uow:       uow,
		vehicles:  vehicles,
		publisher: publisher,
		clock:     clk,
		policy:    policy,
	}
}

func (uc *workOrderUseCaseImpl) Schedule(ctx context.Context, req ScheduleRequest) (*TransitionResult, error) {
	kind, err := workorder.NewKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if err := uc.requireVehicle(ctx, req.Plate); err != nil {
		return nil, err
	}

	order, err := workorder.NewScheduled(req.Plate, kind, req.ScheduledAt, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.WorkOrders().Create(ctx, tx.DB(), order)
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, order, false)
	return resultOf(order), nil
}

func (uc *workOrderUseCaseImpl) RegisterNew(ctx context.Context, req RegisterNewRequest) (*TransitionResult, error) {
	kind, err := workorder.NewKind(req.Kind)
	if err != nil {
		return nil, err
	}
	parts, err := workorder.NewPartList(req.Parts...)
	if err != nil {
		return nil, err
	}
	vehicle, err := uc.findVehicle(ctx, req.Plate)
	if err != nil {
		return nil, err
	}

	reg := workorder.Registration{
		StartedAt:        req.StartedAt,
		MeasuredOdometer: req.MeasuredOdometer,
		PreviousOdometer: vehicle.Odometer,
		Parts:            parts,
	}
	order, effect, err := workorder.NewRegistered(vehicle.Plate, kind, reg, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		if err := applyEffect(ctx, tx, effect); err != nil {
			return err
		}
		return tx.WorkOrders().Create(ctx, tx.DB(), order)
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, order, true)
	return resultOf(order), nil
}

func (uc *workOrderUseCaseImpl) RegisterScheduled(ctx context.Context, id uuid.UUID, req RegisterScheduledRequest) (*TransitionResult, error) {
	parts, err := workorder.NewPartList(req.Parts...)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	order, err := uc.transition(ctx, id, func(ctx context.Context, w *workorder.WorkOrder) (workorder.InventoryEffect, error) {
		vehicle, err := uc.findVehicle(ctx, w.Plate())
		if err != nil {
			return workorder.InventoryEffect{}, err
		}
		return w.Register(workorder.Registration{
			StartedAt:        req.StartedAt,
			MeasuredOdometer: req.MeasuredOdometer,
			PreviousOdometer: vehicle.Odometer,
			Parts:            parts,
		}, now)
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, order, true)
	return resultOf(order), nil
}

func (uc *workOrderUseCaseImpl) ReviewDecision(ctx context.Context, id uuid.UUID, decision workorder.Decision) (*TransitionResult, error) {
	if decision == nil {
		return nil, errs.Validation("decision is required")
	}

	now := uc.clock.Now()
	order, err := uc.transition(ctx, id, func(_ context.Context, w *workorder.WorkOrder) (workorder.InventoryEffect, error) {
		return w.Decide(decision, now)
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, order, false)
	return resultOf(order), nil
}

func (uc *workOrderUseCaseImpl) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*TransitionResult, error) {
	now := uc.clock.Now()
	endedAt := req.EndedAt
	if endedAt.IsZero() {
		endedAt = now
	}

	order, err := uc.transition(ctx, id, func(_ context.Context, w *workorder.WorkOrder) (workorder.InventoryEffect, error) {
		return w.Complete(req.FinalDiagnosis, endedAt, now)
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, order, false)
	return resultOf(order), nil
}

func (uc *workOrderUseCaseImpl) Expire(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	now := uc.clock.Now()
	order, err := uc.transition(ctx, id, func(_ context.Context, w *workorder.WorkOrder) (workorder.InventoryEffect, error) {
		return w.Expire(now)
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, order, false)
	return resultOf(order), nil
}

func (uc *workOrderUseCaseImpl) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	ids, err := uc.uow.CommandReads().StaleWorkOrderIDs(ctx, now.Add(-uc.policy.Threshold))
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		order, err := uc.transition(ctx, id, func(_ context.Context, w *workorder.WorkOrder) (workorder.InventoryEffect, error) {
			// the order may have moved on since it was listed
			if !w.IsStale(now, uc.policy.Threshold) {
				return workorder.InventoryEffect{}, errStillActive
			}
			return w.Expire(now)
		})
		switch {
		case errs.Is(err, errStillActive):
			continue
		case err != nil:
			slog.Warn("failed to expire work order", "work_order_id", id, "error", err)
			continue
		}
		expired++
		uc.afterCommit(ctx, order, false)
	}
	return expired, nil
}

var errStillActive = errs.New("work order is no longer stale")

type mutation func(ctx context.Context, w *workorder.WorkOrder) (workorder.InventoryEffect, error)

// transition locks the order, applies mutate and its inventory effect, and
// saves the order, all in one transaction. The request context's cancellation
// is detached so a client disconnect cannot abort a commit in flight.
func (uc *workOrderUseCaseImpl) transition(ctx context.Context, id uuid.UUID, mutate mutation) (*workorder.WorkOrder, error) {
	var order *workorder.WorkOrder
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		w, err := tx.WorkOrders().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		effect, err := mutate(ctx, w)
		if err != nil {
			return err
		}
		if err := applyEffect(ctx, tx, effect); err != nil {
			return err
		}
		if err := tx.WorkOrders().Update(ctx, tx.DB(), w); err != nil {
			return err
		}
		order = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// applyEffect moves stock inside the transaction that persists the transition.
func applyEffect(ctx context.Context, tx shared.Tx, effect workorder.InventoryEffect) error {
	inv := tx.Inventory()
	if len(effect.Release) > 0 {
		if err := inv.Release(ctx, tx.DB(), effect.Release); err != nil {
			return err
		}
	}
	if len(effect.Finalize) > 0 {
		if err := inv.FinalizeConsumption(ctx, tx.DB(), effect.Finalize); err != nil {
			return err
		}
	}
	if len(effect.Reserve) > 0 {
		if err := inv.VerifyAndReserve(ctx, tx.DB(), effect.Reserve); err != nil {
			return err
		}
	}
	return nil
}

// afterCommit runs the side effects that live outside the transaction. They
// are best effort: failures are logged and the committed transition stands.
func (uc *workOrderUseCaseImpl) afterCommit(ctx context.Context, order *workorder.WorkOrder, updateOdometer bool) {
	ctx = context.WithoutCancel(ctx)
	if updateOdometer {
		if err := uc.vehicles.UpdateOdometer(ctx, order.Plate(), order.MeasuredOdometer()); err != nil {
			slog.Warn("failed to update odometer",
				"work_order_id", order.ID(),
				"plate", order.Plate(),
				"odometer", order.MeasuredOdometer(),
				"error", err,
			)
		}
	}
	uc.publisher.PublishTransition(ctx, shared.Transition{
		OrderID: order.ID(),
		Plate:   order.Plate(),
		Status:  order.Status(),
		At:      order.UpdatedAt(),
	})
}

func (uc *workOrderUseCaseImpl) requireVehicle(ctx context.Context, plate string) error {
	ok, err := uc.vehicles.Exists(ctx, plate)
	if err != nil {
		return err
	}
	if !ok {
		return errs.WithDetail(ErrVehicleNotFound, "plate "+plate)
	}
	return nil
}

func (uc *workOrderUseCaseImpl) findVehicle(ctx context.Context, plate string) (*shared.Vehicle, error) {
	v, err := uc.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return nil, errs.WithDetail(ErrVehicleNotFound, "plate "+plate)
		}
		return nil, err
	}
	return v, nil
}

func resultOf(w *workorder.WorkOrder) *TransitionResult {
	return &TransitionResult{ID: w.ID(), Status: w.Status()}
}
