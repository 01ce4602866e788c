package converter

import (
	"fleet-workflow/internal/domain/workorder"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Part lines stored in work_order_parts.
const (
	LineRequested = "requested"
	LineAdjusted  = "adjusted"
)

func WorkOrderToCreateParams(w *workorder.WorkOrder) sqlc.CreateWorkOrderParams {
	return sqlc.CreateWorkOrderParams{
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
		CreatedAt:        pgconv.TimeToPgtype(w.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(w.UpdatedAt()),
	}
}

// WorkOrderToUpdateParams guards the update with the version the order was loaded at.
func WorkOrderToUpdateParams(w *workorder.WorkOrder) sqlc.UpdateWorkOrderParams {
	return sqlc.UpdateWorkOrderParams{
		ID:               w.ID(),
		Version:          w.Version(),
		Status:           w.Status().String(),
		StartedAt:        pgconv.TimePtrToPgtype(w.StartedAt()),
		EndedAt:          pgconv.TimePtrToPgtype(w.EndedAt()),
		Diagnosis:        pgconv.OptionalStringToPgtype(w.Diagnosis()),
		RequestedChanges: pgconv.OptionalStringToPgtype(w.RequestedChanges()),
		MeasuredKm:       w.MeasuredOdometer(),
		PreviousKm:       w.PreviousOdometer(),
		UpdatedAt:        pgconv.TimeToPgtype(w.UpdatedAt()),
	}
}

func PartLineToParams(orderID uuid.UUID, line string, parts workorder.PartList) []sqlc.InsertWorkOrderPartParams {
	params := make([]sqlc.InsertWorkOrderPartParams, 0, len(parts))
	for i, p := range parts {
		price := decimal.NullDecimal{}
		if v, ok := p.UnitPrice(); ok {
			price = decimal.NullDecimal{Decimal: v, Valid: true}
		}
		params = append(params, sqlc.InsertWorkOrderPartParams{
			WorkOrderID: orderID,
			Line:        line,
			PartID:      p.ID(),
			Brand:       p.Brand(),
			Product:     p.Product(),
			Quantity:    pgconv.IntToInt32(p.Quantity()),
			UnitPrice:   price,
			Position:    pgconv.IntToInt32(i),
		})
	}
	return params
}

// PartRowsToLists splits stored rows into the requested and adjusted lists.
// Rows are expected in position order.
func PartRowsToLists(rows []sqlc.WorkOrderParts) (requested, adjusted workorder.PartList) {
	for _, row := range rows {
		p := PartRowToDomain(row)
		switch row.Line {
		case LineRequested:
			requested = append(requested, p)
		case LineAdjusted:
			adjusted = append(adjusted, p)
		}
	}
	return requested, adjusted
}

// PartRowToDomain trusts persisted rows; they were validated on the way in.
func PartRowToDomain(row sqlc.WorkOrderParts) workorder.Part {
	p, err := workorder.NewPart(row.PartID, row.Brand, row.Product, int(row.Quantity))
	if err != nil {
		panic("corrupted work order part row: " + err.Error())
	}
	if row.UnitPrice.Valid {
		p, err = p.WithPrice(row.UnitPrice.Decimal)
		if err != nil {
			panic("corrupted work order part price: " + err.Error())
		}
	}
	return p
}

func WorkOrderToDomain(row sqlc.WorkOrders, parts []sqlc.WorkOrderParts) *workorder.WorkOrder {
	requested, adjusted := PartRowsToLists(parts)
	return workorder.ReconstructWorkOrder(workorder.Snapshot{
		ID:               row.ID,
		Plate:            row.Plate,
		Kind:             workorder.Kind(row.Kind),
		ScheduledAt:      pgconv.TimeFromPgtype(row.ScheduledAt),
		StartedAt:        pgconv.TimePtrFromPgtype(row.StartedAt),
		EndedAt:          pgconv.TimePtrFromPgtype(row.EndedAt),
		Status:           workorder.Status(row.Status),
		Requested:        requested,
		Adjusted:         adjusted,
		Diagnosis:        pgconv.StringFromPgtype(row.Diagnosis),
		RequestedChanges: pgconv.StringFromPgtype(row.RequestedChanges),
		MeasuredKm:       row.MeasuredKm,
		PreviousKm:       row.PreviousKm,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		Version:          row.Version,
	})
}
