package repository

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/repository/vehicle.go -package=repositorymock

import (
	"context"
	"strings"

	"fleet-workflow/internal/infra"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"
	"fleet-workflow/internal/usecase/shared"
)

type VehicleQueries interface {
	CreateVehicle(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVehicleParams) (sqlc.Vehicles, error)
	GetVehicleByPlate(ctx context.Context, db sqlc.DBTX, plate string) (sqlc.Vehicles, error)
	UpdateVehicleOdometer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVehicleOdometerParams) (int64, error)
	VehicleExists(ctx context.Context, db sqlc.DBTX, plate string) (bool, error)
}

// VehicleRegistry is the Postgres-backed fleet catalogue.
type VehicleRegistry struct {
	queries VehicleQueries
	db      sqlc.DBTX
}

func NewVehicleRegistry(queries VehicleQueries, db sqlc.DBTX) *VehicleRegistry {
	return &VehicleRegistry{
		queries: queries,
		db:      db,
	}
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func (r *VehicleRegistry) Exists(ctx context.Context, plate string) (bool, error) {
	ok, err := r.queries.VehicleExists(ctx, r.db, normalizePlate(plate))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check vehicle", err)
	}
	return ok, nil
}

func (r *VehicleRegistry) FindByPlate(ctx context.Context, plate string) (*shared.Vehicle, error) {
	row, err := r.queries.GetVehicleByPlate(ctx, r.db, normalizePlate(plate))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get vehicle", err)
	}
	return vehicleFromRow(row), nil
}

func (r *VehicleRegistry) UpdateOdometer(ctx context.Context, plate string, odometer int64) error {
	affected, err := r.queries.UpdateVehicleOdometer(ctx, r.db, sqlc.UpdateVehicleOdometerParams{
		Plate:    normalizePlate(plate),
		Odometer: odometer,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update odometer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRegistry) Register(ctx context.Context, v shared.Vehicle) (*shared.Vehicle, error) {
	row, err := r.queries.CreateVehicle(ctx, r.db, sqlc.CreateVehicleParams{
		Plate:        normalizePlate(v.Plate),
		Client:       strings.TrimSpace(v.Client),
		Brand:        strings.TrimSpace(v.Brand),
		Model:        strings.TrimSpace(v.Model),
		ContractType: strings.TrimSpace(v.ContractType),
		Odometer:     v.Odometer,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to register vehicle", err)
	}
	return vehicleFromRow(row), nil
}

func vehicleFromRow(row sqlc.Vehicles) *shared.Vehicle {
	return &shared.Vehicle{
		Plate:        row.Plate,
		Client:       row.Client,
		Brand:        row.Brand,
		Model:        row.Model,
		ContractType: row.ContractType,
		Odometer:     row.Odometer,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
