package commands

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/commands/vehicle.go -package=commandsmock

import (
	"context"
	"strings"

	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/shared"
)

var (
	ErrInvalidVehicle    = errs.Validation("plate and client are required")
	ErrNegativeOdometer  = errs.Validation("odometer cannot be negative")
	ErrVehicleRegistered = errs.Conflict("vehicle already registered")
)

type RegisterVehicleRequest struct {
	Plate        string
	Client       string
	Brand        string
	Model        string
	ContractType string
	Odometer     int64
}

type VehicleCommands interface {
	Register(ctx context.Context, req RegisterVehicleRequest) (*shared.Vehicle, error)
}

type vehicleUseCaseImpl struct {
	vehicles shared.VehicleRegistry
}

func NewVehicleUseCase(vehicles shared.VehicleRegistry) VehicleCommands {
	return &vehicleUseCaseImpl{vehicles: vehicles}
}

func (uc *vehicleUseCaseImpl) Register(ctx context.Context, req RegisterVehicleRequest) (*shared.Vehicle, error) {
	if strings.TrimSpace(req.Plate) == "" || strings.TrimSpace(req.Client) == "" {
		return nil, ErrInvalidVehicle
	}
	if req.Odometer < 0 {
		return nil, ErrNegativeOdometer
	}

	exists, err := uc.vehicles.Exists(ctx, req.Plate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.WithDetail(ErrVehicleRegistered, "plate "+req.Plate)
	}

	return uc.vehicles.Register(ctx, shared.Vehicle{
		Plate:        req.Plate,
		Client:       req.Client,
		Brand:        req.Brand,
		Model:        req.Model,
		ContractType: req.ContractType,
		Odometer:     req.Odometer,
	})
}
