package request

import (
	"fleet-workflow/internal/usecase/commands"
)

type CreatePartRequest struct {
	ID        string `json:"id" binding:"required,max=64"`
	Brand     string `json:"brand" binding:"max=255"`
	Product   string `json:"product" binding:"required,max=255"`
	Available int    `json:"available" binding:"min=0,max=2147483647"`
}

func (r CreatePartRequest) ToCommand() commands.CreatePartRequest {
	return commands.CreatePartRequest{ID: r.ID, Brand: r.Brand, Product: r.Product, Available: r.Available}
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=2147483647"`
}

type RegisterVehicleRequest struct {
	Plate        string `json:"plate" binding:"required,max=16"`
	Client       string `json:"client" binding:"required,max=255"`
	Brand        string `json:"brand" binding:"max=100"`
	Model        string `json:"model" binding:"max=100"`
	ContractType string `json:"contract_type" binding:"max=100"`
	Odometer     int64  `json:"odometer" binding:"min=0"`
}

func (r RegisterVehicleRequest) ToCommand() commands.RegisterVehicleRequest {
	return commands.RegisterVehicleRequest{
		Plate:        r.Plate,
		Client:       r.Client,
		Brand:        r.Brand,
		Model:        r.Model,
		ContractType: r.ContractType,
		Odometer:     r.Odometer,
	}
}
