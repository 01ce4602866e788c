package response

import (
	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PartStockResponse struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Product   string `json:"product"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
	Consumed  int    `json:"consumed"`
	Total     int    `json:"total"`
}

func FromPartStockView(v *queries.PartStockView) *PartStockResponse {
	res := &PartStockResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromPartStockList(views []*queries.PartStockView) []*PartStockResponse {
	res := make([]*PartStockResponse, len(views))
	for i, v := range views {
		res[i] = FromPartStockView(v)
	}
	return res
}

func FromStock(s inventory.Stock) *PartStockResponse {
	return &PartStockResponse{
		ID:        s.ID(),
		Brand:     s.Brand(),
		Product:   s.Product(),
		Available: s.Available(),
		Reserved:  s.Reserved(),
		Consumed:  s.Consumed(),
		Total:     s.Total(),
	}
}
