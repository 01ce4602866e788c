//go:build unit || e2e

package builder

import (
	"fleet-workflow/internal/domain/inventory"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
)

type StockBuilder struct {
	ID        string
	Brand     string
	Product   string
	Available int
	Reserved  int
	Consumed  int
}

func NewStockBuilder() *StockBuilder {
	return &StockBuilder{
		ID:        "P1",
		Brand:     "Bosch",
		Product:   "Filtro de aceite",
		Available: 5,
	}
}

func (b *StockBuilder) With(mutate func(*StockBuilder)) *StockBuilder {
	mutate(b)
	return b
}

func (b *StockBuilder) BuildDomain() inventory.Stock {
	return inventory.ReconstructStock(b.ID, b.Brand, b.Product, b.Available, b.Reserved, b.Consumed)
}

func (b *StockBuilder) BuildInfra() sqlc.Parts {
	return sqlc.Parts{
		ID:        b.ID,
		Brand:     b.Brand,
		Product:   b.Product,
		Available: int32(b.Available),
		Reserved:  int32(b.Reserved),
		Consumed:  int32(b.Consumed),
	}
}
