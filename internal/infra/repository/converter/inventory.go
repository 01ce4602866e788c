package converter

import (
	"fleet-workflow/internal/domain/inventory"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"
)

func StockToDomain(row sqlc.Parts) inventory.Stock {
	return inventory.ReconstructStock(row.ID, row.Brand, row.Product, int(row.Available), int(row.Reserved), int(row.Consumed))
}

func StockToUpdateParams(s inventory.Stock) sqlc.UpdatePartQuantitiesParams {
	return sqlc.UpdatePartQuantitiesParams{
		ID:        s.ID(),
		Available: pgconv.IntToInt32(s.Available()),
		Reserved:  pgconv.IntToInt32(s.Reserved()),
		Consumed:  pgconv.IntToInt32(s.Consumed()),
	}
}
