package report

import (
	"github.com/google/uuid"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// InventoryRow is one product's stock movement summary for the period.
// FinalStock may be negative (over-issuance) — reported as computed.
type InventoryRow struct {
	ProductID   uuid.UUID `json:"productId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	UnitType    string    `json:"unitType"`
	Initial     int       `json:"initialStock"`
	Added1      int       `json:"addedStock1"`
	Added2      int       `json:"addedStock2"`
	Added3      int       `json:"addedStock3"`
	TotalAdded  int       `json:"totalAdded"`
	SoldToCrew  int       `json:"soldToCrew"`
	GivenToReps int       `json:"givenToReps"`
	TotalOut    int       `json:"totalOut"`
	FinalStock  int       `json:"finalStock"`
}

// Inventory builds the stock movement report, one row per product in catalog
// order.
func Inventory(products []model.Product, txs []model.Transaction) []InventoryRow {
	sorted := ledger.SortProducts(append([]model.Product(nil), products...))

	rows := make([]InventoryRow, 0, len(sorted))
	for _, p := range sorted {
		crew := ledger.ConsumedQuantity(p.ID, txs, ledger.Filter{Type: model.TypeCrew})
		reps := ledger.ConsumedQuantity(p.ID, txs, ledger.Filter{Type: model.TypeRepresentation})
		rows = append(rows, InventoryRow{
			ProductID:   p.ID,
			Name:        p.Name,
			Category:    p.Category,
			UnitType:    p.UnitType,
			Initial:     p.InitialStock,
			Added1:      p.AddedStock1,
			Added2:      p.AddedStock2,
			Added3:      p.AddedStock3,
			TotalAdded:  p.TotalAdded(),
			SoldToCrew:  crew,
			GivenToReps: reps,
			TotalOut:    crew + reps,
			FinalStock:  p.InitialStock + p.TotalAdded() - crew - reps,
		})
	}
	return rows
}
