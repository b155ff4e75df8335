package report

import (
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// DashboardStats are the landing-view summary cards: active headcount, total
// issued value across the journal and the EUR valuation of remaining stock
// (pack price × derived stock; negative stock subtracts).
type DashboardStats struct {
	ActiveCrew int             `json:"activeCrew"`
	MonthSales decimal.Decimal `json:"monthSales"`
	StockValue decimal.Decimal `json:"stockValue"`
}

// Dashboard computes the summary over the full journal (which only ever holds
// the active period between rollovers).
func Dashboard(crew []model.CrewMember, products []model.Product, txs []model.Transaction) DashboardStats {
	stats := DashboardStats{MonthSales: decimal.Zero, StockValue: decimal.Zero}
	for _, m := range crew {
		if m.IsActive {
			stats.ActiveCrew++
		}
	}
	for _, tx := range txs {
		stats.MonthSales = stats.MonthSales.Add(tx.TotalAmount)
	}
	for _, p := range products {
		stock := ledger.CurrentStock(p, txs)
		stats.StockValue = stats.StockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(stock))))
	}
	return stats
}
