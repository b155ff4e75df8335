package report

import (
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// MonthlyItem is one product row of the monthly consumption report. Every
// quantity column has a value twin priced at PricePerUnit (pack price divided
// by pack size); totals across the report sum only the value columns.
type MonthlyItem struct {
	Name         string          `json:"name"`
	UnitType     string          `json:"unitType"`
	PackSize     int             `json:"packSize"`
	PricePerPack decimal.Decimal `json:"pricePerPack"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`

	InitialQty int             `json:"initialQty"`
	InitialVal decimal.Decimal `json:"initialVal"`

	Supply1Qty     int             `json:"supply1Qty"`
	Supply1Val     decimal.Decimal `json:"supply1Val"`
	Supply2Qty     int             `json:"supply2Qty"`
	Supply2Val     decimal.Decimal `json:"supply2Val"`
	Supply3Qty     int             `json:"supply3Qty"`
	Supply3Val     decimal.Decimal `json:"supply3Val"`
	TotalSupplyQty int             `json:"totalSupplyQty"`
	TotalSupplyVal decimal.Decimal `json:"totalSupplyVal"`

	CrewQty int             `json:"crewQty"`
	CrewVal decimal.Decimal `json:"crewVal"`
	ChartQty int            `json:"chartQty"`
	ChartVal decimal.Decimal `json:"chartVal"`
	OwnQty  int             `json:"ownQty"`
	OwnVal  decimal.Decimal `json:"ownVal"`

	ConsumptionQty int             `json:"consumptionQty"`
	ConsumptionVal decimal.Decimal `json:"consumptionVal"`
	EndingQty      int             `json:"endingQty"`
	EndingVal      decimal.Decimal `json:"endingVal"`
}

// MonthlyCategory groups the rows of one category.
type MonthlyCategory struct {
	Category string        `json:"category"`
	Items    []MonthlyItem `json:"items"`
}

// MonthlyTotals sums the value columns across all categories.
type MonthlyTotals struct {
	InitialVal     decimal.Decimal `json:"initialVal"`
	Supply1Val     decimal.Decimal `json:"supply1Val"`
	Supply2Val     decimal.Decimal `json:"supply2Val"`
	Supply3Val     decimal.Decimal `json:"supply3Val"`
	TotalSupplyVal decimal.Decimal `json:"totalSupplyVal"`
	CrewVal        decimal.Decimal `json:"crewVal"`
	ChartVal       decimal.Decimal `json:"chartVal"`
	OwnVal         decimal.Decimal `json:"ownVal"`
	ConsumptionVal decimal.Decimal `json:"consumptionVal"`
	EndingVal      decimal.Decimal `json:"endingVal"`
}

// MonthlyReport is the per-category consumption report.
type MonthlyReport struct {
	Categories []MonthlyCategory `json:"categories"`
	Totals     MonthlyTotals     `json:"totals"`
}

// Monthly values every stock movement of the period at per-unit prices,
// grouped by category in the fixed order. A representation transaction with
// no sub-type counts toward the charterer column, matching the historic
// report sheets.
func Monthly(products []model.Product, txs []model.Transaction) MonthlyReport {
	rep := MonthlyReport{Categories: []MonthlyCategory{}}

	for _, group := range ledger.GroupByCategory(products) {
		cat := MonthlyCategory{Category: group.Category}
		for _, p := range group.Products {
			packSize := p.PackSize
			if packSize < 1 {
				packSize = 1
			}
			perUnit := p.Price.Div(decimal.NewFromInt(int64(packSize)))

			repTotal := ledger.ConsumedQuantity(p.ID, txs, ledger.Filter{Type: model.TypeRepresentation})
			ownQty := ledger.ConsumedQuantity(p.ID, txs, ledger.Filter{
				Type: model.TypeRepresentation, RepresentationType: model.RepOwner,
			})
			chartQty := repTotal - ownQty
			crewQty := ledger.ConsumedQuantity(p.ID, txs, ledger.Filter{Type: model.TypeCrew})
			consumption := crewQty + chartQty + ownQty
			ending := p.InitialStock + p.TotalAdded() - consumption

			val := func(qty int) decimal.Decimal {
				return perUnit.Mul(decimal.NewFromInt(int64(qty)))
			}

			item := MonthlyItem{
				Name:         p.Name,
				UnitType:     p.UnitType,
				PackSize:     packSize,
				PricePerPack: p.Price,
				PricePerUnit: perUnit,

				InitialQty: p.InitialStock,
				InitialVal: val(p.InitialStock),

				Supply1Qty:     p.AddedStock1,
				Supply1Val:     val(p.AddedStock1),
				Supply2Qty:     p.AddedStock2,
				Supply2Val:     val(p.AddedStock2),
				Supply3Qty:     p.AddedStock3,
				Supply3Val:     val(p.AddedStock3),
				TotalSupplyQty: p.TotalAdded(),
				TotalSupplyVal: val(p.TotalAdded()),

				CrewQty:  crewQty,
				CrewVal:  val(crewQty),
				ChartQty: chartQty,
				ChartVal: val(chartQty),
				OwnQty:   ownQty,
				OwnVal:   val(ownQty),

				ConsumptionQty: consumption,
				ConsumptionVal: val(consumption),
				EndingQty:      ending,
				EndingVal:      val(ending),
			}
			cat.Items = append(cat.Items, item)

			t := &rep.Totals
			t.InitialVal = t.InitialVal.Add(item.InitialVal)
			t.Supply1Val = t.Supply1Val.Add(item.Supply1Val)
			t.Supply2Val = t.Supply2Val.Add(item.Supply2Val)
			t.Supply3Val = t.Supply3Val.Add(item.Supply3Val)
			t.TotalSupplyVal = t.TotalSupplyVal.Add(item.TotalSupplyVal)
			t.CrewVal = t.CrewVal.Add(item.CrewVal)
			t.ChartVal = t.ChartVal.Add(item.ChartVal)
			t.OwnVal = t.OwnVal.Add(item.OwnVal)
			t.ConsumptionVal = t.ConsumptionVal.Add(item.ConsumptionVal)
			t.EndingVal = t.EndingVal.Add(item.EndingVal)
		}
		rep.Categories = append(rep.Categories, cat)
	}
	return rep
}
