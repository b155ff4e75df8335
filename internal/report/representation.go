package report

import (
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// RepresentationItem is one product row of the representation report:
// charterer and owner consumption split into the five weekly buckets. Values
// are priced at the full pack price, unlike the monthly report's per-unit
// valuation.
type RepresentationItem struct {
	Name         string                        `json:"name"`
	UnitType     string                        `json:"unitType"`
	Price        decimal.Decimal               `json:"price"`
	CurrentStock int                           `json:"currentStock"`
	ChartWeeks   [ledger.WeekBuckets]int       `json:"chartWeeks"`
	ChartQty     int                           `json:"chartQty"`
	ChartVal     decimal.Decimal               `json:"chartVal"`
	OwnWeeks     [ledger.WeekBuckets]int       `json:"ownWeeks"`
	OwnQty       int                           `json:"ownQty"`
	OwnVal       decimal.Decimal               `json:"ownVal"`
}

// RepresentationCategory groups the rows of one category.
type RepresentationCategory struct {
	Category string               `json:"category"`
	Items    []RepresentationItem `json:"items"`
}

// RepresentationReport is the weekly charterer/owner consumption report.
type RepresentationReport struct {
	Categories []RepresentationCategory `json:"categories"`
	ChartTotal decimal.Decimal          `json:"chartTotal"`
	OwnTotal   decimal.Decimal          `json:"ownTotal"`
}

// Representation buckets REPRESENTATION consumption by week of month, split
// into charterer and owner columns. A missing sub-type counts as charterer.
func Representation(products []model.Product, txs []model.Transaction) RepresentationReport {
	rep := RepresentationReport{Categories: []RepresentationCategory{}}

	for _, group := range ledger.GroupByCategory(products) {
		cat := RepresentationCategory{Category: group.Category}
		for _, p := range group.Products {
			item := RepresentationItem{
				Name:         p.Name,
				UnitType:     p.UnitType,
				Price:        p.Price,
				CurrentStock: ledger.CurrentStock(p, txs),
			}

			for _, tx := range txs {
				if tx.Type != model.TypeRepresentation {
					continue
				}
				w := ledger.WeekOfMonth(tx.IssuedOn) - 1
				for _, line := range tx.Items {
					if line.ProductID != p.ID {
						continue
					}
					if tx.RepresentationType == model.RepOwner {
						item.OwnWeeks[w] += line.Quantity
					} else {
						item.ChartWeeks[w] += line.Quantity
					}
				}
			}

			for _, q := range item.ChartWeeks {
				item.ChartQty += q
			}
			for _, q := range item.OwnWeeks {
				item.OwnQty += q
			}
			item.ChartVal = p.Price.Mul(decimal.NewFromInt(int64(item.ChartQty)))
			item.OwnVal = p.Price.Mul(decimal.NewFromInt(int64(item.OwnQty)))

			rep.ChartTotal = rep.ChartTotal.Add(item.ChartVal)
			rep.OwnTotal = rep.OwnTotal.Add(item.OwnVal)
			cat.Items = append(cat.Items, item)
		}
		rep.Categories = append(rep.Categories, cat)
	}
	return rep
}
