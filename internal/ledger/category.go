package ledger

import (
	"sort"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// Categories is the fixed category order of every report. Unrecognized
// categories are tolerated and render after the known ones.
var Categories = []string{"Cigarettes", "Soft Drinks", "Water", "Snacks", "Other"}

// CategoryIndex returns the report position of a category, or len(Categories)
// for unrecognized ones.
func CategoryIndex(category string) int {
	for i, c := range Categories {
		if c == category {
			return i
		}
	}
	return len(Categories)
}

// SortProducts orders products by category position, then name. Sorted in
// place, returned for chaining.
func SortProducts(products []model.Product) []model.Product {
	sort.SliceStable(products, func(i, j int) bool {
		ci, cj := CategoryIndex(products[i].Category), CategoryIndex(products[j].Category)
		if ci != cj {
			return ci < cj
		}
		return products[i].Name < products[j].Name
	})
	return products
}

// GroupByCategory splits products into the fixed category order, appending a
// group per unrecognized category at the end. Empty categories are omitted.
func GroupByCategory(products []model.Product) []ProductGroup {
	byCat := make(map[string][]model.Product)
	var extraOrder []string
	for _, p := range products {
		if _, known := byCat[p.Category]; !known && CategoryIndex(p.Category) == len(Categories) {
			extraOrder = append(extraOrder, p.Category)
		}
		byCat[p.Category] = append(byCat[p.Category], p)
	}
	sort.Strings(extraOrder)

	var groups []ProductGroup
	for _, cat := range append(append([]string{}, Categories...), extraOrder...) {
		items, ok := byCat[cat]
		if !ok || len(items) == 0 {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		groups = append(groups, ProductGroup{Category: cat, Products: items})
	}
	return groups
}

// ProductGroup is one category bucket produced by GroupByCategory.
type ProductGroup struct {
	Category string
	Products []model.Product
}
