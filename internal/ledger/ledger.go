// Package ledger is the pure derivation engine of the bonded store: given the
// catalog and the distribution journal it computes consumed quantities,
// current stock and week-of-month buckets. Nothing here mutates or persists —
// every caller recomputes on read, which at single-vessel data sizes is
// cheaper than maintaining a cache.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// WeekBuckets is the number of weekly columns in the representation report.
// Days 29-31 fold into the fifth bucket, there is never a sixth.
const WeekBuckets = 5

// Filter narrows which transactions contribute to a derivation. Zero values
// mean "no filter".
type Filter struct {
	Type               string // CREW | REPRESENTATION
	RepresentationType string // CHARTERER | OWNER, only meaningful with REPRESENTATION
}

func (f Filter) matches(tx model.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.RepresentationType != "" && tx.RepresentationType != f.RepresentationType {
		return false
	}
	return true
}

// ConsumedQuantity sums the issued quantity of one product across the given
// transactions. A transaction that does not carry the product contributes 0,
// as does a dangling product reference — data drift is tolerated, not fatal.
func ConsumedQuantity(productID uuid.UUID, txs []model.Transaction, f Filter) int {
	total := 0
	for _, tx := range txs {
		if !f.matches(tx) {
			continue
		}
		for _, item := range tx.Items {
			if item.ProductID == productID {
				total += item.Quantity
			}
		}
	}
	return total
}

// CurrentStock derives the live stock level of a product:
//
//	initial + added1 + added2 + added3 - consumed
//
// The result may be negative when transactions were edited inconsistently.
// That is a reportable over-issuance condition, so it is never clamped here;
// the checkout path guards against creating new negatives.
func CurrentStock(p model.Product, txs []model.Transaction) int {
	return p.InitialStock + p.TotalAdded() - ConsumedQuantity(p.ID, txs, Filter{})
}

// WeekOfMonth maps a calendar day to a 1-based week bucket:
// min(ceil(day/7), 5). Day 1-7 is week 1, day 29-31 stays in week 5.
func WeekOfMonth(t time.Time) int {
	w := (t.Day() + 6) / 7
	if w > WeekBuckets {
		w = WeekBuckets
	}
	return w
}

// WeeklyBuckets distributes the consumed quantity of a product over the five
// week-of-month buckets (0-indexed).
func WeeklyBuckets(productID uuid.UUID, txs []model.Transaction, f Filter) [WeekBuckets]int {
	var buckets [WeekBuckets]int
	for _, tx := range txs {
		if !f.matches(tx) {
			continue
		}
		for _, item := range tx.Items {
			if item.ProductID == productID {
				buckets[WeekOfMonth(tx.IssuedOn)-1] += item.Quantity
			}
		}
	}
	return buckets
}

// FilterByPeriod keeps transactions issued in the given reporting period.
// Month is zero-padded "01".."12", year is e.g. "2026", matching the values
// stored in ReportSettings.
func FilterByPeriod(txs []model.Transaction, month, year string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IssuedOn.Format("01") == month && tx.IssuedOn.Format("2006") == year {
			out = append(out, tx)
		}
	}
	return out
}
