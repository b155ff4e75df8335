package report

import (
	"sort"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// History recipient filter sentinels. Any other non-empty value is treated as
// a crew member id.
const (
	HistoryAll            = "ALL"
	HistoryRepresentation = "REPRESENTATION"
)

// History returns the period's transactions, optionally narrowed to one crew
// recipient or to all representation issues. Order: every CREW transaction
// before every REPRESENTATION one, newest first within each group.
func History(txs []model.Transaction, recipientFilter string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		switch recipientFilter {
		case "", HistoryAll:
			out = append(out, tx)
		case HistoryRepresentation:
			if tx.Type == model.TypeRepresentation {
				out = append(out, tx)
			}
		default:
			if tx.RecipientID == recipientFilter {
				out = append(out, tx)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type == model.TypeCrew
		}
		return out[i].IssuedOn.After(out[j].IssuedOn)
	})
	return out
}
