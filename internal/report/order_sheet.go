package report

import (
	"time"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// OrderSheet is the blank weekly order grid handed to the crew: one row per
// active member in rank order, one column per catalog product in category
// order. Quantities are filled in by hand, so the sheet carries structure
// only.
type OrderSheet struct {
	IssueDate time.Time          `json:"issueDate"`
	Crew      []model.CrewMember `json:"crew"`
	Products  []model.Product    `json:"products"`
}

// BuildOrderSheet assembles the grid for the given issue date.
func BuildOrderSheet(crew []model.CrewMember, products []model.Product, issueDate time.Time) OrderSheet {
	active := make([]model.CrewMember, 0, len(crew))
	for _, m := range crew {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return OrderSheet{
		IssueDate: issueDate,
		Crew:      ledger.SortCrew(active),
		Products:  ledger.SortProducts(append([]model.Product(nil), products...)),
	}
}
