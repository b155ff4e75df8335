// Package report derives the financial/inventory report rows from the
// registries and the journal. Every function is pure: same inputs, same rows,
// no hidden state. Callers are expected to pass transactions already filtered
// to the active reporting period. Formatting, locale and currency symbols are
// the renderer's problem — rows carry plain computed values only.
package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// PayrollEntry is one crew member's deduction line. DeductionEUR is the raw
// EUR total of their CREW transactions; Deduction is the amount in the
// member's salary currency (EUR members: identical; USD members: converted).
type PayrollEntry struct {
	CrewID       uuid.UUID       `json:"crewId"`
	Name         string          `json:"name"`
	Rank         string          `json:"rank"`
	IsActive     bool            `json:"isActive"`
	Currency     string          `json:"currency"`
	DeductionEUR decimal.Decimal `json:"deductionEur"`
	Deduction    decimal.Decimal `json:"deduction"`
}

// PayrollReport groups deductions by salary currency. GrandTotalEUR sums the
// raw EUR deductions of both groups, so changing the exchange rate never
// moves it.
type PayrollReport struct {
	EUR           []PayrollEntry  `json:"eur"`
	USD           []PayrollEntry  `json:"usd"`
	TotalEUR      decimal.Decimal `json:"totalEur"`
	TotalUSD      decimal.Decimal `json:"totalUsd"`
	GrandTotalEUR decimal.Decimal `json:"grandTotalEur"`
}

// Payroll computes the month's deductions for every crew member, active or
// signed off. Ordering: active first, then rank table position, then name.
func Payroll(crew []model.CrewMember, txs []model.Transaction, usdRate decimal.Decimal) PayrollReport {
	sorted := ledger.SortCrewForPayroll(append([]model.CrewMember(nil), crew...))

	rep := PayrollReport{EUR: []PayrollEntry{}, USD: []PayrollEntry{}}
	for _, member := range sorted {
		eur := decimal.Zero
		for _, tx := range txs {
			if tx.Type == model.TypeCrew && tx.RecipientID == member.ID.String() {
				eur = eur.Add(tx.TotalAmount)
			}
		}

		entry := PayrollEntry{
			CrewID:       member.ID,
			Name:         member.Name,
			Rank:         member.Rank,
			IsActive:     member.IsActive,
			Currency:     member.Currency,
			DeductionEUR: eur,
			Deduction:    eur,
		}
		rep.GrandTotalEUR = rep.GrandTotalEUR.Add(eur)

		if member.Currency == model.CurrencyUSD {
			entry.Deduction = ledger.EURToUSD(eur, usdRate)
			rep.TotalUSD = rep.TotalUSD.Add(entry.Deduction)
			rep.USD = append(rep.USD, entry)
		} else {
			rep.TotalEUR = rep.TotalEUR.Add(entry.Deduction)
			rep.EUR = append(rep.EUR, entry)
		}
	}
	return rep
}
