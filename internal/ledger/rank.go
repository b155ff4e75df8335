package ledger

import (
	"sort"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// Ranks is the fixed shipboard seniority table used to order crew in payroll
// and order-sheet output. Rank on a CrewMember is free text; anything not in
// this table sorts after all known ranks.
var Ranks = []string{
	"Master", "Ch. Off", "1st Off", "2nd Off", "3rd Off", "JDO",
	"Ch. Eng", "2nd Eng", "3rd Eng", "4th Eng", "ETO", "JEO", "JETO",
	"Fitter", "M/Man", "Bosun", "A.B", "O.S", "Cook", "Steward",
	"Deck Cad.", "Eng Cad.",
}

// RankIndex returns the table position of a rank, or len(Ranks) for unknown
// ranks so they sort last.
func RankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return len(Ranks)
}

// SortCrew orders members by rank-table position, ties broken by name
// (byte-wise comparison — deterministic across runs). The slice is sorted in
// place and returned for chaining.
func SortCrew(crew []model.CrewMember) []model.CrewMember {
	sort.SliceStable(crew, func(i, j int) bool {
		ri, rj := RankIndex(crew[i].Rank), RankIndex(crew[j].Rank)
		if ri != rj {
			return ri < rj
		}
		return crew[i].Name < crew[j].Name
	})
	return crew
}

// SortCrewForPayroll orders active members before signed-off ones, then by
// rank and name as SortCrew.
func SortCrewForPayroll(crew []model.CrewMember) []model.CrewMember {
	sort.SliceStable(crew, func(i, j int) bool {
		if crew[i].IsActive != crew[j].IsActive {
			return crew[i].IsActive
		}
		ri, rj := RankIndex(crew[i].Rank), RankIndex(crew[j].Rank)
		if ri != rj {
			return ri < rj
		}
		return crew[i].Name < crew[j].Name
	})
	return crew
}
