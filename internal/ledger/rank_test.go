package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

func TestRankIndexUnknownSortsLast(t *testing.T) {
	assert.Equal(t, 0, RankIndex("Master"))
	assert.Less(t, RankIndex("Cook"), RankIndex("Trainee Welder"))
	assert.Equal(t, len(Ranks), RankIndex("Trainee Welder"))
}

func TestSortCrewByRankThenName(t *testing.T) {
	crew := []model.CrewMember{
		{Name: "B. Osman", Rank: "Cook"},
		{Name: "A. Novak", Rank: "Master"},
		{Name: "C. Ivanov", Rank: "Cook"},
		{Name: "Z. Petrov", Rank: "Galley Boy"}, // unknown rank
	}
	sorted := SortCrew(crew)

	assert.Equal(t, "A. Novak", sorted[0].Name)
	assert.Equal(t, "B. Osman", sorted[1].Name)
	assert.Equal(t, "C. Ivanov", sorted[2].Name)
	assert.Equal(t, "Z. Petrov", sorted[3].Name)
}

func TestSortCrewForPayrollActiveFirst(t *testing.T) {
	crew := []model.CrewMember{
		{Name: "Off Master", Rank: "Master", IsActive: false},
		{Name: "Active Cook", Rank: "Cook", IsActive: true},
	}
	sorted := SortCrewForPayroll(crew)

	// A signed-off Master still lists after any active member.
	assert.Equal(t, "Active Cook", sorted[0].Name)
	assert.Equal(t, "Off Master", sorted[1].Name)
}

func TestGroupByCategoryOrderAndUnknowns(t *testing.T) {
	products := []model.Product{
		{Name: "Peanuts", Category: "Snacks"},
		{Name: "Marlboro", Category: "Cigarettes"},
		{Name: "Batteries", Category: "Electronics"},
		{Name: "Aspirin", Category: "Chandlery"},
	}
	groups := GroupByCategory(products)

	cats := make([]string, 0, len(groups))
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	// Known categories in fixed order, unknown ones alphabetically after,
	// empty ones omitted.
	assert.Equal(t, []string{"Cigarettes", "Snacks", "Chandlery", "Electronics"}, cats)
}
