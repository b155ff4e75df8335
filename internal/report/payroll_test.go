package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

func crewTx(recipient model.CrewMember, total string, day int) model.Transaction {
	amount, _ := decimal.NewFromString(total)
	return model.Transaction{
		ID:            uuid.New(),
		IssuedOn:      time.Date(2026, time.August, day, 10, 0, 0, 0, time.UTC),
		Type:          model.TypeCrew,
		RecipientID:   recipient.ID.String(),
		RecipientName: recipient.Name,
		TotalAmount:   amount,
	}
}

func TestPayrollConvertsUSDMembers(t *testing.T) {
	usdMember := model.CrewMember{ID: uuid.New(), Name: "R. Santos", Rank: "2nd Off", IsActive: true, Currency: model.CurrencyUSD}
	txs := []model.Transaction{crewTx(usdMember, "20.00", 5)}

	rep := Payroll([]model.CrewMember{usdMember}, txs, decimal.NewFromFloat(1.10))

	require.Len(t, rep.USD, 1)
	assert.Empty(t, rep.EUR)
	// €20 at 1.10 = $22
	assert.True(t, rep.USD[0].Deduction.Equal(decimal.NewFromFloat(22.0)), "got %s", rep.USD[0].Deduction)
	assert.True(t, rep.USD[0].DeductionEUR.Equal(decimal.NewFromFloat(20.0)))
	assert.True(t, rep.TotalUSD.Equal(decimal.NewFromFloat(22.0)))
}

func TestPayrollGrandTotalUnaffectedByRate(t *testing.T) {
	eur := model.CrewMember{ID: uuid.New(), Name: "A. Novak", Rank: "Master", IsActive: true, Currency: model.CurrencyEUR}
	usd := model.CrewMember{ID: uuid.New(), Name: "L. Reyes", Rank: "Cook", IsActive: true, Currency: model.CurrencyUSD}
	crew := []model.CrewMember{eur, usd}
	txs := []model.Transaction{
		crewTx(eur, "30.00", 3),
		crewTx(usd, "20.00", 4),
	}

	atLow := Payroll(crew, txs, decimal.NewFromFloat(1.05))
	atHigh := Payroll(crew, txs, decimal.NewFromFloat(1.40))

	// The grand total sums raw EUR deductions; the exchange rate only moves
	// the USD column.
	assert.True(t, atLow.GrandTotalEUR.Equal(decimal.NewFromInt(50)))
	assert.True(t, atHigh.GrandTotalEUR.Equal(decimal.NewFromInt(50)))
	assert.False(t, atLow.TotalUSD.Equal(atHigh.TotalUSD))
}

func TestPayrollIncludesSignedOffMembers(t *testing.T) {
	active := model.CrewMember{ID: uuid.New(), Name: "B. Osman", Rank: "Cook", IsActive: true, Currency: model.CurrencyEUR}
	signedOff := model.CrewMember{ID: uuid.New(), Name: "A. Novak", Rank: "Master", IsActive: false, Currency: model.CurrencyEUR}
	txs := []model.Transaction{crewTx(signedOff, "12.50", 2)}

	rep := Payroll([]model.CrewMember{signedOff, active}, txs, decimal.NewFromFloat(1.10))

	require.Len(t, rep.EUR, 2)
	// Active members list first even when outranked.
	assert.Equal(t, "B. Osman", rep.EUR[0].Name)
	assert.Equal(t, "A. Novak", rep.EUR[1].Name)
	assert.True(t, rep.EUR[1].Deduction.Equal(decimal.NewFromFloat(12.5)))
}

func TestPayrollZeroDeductionMembersStillListed(t *testing.T) {
	m := model.CrewMember{ID: uuid.New(), Name: "S. Domingo", Rank: "O.S", IsActive: true, Currency: model.CurrencyEUR}

	rep := Payroll([]model.CrewMember{m}, nil, decimal.NewFromFloat(1.10))

	require.Len(t, rep.EUR, 1)
	assert.True(t, rep.EUR[0].Deduction.IsZero())
}
