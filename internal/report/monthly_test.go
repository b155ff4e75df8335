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

func TestMonthlyValuesAtPerUnitPrice(t *testing.T) {
	// €12 per tray of 24: €0.50 per unit.
	p := model.Product{
		ID: uuid.New(), Name: "Fanta Orange 330ml", Category: "Soft Drinks",
		Price: decimal.NewFromFloat(12.00), UnitType: "tray", PackSize: 24,
		InitialStock: 48, AddedStock1: 24,
	}
	txs := []model.Transaction{
		{
			ID: uuid.New(), IssuedOn: time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC),
			Type: model.TypeCrew,
			Items: []model.TransactionItem{{ProductID: p.ID, Quantity: 10}},
		},
	}

	rep := Monthly([]model.Product{p}, txs)

	require.Len(t, rep.Categories, 1)
	item := rep.Categories[0].Items[0]

	assert.True(t, item.PricePerUnit.Equal(decimal.NewFromFloat(0.50)))
	assert.True(t, item.InitialVal.Equal(decimal.NewFromFloat(24.00)))
	assert.True(t, item.Supply1Val.Equal(decimal.NewFromFloat(12.00)))
	assert.Equal(t, 10, item.CrewQty)
	assert.True(t, item.CrewVal.Equal(decimal.NewFromFloat(5.00)))
	assert.Equal(t, 62, item.EndingQty)
	assert.True(t, item.EndingVal.Equal(decimal.NewFromFloat(31.00)))
}

func TestMonthlyChartererColumnIncludesUntypedRepresentation(t *testing.T) {
	p := model.Product{
		ID: uuid.New(), Name: "Peanuts 200g", Category: "Snacks",
		Price: decimal.NewFromFloat(2.00), PackSize: 1, InitialStock: 30,
	}
	mkRep := func(repType string, qty int) model.Transaction {
		return model.Transaction{
			ID: uuid.New(), IssuedOn: time.Date(2026, time.August, 8, 0, 0, 0, 0, time.UTC),
			Type: model.TypeRepresentation, RepresentationType: repType,
			Items: []model.TransactionItem{{ProductID: p.ID, Quantity: qty}},
		}
	}
	txs := []model.Transaction{mkRep(model.RepCharterer, 3), mkRep("", 2), mkRep(model.RepOwner, 4)}

	rep := Monthly([]model.Product{p}, txs)
	item := rep.Categories[0].Items[0]

	// Charterer column = all representation minus owner, so untyped rows land
	// with the charterer.
	assert.Equal(t, 5, item.ChartQty)
	assert.Equal(t, 4, item.OwnQty)
	assert.Equal(t, 9, item.ConsumptionQty)
	assert.Equal(t, 21, item.EndingQty)
}

func TestMonthlyTotalsSumValueColumns(t *testing.T) {
	a := model.Product{
		ID: uuid.New(), Name: "A", Category: "Water",
		Price: decimal.NewFromFloat(3.00), PackSize: 1, InitialStock: 10,
	}
	b := model.Product{
		ID: uuid.New(), Name: "B", Category: "Snacks",
		Price: decimal.NewFromFloat(1.50), PackSize: 1, InitialStock: 20,
	}

	rep := Monthly([]model.Product{a, b}, nil)

	assert.Len(t, rep.Categories, 2)
	assert.True(t, rep.Totals.InitialVal.Equal(decimal.NewFromFloat(60.00)))
	assert.True(t, rep.Totals.EndingVal.Equal(decimal.NewFromFloat(60.00)))
	assert.True(t, rep.Totals.ConsumptionVal.IsZero())
}

func TestMonthlyZeroPackSizeTreatedAsOne(t *testing.T) {
	p := model.Product{
		ID: uuid.New(), Name: "Legacy Import", Category: "Other",
		Price: decimal.NewFromFloat(5.00), PackSize: 0, InitialStock: 4,
	}

	rep := Monthly([]model.Product{p}, nil)
	item := rep.Categories[0].Items[0]

	assert.True(t, item.PricePerUnit.Equal(decimal.NewFromFloat(5.00)))
	assert.True(t, item.InitialVal.Equal(decimal.NewFromFloat(20.00)))
}
