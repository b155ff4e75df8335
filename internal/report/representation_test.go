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

func repTx(repType string, day int, productID uuid.UUID, qty int, unitPrice string) model.Transaction {
	price, _ := decimal.NewFromString(unitPrice)
	return model.Transaction{
		ID:                 uuid.New(),
		IssuedOn:           time.Date(2026, time.August, day, 14, 0, 0, 0, time.UTC),
		Type:               model.TypeRepresentation,
		RecipientID:        "Chart. Rep",
		RecipientName:      "Chart. Rep",
		RepresentationType: repType,
		TotalAmount:        price.Mul(decimal.NewFromInt(int64(qty))),
		Items: []model.TransactionItem{
			{ProductID: productID, Quantity: qty, UnitPrice: price},
		},
	}
}

func TestRepresentationWeekBucketsAndPackValue(t *testing.T) {
	p := model.Product{
		ID: uuid.New(), Name: "Coca-Cola 330ml", Category: "Soft Drinks",
		Price: decimal.NewFromFloat(2.00), UnitType: "tray", PackSize: 24,
		InitialStock: 40,
	}
	// Day 9 falls in week 2.
	txs := []model.Transaction{repTx(model.RepCharterer, 9, p.ID, 3, "2.00")}

	rep := Representation([]model.Product{p}, txs)

	require.Len(t, rep.Categories, 1)
	require.Len(t, rep.Categories[0].Items, 1)
	item := rep.Categories[0].Items[0]

	assert.Equal(t, 3, item.ChartWeeks[1])
	assert.Equal(t, 3, item.ChartQty)
	// Valued at the full pack price, not per-unit.
	assert.True(t, item.ChartVal.Equal(decimal.NewFromFloat(6.00)), "got %s", item.ChartVal)
	assert.True(t, rep.ChartTotal.Equal(decimal.NewFromFloat(6.00)))
	assert.Equal(t, 37, item.CurrentStock)
}

func TestRepresentationSplitsOwnerFromCharterer(t *testing.T) {
	p := model.Product{
		ID: uuid.New(), Name: "Marlboro Red", Category: "Cigarettes",
		Price: decimal.NewFromFloat(38.00), InitialStock: 50,
	}
	txs := []model.Transaction{
		repTx(model.RepCharterer, 2, p.ID, 1, "38.00"),
		repTx(model.RepOwner, 16, p.ID, 2, "38.00"),
		// Legacy rows with no sub-type count as charterer.
		repTx("", 30, p.ID, 1, "38.00"),
	}

	rep := Representation([]model.Product{p}, txs)
	item := rep.Categories[0].Items[0]

	assert.Equal(t, [5]int{1, 0, 0, 0, 1}, [5]int(item.ChartWeeks))
	assert.Equal(t, [5]int{0, 0, 1, 0, 0}, [5]int(item.OwnWeeks))
	assert.Equal(t, 2, item.ChartQty)
	assert.Equal(t, 2, item.OwnQty)
	assert.True(t, rep.ChartTotal.Equal(decimal.NewFromFloat(76.00)))
	assert.True(t, rep.OwnTotal.Equal(decimal.NewFromFloat(76.00)))
}
