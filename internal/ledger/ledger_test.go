package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 12, 0, 0, 0, time.UTC)
}

func issue(txType, repType string, on time.Time, productID uuid.UUID, qty int) model.Transaction {
	return model.Transaction{
		ID:                 uuid.New(),
		IssuedOn:           on,
		Type:               txType,
		RepresentationType: repType,
		TotalAmount:        decimal.Zero,
		Items: []model.TransactionItem{
			{ProductID: productID, Quantity: qty},
		},
	}
}

func TestCurrentStockConservation(t *testing.T) {
	p := model.Product{
		ID:           uuid.New(),
		Name:         "Still Water 1.5L",
		InitialStock: 100,
		AddedStock1:  50,
	}
	txs := []model.Transaction{
		issue(model.TypeCrew, "", day(3), p.ID, 10),
		issue(model.TypeRepresentation, model.RepCharterer, day(12), p.ID, 5),
	}

	// 100 + 50 - 15 = 135
	assert.Equal(t, 135, CurrentStock(p, txs))
}

func TestCurrentStockMayGoNegative(t *testing.T) {
	p := model.Product{ID: uuid.New(), InitialStock: 5}
	txs := []model.Transaction{
		issue(model.TypeCrew, "", day(1), p.ID, 8),
	}

	// Over-issuance is reported as computed, never clamped to zero.
	assert.Equal(t, -3, CurrentStock(p, txs))
}

func TestCurrentStockIgnoresOtherProducts(t *testing.T) {
	p := model.Product{ID: uuid.New(), InitialStock: 20}
	other := uuid.New()
	txs := []model.Transaction{
		issue(model.TypeCrew, "", day(1), other, 7),
	}

	assert.Equal(t, 20, CurrentStock(p, txs))
}

func TestConsumedQuantityFilters(t *testing.T) {
	pid := uuid.New()
	txs := []model.Transaction{
		issue(model.TypeCrew, "", day(2), pid, 4),
		issue(model.TypeRepresentation, model.RepCharterer, day(9), pid, 3),
		issue(model.TypeRepresentation, model.RepOwner, day(16), pid, 2),
	}

	assert.Equal(t, 9, ConsumedQuantity(pid, txs, Filter{}))
	assert.Equal(t, 4, ConsumedQuantity(pid, txs, Filter{Type: model.TypeCrew}))
	assert.Equal(t, 5, ConsumedQuantity(pid, txs, Filter{Type: model.TypeRepresentation}))
	assert.Equal(t, 2, ConsumedQuantity(pid, txs, Filter{
		Type: model.TypeRepresentation, RepresentationType: model.RepOwner,
	}))
}

func TestWeekOfMonth(t *testing.T) {
	cases := []struct {
		day  int
		week int
	}{
		{1, 1}, {7, 1},
		{8, 2}, {14, 2},
		{15, 3},
		{22, 4}, {28, 4},
		{29, 5}, {31, 5}, // days 29-31 fold into week 5
	}
	for _, tc := range cases {
		assert.Equal(t, tc.week, WeekOfMonth(day(tc.day)), "day %d", tc.day)
	}
}

func TestWeeklyBuckets(t *testing.T) {
	pid := uuid.New()
	txs := []model.Transaction{
		issue(model.TypeRepresentation, model.RepCharterer, day(2), pid, 1),
		issue(model.TypeRepresentation, model.RepCharterer, day(9), pid, 3),
		issue(model.TypeRepresentation, model.RepCharterer, day(30), pid, 2),
		issue(model.TypeRepresentation, model.RepOwner, day(9), pid, 7),
	}

	buckets := WeeklyBuckets(pid, txs, Filter{
		Type: model.TypeRepresentation, RepresentationType: model.RepCharterer,
	})
	assert.Equal(t, [WeekBuckets]int{1, 3, 0, 0, 2}, buckets)
}

func TestFilterByPeriod(t *testing.T) {
	pid := uuid.New()
	inPeriod := issue(model.TypeCrew, "", day(10), pid, 1)
	otherMonth := issue(model.TypeCrew, "", time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), pid, 1)
	otherYear := issue(model.TypeCrew, "", time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC), pid, 1)

	got := FilterByPeriod([]model.Transaction{inPeriod, otherMonth, otherYear}, "08", "2026")
	assert.Len(t, got, 1)
	assert.Equal(t, inPeriod.ID, got[0].ID)
}
