package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

type journalFixture struct {
	svc      JournalService
	crew     *stubCrewRepo
	products *stubProductRepo
	txs      *stubTransactionRepo
	member   model.CrewMember
	water    model.Product
}

func newJournalFixture(t *testing.T) *journalFixture {
	t.Helper()
	crew := newStubCrewRepo()
	products := newStubProductRepo()
	txs := newStubTransactionRepo()

	member := model.CrewMember{ID: uuid.New(), Name: "B. Osman", Rank: "Cook", IsActive: true, Currency: model.CurrencyEUR}
	require.NoError(t, crew.Create(context.Background(), &member))

	water := model.Product{
		ID: uuid.New(), Name: "Still Water 1.5L", Category: "Water",
		Price: decimal.NewFromFloat(3.00), UnitType: "pack", PackSize: 6,
		InitialStock: 10,
	}
	require.NoError(t, products.Create(context.Background(), &water))

	return &journalFixture{
		svc:      NewJournalService(txs, crew, products),
		crew:     crew,
		products: products,
		txs:      txs,
		member:   member,
		water:    water,
	}
}

func (f *journalFixture) checkout(t *testing.T, qty int) *model.Transaction {
	t.Helper()
	tx, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		Type:        model.TypeCrew,
		RecipientID: f.member.ID.String(),
		IssuedOn:    "2026-08-10",
		Items:       []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: qty}},
	})
	require.NoError(t, err)
	return tx
}

func TestCheckoutSnapshotsNameAndPrice(t *testing.T) {
	f := newJournalFixture(t)

	tx := f.checkout(t, 2)

	require.Len(t, tx.Items, 1)
	assert.Equal(t, "Still Water 1.5L", tx.Items[0].ProductName)
	assert.True(t, tx.Items[0].UnitPrice.Equal(decimal.NewFromFloat(3.00)))
	assert.True(t, tx.TotalAmount.Equal(decimal.NewFromFloat(6.00)))
	assert.Equal(t, f.member.Name, tx.RecipientName)
}

func TestCheckoutRejectsOverIssue(t *testing.T) {
	f := newJournalFixture(t)

	_, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		Type:        model.TypeCrew,
		RecipientID: f.member.ID.String(),
		IssuedOn:    "2026-08-10",
		Items:       []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: 11}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough stock")
	list, _ := f.txs.List(context.Background())
	assert.Empty(t, list, "failed checkout must not append to the journal")
}

func TestCheckoutRejectsInactiveCrew(t *testing.T) {
	f := newJournalFixture(t)
	f.member.IsActive = false
	require.NoError(t, f.crew.Update(context.Background(), &f.member))

	_, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		Type:        model.TypeCrew,
		RecipientID: f.member.ID.String(),
		IssuedOn:    "2026-08-10",
		Items:       []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signed off")
}

func TestCheckoutRepresentationDefaultsToCharterer(t *testing.T) {
	f := newJournalFixture(t)

	tx, err := f.svc.Checkout(context.Background(), dto.CheckoutRequest{
		Type:          model.TypeRepresentation,
		RecipientName: "Port Captain",
		IssuedOn:      "2026-08-12",
		Items:         []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, model.RepCharterer, tx.RepresentationType)
	assert.Equal(t, "Port Captain", tx.RecipientID)
}

func TestApplyEditKeepsSnapshotsAndRecomputesTotal(t *testing.T) {
	f := newJournalFixture(t)
	tx := f.checkout(t, 2)

	// Reprice the product after checkout; the edited line must keep the old
	// snapshot.
	f.water.Price = decimal.NewFromFloat(99.00)
	require.NoError(t, f.products.Update(context.Background(), &f.water))

	edited, removed, err := f.svc.ApplyEdit(context.Background(), tx.ID, dto.EditTransactionRequest{
		Items: []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: 3}},
	})

	require.NoError(t, err)
	assert.False(t, removed)
	require.NotNil(t, edited)
	assert.True(t, edited.Items[0].UnitPrice.Equal(decimal.NewFromFloat(3.00)))
	assert.True(t, edited.TotalAmount.Equal(decimal.NewFromFloat(9.00)))
}

func TestApplyEditEmptyListDeletesTransaction(t *testing.T) {
	f := newJournalFixture(t)
	tx := f.checkout(t, 2)

	edited, removed, err := f.svc.ApplyEdit(context.Background(), tx.ID, dto.EditTransactionRequest{
		Items: []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: 0}},
	})

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, edited)
	list, _ := f.txs.List(context.Background())
	assert.Empty(t, list)
}

func TestApplyEditUnknownIDIsNoOp(t *testing.T) {
	f := newJournalFixture(t)

	edited, removed, err := f.svc.ApplyEdit(context.Background(), uuid.New(), dto.EditTransactionRequest{
		Items: []dto.CartItemRequest{{ProductID: f.water.ID.String(), Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Nil(t, edited)
	assert.False(t, removed)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	f := newJournalFixture(t)
	f.checkout(t, 1)

	require.NoError(t, f.svc.Remove(context.Background(), uuid.New()))
	list, _ := f.txs.List(context.Background())
	assert.Len(t, list, 1)
}
