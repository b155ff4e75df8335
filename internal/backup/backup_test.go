package backup

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

var decodeNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func TestDecodeRejectsNonBundles(t *testing.T) {
	cases := map[string]string{
		"not json":       "hello",
		"empty object":   `{}`,
		"crew not array": `{"crew": {"a": 1}, "products": 7}`,
		"json array":     `[1, 2, 3]`,
	}
	for name, data := range cases {
		_, err := Decode([]byte(data), decodeNow)
		assert.Error(t, err, name)
	}
}

func TestDecodeMigratesLegacyDefaults(t *testing.T) {
	// A legacy browser export: no version, ms-epoch timestamps, crew without
	// isActive/currency, products without unitType/packSize/addedStock.
	legacy := `{
		"crew": [{"id": "8f14e45f-ea4e-4c1a-8b3a-111111111111", "name": "A. Novak", "rank": "Master"}],
		"products": [{"id": "8f14e45f-ea4e-4c1a-8b3a-222222222222", "name": "Peanuts", "category": "Snacks", "price": "2.10", "initialStock": 5}],
		"transactions": [{
			"id": "8f14e45f-ea4e-4c1a-8b3a-333333333333",
			"timestamp": 1755000000000,
			"type": "REPRESENTATION",
			"recipientId": "Port Captain",
			"recipientName": "Port Captain",
			"totalAmount": "4.20",
			"items": [{"productId": "8f14e45f-ea4e-4c1a-8b3a-222222222222", "productName": "Peanuts", "quantity": 2, "unitPrice": "2.10"}]
		}],
		"settings": {"reportMonth": "08", "reportYear": "2026", "exchangeRate": "1.12", "gpbExchangeRate": "0.84"}
	}`

	b, err := Decode([]byte(legacy), decodeNow)
	require.NoError(t, err)

	require.Len(t, b.Crew, 1)
	assert.True(t, b.Crew[0].IsActive, "missing isActive defaults to true")
	assert.Equal(t, model.CurrencyEUR, b.Crew[0].Currency)

	require.Len(t, b.Products, 1)
	assert.Equal(t, "pcs", b.Products[0].UnitType)
	assert.Equal(t, 1, b.Products[0].PackSize)
	assert.Equal(t, 5, b.Products[0].InitialStock)
	assert.Zero(t, b.Products[0].AddedStock1)

	require.Len(t, b.Transactions, 1)
	tx := b.Transactions[0]
	assert.Equal(t, time.UnixMilli(1755000000000).UTC(), tx.IssuedOn)
	// Untyped representation rows migrate to CHARTERER.
	assert.Equal(t, model.RepCharterer, tx.RepresentationType)
	require.Len(t, tx.Items, 1)
	assert.Equal(t, "Peanuts", tx.Items[0].ProductName)

	require.NotNil(t, b.Settings)
	assert.True(t, b.Settings.ExchangeRate.Equal(decimal.NewFromFloat(1.12)))
	// The misspelled legacy key still populates the GBP rate.
	assert.True(t, b.Settings.GbpExchangeRate.Equal(decimal.NewFromFloat(0.84)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	crew := []model.CrewMember{{ID: uuid.New(), Name: "B. Osman", Rank: "Cook", IsActive: true, Currency: model.CurrencyUSD}}
	products := []model.Product{{
		ID: uuid.New(), Name: "Still Water 1.5L", Category: "Water",
		Price: decimal.NewFromFloat(3.00), UnitType: "pack", PackSize: 6, InitialStock: 100,
	}}
	txs := []model.Transaction{{
		ID: uuid.New(), IssuedOn: time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		Type: model.TypeCrew, RecipientID: crew[0].ID.String(), RecipientName: "B. Osman",
		TotalAmount: decimal.NewFromFloat(6.00),
		Items: []model.TransactionItem{{
			ProductID: products[0].ID, ProductName: "Still Water 1.5L", Quantity: 2,
			UnitPrice: decimal.NewFromFloat(3.00),
		}},
	}}
	settings := model.DefaultSettings(decodeNow)

	data, err := Encode(crew, products, txs, &settings, decodeNow)
	require.NoError(t, err)

	b, err := Decode(data, decodeNow)
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, b.Version)
	require.Len(t, b.Crew, 1)
	assert.Equal(t, crew[0].ID, b.Crew[0].ID)
	assert.Equal(t, model.CurrencyUSD, b.Crew[0].Currency)
	require.Len(t, b.Products, 1)
	assert.Equal(t, 6, b.Products[0].PackSize)
	require.Len(t, b.Transactions, 1)
	assert.Equal(t, txs[0].IssuedOn, b.Transactions[0].IssuedOn)
	assert.Equal(t, 2, b.Transactions[0].Items[0].Quantity)
}

func TestDecodeAcceptsRFC3339Timestamps(t *testing.T) {
	doc := `{
		"crew": [],
		"products": [],
		"transactions": [{
			"id": "8f14e45f-ea4e-4c1a-8b3a-444444444444",
			"timestamp": "2026-08-10T09:30:00Z",
			"type": "CREW",
			"recipientId": "x",
			"recipientName": "x",
			"totalAmount": "1.00",
			"items": []
		}]
	}`

	b, err := Decode([]byte(doc), decodeNow)
	require.NoError(t, err)
	require.Len(t, b.Transactions, 1)
	assert.Equal(t, time.Date(2026, time.August, 10, 9, 30, 0, 0, time.UTC), b.Transactions[0].IssuedOn)
}
