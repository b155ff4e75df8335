// Package backup encodes and decodes the portable state bundle used for
// vessel handover and disaster recovery. Decoding is deliberately lenient:
// bundles exported by older builds of the program lack several fields, and
// those are migrated to their defaults rather than rejected.
package backup

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// FormatVersion is written into every bundle this build produces. Bundles
// without a version field are accepted as legacy exports.
const FormatVersion = "2.0"

// Bundle is the complete application state as one JSON document.
type Bundle struct {
	Version      string               `json:"version,omitempty"`
	Timestamp    time.Time            `json:"timestamp"`
	Crew         []model.CrewMember   `json:"crew"`
	Products     []model.Product      `json:"products"`
	Transactions []model.Transaction  `json:"transactions"`
	Settings     *model.ReportSettings `json:"settings,omitempty"`
}

// Encode serializes the current state with this build's format version.
func Encode(crew []model.CrewMember, products []model.Product, txs []model.Transaction, settings *model.ReportSettings, now time.Time) ([]byte, error) {
	b := Bundle{
		Version:      FormatVersion,
		Timestamp:    now.UTC(),
		Crew:         crew,
		Products:     products,
		Transactions: txs,
		Settings:     settings,
	}
	return json.MarshalIndent(b, "", "  ")
}

var errNotABundle = errors.New("file is not a recognizable backup: expected crew or products array")

// flexTime unmarshals either a millisecond epoch number (legacy exports) or
// an RFC 3339 string.
type flexTime struct{ time.Time }

func (t *flexTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	return t.Time.UnmarshalJSON(data)
}

type rawCrew struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rank     string  `json:"rank"`
	IsActive *bool   `json:"isActive"`
	Currency *string `json:"currency"`
}

type rawProduct struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	UnitType     *string          `json:"unitType"`
	PackSize     *int             `json:"packSize"`
	InitialStock *int             `json:"initialStock"`
	AddedStock1  *int             `json:"addedStock1"`
	AddedStock2  *int             `json:"addedStock2"`
	AddedStock3  *int             `json:"addedStock3"`
}

type rawItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type rawTransaction struct {
	ID                 string          `json:"id"`
	Timestamp          flexTime        `json:"timestamp"`
	Type               string          `json:"type"`
	RecipientID        string          `json:"recipientId"`
	RecipientName      string          `json:"recipientName"`
	RepresentationType string          `json:"representationType"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Items              []rawItem       `json:"items"`
}

type rawSettings struct {
	VesselName         *string          `json:"vesselName"`
	MasterName         *string          `json:"masterName"`
	ReportMonth        *string          `json:"reportMonth"`
	ReportYear         *string          `json:"reportYear"`
	ExchangeRate       *decimal.Decimal `json:"exchangeRate"`
	GbpExchangeRate    *decimal.Decimal `json:"gbpExchangeRate"`
	GpbExchangeRate    *decimal.Decimal `json:"gpbExchangeRate"` // misspelled key written by early exports
	UseGbpForPurchases *bool            `json:"useGbpForPurchases"`
}

type rawBundle struct {
	Version      string           `json:"version"`
	Crew         json.RawMessage  `json:"crew"`
	Products     json.RawMessage  `json:"products"`
	Transactions json.RawMessage  `json:"transactions"`
	Settings     *rawSettings     `json:"settings"`
}

func isArray(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

// Decode parses a bundle, migrating missing fields to their defaults. A
// document where neither crew nor products is a JSON array is rejected — that
// is the structural check distinguishing a backup from an arbitrary file.
func Decode(data []byte, now time.Time) (*Bundle, error) {
	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errNotABundle
	}
	if !isArray(raw.Crew) && !isArray(raw.Products) {
		return nil, errNotABundle
	}

	out := &Bundle{Version: raw.Version, Timestamp: now.UTC()}

	if isArray(raw.Crew) {
		var crew []rawCrew
		if err := json.Unmarshal(raw.Crew, &crew); err != nil {
			return nil, errNotABundle
		}
		for _, c := range crew {
			id, err := uuid.Parse(c.ID)
			if err != nil {
				id = uuid.New()
			}
			m := model.CrewMember{ID: id, Name: c.Name, Rank: c.Rank, IsActive: true, Currency: model.CurrencyEUR}
			if c.IsActive != nil {
				m.IsActive = *c.IsActive
			}
			if c.Currency != nil && *c.Currency != "" {
				m.Currency = *c.Currency
			}
			out.Crew = append(out.Crew, m)
		}
	}

	if isArray(raw.Products) {
		var products []rawProduct
		if err := json.Unmarshal(raw.Products, &products); err != nil {
			return nil, errNotABundle
		}
		for _, rp := range products {
			id, err := uuid.Parse(rp.ID)
			if err != nil {
				id = uuid.New()
			}
			p := model.Product{ID: id, Name: rp.Name, Category: rp.Category, Price: rp.Price, UnitType: "pcs", PackSize: 1}
			if rp.UnitType != nil && *rp.UnitType != "" {
				p.UnitType = *rp.UnitType
			}
			if rp.PackSize != nil && *rp.PackSize >= 1 {
				p.PackSize = *rp.PackSize
			}
			if rp.InitialStock != nil {
				p.InitialStock = *rp.InitialStock
			}
			if rp.AddedStock1 != nil {
				p.AddedStock1 = *rp.AddedStock1
			}
			if rp.AddedStock2 != nil {
				p.AddedStock2 = *rp.AddedStock2
			}
			if rp.AddedStock3 != nil {
				p.AddedStock3 = *rp.AddedStock3
			}
			out.Products = append(out.Products, p)
		}
	}

	if isArray(raw.Transactions) {
		var txs []rawTransaction
		if err := json.Unmarshal(raw.Transactions, &txs); err != nil {
			return nil, errNotABundle
		}
		for _, rt := range txs {
			id, err := uuid.Parse(rt.ID)
			if err != nil {
				id = uuid.New()
			}
			t := model.Transaction{
				ID:                 id,
				IssuedOn:           rt.Timestamp.Time,
				Type:               rt.Type,
				RecipientID:        rt.RecipientID,
				RecipientName:      rt.RecipientName,
				RepresentationType: rt.RepresentationType,
				TotalAmount:        rt.TotalAmount,
			}
			if t.Type == model.TypeRepresentation && t.RepresentationType == "" {
				t.RepresentationType = model.RepCharterer
			}
			for _, ri := range rt.Items {
				pid, err := uuid.Parse(ri.ProductID)
				if err != nil {
					pid = uuid.New()
				}
				t.Items = append(t.Items, model.TransactionItem{
					TransactionID: id,
					ProductID:     pid,
					ProductName:   ri.ProductName,
					Quantity:      ri.Quantity,
					UnitPrice:     ri.UnitPrice,
				})
			}
			out.Transactions = append(out.Transactions, t)
		}
	}

	if raw.Settings != nil {
		s := model.DefaultSettings(now)
		if raw.Settings.VesselName != nil {
			s.VesselName = *raw.Settings.VesselName
		}
		if raw.Settings.MasterName != nil {
			s.MasterName = *raw.Settings.MasterName
		}
		if raw.Settings.ReportMonth != nil && *raw.Settings.ReportMonth != "" {
			s.ReportMonth = *raw.Settings.ReportMonth
		}
		if raw.Settings.ReportYear != nil && *raw.Settings.ReportYear != "" {
			s.ReportYear = *raw.Settings.ReportYear
		}
		if raw.Settings.ExchangeRate != nil && raw.Settings.ExchangeRate.IsPositive() {
			s.ExchangeRate = *raw.Settings.ExchangeRate
		}
		gbp := raw.Settings.GbpExchangeRate
		if gbp == nil {
			gbp = raw.Settings.GpbExchangeRate
		}
		if gbp != nil && gbp.IsPositive() {
			s.GbpExchangeRate = *gbp
		}
		if raw.Settings.UseGbpForPurchases != nil {
			s.UseGbpForPurchases = *raw.Settings.UseGbpForPurchases
		}
		out.Settings = &s
	}

	return out, nil
}
