package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// settingsRowID pins ReportSettings to a single row: the application is
// process-wide single-vessel configuration, not a collection.
const settingsRowID = 1

// ReportSettings holds the vessel identity, the active reporting period and
// the exchange rates used by the derivation engine. ExchangeRate is EUR→USD,
// GbpExchangeRate is EUR→GBP. When UseGbpForPurchases is set, catalog prices
// are entered in GBP and converted to EUR before storage — EUR stays the
// canonical currency for everything derived.
type ReportSettings struct {
	ID                int             `gorm:"primaryKey" json:"-"`
	VesselName        string          `json:"vesselName"`
	MasterName        string          `json:"masterName"`
	ReportMonth       string          `gorm:"not null" json:"reportMonth"`
	ReportYear        string          `gorm:"not null" json:"reportYear"`
	ExchangeRate      decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"exchangeRate"`
	GbpExchangeRate   decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"gbpExchangeRate"`
	UseGbpForPurchases bool           `gorm:"not null;default:false" json:"useGbpForPurchases"`

	UpdatedAt time.Time `json:"-"`
}

func (ReportSettings) TableName() string { return "report_settings" }

// DefaultSettings returns the blank configuration used on first run and after
// a hard reset: current calendar month/year, default exchange rates.
func DefaultSettings(now time.Time) ReportSettings {
	return ReportSettings{
		ID:              settingsRowID,
		ReportMonth:     fmt.Sprintf("%02d", int(now.Month())),
		ReportYear:      fmt.Sprintf("%d", now.Year()),
		ExchangeRate:    decimal.NewFromFloat(1.10),
		GbpExchangeRate: decimal.NewFromFloat(0.85),
	}
}
