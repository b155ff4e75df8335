package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest edits the vessel configuration. Rates must stay
// positive — the derivation engine treats non-positive rates as 1, but the
// API refuses to store them.
type UpdateSettingsRequest struct {
	VesselName         string          `json:"vesselName"         validate:"omitempty"`
	MasterName         string          `json:"masterName"         validate:"omitempty"`
	ReportMonth        string          `json:"reportMonth"        validate:"required,len=2"`
	ReportYear         string          `json:"reportYear"         validate:"required,len=4,numeric"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"       validate:"required"`
	GbpExchangeRate    decimal.Decimal `json:"gbpExchangeRate"    validate:"required"`
	UseGbpForPurchases bool            `json:"useGbpForPurchases"`
}

// CloseMonthRequest advances the reporting period. The transform is one-shot
// and irreversible within the application's own state.
type CloseMonthRequest struct {
	NextMonth string `json:"nextMonth" validate:"required,len=2"`
	NextYear  string `json:"nextYear"  validate:"required,len=4,numeric"`
}
