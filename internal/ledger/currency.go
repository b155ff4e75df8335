package ledger

import "github.com/shopspring/decimal"

// Currency conversion is plain scalar multiplication against the operator
// supplied rates in ReportSettings. EUR is the canonical stored currency.

// normalizeRate guards against an unset or nonsensical rate; conversions then
// degrade to identity instead of zeroing amounts.
func normalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(1)
	}
	return rate
}

// EURToUSD converts a EUR amount using the EUR→USD rate.
func EURToUSD(eur, rate decimal.Decimal) decimal.Decimal {
	return eur.Mul(normalizeRate(rate))
}

// EURToGBP converts a EUR amount using the EUR→GBP rate.
func EURToGBP(eur, rate decimal.Decimal) decimal.Decimal {
	return eur.Mul(normalizeRate(rate))
}

// GBPToEUR converts a GBP entry amount back to the canonical EUR value using
// the EUR→GBP rate.
func GBPToEUR(gbp, rate decimal.Decimal) decimal.Decimal {
	return gbp.Div(normalizeRate(rate))
}
