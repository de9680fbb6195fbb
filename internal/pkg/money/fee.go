// Package money holds the fee arithmetic of a sale. All amounts are exact
// decimals rounded to two places.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FeeSplit is how the gross price of a sale is divided
type FeeSplit struct {
	Gross            decimal.Decimal
	GatewayFee       decimal.Decimal
	NetAfterFee      decimal.Decimal
	AffiliateFee     decimal.Decimal
	MerchantAfterFee decimal.Decimal
}

// Split divides gross into the gateway fee, the affiliate commission and the merchant share.
// The commission is taken from the amount left after the gateway fee.
func Split(gross, gatewayFeePercent, commissionPercent decimal.Decimal) FeeSplit {
	gatewayFee := Percent(gross, gatewayFeePercent)
	net := gross.Sub(gatewayFee)
	affiliateFee := Percent(net, commissionPercent)

	return FeeSplit{
		Gross:            gross,
		GatewayFee:       gatewayFee,
		NetAfterFee:      net,
		AffiliateFee:     affiliateFee,
		MerchantAfterFee: net.Sub(affiliateFee),
	}
}

// Percent returns p percent of amount rounded to two places
func Percent(amount, p decimal.Decimal) decimal.Decimal {
	return amount.Mul(p).Div(hundred).Round(2)
}

// ToDisplay converts an exact amount to a float for responses
func ToDisplay(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
