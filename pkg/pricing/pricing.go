package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is an ISO 4217 code from the supported set.
type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// DefaultCurrency is used on first load when no currency prefix is present.
const DefaultCurrency = GBP

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case GBP, USD, EUR:
		return true
	}
	return false
}

// BillingPeriod selects monthly or annual billing.
type BillingPeriod string

const (
	Monthly BillingPeriod = "monthly"
	Annual  BillingPeriod = "annual"
)

// Price is a base amount in GBP. Quote-on-request plans carry the
// PriceOnRequest sentinel instead of an amount.
type Price int

// PriceOnRequest is the quote-on-request sentinel.
const PriceOnRequest Price = -1

// POAToken is the literal rendered for quote-on-request prices. It is never
// translated or converted.
const POAToken = "POA"

type rate struct {
	symbol     string
	multiplier float64
}

// Fixed conversion table; base prices are GBP.
var rates = map[Currency]rate{
	GBP: {symbol: "£", multiplier: 1.00},
	EUR: {symbol: "€", multiplier: 1.17},
	USD: {symbol: "$", multiplier: 1.27},
}

// annualMonths models annual billing as ten paid months (2 free).
const annualMonths = 10

var printer = message.NewPrinter(language.BritishEnglish)

// Symbol returns the display symbol for a currency. Unknown currencies fall
// back to the default.
func Symbol(c Currency) string {
	r, ok := rates[c]
	if !ok {
		r = rates[DefaultCurrency]
	}
	return r.symbol
}

// Format renders a base price for the given currency and billing period:
// convert with the fixed rate, multiply by ten for annual billing, round to
// the nearest whole unit and group thousands.
func Format(base Price, c Currency, period BillingPeriod) string {
	if base == PriceOnRequest {
		return POAToken
	}

	r, ok := rates[c]
	if !ok {
		r = rates[DefaultCurrency]
	}

	amount := float64(base) * r.multiplier
	if period == Annual {
		amount *= annualMonths
	}

	return r.symbol + printer.Sprintf("%d", int64(math.Round(amount)))
}
