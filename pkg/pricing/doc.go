// Package pricing converts and formats plan prices for display.
//
// Base prices are held in GBP and converted with a fixed rate table. Annual
// billing charges ten months of the monthly price (12 months with 2 free).
// Quote-on-request plans carry a sentinel price that always renders as the
// literal "POA" token regardless of currency.
package pricing
