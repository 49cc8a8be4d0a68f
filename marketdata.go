package brokerage

import "time"

// MarketData supplies prices and the trading calendar to the engines. It is
// injected at engine construction: FixedQuotes for deterministic tests and
// the interactive default, AlphaVantage for live quotes.
type MarketData interface {
	// StockPrice returns the current price per share of a ticker.
	StockPrice(ticker string) float64
	// BTCPrice returns the current price of one coin.
	BTCPrice() float64
	// IsWeekday reports whether t falls on a weekday.
	IsWeekday(t time.Time) bool
	// OneYearBefore returns the instant one year before t.
	OneYearBefore(t time.Time) time.Time
}

// calendar implements the calendar half of MarketData, shared by every
// provider.
type calendar struct{}

func (calendar) IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func (calendar) OneYearBefore(t time.Time) time.Time {
	return t.AddDate(-1, 0, 0)
}

// Fixed prices served by FixedQuotes.
const (
	fixedCornellPrice = 18.65
	fixedHarvardPrice = 0.0
	fixedOtherPrice   = 1.0
	fixedBTCPrice     = 18.65
)

// FixedQuotes is a MarketData serving constant prices: 18.65 for CORNELL,
// 0.0 for HARVARD, 1.0 for any other ticker, and 18.65 per coin.
type FixedQuotes struct {
	calendar
}

func (FixedQuotes) StockPrice(ticker string) float64 {
	switch ticker {
	case "CORNELL":
		return fixedCornellPrice
	case "HARVARD":
		return fixedHarvardPrice
	default:
		return fixedOtherPrice
	}
}

func (FixedQuotes) BTCPrice() float64 { return fixedBTCPrice }
