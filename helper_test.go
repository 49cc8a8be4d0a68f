package brokerage

import "time"

// weekdayAt returns a Monday at the given wall-clock time.
func weekdayAt(hour, min int) time.Time {
	return time.Date(2025, time.June, 2, hour, min, 0, 0, time.UTC)
}

// weekendAt returns a Saturday at the given wall-clock time.
func weekendAt(hour, min int) time.Time {
	return time.Date(2025, time.June, 7, hour, min, 0, 0, time.UTC)
}

// stubQuotes is a MarketData serving whatever prices a test sets.
type stubQuotes struct {
	calendar
	stocks map[string]float64
	btc    float64
}

func (s stubQuotes) StockPrice(ticker string) float64 { return s.stocks[ticker] }
func (s stubQuotes) BTCPrice() float64                { return s.btc }
