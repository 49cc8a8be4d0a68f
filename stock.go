package brokerage

import (
	"fmt"
	"time"
)

// StockLot is one discrete purchase of shares of a company, tracked
// separately from other purchases of the same ticker. A short lot profits
// when the price falls. Lots are created by EquityTradingEngine.Buy; Sell
// decrements shares but the lot is never removed from the portfolio.
type StockLot struct {
	ticker   string
	shares   int
	buyPrice Money
	buyDate  time.Time
	short    bool
}

func newStockLot(ticker string, shares int, buyPrice Money, buyDate time.Time, short bool) *StockLot {
	return &StockLot{
		ticker:   ticker,
		shares:   shares,
		buyPrice: buyPrice,
		buyDate:  buyDate,
		short:    short,
	}
}

func (s *StockLot) Ticker() string     { return s.ticker }
func (s *StockLot) Shares() int        { return s.shares }
func (s *StockLot) BuyPrice() Money    { return s.buyPrice }
func (s *StockLot) BuyDate() time.Time { return s.buyDate }
func (s *StockLot) Short() bool        { return s.short }

// setShares replaces the share count, which must not be negative.
func (s *StockLot) setShares(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: shares %d must not be negative", ErrInvalidState, value)
	}
	s.shares = value
	return nil
}
