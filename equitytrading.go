package brokerage

import (
	"math"
	"time"
)

// Trading window: orders are accepted on weekdays from 10:00 inclusive to
// 16:00 exclusive.
const (
	marketOpenHour  = 10
	marketCloseHour = 16
)

// EquityTradingEngine buys and sells stock lots, pays dividends and
// compounds interest on a Portfolio's cash.
type EquityTradingEngine struct {
	market MarketData
}

func NewEquityTradingEngine(market MarketData) *EquityTradingEngine {
	return &EquityTradingEngine{market: market}
}

// tradingOpen reports whether the market accepts orders at that instant.
func (e *EquityTradingEngine) tradingOpen(at time.Time) bool {
	return e.market.IsWeekday(at) && at.Hour() >= marketOpenHour && at.Hour() < marketCloseHour
}

// Buy purchases shares of ticker at the current price, as a short position
// when short is set. The cost is price*shares plus the commission fee; the
// order goes through only when the portfolio can cover it and the market is
// open at that time.
//
// On success the cash is debited and the new lot returned; the engine does
// NOT attach the lot to the portfolio, the caller records it with
// Portfolio.AddStock. On failure it returns nil and nothing changes.
func (e *EquityTradingEngine) Buy(p *Portfolio, ticker string, shares int, short bool, at time.Time) *StockLot {
	if ticker == "" || shares <= 0 {
		return nil
	}
	price := USD(e.market.StockPrice(ticker))
	cost := price.Mul(Q(shares)).Add(p.commission)
	if cost.GreaterThan(p.cash) {
		return nil
	}
	if !e.tradingOpen(at) {
		return nil
	}
	if err := p.setCash(p.cash.Sub(cost)); err != nil {
		return nil
	}
	return newStockLot(ticker, shares, price, at, short)
}

// Sell sells amount shares from the lot, or all its remaining shares if it
// holds fewer. The order is rejected when the market is closed at that time
// or cash cannot cover the commission fee; past that gate the sale always
// goes through and the lot's shares are decremented, whatever the profit.
//
// The realized profit is twice the spread between sell and buy price per
// share sold, inverted for a short lot. A loss is taxed to nothing; a gain
// is taxed long-term when the lot is over a year old at the time of sale,
// short-term otherwise. Cash receives the post-tax profit minus the
// commission fee.
func (e *EquityTradingEngine) Sell(p *Portfolio, lot *StockLot, amount int, at time.Time) bool {
	if amount <= 0 {
		return false
	}
	if !e.tradingOpen(at) || p.cash.LessThan(p.commission) {
		return false
	}
	sold := min(lot.shares, amount)
	price := USD(e.market.StockPrice(lot.ticker))
	spread := price.Sub(lot.buyPrice)
	if lot.short {
		spread = lot.buyPrice.Sub(price)
	}
	profit := spread.Mul(Q(2 * sold))
	if err := lot.setShares(lot.shares - sold); err != nil {
		return false
	}
	taxed := USD(0)
	if profit.IsPositive() {
		longTerm := e.market.OneYearBefore(at).After(lot.buyDate)
		taxed = ApplyTax(profit, longTerm)
	}
	if err := p.setCash(p.cash.Sub(p.commission).Add(taxed)); err != nil {
		return false
	}
	return true
}

// PayDividends credits a per-share dividend from a company to the
// portfolio, taxed short-term, without touching the lot's shares. It
// reports false when the lot does not belong to that company or the
// per-share payment is negative.
func (e *EquityTradingEngine) PayDividends(p *Portfolio, lot *StockLot, company string, perShare Money) bool {
	if perShare.IsNegative() {
		return false
	}
	if lot.ticker != company {
		return false
	}
	profit := perShare.Mul(Q(lot.shares))
	if err := p.setCash(p.cash.Add(ApplyTax(profit, false))); err != nil {
		return false
	}
	return true
}

// CompoundInterest grows the portfolio's cash at ratePercent per year over
// years, compounded timesPerYear times a year, or continuously when
// timesPerYear is +Inf:
//
//	cash * (1 + (rate/100)/n)^(n*years)    for finite n
//	cash * e^((rate/100)*years)            for n = +Inf
//
// The new balance is stored and returned. ratePercent must not be
// negative, years must be positive and timesPerYear greater than 1; a bad
// argument returns ErrInvalidState and changes nothing.
func (e *EquityTradingEngine) CompoundInterest(p *Portfolio, ratePercent, years, timesPerYear float64) (Money, error) {
	if ratePercent < 0 || years <= 0 || timesPerYear <= 1 {
		return Money{}, ErrInvalidState
	}
	rate := ratePercent / 100
	var total float64
	if math.IsInf(timesPerYear, 1) {
		total = p.cash.AsFloat() * math.Exp(rate*years)
	} else {
		total = p.cash.AsFloat() * math.Pow(1+rate/timesPerYear, timesPerYear*years)
	}
	if err := p.setCash(USD(total)); err != nil {
		return Money{}, err
	}
	return p.cash, nil
}
