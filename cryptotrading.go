package brokerage

// CryptoTradingEngine buys and sells a single fungible coin at the
// provider's current price. Coin profit is never taxed.
type CryptoTradingEngine struct {
	market MarketData
}

func NewCryptoTradingEngine(market MarketData) *CryptoTradingEngine {
	return &CryptoTradingEngine{market: market}
}

// Buy purchases amount coins at the current price and reports whether the
// transaction happened.
//
// Affordability is checked against a single coin's price plus the
// commission fee, while the actual debit is price*amount plus the fee, and
// the coin balance is overwritten with amount rather than incremented.
// Both are kept from the original rules of the game.
func (e *CryptoTradingEngine) Buy(p *Portfolio, amount int) bool {
	if amount <= 0 {
		return false
	}
	price := USD(e.market.BTCPrice())
	if p.cash.Sub(price.Add(p.commission)).IsNegative() {
		return false
	}
	debit := price.Mul(Q(amount)).Add(p.commission)
	if err := p.setCash(p.cash.Sub(debit)); err != nil {
		return false
	}
	p.setCoins(amount)
	return true
}

// Sell sells amount coins, or the whole balance if it holds fewer, at the
// current price minus the commission fee. It reports false and changes
// nothing when the proceeds minus the fee would leave cash negative.
func (e *CryptoTradingEngine) Sell(p *Portfolio, amount int) bool {
	if amount <= 0 {
		return false
	}
	price := USD(e.market.BTCPrice())
	sold := min(amount, p.coins)
	proceeds := price.Mul(Q(sold)).Sub(p.commission)
	if p.cash.Add(proceeds).IsNegative() {
		return false
	}
	if err := p.setCoins(p.coins - sold); err != nil {
		return false
	}
	if err := p.setCash(p.cash.Add(proceeds)); err != nil {
		return false
	}
	return true
}
