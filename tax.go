package brokerage

import "github.com/shopspring/decimal"

// bracket is one tier of a marginal tax table. The portion of the profit
// between the previous tier's upTo and this one is taxed at rate; the top
// tier has no upper bound.
type bracket struct {
	upTo decimal.Decimal // zero value on the top tier
	rate decimal.Decimal
	top  bool
}

func tier(upTo float64, rate float64) bracket {
	return bracket{upTo: decimal.NewFromFloat(upTo), rate: decimal.NewFromFloat(rate)}
}

func topTier(rate float64) bracket {
	return bracket{rate: decimal.NewFromFloat(rate), top: true}
}

// shortTermTable taxes profit realized within a year of purchase, like
// ordinary income.
var shortTermTable = []bracket{
	tier(10_000, 0.10),
	tier(100_000, 0.20),
	tier(1_000_000, 0.30),
	tier(10_000_000, 0.40),
	topTier(0.70),
}

// longTermTable taxes profit on positions held longer than a year, like
// capital gains.
var longTermTable = []bracket{
	tier(38_600, 0),
	tier(425_800, 0.15),
	topTier(0.30),
}

// ApplyTax returns the post-tax profit: the given profit minus the marginal
// tax owed on it. Long-term profit uses the capital-gains table, short-term
// the income table. It is pure and has no side effects.
//
// Callers clamp losses to zero before taxing; a negative profit is outside
// the tables' domain.
func ApplyTax(profit Money, longTerm bool) Money {
	table := shortTermTable
	if longTerm {
		table = longTermTable
	}
	return profit.Sub(taxOn(profit, table))
}

func taxOn(profit Money, table []bracket) Money {
	tax := decimal.Zero
	floor := decimal.Zero
	for _, b := range table {
		if b.top || profit.value.LessThanOrEqual(b.upTo) {
			tax = tax.Add(profit.value.Sub(floor).Mul(b.rate))
			break
		}
		tax = tax.Add(b.upTo.Sub(floor).Mul(b.rate))
		floor = b.upTo
	}
	return Money{value: tax, cur: profit.cur}
}
