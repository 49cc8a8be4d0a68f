package brokerage

import "fmt"

// Default terms applied to every newly opened account.
var (
	defaultCommission = USD(1.0)
	defaultLoanRate   = R(0.10)
)

// Portfolio is an investor's account: cash, a per-transaction commission
// fee, a loan rate reflecting risk, a coin balance, stock lots and loans.
//
// All fields are private; every change goes through a mutator that
// re-validates the invariant and fails with ErrInvalidState instead of
// storing a bad value. Lots and loans are archival: a lot stays listed at
// zero shares and a loan at zero remaining months.
type Portfolio struct {
	cash       Money
	commission Money
	loanRate   Rate
	coins      int
	stocks     []*StockLot
	loans      []*Loan
}

// OpenPortfolio opens a new account funded with toInvest minus the
// enrollment fee. It returns nil when the fee exceeds the investment, or
// when either amount is negative.
func OpenPortfolio(toInvest, fee Money) *Portfolio {
	if toInvest.IsNegative() || fee.IsNegative() {
		return nil
	}
	if fee.GreaterThan(toInvest) {
		return nil
	}
	return &Portfolio{
		cash:       toInvest.Sub(fee),
		commission: defaultCommission,
		loanRate:   defaultLoanRate,
	}
}

func (p *Portfolio) Cash() Money          { return p.cash }
func (p *Portfolio) CommissionFee() Money { return p.commission }
func (p *Portfolio) LoanRate() Rate       { return p.loanRate }
func (p *Portfolio) Coins() int           { return p.coins }
func (p *Portfolio) Stocks() []*StockLot  { return p.stocks }
func (p *Portfolio) Loans() []*Loan       { return p.loans }

// setCash replaces the cash balance, which must not be negative.
func (p *Portfolio) setCash(value Money) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: cash %s must not be negative", ErrInvalidState, value)
	}
	p.cash = value
	return nil
}

// setCoins replaces the coin balance, which must not be negative.
func (p *Portfolio) setCoins(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: coin balance %d must not be negative", ErrInvalidState, value)
	}
	p.coins = value
	return nil
}

// setLoanRate replaces the loan rate, which must not be negative.
func (p *Portfolio) setLoanRate(value Rate) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: loan rate %s must not be negative", ErrInvalidState, value)
	}
	p.loanRate = value
	return nil
}

// AddStock records a lot in the portfolio. EquityTradingEngine.Buy returns
// the lot without attaching it, so the caller appends it here.
func (p *Portfolio) AddStock(lot *StockLot) {
	if lot == nil {
		return
	}
	p.stocks = append(p.stocks, lot)
}

func (p *Portfolio) addLoan(loan *Loan) {
	p.loans = append(p.loans, loan)
}
