package brokerage

// Loan rate bounds and steps.
var (
	maxLoanRate  = R(0.20) // above this the account is too risky to lend to
	loanRateStep = R(0.01)
)

// LoanEngine issues and repays loans against a Portfolio. Loans carry no
// commission fee and no tax.
type LoanEngine struct{}

func NewLoanEngine() *LoanEngine { return &LoanEngine{} }

// Issue lends amount to the portfolio for the given number of years,
// payable in one installment per year of length. The portfolio's loan rate
// is bumped by 0.01 first, and interest is computed at the bumped rate:
// balance = amount + years * rate * amount.
//
// The loan is appended to the portfolio and returned. It returns nil when
// the portfolio's loan rate is already above 0.20 (too risky), when amount
// is negative, or when years is not positive; the portfolio is unchanged.
func (e *LoanEngine) Issue(p *Portfolio, amount Money, years int) *Loan {
	if amount.IsNegative() || years <= 0 {
		return nil
	}
	if p.loanRate.GreaterThan(maxLoanRate) {
		return nil
	}
	if err := p.setCash(p.cash.Add(amount)); err != nil {
		return nil
	}
	if err := p.setLoanRate(p.loanRate.Add(loanRateStep)); err != nil {
		return nil
	}
	interest := amount.MulRate(p.loanRate).Mul(Q(years))
	loan := newLoan(amount.Add(interest), years)
	p.addLoan(loan)
	return loan
}

// Pay makes this month's installment, balance divided by remaining months.
// When the portfolio cannot cover it, the loan's late fee is added to its
// balance, cash is untouched, and Pay reports false. Otherwise cash and
// balance both drop by the installment, the remaining months drop by one,
// and on the final installment the portfolio's loan rate is lowered by
// 0.01.
//
// Pay must not be called on a fully repaid loan (months == 0).
func (e *LoanEngine) Pay(p *Portfolio, loan *Loan) bool {
	due := loan.Due()
	if p.cash.LessThan(due) {
		loan.setBalance(loan.balance.Add(loan.lateFee))
		return false
	}
	if loan.months == 1 {
		if err := p.setLoanRate(p.loanRate.Sub(loanRateStep)); err != nil {
			return false
		}
	}
	if err := p.setCash(p.cash.Sub(due)); err != nil {
		return false
	}
	if err := loan.setBalance(loan.balance.Sub(due)); err != nil {
		return false
	}
	if err := loan.setMonths(loan.months - 1); err != nil {
		return false
	}
	return true
}
