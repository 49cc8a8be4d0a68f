package brokerage

import "fmt"

// defaultLateFee is added to a loan's balance on every missed payment.
var defaultLateFee = USD(100.0)

// Loan is money owed by a Portfolio: a remaining balance (principal plus
// interest) to be repaid in equal monthly installments over the remaining
// months. It is created by LoanEngine.Issue and mutated by LoanEngine.Pay.
type Loan struct {
	balance Money
	months  int
	lateFee Money
}

func newLoan(balance Money, months int) *Loan {
	return &Loan{balance: balance, months: months, lateFee: defaultLateFee}
}

func (l *Loan) Balance() Money { return l.balance }
func (l *Loan) Months() int    { return l.months }
func (l *Loan) LateFee() Money { return l.lateFee }

// Due returns the installment owed this month: balance over remaining
// months. It must not be called on a fully repaid loan (months == 0).
func (l *Loan) Due() Money {
	return l.balance.Div(Q(l.months))
}

// setBalance replaces the balance, which must not be negative.
func (l *Loan) setBalance(value Money) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: loan balance %s must not be negative", ErrInvalidState, value)
	}
	l.balance = value
	return nil
}

// setMonths replaces the remaining months, which must not be negative.
func (l *Loan) setMonths(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: loan months %d must not be negative", ErrInvalidState, value)
	}
	l.months = value
	return nil
}
