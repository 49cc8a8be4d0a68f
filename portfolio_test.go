package brokerage

import (
	"errors"
	"testing"
)

func TestOpenPortfolio(t *testing.T) {
	testCases := []struct {
		name     string
		toInvest float64
		fee      float64
		wantCash float64
		wantNil  bool
	}{
		{name: "investment covers fee", toInvest: 100.0, fee: 1.0, wantCash: 99.0},
		{name: "fee exceeds investment", toInvest: 1.0, fee: 2.0, wantNil: true},
		{name: "fee equals investment", toInvest: 2.0, fee: 2.0, wantCash: 0},
		{name: "negative investment", toInvest: -1.0, fee: 0, wantNil: true},
		{name: "negative fee", toInvest: 10.0, fee: -1.0, wantNil: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := OpenPortfolio(USD(tc.toInvest), USD(tc.fee))
			if tc.wantNil {
				if p != nil {
					t.Fatalf("OpenPortfolio(%v, %v) = %v, want nil", tc.toInvest, tc.fee, p)
				}
				return
			}
			if p == nil {
				t.Fatalf("OpenPortfolio(%v, %v) = nil, want a portfolio", tc.toInvest, tc.fee)
			}
			if want := USD(tc.wantCash); !p.Cash().Equal(want) {
				t.Errorf("Cash() = %s, want %s", p.Cash(), want)
			}
		})
	}
}

func TestOpenPortfolio_Defaults(t *testing.T) {
	p := OpenPortfolio(USD(100.0), USD(1.0))
	if p == nil {
		t.Fatal("OpenPortfolio() = nil")
	}
	if want := USD(1.0); !p.CommissionFee().Equal(want) {
		t.Errorf("CommissionFee() = %s, want %s", p.CommissionFee(), want)
	}
	if want := R(0.10); !p.LoanRate().Equal(want) {
		t.Errorf("LoanRate() = %s, want %s", p.LoanRate(), want)
	}
	if p.Coins() != 0 {
		t.Errorf("Coins() = %d, want 0", p.Coins())
	}
	if len(p.Stocks()) != 0 || len(p.Loans()) != 0 {
		t.Errorf("new portfolio has %d lots and %d loans, want none", len(p.Stocks()), len(p.Loans()))
	}
}

func TestPortfolio_MutatorsRejectNegatives(t *testing.T) {
	p := OpenPortfolio(USD(100.0), USD(1.0))

	if err := p.setCash(USD(-1)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("setCash(-1) error = %v, want ErrInvalidState", err)
	}
	if err := p.setCoins(-1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("setCoins(-1) error = %v, want ErrInvalidState", err)
	}
	if err := p.setLoanRate(R(-0.01)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("setLoanRate(-0.01) error = %v, want ErrInvalidState", err)
	}

	// a failed mutation does not leak into the state
	if want := USD(99.0); !p.Cash().Equal(want) {
		t.Errorf("Cash() = %s after rejected mutations, want %s", p.Cash(), want)
	}
	if p.Coins() != 0 {
		t.Errorf("Coins() = %d after rejected mutations, want 0", p.Coins())
	}
	if want := R(0.10); !p.LoanRate().Equal(want) {
		t.Errorf("LoanRate() = %s after rejected mutations, want %s", p.LoanRate(), want)
	}
}

func TestStockLot_SetSharesRejectsNegative(t *testing.T) {
	lot := newStockLot("CORNELL", 10, USD(18.65), weekdayAt(10, 0), false)
	if err := lot.setShares(-1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("setShares(-1) error = %v, want ErrInvalidState", err)
	}
	if lot.Shares() != 10 {
		t.Errorf("Shares() = %d after rejected mutation, want 10", lot.Shares())
	}
}

func TestLoan_SetBalanceRejectsNegative(t *testing.T) {
	loan := newLoan(USD(1000.0), 10)
	if err := loan.setBalance(USD(-1)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("setBalance(-1) error = %v, want ErrInvalidState", err)
	}
	if err := loan.setMonths(-1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("setMonths(-1) error = %v, want ErrInvalidState", err)
	}
}
