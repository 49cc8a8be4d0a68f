package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"
	"github.com/ostrik/brokerage"
)

type interestCmd struct {
	cash       float64
	rate       float64
	years      float64
	times      float64
	continuous bool
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "compound interest on a cash balance" }
func (*interestCmd) Usage() string {
	return `bsim interest -cash <amount> -rate <percent> -years <n> [-n <times> | -continuous]

  Compounds interest on a cash balance, either a given number of times per
  year or continuously, and prints the resulting balance.

Usage Examples:
$ bsim interest -cash 1000 -rate 5 -years 10 -n 12
$ bsim interest -cash 1000 -rate 5 -years 10 -continuous
`
}

func (p *interestCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.cash, "cash", 0, "Starting cash balance.")
	f.Float64Var(&p.rate, "rate", 0, "Yearly interest rate in percent.")
	f.Float64Var(&p.years, "years", 1, "Number of years to compound over.")
	f.Float64Var(&p.times, "n", 12, "Times compounded per year, must be greater than 1.")
	f.BoolVar(&p.continuous, "continuous", false, "Compound continuously. Overrides -n.")
}

func (p *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio := brokerage.OpenPortfolio(brokerage.USD(p.cash), brokerage.USD(0))
	if portfolio == nil {
		fmt.Fprintln(os.Stderr, "Error: -cash must not be negative.")
		return subcommands.ExitUsageError
	}
	times := p.times
	if p.continuous {
		times = math.Inf(1)
	}
	engine := brokerage.NewEquityTradingEngine(MarketData())
	total, err := engine.CompoundInterest(portfolio, p.rate, p.years, times)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Printf("%s after %g years: %s\n", brokerage.USD(p.cash), p.years, total)
	return subcommands.ExitSuccess
}
