package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ostrik/brokerage"
)

type taxCmd struct {
	profit   float64
	longTerm bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "compute post-tax profit" }
func (*taxCmd) Usage() string {
	return `bsim tax -profit <amount> [-long]

  Applies the tiered tax tables to a realized profit and prints what is
  left. Short-term profit is taxed like income, long-term profit (position
  held over a year) like capital gains.

Usage Examples:
$ bsim tax -profit 10000
$ bsim tax -profit 425800 -long
`
}

func (p *taxCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.profit, "profit", 0, "Realized profit to tax.")
	f.BoolVar(&p.longTerm, "long", false, "Tax as a long-term gain.")
}

func (p *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.profit < 0 {
		fmt.Fprintln(os.Stderr, "Error: -profit must not be negative; losses are not taxed.")
		return subcommands.ExitUsageError
	}
	profit := brokerage.USD(p.profit)
	post := brokerage.ApplyTax(profit, p.longTerm)
	fmt.Printf("%s after tax: %s (tax %s)\n", profit, post, profit.Sub(post))
	return subcommands.ExitSuccess
}
