package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type quoteCmd struct {
	ticker string
	btc    bool
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the current price of a stock or of BTC" }
func (*quoteCmd) Usage() string {
	return `bsim quote -s <ticker> | -btc

  Prints the current price from the selected market data provider.
  With the default provider the prices are fixed test constants; pass the
  global -live flag to query Alpha Vantage.

Usage Examples:
$ bsim quote -s CORNELL
$ bsim -live quote -btc
`
}

func (p *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ticker, "s", "", "Ticker symbol to quote.")
	f.BoolVar(&p.btc, "btc", false, "Quote one coin instead of a stock.")
}

func (p *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market := MarketData()
	if p.btc {
		fmt.Printf("BTC: $%.2f\n", market.BTCPrice())
		return subcommands.ExitSuccess
	}
	if p.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: either -s <ticker> or -btc is required.")
		return subcommands.ExitUsageError
	}
	fmt.Printf("%s: $%.2f\n", p.ticker, market.StockPrice(p.ticker))
	return subcommands.ExitSuccess
}
