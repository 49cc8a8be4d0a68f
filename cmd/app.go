// Package cmd implements the CLI application to run the brokerage
// simulation.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/ostrik/brokerage"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&playCmd{}, "simulation")

	c.Register(&quoteCmd{}, "market")

	c.Register(&taxCmd{}, "calculators")
	c.Register(&interestCmd{}, "calculators")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var liveQuotes = flag.Bool("live", false, "Fetch live quotes from Alpha Vantage instead of the fixed test prices.")

// MarketData returns the provider selected on the command line.
func MarketData() brokerage.MarketData {
	if *liveQuotes {
		return brokerage.NewAlphaVantage()
	}
	return brokerage.FixedQuotes{}
}
