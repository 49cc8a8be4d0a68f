package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/ostrik/brokerage"
)

// enrollmentFee is charged once when the session's account is opened.
var enrollmentFee = brokerage.USD(1.0)

type playCmd struct {
	start float64
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "run an interactive trading session" }
func (*playCmd) Usage() string {
	return `bsim play [-start <cash>]

  Opens an account and loops over a menu of actions: buying and selling
  coins and stock, taking out and paying off loans, and printing the
  account statement. All state lives in memory and is gone when the
  session ends.
`
}

func (p *playCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.start, "start", 0, "Starting cash. Prompted for when not set.")
}

func (p *playCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewScanner(os.Stdin)

	start := p.start
	if start == 0 {
		v, ok := readFloat(in, "How much money would you like to start with? ")
		if !ok {
			return subcommands.ExitFailure
		}
		start = v
	}

	account := brokerage.OpenPortfolio(brokerage.USD(start), enrollmentFee)
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: the %s enrollment fee exceeds the starting cash.\n", enrollmentFee)
		return subcommands.ExitFailure
	}

	market := MarketData()
	coins := brokerage.NewCryptoTradingEngine(market)
	equities := brokerage.NewEquityTradingEngine(market)
	loans := brokerage.NewLoanEngine()

	session := &playSession{
		in:       in,
		account:  account,
		market:   market,
		coins:    coins,
		equities: equities,
		loans:    loans,
	}
	return session.loop()
}

// playSession holds everything one interactive session needs.
type playSession struct {
	in       *bufio.Scanner
	account  *brokerage.Portfolio
	market   brokerage.MarketData
	coins    *brokerage.CryptoTradingEngine
	equities *brokerage.EquityTradingEngine
	loans    *brokerage.LoanEngine
}

const menu = `Would you like to...... (type the number of the action)
 1. Buy coins
 2. Sell coins
 3. Take out a loan
 4. Pay off a loan
 5. Buy stock
 6. Sell stock
 7. Print the account statement
 8. Quit
Enter: `

func (s *playSession) loop() subcommands.ExitStatus {
	for {
		fmt.Printf("\nYou have a cash balance of %s\n", s.account.Cash())
		choice, ok := readInt(s.in, menu)
		if !ok {
			return subcommands.ExitSuccess
		}
		switch choice {
		case 1:
			s.buyCoins()
		case 2:
			s.sellCoins()
		case 3:
			s.takeLoan()
		case 4:
			s.payLoan()
		case 5:
			s.buyStock()
		case 6:
			s.sellStock()
		case 7:
			printMarkdown(brokerage.Statement(s.account))
		case 8:
			printMarkdown(brokerage.Statement(s.account))
			fmt.Println("Thanks for playing!")
			return subcommands.ExitSuccess
		default:
			fmt.Println("Key stroke not recognized.")
		}
	}
}

func (s *playSession) buyCoins() {
	price := s.market.BTCPrice()
	fmt.Printf("The current price of a coin is $%.2f\n", price)
	amount, ok := readInt(s.in, "How many coins would you like to buy? ")
	if !ok {
		return
	}
	if !s.coins.Buy(s.account, amount) {
		fmt.Println("I am sorry, you do not have enough money for this transaction.")
		return
	}
	fmt.Printf("You now have a coin balance of %d, worth $%.2f\n",
		s.account.Coins(), float64(s.account.Coins())*price)
}

func (s *playSession) sellCoins() {
	price := s.market.BTCPrice()
	fmt.Printf("The current price of a coin is $%.2f\n", price)
	amount, ok := readInt(s.in, "How many coins would you like to sell? ")
	if !ok {
		return
	}
	if !s.coins.Sell(s.account, amount) {
		fmt.Println("I am sorry, this transaction failed.")
		return
	}
	fmt.Printf("You now have a coin balance of %d, worth $%.2f\n",
		s.account.Coins(), float64(s.account.Coins())*price)
}

func (s *playSession) takeLoan() {
	amount, ok := readFloat(s.in, "How much money would you like to take out? ")
	if !ok {
		return
	}
	years, ok := readInt(s.in, "Over how many years? ")
	if !ok {
		return
	}
	loan := s.loans.Issue(s.account, brokerage.USD(amount), years)
	if loan == nil {
		fmt.Println("I am sorry, this loan was denied.")
		return
	}
	fmt.Printf("You now owe %s, to be paid over %d months.\n", loan.Balance(), loan.Months())
	fmt.Printf("Your cash balance is now %s\n", s.account.Cash())
}

func (s *playSession) payLoan() {
	outstanding := s.account.Loans()
	if len(outstanding) == 0 {
		fmt.Println("You have no loans.")
		return
	}
	for i, loan := range outstanding {
		fmt.Printf(" %d. balance %s, %d months left\n", i+1, loan.Balance(), loan.Months())
	}
	idx, ok := readInt(s.in, "Which loan would you like to pay? ")
	if !ok {
		return
	}
	if idx < 1 || idx > len(outstanding) {
		fmt.Println("No such loan.")
		return
	}
	loan := outstanding[idx-1]
	if loan.Months() == 0 {
		fmt.Println("That loan is already paid off.")
		return
	}
	if !s.loans.Pay(s.account, loan) {
		fmt.Printf("You could not cover the installment; a late fee was added, you now owe %s\n", loan.Balance())
		return
	}
	fmt.Printf("Payment made. You still owe %s over %d months.\n", loan.Balance(), loan.Months())
}

func (s *playSession) buyStock() {
	ticker, ok := readLine(s.in, "What stock would you like to buy? ")
	if !ok || ticker == "" {
		return
	}
	fmt.Printf("%s is currently worth $%.2f\n", ticker, s.market.StockPrice(ticker))
	shares, ok := readInt(s.in, "How many shares would you like to buy? ")
	if !ok {
		return
	}
	answer, ok := readLine(s.in, "Would you like to short this stock? y/N ")
	if !ok {
		return
	}
	short := strings.EqualFold(answer, "y")
	lot := s.equities.Buy(s.account, ticker, shares, short, time.Now())
	if lot == nil {
		fmt.Println("I am sorry, this transaction failed.")
		return
	}
	s.account.AddStock(lot)
	fmt.Printf("Transaction successful! Your cash balance is now %s\n", s.account.Cash())
}

func (s *playSession) sellStock() {
	ticker, ok := readLine(s.in, "What stock would you like to sell? ")
	if !ok || ticker == "" {
		return
	}
	// Sell from the matching lot with the most remaining shares.
	var selling *brokerage.StockLot
	for _, lot := range s.account.Stocks() {
		if lot.Ticker() == ticker && (selling == nil || lot.Shares() > selling.Shares()) {
			selling = lot
		}
	}
	if selling == nil {
		fmt.Printf("You own no shares of %s.\n", ticker)
		return
	}
	fmt.Printf("%s is currently worth $%.2f\n", ticker, s.market.StockPrice(ticker))
	shares, ok := readInt(s.in, "How many shares would you like to sell? ")
	if !ok {
		return
	}
	if !s.equities.Sell(s.account, selling, shares, time.Now()) {
		fmt.Println("I am sorry, this transaction failed.")
		return
	}
	fmt.Printf("Transaction successful! Your cash balance is now %s\n", s.account.Cash())
}

// readLine prompts and returns the next input line. ok is false when input
// is exhausted.
func readLine(in *bufio.Scanner, prompt string) (line string, ok bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// readInt prompts until it reads a whole number.
func readInt(in *bufio.Scanner, prompt string) (int, bool) {
	for {
		line, ok := readLine(in, prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, true
		}
		fmt.Println("Please enter a whole number.")
	}
}

// readFloat prompts until it reads a number.
func readFloat(in *bufio.Scanner, prompt string) (float64, bool) {
	for {
		line, ok := readLine(in, prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, true
		}
		fmt.Println("Please enter a number.")
	}
}
