package brokerage

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
)

// Statement renders a markdown summary of the account: cash and coin
// balances, stock lots and loans. Fully sold lots and fully repaid loans
// still appear, they are archived rather than removed.
func Statement(p *Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Statement")
	doc.PlainText(fmt.Sprintf("Cash balance: %s", p.Cash()))
	doc.PlainText(fmt.Sprintf("Coin balance: %d", p.Coins()))

	if lots := p.Stocks(); len(lots) > 0 {
		doc.H2("Stock Lots")
		table := md.TableSet{
			Header: []string{"#", "Ticker", "Shares", "Buy Price", "Bought", "Position"},
		}
		for i, lot := range lots {
			position := "long"
			if lot.Short() {
				position = "short"
			}
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(i + 1),
				lot.Ticker(),
				strconv.Itoa(lot.Shares()),
				lot.BuyPrice().String(),
				lot.BuyDate().Format("2006-01-02 15:04"),
				position,
			})
		}
		doc.Table(table)
	}

	if loans := p.Loans(); len(loans) > 0 {
		doc.H2("Loans")
		table := md.TableSet{
			Header: []string{"#", "Balance", "Months Left", "Late Fee"},
		}
		for i, loan := range loans {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(i + 1),
				loan.Balance().String(),
				strconv.Itoa(loan.Months()),
				loan.LateFee().String(),
			})
		}
		doc.Table(table)
	}

	doc.PlainText(fmt.Sprintf("Loan rate: %s, commission fee: %s per transaction.",
		p.LoanRate(), p.CommissionFee()))

	return doc.String()
}
