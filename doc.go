// Package brokerage simulates a personal investment account for teaching
// purposes. A Portfolio holds cash, a coin balance, stock lots and loans;
// the trading and loan engines mutate it under simple business rules:
//
//   - CryptoTradingEngine: buying and selling of a single fungible coin.
//   - EquityTradingEngine: stock lots, short positions, dividends and
//     compound interest, gated by a weekday 10:00-16:00 trading window.
//   - LoanEngine: loan issuance against a risk-adjusted rate and amortized
//     monthly repayment with late fees.
//   - ApplyTax: tiered short-term and long-term tax on realized profit.
//
// Market prices come from a MarketData provider chosen at construction:
// FixedQuotes serves deterministic test prices, AlphaVantage fetches live
// quotes and silently falls back to a pseudo-random price on any failure.
//
// Everything is in-memory and single-threaded; there is no persistence and
// no concurrent access. This package is the engine behind the `bsim`
// command-line tool.
package brokerage
