// Package stockfolio provides the core engine for tracking investment
// portfolios of tradable instruments over calendar dates.
//
// The core functionalities include:
//   - Ledger portfolios: an append-only record of dated, signed trades from
//     which composition, cost basis and market value are derived; an
//     append-time guard prevents selling more than was ever bought.
//   - Static portfolios: immutable named collections of holdings fixed at
//     creation time.
//   - Valuation: point-in-time portfolio value against a price oracle, with
//     a backward lookback for days without a quote.
//   - Performance: a date range bucketed into daily, weekly, monthly or
//     yearly samples depending on the range length, one valuation per bucket.
//   - Strategies: recurring proportional investments expanded into concrete
//     dated trades replayed on the ledger.
//   - Data persistence: encoding and decoding of books, ledgers and market
//     data to human-readable JSONL and CSV interchange formats.
//
// This package serves as the foundational logic for the `sfo` command-line
// tool; the CLI, rendering and price-fetch layers build on it.
package stockfolio
