// Package cmd implements the CLI application to manage portfolios.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the book file containing portfolios and trades (JSONL format)")
var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data file (JSONL format)")

// decodeMarket loads the market data file, starting empty if it does not
// exist yet.
func decodeMarket() (*stockfolio.Market, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, market data file does not exist, starting with an empty market")
		return stockfolio.NewMarket(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return stockfolio.DecodeMarket(f)
}

// encodeMarket writes the market data file back.
func encodeMarket(m *stockfolio.Market) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return stockfolio.EncodeMarket(f, m)
}

// decodeBook loads the market and replays the book file on top of it,
// starting with an empty book if the file does not exist yet.
func decodeBook() (*stockfolio.Book, *stockfolio.Market, error) {
	m, err := decodeMarket()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting with an empty book")
		return stockfolio.NewBook(m), m, nil
	}
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	b, err := stockfolio.DecodeBook(f, m)
	if err != nil {
		return nil, nil, err
	}
	return b, m, nil
}

// appendToBook appends one already-validated command line to the book file,
// creating it if needed.
func appendToBook(encode func(io.Writer) error) subcommands.ExitStatus {
	f, err := os.OpenFile(*bookFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended to %s\n", *bookFile)
	return subcommands.ExitSuccess
}

// saveBook rewrites the whole book file in canonical order. Commands that
// derive several trades at once use it instead of appending.
func saveBook(b *stockfolio.Book) subcommands.ExitStatus {
	f, err := os.Create(*bookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := stockfolio.EncodeBook(f, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully saved %s\n", *bookFile)
	return subcommands.ExitSuccess
}
