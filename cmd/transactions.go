package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividend"
	"github.com/google/subcommands"
)

// --- Buy Command ---

type buyCmd struct {
	date     string
	stock    string
	name     string
	quantity float64
	price    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase, opening or adding to a position" }
func (*buyCmd) Usage() string {
	return `buy -d <date> -s <stock> -q <quantity> -p <price> [-n <name>]

  Records the purchase of shares. The price feeds the weighted-average cost
  of the position.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", dividend.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.stock, "s", "", "Stock id")
	f.StringVar(&c.name, "n", "", "Optional display name for the stock")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.stock == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if _, err := dividend.ParseDate(c.date); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	price := c.price
	return appendTransaction(dividend.TransactionRecord{
		StockID:   c.stock,
		StockName: c.name,
		Date:      c.date,
		Quantity:  c.quantity,
		Price:     &price,
		Type:      dividend.TradeBuy,
	})
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	stock    string
	quantity float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale, reducing or closing a position" }
func (*sellCmd) Usage() string {
	return `sell -d <date> -s <stock> -q <quantity>

  Records the sale of shares. The position's cost basis is reduced at its
  weighted-average price; the sale never drives a position negative.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", dividend.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.stock, "s", "", "Stock id")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.stock == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if _, err := dividend.ParseDate(c.date); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendTransaction(dividend.TransactionRecord{
		StockID:  c.stock,
		Date:     c.date,
		Quantity: c.quantity,
		Type:     dividend.TradeSell,
	})
}
