package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/MMN3003/selene/src/order/domain"
	tokendomain "github.com/MMN3003/selene/src/token/domain"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	info     = color.New(color.FgHiBlack)
	warn     = color.New(color.FgYellow)
	failure  = color.New(color.FgRed)
	success  = color.New(color.FgGreen)
)

// Renderer writes everything the user reads besides the prompts themselves.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Headline(format string, args ...interface{}) {
	headline.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Info(format string, args ...interface{}) {
	info.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Warn(format string, args ...interface{}) {
	warn.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Error(format string, args ...interface{}) {
	failure.Fprintf(r.out, format+"\n", args...)
}

// Balances prints one row per CW20 token, plus the gas token when nativeDenom is set.
func (r *Renderer) Balances(tokens []tokendomain.Token, nativeAmount, nativeDenom string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Symbol", "Name", "Balance", "Address"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, t := range tokens {
		table.Append([]string{t.Symbol, t.Name, t.FormattedBalance(), t.Address})
	}
	if nativeDenom != "" {
		table.Append([]string{nativeDenom, "gas", nativeAmount, "-"})
	}
	table.Render()
}

// Orders prints price and quantity the way the contract returned them.
func (r *Renderer) Orders(title string, orders []domain.OrderRecord) {
	r.Info(title)
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Side", "Price", "Quantity"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, o := range orders {
		table.Append([]string{string(o.Side), o.Price, o.Quantity})
	}
	table.Render()
}

func (r *Renderer) Book(book domain.MarketBook) {
	r.Orders("Current open buy orders", book.Bids)
	r.Orders("Current open sell orders", book.Asks)
}

// Tx reports an included transaction and where to follow it.
func (r *Renderer) Tx(hash, url string) {
	success.Fprintf(r.out, "transaction successful: %s\n", hash)
	if url != "" {
		info.Fprintf(r.out, "%s\n", url)
	}
}

// Spin shows a spinner on the renderer's writer until fn returns.
func (r *Renderer) Spin(message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(r.out))
	s.Suffix = " " + message
	s.Start()
	err := fn()
	s.Stop()
	return err
}

// OrderLabel is how one resting order reads in a select list.
func OrderLabel(o domain.OrderRecord) string {
	return fmt.Sprintf("%s %s @ %s (market %d)", o.Side, o.Quantity, o.Price, o.MarketID)
}
