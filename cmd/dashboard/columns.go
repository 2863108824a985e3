package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"dexBoard/internal/model"
	"dexBoard/internal/table"
)

// column is one rendered table column. Sortable columns name their sort
// field and show the direction arrow when active.
type column[T any] struct {
	header string
	field  string
	value  func(*T) string
}

var tokenColumns = []column[model.Token]{
	{header: "Name", field: table.TokenName, value: func(t *model.Token) string {
		if t.Symbol == "" {
			return t.Name
		}
		return fmt.Sprintf("%s (%s)", t.Name, t.Symbol)
	}},
	{header: "Price", field: table.TokenPriceUSD, value: func(t *model.Token) string { return formatDollar(t.PriceUSD) }},
	{header: "Price Change", field: table.TokenPriceUSDChange, value: func(t *model.Token) string { return formatPercent(t.PriceUSDChange) }},
	{header: "Volume 24H", field: table.TokenVolumeUSD, value: func(t *model.Token) string { return formatDollar(t.VolumeUSD) }},
	{header: "TVL", field: table.TokenTVLUSD, value: func(t *model.Token) string { return formatDollar(t.TVLUSD) }},
}

var poolColumns = []column[model.Pool]{
	{header: "Pool", value: func(p *model.Pool) string { return p.Pair() }},
	{header: "Fee", field: table.PoolFeeTier, value: func(p *model.Pool) string { return formatFeeTier(p.FeeTier) }},
	{header: "TVL", field: table.PoolTVLUSD, value: func(p *model.Pool) string { return formatDollar(p.TVLUSD) }},
	{header: "Volume 24H", field: table.PoolVolumeUSD, value: func(p *model.Pool) string { return formatDollar(p.VolumeUSD) }},
	{header: "Volume 7D", field: table.PoolVolumeUSDWeek, value: func(p *model.Pool) string { return formatDollar(p.VolumeUSDWeek) }},
}

var transactionColumns = []column[model.Transaction]{
	{header: "Transaction", value: (*model.Transaction).Describe},
	{header: "Total Value", field: table.TxAmountUSD, value: func(t *model.Transaction) string { return formatDollar(t.AmountUSD) }},
	{header: "Token Amount", field: table.TxAmountToken0, value: func(t *model.Transaction) string {
		return formatAmount(t.AmountToken0) + " " + t.Token0Symbol
	}},
	{header: "Token Amount", field: table.TxAmountToken1, value: func(t *model.Transaction) string {
		return formatAmount(t.AmountToken1) + " " + t.Token1Symbol
	}},
	{header: "Account", field: table.TxSender, value: func(t *model.Transaction) string { return shortenAddress(t.Sender) }},
	{header: "Time", field: table.TxTimestamp, value: func(t *model.Transaction) string {
		return time.Unix(t.Timestamp, 0).UTC().Format(time.DateTime)
	}},
}

func renderPage[T any](w io.Writer, columns []column[T], sort table.SortSpec, page table.PageResult[T]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(columns)+1)
	headers = append(headers, "#")
	for _, col := range columns {
		headers = append(headers, col.header+sort.Arrow(col.field))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for i, item := range page.Items {
		cells := make([]string, 0, len(columns)+1)
		cells = append(cells, strconv.Itoa(page.Rank(i)))
		for _, col := range columns {
			cells = append(cells, col.value(item))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s Page %d of %d %s\n", arrow(page.HasPrev(), "←"), page.Number, page.TotalPages, arrow(page.HasNext(), "→"))
	return err
}

func arrow(enabled bool, symbol string) string {
	if enabled {
		return symbol
	}
	return " "
}
