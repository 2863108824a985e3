package table

import (
	"math"
	"reflect"
	"testing"

	"dexBoard/internal/model"
)

func TestTokenTableHidesDenylistedAddresses(t *testing.T) {
	tokens := []*model.Token{
		{Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Symbol: "USDC", TVLUSD: 900},
		{Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", Symbol: "WETH", TVLUSD: 1200},
		{Address: "0x6b175474e89094c44da98b954eedeac495271d0f", Symbol: "DAI", TVLUSD: 300},
	}
	deny := NewDenylist("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")

	got, err := View(Tokens(), tokens, deny, Filter[model.Token]{}, Tokens().DefaultSort, FirstPage(MaxItems))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	symbols := make([]string, 0, len(got.Items))
	for _, token := range got.Items {
		symbols = append(symbols, token.Symbol)
	}
	if want := []string{"USDC", "DAI"}; !reflect.DeepEqual(symbols, want) {
		t.Fatalf("symbols mismatch: %v != %v", symbols, want)
	}
}

func TestPoolTableSortByFeeTier(t *testing.T) {
	pools := []*model.Pool{
		{Address: "0x01", FeeTier: 3000},
		{Address: "0x02", FeeTier: 500},
		{Address: "0x03", FeeTier: 10000},
	}

	got, err := View(Pools(), pools, nil, Filter[model.Pool]{}, SortSpec{Field: PoolFeeTier, Ascending: true}, FirstPage(MaxItems))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fees := []uint32{got.Items[0].FeeTier, got.Items[1].FeeTier, got.Items[2].FeeTier}
	if want := []uint32{500, 3000, 10000}; !reflect.DeepEqual(fees, want) {
		t.Fatalf("fee order mismatch: %v != %v", fees, want)
	}
}

func TestTransactionTableFilter(t *testing.T) {
	txs := []*model.Transaction{
		{Hash: "0x1", Type: model.TransactionSwap, Timestamp: 100},
		{Hash: "0x2", Type: model.TransactionMint, Timestamp: 300},
		{Hash: "0x3", Type: model.TransactionSwap, Timestamp: 200},
		{Hash: "0x4", Type: model.TransactionBurn, Timestamp: 400},
	}

	filter, err := TransactionFilter("swaps")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if filter.Key() != "swap" {
		t.Fatalf("filter key mismatch: %s", filter.Key())
	}

	got, err := View(Transactions(), txs, nil, filter, Transactions().DefaultSort, FirstPage(MaxItems))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].Hash != "0x3" || got.Items[1].Hash != "0x1" {
		t.Fatalf("swap page mismatch: %+v", got.Items)
	}

	all, err := TransactionFilter("all")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	got, err = View(Transactions(), txs, nil, all, Transactions().DefaultSort, FirstPage(MaxItems))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 4 || got.Items[0].Hash != "0x4" {
		t.Fatalf("all page mismatch: %+v", got)
	}

	if _, err := TransactionFilter("flash"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestSchemaFieldNames(t *testing.T) {
	want := []string{PoolFeeTier, PoolTVLUSD, PoolVolumeUSD, PoolVolumeUSDWeek}
	if got := Pools().FieldNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("field names mismatch: %v != %v", got, want)
	}
}

func TestSchemaRow(t *testing.T) {
	token := &model.Token{
		Address:  "0xA0b86991c6218b36c1d19d4a2e9eB0cE3606eB48",
		Symbol:   "USDC",
		PriceUSD: 1,
		TVLUSD:   math.NaN(),
	}
	row := Tokens().Row(token)
	if row["id"] != "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48" {
		t.Fatalf("id mismatch: %v", row["id"])
	}
	if row[TokenSymbol] != "USDC" || row[TokenPriceUSD] != 1.0 {
		t.Fatalf("field mismatch: %+v", row)
	}
	if row[TokenTVLUSD] != nil || row[TokenName] != nil {
		t.Fatalf("missing fields should be nil: %+v", row)
	}
	if len(row) != len(Tokens().Fields)+1 {
		t.Fatalf("row size mismatch: %d", len(row))
	}
}
