package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestTokenDecodeMissingNumerics(t *testing.T) {
	var token Token
	if err := json.Unmarshal([]byte(`{"address":"0x01","priceUSD":1.5,"priceUSDChange":null}`), &token); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if token.PriceUSD != 1.5 {
		t.Fatalf("price mismatch: %v", token.PriceUSD)
	}
	if !math.IsNaN(token.PriceUSDChange) || !math.IsNaN(token.TVLUSD) {
		t.Fatalf("null and absent fields should be NaN: %+v", token)
	}
	if token.Address != "0x01" {
		t.Fatalf("address mismatch: %s", token.Address)
	}
}

func TestPoolDecodeMissingNumerics(t *testing.T) {
	var pool Pool
	data := `{"address":"0x02","token0":{"symbol":"USDC"},"feeTier":500,"tvlUSD":0,"volumeUSD":null}`
	if err := json.Unmarshal([]byte(data), &pool); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pool.TVLUSD != 0 || pool.FeeTier != 500 || pool.Token0.Symbol != "USDC" {
		t.Fatalf("pool mismatch: %+v", pool)
	}
	if !math.IsNaN(pool.VolumeUSD) || !math.IsNaN(pool.VolumeUSDWeek) {
		t.Fatalf("null and absent fields should be NaN: %+v", pool)
	}
}

func TestTransactionDecodeMissingNumerics(t *testing.T) {
	var tx Transaction
	if err := json.Unmarshal([]byte(`{"type":"swap","hash":"0xab","amountUSD":12,"amountToken0":null}`), &tx); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tx.Type != TransactionSwap || tx.AmountUSD != 12 {
		t.Fatalf("transaction mismatch: %+v", tx)
	}
	if !math.IsNaN(tx.AmountToken0) || !math.IsNaN(tx.AmountToken1) {
		t.Fatalf("null and absent fields should be NaN: %+v", tx)
	}
}
