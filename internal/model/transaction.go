package model

import (
	"fmt"
	"strings"
)

// TransactionType is the kind of pool event a transaction row shows.
type TransactionType string

const (
	TransactionSwap TransactionType = "swap"
	TransactionMint TransactionType = "mint"
	TransactionBurn TransactionType = "burn"
)

// ParseTransactionType accepts the subgraph names and the dashboard labels.
func ParseTransactionType(input string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "swap", "swaps":
		return TransactionSwap, nil
	case "mint", "add", "adds":
		return TransactionMint, nil
	case "burn", "remove", "removes":
		return TransactionBurn, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %s", input)
	}
}

// Label is the menu text for the type.
func (t TransactionType) Label() string {
	switch t {
	case TransactionSwap:
		return "Swaps"
	case TransactionMint:
		return "Adds"
	case TransactionBurn:
		return "Removes"
	default:
		return string(t)
	}
}

// Transaction is one row of the transaction table.
type Transaction struct {
	Type         TransactionType `json:"type"`
	Hash         string          `json:"hash"`
	LogIndex     uint64          `json:"logIndex"`
	Timestamp    int64           `json:"timestamp"`
	Sender       string          `json:"sender"`
	Token0Symbol string          `json:"token0Symbol"`
	Token1Symbol string          `json:"token1Symbol"`
	AmountToken0 float64         `json:"amountToken0"`
	AmountToken1 float64         `json:"amountToken1"`
	AmountUSD    float64         `json:"amountUSD"`
}

// ID identifies the event, since one hash can carry several pool events.
func (t *Transaction) ID() string {
	return fmt.Sprintf("%s#%d", strings.ToLower(strings.TrimSpace(t.Hash)), t.LogIndex)
}

// Describe renders the action text, e.g. "Swap USDC for WETH".
func (t *Transaction) Describe() string {
	switch t.Type {
	case TransactionMint:
		return fmt.Sprintf("Add %s and %s", t.Token0Symbol, t.Token1Symbol)
	case TransactionSwap:
		input, output := t.Token1Symbol, t.Token1Symbol
		if t.AmountToken1 < 0 {
			input = t.Token0Symbol
		}
		if t.AmountToken0 < 0 {
			output = t.Token0Symbol
		}
		return fmt.Sprintf("Swap %s for %s", input, output)
	default:
		return fmt.Sprintf("Remove %s and %s", t.Token0Symbol, t.Token1Symbol)
	}
}
