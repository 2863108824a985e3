package table

import (
	"strings"

	"dexBoard/internal/model"
)

// Transaction table sort fields.
const (
	TxAmountUSD    = "amountUSD"
	TxTimestamp    = "timestamp"
	TxSender       = "sender"
	TxAmountToken0 = "amountToken0"
	TxAmountToken1 = "amountToken1"
)

// Transactions is the schema of the transaction table.
func Transactions() Schema[model.Transaction] {
	return Schema[model.Transaction]{
		Name: "transactions",
		ID:   (*model.Transaction).ID,
		Fields: map[string]Accessor[model.Transaction]{
			TxAmountUSD:    func(t *model.Transaction) Value { return Number(t.AmountUSD) },
			TxTimestamp:    func(t *model.Transaction) Value { return Number(float64(t.Timestamp)) },
			TxSender:       func(t *model.Transaction) Value { return text(strings.ToLower(t.Sender)) },
			TxAmountToken0: func(t *model.Transaction) Value { return Number(t.AmountToken0) },
			TxAmountToken1: func(t *model.Transaction) Value { return Number(t.AmountToken1) },
		},
		DefaultSort: SortSpec{Field: TxTimestamp},
	}
}

// TransactionFilter resolves a menu choice ("all", "swap", "add", "remove"
// and their aliases) to a filter on transaction type.
func TransactionFilter(name string) (Filter[model.Transaction], error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "all") {
		return Filter[model.Transaction]{}, nil
	}
	kind, err := model.ParseTransactionType(name)
	if err != nil {
		return Filter[model.Transaction]{}, err
	}
	return Filter[model.Transaction]{
		Name:  string(kind),
		Match: func(t *model.Transaction) bool { return t.Type == kind },
	}, nil
}
