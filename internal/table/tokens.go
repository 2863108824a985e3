package table

import "dexBoard/internal/model"

// Token table sort fields.
const (
	TokenName               = "name"
	TokenSymbol             = "symbol"
	TokenTVLUSD             = "tvlUSD"
	TokenVolumeUSD          = "volumeUSD"
	TokenPriceUSD           = "priceUSD"
	TokenPriceUSDChange     = "priceUSDChange"
	TokenPriceUSDChangeWeek = "priceUSDChangeWeek"
)

// Tokens is the schema of the token table.
func Tokens() Schema[model.Token] {
	return Schema[model.Token]{
		Name: "tokens",
		ID:   (*model.Token).ID,
		Fields: map[string]Accessor[model.Token]{
			TokenName:               func(t *model.Token) Value { return text(t.Name) },
			TokenSymbol:             func(t *model.Token) Value { return text(t.Symbol) },
			TokenTVLUSD:             func(t *model.Token) Value { return Number(t.TVLUSD) },
			TokenVolumeUSD:          func(t *model.Token) Value { return Number(t.VolumeUSD) },
			TokenPriceUSD:           func(t *model.Token) Value { return Number(t.PriceUSD) },
			TokenPriceUSDChange:     func(t *model.Token) Value { return Number(t.PriceUSDChange) },
			TokenPriceUSDChangeWeek: func(t *model.Token) Value { return Number(t.PriceUSDChangeWeek) },
		},
		DefaultSort: SortSpec{Field: TokenTVLUSD},
	}
}

// text maps empty strings to missing so unnamed rows sort last.
func text(s string) Value {
	if s == "" {
		return Missing()
	}
	return String(s)
}
