package model

// Token is one row of the token table.
type Token struct {
	Address            string  `json:"address"`
	Name               string  `json:"name"`
	Symbol             string  `json:"symbol"`
	TVLUSD             float64 `json:"tvlUSD"`
	VolumeUSD          float64 `json:"volumeUSD"`
	PriceUSD           float64 `json:"priceUSD"`
	PriceUSDChange     float64 `json:"priceUSDChange"`
	PriceUSDChangeWeek float64 `json:"priceUSDChangeWeek"`
}

// ID returns the normalized token address.
func (t *Token) ID() string {
	return NormalizeID(t.Address)
}
