package model

// TokenRef is the token side of a pool.
type TokenRef struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
}

// Pool is one row of the pool table.
type Pool struct {
	Address       string   `json:"address"`
	Token0        TokenRef `json:"token0"`
	Token1        TokenRef `json:"token1"`
	FeeTier       uint32   `json:"feeTier"`
	TVLUSD        float64  `json:"tvlUSD"`
	VolumeUSD     float64  `json:"volumeUSD"`
	VolumeUSDWeek float64  `json:"volumeUSDWeek"`
}

// ID returns the normalized pool address.
func (p *Pool) ID() string {
	return NormalizeID(p.Address)
}

// Pair returns the "TOKEN0/TOKEN1" label of the pool.
func (p *Pool) Pair() string {
	return p.Token0.Symbol + "/" + p.Token1.Symbol
}
