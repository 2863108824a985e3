package model

import (
	"encoding/json"
	"math"
)

// Numeric fields left null or absent in a snapshot decode as NaN, which
// the table engine sorts as missing. encoding/json leaves a float untouched
// for both, so the fields are preset before decoding.

func (t *Token) UnmarshalJSON(data []byte) error {
	type plain Token
	nan := math.NaN()
	p := plain{
		TVLUSD:             nan,
		VolumeUSD:          nan,
		PriceUSD:           nan,
		PriceUSDChange:     nan,
		PriceUSDChangeWeek: nan,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Token(p)
	return nil
}

func (p *Pool) UnmarshalJSON(data []byte) error {
	type plain Pool
	nan := math.NaN()
	v := plain{
		TVLUSD:        nan,
		VolumeUSD:     nan,
		VolumeUSDWeek: nan,
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Pool(v)
	return nil
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	nan := math.NaN()
	p := plain{
		AmountToken0: nan,
		AmountToken1: nan,
		AmountUSD:    nan,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Transaction(p)
	return nil
}
