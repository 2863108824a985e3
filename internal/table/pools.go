package table

import "dexBoard/internal/model"

// Pool table sort fields.
const (
	PoolFeeTier       = "feeTier"
	PoolTVLUSD        = "tvlUSD"
	PoolVolumeUSD     = "volumeUSD"
	PoolVolumeUSDWeek = "volumeUSDWeek"
)

// Pools is the schema of the pool table.
func Pools() Schema[model.Pool] {
	return Schema[model.Pool]{
		Name: "pools",
		ID:   (*model.Pool).ID,
		Fields: map[string]Accessor[model.Pool]{
			PoolFeeTier:       func(p *model.Pool) Value { return Number(float64(p.FeeTier)) },
			PoolTVLUSD:        func(p *model.Pool) Value { return Number(p.TVLUSD) },
			PoolVolumeUSD:     func(p *model.Pool) Value { return Number(p.VolumeUSD) },
			PoolVolumeUSDWeek: func(p *model.Pool) Value { return Number(p.VolumeUSDWeek) },
		},
		DefaultSort: SortSpec{Field: PoolTVLUSD},
	}
}
