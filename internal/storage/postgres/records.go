package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dexBoard/internal/model"
	"dexBoard/internal/storage"
)

// LoadTokens reads the token table.
func (s *Store) LoadTokens(ctx context.Context) (storage.Snapshot[model.Token], error) {
	rows, err := s.pool.Query(ctx, `
		SELECT address, name, symbol,
			tvl_usd::text, volume_usd::text, price_usd::text,
			price_usd_change::text, price_usd_change_week::text
		FROM tokens
		ORDER BY address
	`)
	if err != nil {
		return storage.Snapshot[model.Token]{}, fmt.Errorf("query tokens: %w", err)
	}

	records, err := collect(rows, func(row pgx.Rows) (*model.Token, error) {
		var token model.Token
		var tvl, volume, price, change, changeWeek *string
		if err := row.Scan(&token.Address, &token.Name, &token.Symbol, &tvl, &volume, &price, &change, &changeWeek); err != nil {
			return nil, err
		}
		return &token, parseAll(
			numericField{&token.TVLUSD, tvl},
			numericField{&token.VolumeUSD, volume},
			numericField{&token.PriceUSD, price},
			numericField{&token.PriceUSDChange, change},
			numericField{&token.PriceUSDChangeWeek, changeWeek},
		)
	})
	if err != nil {
		return storage.Snapshot[model.Token]{}, fmt.Errorf("scan tokens: %w", err)
	}
	return storage.Snapshot[model.Token]{Records: records, Version: storage.Fingerprint(records)}, nil
}

// LoadPools reads the pool table with both token symbols.
func (s *Store) LoadPools(ctx context.Context) (storage.Snapshot[model.Pool], error) {
	rows, err := s.pool.Query(ctx, `
		SELECT address, token0, token0_symbol, token1, token1_symbol, fee_tier,
			tvl_usd::text, volume_usd::text, volume_usd_week::text
		FROM pools
		ORDER BY address
	`)
	if err != nil {
		return storage.Snapshot[model.Pool]{}, fmt.Errorf("query pools: %w", err)
	}

	records, err := collect(rows, func(row pgx.Rows) (*model.Pool, error) {
		var pool model.Pool
		var feeTier int64
		var tvl, volume, volumeWeek *string
		if err := row.Scan(
			&pool.Address,
			&pool.Token0.Address, &pool.Token0.Symbol,
			&pool.Token1.Address, &pool.Token1.Symbol,
			&feeTier, &tvl, &volume, &volumeWeek,
		); err != nil {
			return nil, err
		}
		pool.FeeTier = uint32(feeTier)
		return &pool, parseAll(
			numericField{&pool.TVLUSD, tvl},
			numericField{&pool.VolumeUSD, volume},
			numericField{&pool.VolumeUSDWeek, volumeWeek},
		)
	})
	if err != nil {
		return storage.Snapshot[model.Pool]{}, fmt.Errorf("scan pools: %w", err)
	}
	return storage.Snapshot[model.Pool]{Records: records, Version: storage.Fingerprint(records)}, nil
}

// LoadTransactions reads the transaction table, newest first.
func (s *Store) LoadTransactions(ctx context.Context) (storage.Snapshot[model.Transaction], error) {
	rows, err := s.pool.Query(ctx, `
		SELECT type, hash, log_index, timestamp, sender, token0_symbol, token1_symbol,
			amount_token0::text, amount_token1::text, amount_usd::text
		FROM transactions
		ORDER BY timestamp DESC, hash, log_index
	`)
	if err != nil {
		return storage.Snapshot[model.Transaction]{}, fmt.Errorf("query transactions: %w", err)
	}

	records, err := collect(rows, func(row pgx.Rows) (*model.Transaction, error) {
		var tx model.Transaction
		var kind string
		var logIndex int64
		var amount0, amount1, amountUSD *string
		if err := row.Scan(
			&kind, &tx.Hash, &logIndex, &tx.Timestamp, &tx.Sender,
			&tx.Token0Symbol, &tx.Token1Symbol, &amount0, &amount1, &amountUSD,
		); err != nil {
			return nil, err
		}
		parsed, err := model.ParseTransactionType(kind)
		if err != nil {
			return nil, err
		}
		tx.Type = parsed
		tx.LogIndex = uint64(logIndex)
		return &tx, parseAll(
			numericField{&tx.AmountToken0, amount0},
			numericField{&tx.AmountToken1, amount1},
			numericField{&tx.AmountUSD, amountUSD},
		)
	})
	if err != nil {
		return storage.Snapshot[model.Transaction]{}, fmt.Errorf("scan transactions: %w", err)
	}
	return storage.Snapshot[model.Transaction]{Records: records, Version: storage.Fingerprint(records)}, nil
}

// LoadChartDays reads the daily protocol series in date order.
func (s *Store) LoadChartDays(ctx context.Context) ([]model.ChartDay, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date, tvl_usd::text, volume_usd::text, fees_usd::text
		FROM protocol_day_data
		ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("query chart days: %w", err)
	}

	records, err := collect(rows, func(row pgx.Rows) (*model.ChartDay, error) {
		var day model.ChartDay
		var tvl, volume, fees *string
		if err := row.Scan(&day.Date, &tvl, &volume, &fees); err != nil {
			return nil, err
		}
		// Chart series have no missing-value ordering; a NULL day counts as zero.
		return &day, parseAll(
			numericField{&day.TVLUSD, orZero(tvl)},
			numericField{&day.VolumeUSD, orZero(volume)},
			numericField{&day.FeesUSD, orZero(fees)},
		)
	})
	if err != nil {
		return nil, fmt.Errorf("scan chart days: %w", err)
	}

	days := make([]model.ChartDay, 0, len(records))
	for _, day := range records {
		days = append(days, *day)
	}
	return days, nil
}

type numericField struct {
	dst *float64
	src *string
}

func orZero(value *string) *string {
	if value == nil {
		zero := "0"
		return &zero
	}
	return value
}

func parseAll(fields ...numericField) error {
	for _, field := range fields {
		value, err := parseNumeric(field.src)
		if err != nil {
			return err
		}
		*field.dst = value
	}
	return nil
}

func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (*T, error)) ([]*T, error) {
	defer rows.Close()

	out := make([]*T, 0, 256)
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
