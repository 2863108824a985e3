package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// pingPolicy controls how NewStore waits for the server.
type pingPolicy struct {
	attempts  int
	baseDelay time.Duration
}

var defaultPingPolicy = pingPolicy{attempts: 4, baseDelay: 250 * time.Millisecond}

// waitReady pings until the server answers, doubling the delay after each
// failure. Permanent errors such as bad credentials or an unknown database
// return at once.
func waitReady(ctx context.Context, ping func(context.Context) error, policy pingPolicy, logger *zap.Logger) error {
	attempts := max(policy.attempts, 1)
	delay := policy.baseDelay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	var err error
	for attempt := 1; ; attempt++ {
		if err = ping(ctx); err == nil {
			return nil
		}
		if permanent(err) || attempt >= attempts {
			return err
		}
		logger.Warn("postgres not ready",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}

// permanent reports errors a retry cannot fix: authentication failures
// (SQLSTATE class 28) and a missing database (class 3D).
func permanent(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "28") || strings.HasPrefix(pgErr.Code, "3D")
	}
	return false
}
