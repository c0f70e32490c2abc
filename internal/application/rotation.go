package application

import (
	"context"

	"github.com/bnema/careerhub/internal/domain"
	"go.uber.org/zap"
)

const maxKeyAttempts = 2

// CallWithRotation draws a fresh key for the call. A retryable provider failure
// is retried once on the next key from the same pool before it is returned.
func CallWithRotation[T any](
	ctx context.Context,
	keys KeySource,
	sessionID string,
	pool domain.PoolName,
	logger *zap.Logger,
	call func(ctx context.Context, apiKey string) (T, error),
) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= maxKeyAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		apiKey, err := keys.NextKey(ctx, sessionID, pool)
		if err != nil {
			return zero, err
		}

		result, err := call(ctx, apiKey)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !domain.IsRetryable(err) {
			return zero, err
		}

		if logger != nil && attempt < maxKeyAttempts {
			logger.Warn("provider call failed, rotating key",
				zap.String("pool", string(pool)),
				zap.String("key", domain.MaskKey(apiKey)),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}

	return zero, lastErr
}
