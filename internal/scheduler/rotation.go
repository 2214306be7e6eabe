package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
)

// StartKeyRotation rotates the JWT signing key on a fixed interval until the
// context is cancelled. It runs in its own goroutine; a failed rotation is
// logged and retried on the next tick, since the previous key stays valid.
func StartKeyRotation(ctx context.Context, keyring portssvc.KeyringSvcFacade, interval time.Duration, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("Key rotation scheduler started", slog.Duration("interval", interval))

		for {
			select {
			case <-ctx.Done():
				logger.Info("Key rotation scheduler stopped")
				return
			case <-ticker.C:
				secret, err := keyring.Rotate(ctx)
				if err != nil {
					logger.Error("Scheduled key rotation failed", slog.String("error", err.Error()))
					continue
				}
				logger.Info("Scheduled key rotation complete", slog.Int("version", secret.Version))
			}
		}
	}()
}
