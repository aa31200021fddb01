package worker

// promo_sweep.go
// Background goroutine that periodically applies the near-expiry markdown and
// clears stale promotion flags. A Redis advisory lock keeps two instances
// from sweeping the same rows at the same time (the sweep itself is
// idempotent, so a lost lock only costs duplicate log lines).

import (
	"context"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	sweepLockKey = "promo_sweep:lock"
	sweepLockTTL = 5 * time.Minute
)

// PromoSweepConfig holds all dependencies for the sweep goroutine.
type PromoSweepConfig struct {
	Promos   service.PromoService
	RDB      *redis.Client
	Interval time.Duration
}

// StartPromoSweep launches a background goroutine that runs one sweep on
// startup, then one per tick. It respects the context for graceful shutdown.
func StartPromoSweep(ctx context.Context, cfg PromoSweepConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("promo_sweep: started")

		runSweep(ctx, cfg)
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("promo_sweep: shutting down")
				return
			case <-ticker.C:
				runSweep(ctx, cfg)
			}
		}
	}()
}

func runSweep(ctx context.Context, cfg PromoSweepConfig) {
	ok, err := cfg.RDB.SetNX(ctx, sweepLockKey, "1", sweepLockTTL).Result()
	if err != nil {
		log.Error().Err(err).Msg("promo_sweep: lock acquisition failed")
		return
	}
	if !ok {
		log.Debug().Msg("promo_sweep: another instance holds the lock, skipping tick")
		return
	}
	defer cfg.RDB.Del(context.Background(), sweepLockKey)

	res, err := cfg.Promos.RunSweep(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("promo_sweep: sweep failed")
		return
	}
	if res.Activated > 0 || res.Deactivated > 0 {
		log.Info().
			Int("activated", res.Activated).
			Int("deactivated", res.Deactivated).
			Msg("promo_sweep: completed")
	}
}
