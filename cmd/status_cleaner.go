package main

import (
	"context"
	"log"
	"time"

	"myHomeBack/internal/services"
)

const (
	statusCleanerInterval = 24 * time.Hour
	statusCleanerTimeout  = 30 * time.Second
)

// startStatusCleaner runs the promotion-expiry job on a fixed schedule. The
// first pass runs immediately so a restarted process does not wait a full
// interval before catching up.
func startStatusCleaner(ctx context.Context, svc *services.StatusService, interval time.Duration, infoLog, errorLog *log.Logger) {
	if svc == nil {
		return
	}
	if interval <= 0 {
		interval = statusCleanerInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		run := func() {
			runCtx, cancel := context.WithTimeout(ctx, statusCleanerTimeout)
			defer cancel()

			downgraded, err := svc.DowngradeExpired(runCtx, time.Now())
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("status cleaner: failed to downgrade expired promotions: %v", err)
				}
				return
			}
			if downgraded > 0 && infoLog != nil {
				infoLog.Printf("status cleaner: downgraded %d expired promotions", downgraded)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
