package routes

import (
	"context"
	"geds_checkout/internal/usecase"
	"log"
	"time"
)

// sessionReleaser drops a finalized session once its redirect fired. The
// checkout field is set after the scheduler is built.
type sessionReleaser struct {
	checkout usecase.ICheckoutUseCase
}

func (r *sessionReleaser) onRedirect(sessionID, target string) {
	log.Printf("[checkout][redirect] session_id=%s target=%s", sessionID, target)
	if r.checkout == nil {
		return
	}
	if err := r.checkout.Release(context.Background(), sessionID); err != nil {
		log.Printf("[checkout][redirect] release failed session_id=%s err=%v", sessionID, err)
	}
}

// sweepIdleSessions drops abandoned sessions every interval until ctx is done.
func sweepIdleSessions(ctx context.Context, checkout usecase.ICheckoutUseCase, maxIdle, interval time.Duration) {
	if maxIdle <= 0 || interval <= 0 {
		log.Printf("[checkout][routes] idle session sweep disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := checkout.SweepIdle(ctx, maxIdle); err != nil {
				log.Printf("[checkout][routes] idle session sweep failed: %v", err)
			}
		}
	}
}
