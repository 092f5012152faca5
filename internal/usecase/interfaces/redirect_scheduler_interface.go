package interfaces

import "time"

// IRedirectScheduler arranges for a finalized session to navigate to target after a delay.
type IRedirectScheduler interface {
	Schedule(sessionID, target string, after time.Duration)
}
