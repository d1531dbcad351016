package valueobjects

import "time"

// LifecycleStatus is the derived state of a subscription window relative to
// a given instant. It is never persisted; callers classify on every read so
// the status always reflects current wall-clock time.
type LifecycleStatus string

const (
	LifecycleNotStarted   LifecycleStatus = "not_started"
	LifecycleHealthy      LifecycleStatus = "healthy"
	LifecycleExpiringSoon LifecycleStatus = "expiring_soon"
	LifecycleUrgent       LifecycleStatus = "urgent"
	LifecycleExpired      LifecycleStatus = "expired"
)

func (s LifecycleStatus) String() string {
	return string(s)
}

// IsActive reports whether the subscription still counts toward active-client
// statistics. Not-started windows count as active: the client is on the books
// even though service has not begun.
func (s LifecycleStatus) IsActive() bool {
	return s != LifecycleExpired
}

// Renewal warning thresholds. Windows are half-open: the lower bound is
// inclusive, the upper bound exclusive, so a subscription with exactly seven
// days left is expiring-soon rather than urgent.
const (
	UrgentWindow   = 7 * 24 * time.Hour
	ExpiringWindow = 30 * 24 * time.Hour
)

// ClassifyLifecycle derives the status of a [start,end) window at instant now.
// Exactly one status applies to any input.
func ClassifyLifecycle(start, end, now time.Time) LifecycleStatus {
	if now.Before(start) {
		return LifecycleNotStarted
	}
	if !now.Before(end) {
		return LifecycleExpired
	}

	remaining := end.Sub(now)
	switch {
	case remaining < UrgentWindow:
		return LifecycleUrgent
	case remaining < ExpiringWindow:
		return LifecycleExpiringSoon
	default:
		return LifecycleHealthy
	}
}

// Progress returns the fraction of the window consumed at instant now,
// clamped to [0,1]. A window that has not started reports 0.
func Progress(start, end, now time.Time) float64 {
	if !now.After(start) {
		return 0
	}

	total := end.Sub(start)
	if total <= 0 {
		return 1
	}

	fraction := float64(now.Sub(start)) / float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
