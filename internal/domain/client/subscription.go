package client

import (
	"fmt"
	"time"

	vo "github.com/gestio-app/gestio/internal/domain/client/valueobjects"
	"github.com/gestio-app/gestio/internal/shared/timeutil"
)

// Subscription is the service window embedded in a client. It has no
// lifecycle of its own; it lives and dies with its client.
type Subscription struct {
	start time.Time
	end   time.Time
}

// NewSubscription builds a subscription window, rejecting windows where the
// start does not strictly precede the end.
func NewSubscription(start, end time.Time) (Subscription, error) {
	if start.IsZero() || end.IsZero() {
		return Subscription{}, fmt.Errorf("subscription start and end dates are required")
	}
	if !start.Before(end) {
		return Subscription{}, fmt.Errorf("subscription start date must be before end date")
	}
	return Subscription{start: start.UTC(), end: end.UTC()}, nil
}

func (s Subscription) Start() time.Time {
	return s.start
}

func (s Subscription) End() time.Time {
	return s.end
}

// Status classifies the window at instant now.
func (s Subscription) Status(now time.Time) vo.LifecycleStatus {
	return vo.ClassifyLifecycle(s.start, s.end, now)
}

// Progress returns the consumed fraction of the window at instant now.
func (s Subscription) Progress(now time.Time) float64 {
	return vo.Progress(s.start, s.end, now)
}

// Remaining returns the time left until expiry, with an expired flag.
func (s Subscription) Remaining(now time.Time) (timeutil.Breakdown, bool) {
	return timeutil.Remaining(now, s.end)
}

// Elapsed returns the time consumed since the start of the window.
func (s Subscription) Elapsed(now time.Time) timeutil.Breakdown {
	return timeutil.Elapsed(s.start, now)
}

// UntilStart returns the time left before the window opens.
func (s Subscription) UntilStart(now time.Time) (timeutil.Breakdown, bool) {
	return timeutil.UntilStart(now, s.start)
}
