package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func day(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func TestClassifyLifecycle(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  LifecycleStatus
	}{
		{"plenty of time left", now.Add(-day(1)), now.Add(day(40)), LifecycleHealthy},
		{"inside the thirty day window", now.Add(-day(1)), now.Add(day(15)), LifecycleExpiringSoon},
		{"inside the seven day window", now.Add(-day(1)), now.Add(day(3)), LifecycleUrgent},
		{"already ended", now.Add(-day(10)), now.Add(-day(1)), LifecycleExpired},
		{"not yet started", now.Add(day(5)), now.Add(day(35)), LifecycleNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLifecycle(tt.start, tt.end, now))
		})
	}
}

func TestClassifyLifecycle_Boundaries(t *testing.T) {
	start := now.Add(-day(10))

	// Exactly seven days left: lower bound of the expiring-soon window.
	assert.Equal(t, LifecycleExpiringSoon, ClassifyLifecycle(start, now.Add(UrgentWindow), now))
	// One second under seven days: urgent.
	assert.Equal(t, LifecycleUrgent, ClassifyLifecycle(start, now.Add(UrgentWindow-time.Second), now))

	// Exactly thirty days left: healthy, not expiring-soon.
	assert.Equal(t, LifecycleHealthy, ClassifyLifecycle(start, now.Add(ExpiringWindow), now))
	assert.Equal(t, LifecycleExpiringSoon, ClassifyLifecycle(start, now.Add(ExpiringWindow-time.Second), now))

	// now == end is expired, now == start is not.
	assert.Equal(t, LifecycleExpired, ClassifyLifecycle(start, now, now))
	assert.Equal(t, LifecycleHealthy, ClassifyLifecycle(now, now.Add(day(60)), now))
}

func TestClassifyLifecycle_Exhaustive(t *testing.T) {
	// Every offset combination lands on exactly one of the five states.
	all := map[LifecycleStatus]bool{
		LifecycleNotStarted:   true,
		LifecycleHealthy:      true,
		LifecycleExpiringSoon: true,
		LifecycleUrgent:       true,
		LifecycleExpired:      true,
	}

	for startOffset := -400; startOffset <= 40; startOffset += 20 {
		for endOffset := startOffset + 1; endOffset <= 400; endOffset += 17 {
			got := ClassifyLifecycle(now.Add(day(startOffset)), now.Add(day(endOffset)), now)
			assert.True(t, all[got], "unknown status %q", got)
		}
	}
}

func TestLifecycleStatus_IsActive(t *testing.T) {
	assert.True(t, LifecycleHealthy.IsActive())
	assert.True(t, LifecycleExpiringSoon.IsActive())
	assert.True(t, LifecycleUrgent.IsActive())
	assert.True(t, LifecycleNotStarted.IsActive())
	assert.False(t, LifecycleExpired.IsActive())
}

func TestProgress(t *testing.T) {
	start := now.Add(-day(10))
	end := now.Add(day(10))

	assert.InDelta(t, 0.5, Progress(start, end, now), 1e-9)
	assert.Equal(t, 0.0, Progress(now.Add(day(1)), now.Add(day(30)), now), "future start reports zero")
	assert.Equal(t, 1.0, Progress(now.Add(-day(30)), now.Add(-day(1)), now), "past end clamps to one")
	assert.Equal(t, 0.0, Progress(now, end, now), "progress at the start instant is zero")
}

func TestParseSubscriptionType(t *testing.T) {
	tests := []struct {
		input string
		want  SubscriptionType
	}{
		{"monthly", TypeMonthly},
		{"mensile", TypeMonthly},
		{"", TypeMonthly},
		{"annual", TypeAnnual},
		{"Annuale", TypeAnnual},
		{"trial", TypeTrial},
		{"PROVA", TypeTrial},
	}

	for _, tt := range tests {
		got, err := ParseSubscriptionType(tt.input)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseSubscriptionType("weekly")
	assert.Error(t, err)
}
