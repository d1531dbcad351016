package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestBetween_Decomposition(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want Breakdown
	}{
		{"zero", 0, Breakdown{}},
		{"sub-second truncates to zero", 999 * time.Millisecond, Breakdown{}},
		{"exact seconds", 42 * time.Second, Breakdown{Seconds: 42}},
		{"minute remainder", 61 * time.Second, Breakdown{Minutes: 1, Seconds: 1}},
		{"hour remainder", 3*time.Hour + 59*time.Minute, Breakdown{Hours: 3, Minutes: 59}},
		{"whole days", 48 * time.Hour, Breakdown{Days: 2}},
		{
			"mixed",
			26*time.Hour + 61*time.Minute + 5*time.Second,
			Breakdown{Days: 1, Hours: 3, Minutes: 1, Seconds: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Between(base, base.Add(tt.d)))
		})
	}
}

func TestBetween_OrderIndependent(t *testing.T) {
	later := base.Add(30*time.Hour + 15*time.Minute)
	assert.Equal(t, Between(base, later), Between(later, base))
}

func TestBreakdown_RoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		1500 * time.Millisecond,
		90 * time.Second,
		25*time.Hour + 3*time.Minute + 59*time.Second + 999*time.Millisecond,
		40 * 24 * time.Hour,
	}

	for _, d := range durations {
		diffMillis := d.Milliseconds()
		got := Between(base, base.Add(d))
		assert.LessOrEqual(t, got.Millis(), diffMillis)
		assert.Less(t, diffMillis-got.Millis(), int64(1000),
			"truncation must lose strictly less than one second")
	}
}

func TestRemaining(t *testing.T) {
	got, expired := Remaining(base, base.Add(10*24*time.Hour+5*time.Second))
	assert.False(t, expired)
	assert.Equal(t, Breakdown{Days: 10, Seconds: 5}, got)

	got, expired = Remaining(base, base.Add(-time.Second))
	assert.True(t, expired)
	assert.True(t, got.IsZero())

	// Boundary: exactly at the end instant counts as expired.
	got, expired = Remaining(base, base)
	assert.True(t, expired)
	assert.True(t, got.IsZero())
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, Breakdown{Days: 3, Hours: 4}, Elapsed(base, base.Add(76*time.Hour)))
	assert.True(t, Elapsed(base, base.Add(-time.Hour)).IsZero())
	assert.True(t, Elapsed(base, base).IsZero())
}

func TestUntilStart(t *testing.T) {
	got, started := UntilStart(base, base.Add(36*time.Hour))
	assert.False(t, started)
	assert.Equal(t, Breakdown{Days: 1, Hours: 12}, got)

	_, started = UntilStart(base, base)
	assert.True(t, started)

	_, started = UntilStart(base, base.Add(-time.Minute))
	assert.True(t, started)
}
