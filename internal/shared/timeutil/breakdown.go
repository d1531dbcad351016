// Package timeutil provides pure duration decomposition used by the
// subscription countdown displays. All arithmetic is integer division on
// millisecond differences, so results are stable across repeated calls
// within the same second.
package timeutil

import "time"

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// Breakdown is a duration decomposed into whole days plus the hour, minute
// and second remainders within the day.
type Breakdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether the breakdown is entirely zero.
func (b Breakdown) IsZero() bool {
	return b.Days == 0 && b.Hours == 0 && b.Minutes == 0 && b.Seconds == 0
}

// Millis returns the breakdown collapsed back to milliseconds. It is always
// less than or equal to the difference it was computed from, by strictly
// less than one second.
func (b Breakdown) Millis() int64 {
	return int64(b.Days)*millisPerDay +
		int64(b.Hours)*millisPerHour +
		int64(b.Minutes)*millisPerMinute +
		int64(b.Seconds)*millisPerSecond
}

// Between decomposes the absolute difference between a and b. Argument order
// does not matter.
func Between(a, b time.Time) Breakdown {
	return decompose(absMillis(a, b))
}

// Remaining decomposes end−now. The second return value is true when the
// instant has already passed, in which case the breakdown is zero.
func Remaining(now, end time.Time) (Breakdown, bool) {
	diff := end.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return Breakdown{}, true
	}
	return decompose(diff), false
}

// Elapsed decomposes now−start, clamped to zero when start is in the future.
func Elapsed(start, now time.Time) Breakdown {
	diff := now.UnixMilli() - start.UnixMilli()
	if diff <= 0 {
		return Breakdown{}
	}
	return decompose(diff)
}

// UntilStart decomposes start−now. The second return value is true when the
// start instant has been reached.
func UntilStart(now, start time.Time) (Breakdown, bool) {
	diff := start.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return Breakdown{}, true
	}
	return decompose(diff), false
}

func absMillis(a, b time.Time) int64 {
	diff := b.UnixMilli() - a.UnixMilli()
	if diff < 0 {
		diff = -diff
	}
	return diff
}

func decompose(diffMillis int64) Breakdown {
	return Breakdown{
		Days:    int(diffMillis / millisPerDay),
		Hours:   int(diffMillis / millisPerHour % 24),
		Minutes: int(diffMillis / millisPerMinute % 60),
		Seconds: int(diffMillis / millisPerSecond % 60),
	}
}
