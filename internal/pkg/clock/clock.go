package clock

import "time"

// All attendance dates are kept in the company timezone (UTC+7),
// regardless of where the server runs.
var Location = time.FixedZone("UTC+7", 7*60*60)

// Clock provides the current instant. Services take a Clock so the
// check-in/check-out transitions can be tested with a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// DateOf returns the UTC+7 calendar date of t as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.In(Location).Format("2006-01-02")
}

// Today returns the current UTC+7 calendar date as YYYY-MM-DD.
func Today(c Clock) string {
	return DateOf(c.Now())
}

// ToLocalDisplay formats an instant as an ISO-8601 timestamp shifted to
// UTC+7 for display fields. Returns nil for a missing instant.
func ToLocalDisplay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(Location).Format("2006-01-02T15:04:05.000-07:00")
	return &s
}
