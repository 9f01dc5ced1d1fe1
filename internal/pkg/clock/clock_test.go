package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

func TestDateOf_ShiftsAcrossMidnight(t *testing.T) {
	// 18:30 UTC on Jan 1 is 01:30 on Jan 2 in UTC+7.
	instant := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02", DateOf(instant))

	// 16:59 UTC is still Jan 1 locally.
	instant = time.Date(2024, 1, 1, 16, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-01-01", DateOf(instant))
}

func TestDateOf_IndependentOfInputZone(t *testing.T) {
	utc := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)
	other := utc.In(time.FixedZone("UTC-5", -5*60*60))
	assert.Equal(t, DateOf(utc), DateOf(other))
}

func TestToday(t *testing.T) {
	c := fixedClock{t: time.Date(2024, 3, 10, 17, 5, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03-11", Today(c))
}

func TestToLocalDisplay(t *testing.T) {
	assert.Nil(t, ToLocalDisplay(nil))

	instant := time.Date(2024, 1, 2, 1, 30, 0, 0, time.UTC)
	got := ToLocalDisplay(&instant)
	assert.NotNil(t, got)
	assert.Equal(t, "2024-01-02T08:30:00.000+07:00", *got)
}
