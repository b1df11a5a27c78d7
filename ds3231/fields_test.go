package ds3231

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestFieldsFromTime(t *testing.T) {
	c := qt.New(t)

	// a Sunday: the rollover into the new year
	f, err := FieldsFromTime(time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC))
	c.Assert(err, qt.IsNil)
	c.Assert(f.Values(), qt.Equals, [7]uint8{0, 59, 23, 7, 31, 12, 23})

	f, err = FieldsFromTime(time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC))
	c.Assert(err, qt.IsNil)
	c.Assert(f.Weekday, qt.Equals, uint8(1))
	c.Assert(f.Year, qt.Equals, uint8(0))

	_, err = FieldsFromTime(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC))
	c.Assert(err, qt.Equals, ErrYearRange)
}

func TestFieldsFromTimeConvertsToUTC(t *testing.T) {
	c := qt.New(t)
	loc := time.FixedZone("UTC+2", 2*60*60)
	f, err := FieldsFromTime(time.Date(2023, time.March, 1, 1, 30, 0, 0, loc))
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, Fields{Second: 0, Minute: 30, Hour: 23, Weekday: 2, Date: 28, Month: 2, Year: 23})
}

func TestFieldsTime(t *testing.T) {
	c := qt.New(t)
	f := FieldsFromValues([7]uint8{5, 4, 3, 2, 1, 6, 99})
	c.Assert(f.Time(), qt.Equals, time.Date(2099, time.June, 1, 3, 4, 5, 0, time.UTC))
}

func TestFieldsString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Fields{Second: 5, Minute: 37, Hour: 22, Weekday: 7, Date: 3, Month: 12, Year: 23}.String(), qt.Equals,
		"22:37:05 03/12/23")
}
