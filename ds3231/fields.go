package ds3231

import (
	"errors"
	"fmt"
	"time"
)

// ErrYearRange is returned when a time.Time cannot be represented by the two-digit year register.
var ErrYearRange = errors.New("ds3231: year must be within 2000-2099")

// Fields holds the decoded contents of the seven time registers. Values are plain decimals. Ranges follow the
// datasheet (Second and Minute 0-59, Hour 0-23, Weekday 1-7, Date 1-31, Month 1-12, Year 0-99) and are not checked
// by the driver.
type Fields struct {
	Second  uint8
	Minute  uint8
	Hour    uint8
	Weekday uint8
	Date    uint8
	Month   uint8
	Year    uint8
}

// FieldsFromValues builds Fields from the register-ordered layout: seconds, minutes, hours, weekday, date, month, year.
func FieldsFromValues(v [7]uint8) Fields {
	return Fields{
		Second:  v[0],
		Minute:  v[1],
		Hour:    v[2],
		Weekday: v[3],
		Date:    v[4],
		Month:   v[5],
		Year:    v[6],
	}
}

// Values returns the fields in register order, matching TimeRegisters.
func (f Fields) Values() [7]uint8 {
	return [7]uint8{f.Second, f.Minute, f.Hour, f.Weekday, f.Date, f.Month, f.Year}
}

// FieldsFromTime converts t, taken in UTC, to register fields. Weekdays run Monday=1 through Sunday=7.
func FieldsFromTime(t time.Time) (Fields, error) {
	t = t.UTC()
	if t.Year() < 2000 || t.Year() > 2099 {
		return Fields{}, ErrYearRange
	}
	wd := uint8(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Fields{
		Second:  uint8(t.Second()),
		Minute:  uint8(t.Minute()),
		Hour:    uint8(t.Hour()),
		Weekday: wd,
		Date:    uint8(t.Day()),
		Month:   uint8(t.Month()),
		Year:    uint8(t.Year() - 2000),
	}, nil
}

// Time interprets the fields as a UTC time in the 21st century. The weekday is ignored.
func (f Fields) Time() time.Time {
	return time.Date(2000+int(f.Year), time.Month(f.Month), int(f.Date),
		int(f.Hour), int(f.Minute), int(f.Second), 0, time.UTC)
}

// String formats the fields as HH:MM:SS DD/MM/YY.
func (f Fields) String() string {
	return fmt.Sprintf("%02d:%02d:%02d %02d/%02d/%02d", f.Hour, f.Minute, f.Second, f.Date, f.Month, f.Year)
}
