// Package packeddate converts the bit-packed dates used by the validity cycle tables.
//
// A packed date stores the day in the lowest 5 bits, the month in the next 4 bits
// and the calendar year in the remaining high bits.
package packeddate

import (
	"fmt"
	"time"
)

const (
	dayBits   = 5
	monthBits = 4

	dayMask   = 1<<dayBits - 1
	monthMask = 1<<monthBits - 1
	yearShift = dayBits + monthBits
)

type InvalidDateError struct {
	Packed uint32
	Year   int
	Month  int
	Day    int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid packed date %d (year %d, month %d, day %d)", e.Packed, e.Year, e.Month, e.Day)
}

// Split returns the raw year, month and day fields without validating them.
func Split(packed uint32) (year int, month int, day int) {
	year = int(packed >> yearShift)
	month = int((packed >> dayBits) & monthMask)
	day = int(packed & dayMask)

	return year, month, day
}

// Decode returns midnight of the packed calendar date in location.
// A nil location means time.Local.
func Decode(packed uint32, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.Local
	}

	year, month, day := Split(packed)

	if year < 1 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, &InvalidDateError{Packed: packed, Year: year, Month: month, Day: day}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, location)

	// time.Date normalises overflowing days (31st of April becomes 1st of May)
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, &InvalidDateError{Packed: packed, Year: year, Month: month, Day: day}
	}

	return date, nil
}

// DecodeUnix is Decode expressed as seconds since the epoch.
func DecodeUnix(packed uint32, location *time.Location) (int64, error) {
	date, err := Decode(packed, location)
	if err != nil {
		return 0, err
	}

	return date.Unix(), nil
}

// Encode packs the calendar date of t, ignoring its clock time.
func Encode(t time.Time) uint32 {
	return uint32(t.Year())<<yearShift | uint32(t.Month())<<dayBits | uint32(t.Day())
}
