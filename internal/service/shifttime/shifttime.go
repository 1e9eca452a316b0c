// Package shifttime holds the pure date arithmetic the scheduling screens
// are built on: bucketing shifts into past/today/upcoming, attributing
// overnight shifts to calendar days, and deciding whether a clock-in falls
// inside the permitted window around shift start.
//
// Everything here is a pure function of its inputs. Malformed dates or
// times return an error for that one shift; nothing is retried or logged.
package shifttime

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DateLayout is the wire format for calendar dates. Lexicographic order
	// of well-formed values matches chronological order, which ClassifyByWindow
	// relies on.
	DateLayout = "2006-01-02"

	// ClockLayout is the wire format for times of day.
	ClockLayout = "15:04:05"
)

// Clock-in is accepted from 5 minutes before shift start until 10 minutes
// after, both ends inclusive.
const (
	ClockInEarly = 5 * time.Minute
	ClockInLate  = 10 * time.Minute
)

// Shift is the minimal view of a scheduled shift the classifier needs.
type Shift struct {
	Date      string // YYYY-MM-DD, the shift's nominal start date
	StartTime string // HH:MM:SS local time of day
	EndTime   string // HH:MM:SS local time of day
}

// Buckets is the result of partitioning shifts against a reference date.
type Buckets struct {
	Past     []Shift
	Today    []Shift
	Upcoming []Shift
}

// WeekBuckets is the result of partitioning shifts against the current week.
// Shifts dated after the week's end land in neither bucket.
type WeekBuckets struct {
	CurrentWeek []Shift
	Past        []Shift
}

// ParseDate parses a strict zero-padded ISO date. Values that parse but do
// not round-trip (e.g. "2024-6-1") are rejected, because the classifier
// compares dates as strings.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing date %q", value)
	}
	if t.Format(DateLayout) != value {
		return time.Time{}, errors.Errorf("date %q is not a zero-padded ISO date", value)
	}
	return t, nil
}

// ParseClock parses a strict HH:MM:SS time of day.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing time %q", value)
	}
	if t.Format(ClockLayout) != value {
		return time.Time{}, errors.Errorf("time %q is not a zero-padded HH:MM:SS time", value)
	}
	return t, nil
}

// Combine builds the instant at which the given date and time of day occur
// in the given location.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc), nil
}

// IsOvernight reports whether a shift crosses midnight. The rule compares
// hour components only: a shift is overnight iff hour(start) > hour(end).
// A shift starting and ending on the same hour (a 24h shift) is therefore
// NOT overnight under this rule.
func IsOvernight(s Shift) (bool, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return false, err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return false, err
	}
	return start.Hour() > end.Hour(), nil
}

// BelongsToDate reports whether the shift should appear on the given
// calendar date: either it starts that day, or it is overnight and ends
// that day.
func BelongsToDate(s Shift, date string) (bool, error) {
	shiftDate, err := ParseDate(s.Date)
	if err != nil {
		return false, err
	}
	compareDate, err := ParseDate(date)
	if err != nil {
		return false, err
	}

	if shiftDate.Equal(compareDate) {
		return true, nil
	}

	overnight, err := IsOvernight(s)
	if err != nil {
		return false, err
	}
	return overnight && shiftDate.AddDate(0, 0, 1).Equal(compareDate), nil
}

// ClassifyByWindow partitions shifts into past/today/upcoming relative to
// today. All dates are validated as strict ISO before the string comparison
// so the lexicographic order is guaranteed to match chronological order.
// The input slice is not mutated.
func ClassifyByWindow(shifts []Shift, today string) (Buckets, error) {
	if _, err := ParseDate(today); err != nil {
		return Buckets{}, err
	}

	var buckets Buckets
	for _, s := range shifts {
		if _, err := ParseDate(s.Date); err != nil {
			return Buckets{}, err
		}
		switch {
		case s.Date > today:
			buckets.Upcoming = append(buckets.Upcoming, s)
		case s.Date == today:
			buckets.Today = append(buckets.Today, s)
		default:
			buckets.Past = append(buckets.Past, s)
		}
	}
	return buckets, nil
}

// StartOfWeek returns midnight of the most recent Sunday at or before now,
// in now's location.
func StartOfWeek(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// CurrentWeekBucket splits shifts into the current week (Sunday through
// Saturday around now) and the past. An overnight shift dated the Saturday
// right before the week start still counts as current week, because it ends
// inside it. Shifts dated after the week's end are left out of both buckets.
func CurrentWeekBucket(shifts []Shift, now time.Time) (WeekBuckets, error) {
	weekStart := StartOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 6)
	dayBefore := weekStart.AddDate(0, 0, -1)

	var buckets WeekBuckets
	for _, s := range shifts {
		d, err := ParseDate(s.Date)
		if err != nil {
			return WeekBuckets{}, err
		}
		shiftDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())

		inWeek := !shiftDay.Before(weekStart) && !shiftDay.After(weekEnd)

		overnightFromBefore := false
		if shiftDay.Equal(dayBefore) {
			overnight, err := IsOvernight(s)
			if err != nil {
				return WeekBuckets{}, err
			}
			overnightFromBefore = overnight
		}

		switch {
		case inWeek || overnightFromBefore:
			buckets.CurrentWeek = append(buckets.CurrentWeek, s)
		case shiftDay.Before(weekStart):
			buckets.Past = append(buckets.Past, s)
		}
	}
	return buckets, nil
}

// CanClockIn reports whether now falls inside the permitted clock-in window
// for the shift: the closed interval from 5 minutes before shift start to
// 10 minutes after, evaluated in now's location.
func CanClockIn(s Shift, now time.Time) (bool, error) {
	start, err := Combine(s.Date, s.StartTime, now.Location())
	if err != nil {
		return false, err
	}

	earliest := start.Add(-ClockInEarly)
	latest := start.Add(ClockInLate)

	return !now.Before(earliest) && !now.After(latest), nil
}

// IsPastShift reports whether the shift has already ended. For overnight
// shifts the end instant lies on the day after the shift's date; it is
// computed there, not against the start date.
func IsPastShift(s Shift, now time.Time) (bool, error) {
	end, err := Combine(s.Date, s.EndTime, now.Location())
	if err != nil {
		return false, err
	}

	overnight, err := IsOvernight(s)
	if err != nil {
		return false, err
	}
	if overnight {
		end = end.AddDate(0, 0, 1)
	}

	return now.After(end), nil
}
