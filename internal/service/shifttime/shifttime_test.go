package shifttime

import (
	"reflect"
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("parsing %q: %v", value, err)
	}
	return ts
}

func TestIsOvernight(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"evening into morning", "22:00:00", "06:00:00", true},
		{"day shift", "09:00:00", "17:00:00", false},
		{"same start and end hour, 24h shift", "08:00:00", "08:00:00", false},
		{"same hour different minutes", "09:30:00", "09:00:00", false},
		{"one hour over midnight", "23:00:00", "00:30:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOvernight(Shift{Date: "2024-06-01", StartTime: tt.start, EndTime: tt.end})
			if err != nil {
				t.Fatalf("IsOvernight: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsOvernight(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsOvernightMalformed(t *testing.T) {
	_, err := IsOvernight(Shift{Date: "2024-06-01", StartTime: "9:00", EndTime: "17:00:00"})
	if err == nil {
		t.Fatal("expected error for malformed start time")
	}
}

func TestBelongsToDate(t *testing.T) {
	overnight := Shift{Date: "2024-06-01", StartTime: "23:00:00", EndTime: "05:00:00"}
	day := Shift{Date: "2024-06-01", StartTime: "09:00:00", EndTime: "17:00:00"}

	tests := []struct {
		name  string
		shift Shift
		date  string
		want  bool
	}{
		{"overnight on its start date", overnight, "2024-06-01", true},
		{"overnight on the next day", overnight, "2024-06-02", true},
		{"overnight two days later", overnight, "2024-06-03", false},
		{"day shift on its date", day, "2024-06-01", true},
		{"day shift on the next day", day, "2024-06-02", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BelongsToDate(tt.shift, tt.date)
			if err != nil {
				t.Fatalf("BelongsToDate: %v", err)
			}
			if got != tt.want {
				t.Errorf("BelongsToDate(%v, %s) = %v, want %v", tt.shift, tt.date, got, tt.want)
			}
		})
	}
}

func TestClassifyByWindow(t *testing.T) {
	shifts := []Shift{
		{Date: "2024-05-30", StartTime: "09:00:00", EndTime: "17:00:00"},
		{Date: "2024-06-01", StartTime: "09:00:00", EndTime: "17:00:00"},
		{Date: "2024-06-01", StartTime: "22:00:00", EndTime: "06:00:00"},
		{Date: "2024-06-02", StartTime: "09:00:00", EndTime: "17:00:00"},
		{Date: "2024-12-31", StartTime: "09:00:00", EndTime: "17:00:00"},
	}

	buckets, err := ClassifyByWindow(shifts, "2024-06-01")
	if err != nil {
		t.Fatalf("ClassifyByWindow: %v", err)
	}

	if len(buckets.Past) != 1 || buckets.Past[0].Date != "2024-05-30" {
		t.Errorf("past bucket = %v", buckets.Past)
	}
	if len(buckets.Today) != 2 {
		t.Errorf("today bucket = %v", buckets.Today)
	}
	if len(buckets.Upcoming) != 2 {
		t.Errorf("upcoming bucket = %v", buckets.Upcoming)
	}

	// The partition is total: every shift lands in exactly one bucket.
	if len(buckets.Past)+len(buckets.Today)+len(buckets.Upcoming) != len(shifts) {
		t.Errorf("partition is not total")
	}
}

func TestClassifyByWindowIdempotent(t *testing.T) {
	shifts := []Shift{
		{Date: "2024-05-30", StartTime: "09:00:00", EndTime: "17:00:00"},
		{Date: "2024-06-01", StartTime: "09:00:00", EndTime: "17:00:00"},
		{Date: "2024-06-02", StartTime: "09:00:00", EndTime: "17:00:00"},
	}
	original := make([]Shift, len(shifts))
	copy(original, shifts)

	first, err := ClassifyByWindow(shifts, "2024-06-01")
	if err != nil {
		t.Fatalf("ClassifyByWindow: %v", err)
	}
	second, err := ClassifyByWindow(shifts, "2024-06-01")
	if err != nil {
		t.Fatalf("ClassifyByWindow: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(shifts, original) {
		t.Errorf("input slice was mutated: %v", shifts)
	}
}

func TestClassifyByWindowRejectsNonISO(t *testing.T) {
	shifts := []Shift{{Date: "2024-6-1", StartTime: "09:00:00", EndTime: "17:00:00"}}
	if _, err := ClassifyByWindow(shifts, "2024-06-01"); err == nil {
		t.Fatal("expected error for non-zero-padded date")
	}
	if _, err := ClassifyByWindow(nil, "06/01/2024"); err == nil {
		t.Fatal("expected error for non-ISO today")
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		now  string
		want string
	}{
		{"2024-06-05T13:00:00", "2024-06-02"}, // Wednesday -> previous Sunday
		{"2024-06-02T00:00:00", "2024-06-02"}, // Sunday maps to itself
		{"2024-06-08T23:59:59", "2024-06-02"}, // Saturday still same week
	}

	for _, tt := range tests {
		got := StartOfWeek(mustTime(t, tt.now))
		if got.Format(DateLayout) != tt.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.now, got.Format(DateLayout), tt.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("StartOfWeek(%s) is not midnight: %v", tt.now, got)
		}
	}
}

func TestCurrentWeekBucket(t *testing.T) {
	// Week of Sunday 2024-06-02 .. Saturday 2024-06-08.
	now := mustTime(t, "2024-06-05T12:00:00")

	inWeek := Shift{Date: "2024-06-04", StartTime: "09:00:00", EndTime: "17:00:00"}
	weekEdgeStart := Shift{Date: "2024-06-02", StartTime: "09:00:00", EndTime: "17:00:00"}
	weekEdgeEnd := Shift{Date: "2024-06-08", StartTime: "09:00:00", EndTime: "17:00:00"}
	saturdayOvernight := Shift{Date: "2024-06-01", StartTime: "22:00:00", EndTime: "06:00:00"}
	saturdayDay := Shift{Date: "2024-06-01", StartTime: "09:00:00", EndTime: "17:00:00"}
	lastMonth := Shift{Date: "2024-05-20", StartTime: "09:00:00", EndTime: "17:00:00"}
	nextWeek := Shift{Date: "2024-06-09", StartTime: "09:00:00", EndTime: "17:00:00"}

	shifts := []Shift{inWeek, weekEdgeStart, weekEdgeEnd, saturdayOvernight, saturdayDay, lastMonth, nextWeek}

	buckets, err := CurrentWeekBucket(shifts, now)
	if err != nil {
		t.Fatalf("CurrentWeekBucket: %v", err)
	}

	wantCurrent := []Shift{inWeek, weekEdgeStart, weekEdgeEnd, saturdayOvernight}
	wantPast := []Shift{saturdayDay, lastMonth}

	if !reflect.DeepEqual(buckets.CurrentWeek, wantCurrent) {
		t.Errorf("CurrentWeek = %v, want %v", buckets.CurrentWeek, wantCurrent)
	}
	if !reflect.DeepEqual(buckets.Past, wantPast) {
		t.Errorf("Past = %v, want %v", buckets.Past, wantPast)
	}

	// A shift after the week's end lands in neither bucket.
	total := len(buckets.CurrentWeek) + len(buckets.Past)
	if total != len(shifts)-1 {
		t.Errorf("expected the next-week shift to be excluded, got %d bucketed of %d", total, len(shifts))
	}
}

func TestCanClockIn(t *testing.T) {
	shift := Shift{Date: "2024-06-01", StartTime: "09:00:00", EndTime: "17:00:00"}

	tests := []struct {
		name string
		now  string
		want bool
	}{
		{"exactly 5 minutes early", "2024-06-01T08:55:00", true},
		{"exactly 10 minutes late", "2024-06-01T09:10:00", true},
		{"at shift start", "2024-06-01T09:00:00", true},
		{"one second too early", "2024-06-01T08:54:59", false},
		{"one second too late", "2024-06-01T09:10:01", false},
		{"hours before", "2024-06-01T06:00:00", false},
		{"wrong day", "2024-06-02T09:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanClockIn(shift, mustTime(t, tt.now))
			if err != nil {
				t.Fatalf("CanClockIn: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanClockIn(now=%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestCanClockInMalformed(t *testing.T) {
	shift := Shift{Date: "2024-06-01", StartTime: "nine", EndTime: "17:00:00"}
	if _, err := CanClockIn(shift, mustTime(t, "2024-06-01T09:00:00")); err == nil {
		t.Fatal("expected error for malformed start time")
	}
}

func TestIsPastShift(t *testing.T) {
	day := Shift{Date: "2024-06-01", StartTime: "09:00:00", EndTime: "17:00:00"}
	overnight := Shift{Date: "2024-06-01", StartTime: "22:00:00", EndTime: "06:00:00"}

	tests := []struct {
		name  string
		shift Shift
		now   string
		want  bool
	}{
		{"day shift before end", day, "2024-06-01T16:59:59", false},
		{"day shift at end", day, "2024-06-01T17:00:00", false},
		{"day shift after end", day, "2024-06-01T17:00:01", true},

		// The overnight end is computed on the next calendar day.
		{"overnight still running past midnight", overnight, "2024-06-02T03:00:00", false},
		{"overnight not past at next-day end", overnight, "2024-06-02T06:00:00", false},
		{"overnight past after next-day end", overnight, "2024-06-02T06:00:01", true},
		{"overnight during evening", overnight, "2024-06-01T23:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPastShift(tt.shift, mustTime(t, tt.now))
			if err != nil {
				t.Fatalf("IsPastShift: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsPastShift(now=%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	got, err := Combine("2024-06-01", "09:30:15", time.UTC)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	want := time.Date(2024, 6, 1, 9, 30, 15, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Combine = %v, want %v", got, want)
	}

	if _, err := Combine("2024-06-01", "25:00:00", time.UTC); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}
